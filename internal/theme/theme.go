// Package theme provides a centralized styling system for the tabiew
// terminal UI. Every visual element references a lipgloss.Style held in a
// Theme struct so that the entire look-and-feel can be swapped at runtime.
//
// Color tables are an external collaborator per the application's design:
// the state tree only ever stores a theme name and an index into the
// registry, never a lipgloss.Style directly.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds lipgloss.Style values for every UI element.
type Theme struct {
	Name string

	// App-level
	AppBackground lipgloss.Style

	// Tab bar
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabBar      lipgloss.Style

	// Table view
	TableBorder      lipgloss.Style
	TableHeader      lipgloss.Style
	TableCell        lipgloss.Style
	TableSelectedRow lipgloss.Style
	TableNull        lipgloss.Style

	// Status bar / error banner
	StatusBar      lipgloss.Style
	StatusBarKey   lipgloss.Style
	StatusBarValue lipgloss.Style
	ErrorBanner    lipgloss.Style

	// Palette / inline query / search bar
	PaletteBorder   lipgloss.Style
	PaletteInput    lipgloss.Style
	PaletteItem     lipgloss.Style
	PaletteSelected lipgloss.Style

	// Modal (Sheet, DataFrameInfo, plots, Help)
	ModalBorder lipgloss.Style
	ModalTitle  lipgloss.Style

	// Schema view
	SchemaName      lipgloss.Style
	SchemaSelected  lipgloss.Style
	SchemaFieldName lipgloss.Style
	SchemaFieldType lipgloss.Style

	// SQL syntax highlighting (palette / inline-query input)
	SQLKeyword  lipgloss.Style
	SQLString   lipgloss.Style
	SQLNumber   lipgloss.Style
	SQLOperator lipgloss.Style

	// General
	FocusedBorder   lipgloss.Style
	UnfocusedBorder lipgloss.Style
	ErrorText       lipgloss.Style
	SuccessText     lipgloss.Style
	MutedText       lipgloss.Style
}

// ---------------------------------------------------------------------------
// Theme definitions
// ---------------------------------------------------------------------------

func newDefaultTheme() *Theme {
	return &Theme{
		Name: "default",

		AppBackground: lipgloss.NewStyle().Background(lipgloss.Color("#1E1E1E")),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#1E1E1E")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(false).
			BorderForeground(lipgloss.Color("#569CD6")).
			PaddingLeft(1).PaddingRight(1),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080")).
			Background(lipgloss.Color("#2D2D2D")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(1).PaddingRight(1),
		TabBar: lipgloss.NewStyle().Background(lipgloss.Color("#252526")),

		TableBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3C3C3C")),
		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#569CD6")).
			Background(lipgloss.Color("#252526")),
		TableCell: lipgloss.NewStyle().Foreground(lipgloss.Color("#D4D4D4")),
		TableSelectedRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#264F78")),
		TableNull: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#808080")),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#007ACC")),
		StatusBarKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#007ACC")).
			PaddingLeft(1).PaddingRight(1),
		StatusBarValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D4D4D4")).
			Background(lipgloss.Color("#1E1E1E")).
			PaddingLeft(1).PaddingRight(1),
		ErrorBanner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#F44747")),

		PaletteBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#569CD6")),
		PaletteInput: lipgloss.NewStyle().Foreground(lipgloss.Color("#D4D4D4")),
		PaletteItem:  lipgloss.NewStyle().Foreground(lipgloss.Color("#D4D4D4")),
		PaletteSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#264F78")),

		ModalBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#569CD6")).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#569CD6")),

		SchemaName:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4EC9B0")),
		SchemaSelected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#264F78")),
		SchemaFieldName: lipgloss.NewStyle().Foreground(lipgloss.Color("#9CDCFE")),
		SchemaFieldType: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#808080")),

		SQLKeyword:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#569CD6")),
		SQLString:   lipgloss.NewStyle().Foreground(lipgloss.Color("#CE9178")),
		SQLNumber:   lipgloss.NewStyle().Foreground(lipgloss.Color("#B5CEA8")),
		SQLOperator: lipgloss.NewStyle().Foreground(lipgloss.Color("#D4D4D4")),

		FocusedBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#569CD6")),
		UnfocusedBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3C3C3C")),
		ErrorText:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F44747")),
		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color("#6A9955")),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6A9955")),
	}
}

// newTangoDarkTheme mirrors the palette of the "tango dark" builtin theme
// from the original Rust implementation (builtin_tango_dark.rs).
func newTangoDarkTheme() *Theme {
	t := newDefaultTheme()
	t.Name = "tango-dark"
	t.AppBackground = lipgloss.NewStyle().Background(lipgloss.Color("#2E3436"))
	t.TabActive = t.TabActive.Background(lipgloss.Color("#2E3436")).BorderForeground(lipgloss.Color("#729FCF"))
	t.TabInactive = t.TabInactive.Background(lipgloss.Color("#555753")).BorderForeground(lipgloss.Color("#2E3436"))
	t.TableHeader = t.TableHeader.Foreground(lipgloss.Color("#729FCF")).Background(lipgloss.Color("#2E3436"))
	t.TableSelectedRow = t.TableSelectedRow.Background(lipgloss.Color("#4E9A06")).Foreground(lipgloss.Color("#2E3436"))
	t.StatusBar = t.StatusBar.Background(lipgloss.Color("#729FCF"))
	t.ErrorBanner = t.ErrorBanner.Background(lipgloss.Color("#CC0000"))
	t.PaletteBorder = t.PaletteBorder.BorderForeground(lipgloss.Color("#729FCF"))
	t.ModalBorder = t.ModalBorder.BorderForeground(lipgloss.Color("#729FCF"))
	t.SchemaName = t.SchemaName.Foreground(lipgloss.Color("#4E9A06"))
	t.SuccessText = t.SuccessText.Foreground(lipgloss.Color("#4E9A06"))
	return t
}

// newFlexokiDarkTheme mirrors the palette of flexoki_dark.rs.
func newFlexokiDarkTheme() *Theme {
	t := newDefaultTheme()
	t.Name = "flexoki-dark"
	t.AppBackground = lipgloss.NewStyle().Background(lipgloss.Color("#100F0F"))
	t.TabActive = t.TabActive.Background(lipgloss.Color("#100F0F")).BorderForeground(lipgloss.Color("#4385BE"))
	t.TabInactive = t.TabInactive.Background(lipgloss.Color("#1C1B1A")).BorderForeground(lipgloss.Color("#282726"))
	t.TableHeader = t.TableHeader.Foreground(lipgloss.Color("#4385BE")).Background(lipgloss.Color("#1C1B1A"))
	t.TableCell = t.TableCell.Foreground(lipgloss.Color("#CECDC3"))
	t.TableSelectedRow = t.TableSelectedRow.Background(lipgloss.Color("#66800B")).Foreground(lipgloss.Color("#100F0F"))
	t.StatusBar = t.StatusBar.Background(lipgloss.Color("#4385BE"))
	t.ErrorBanner = t.ErrorBanner.Background(lipgloss.Color("#AF3029"))
	t.PaletteBorder = t.PaletteBorder.BorderForeground(lipgloss.Color("#4385BE"))
	t.ModalBorder = t.ModalBorder.BorderForeground(lipgloss.Color("#4385BE"))
	t.SchemaName = t.SchemaName.Foreground(lipgloss.Color("#66800B"))
	t.SuccessText = t.SuccessText.Foreground(lipgloss.Color("#66800B"))
	return t
}

// ---------------------------------------------------------------------------
// Registry and accessors
// ---------------------------------------------------------------------------

// Themes is the registry of builtin themes, keyed by name; their display
// order is held in Names.
var Themes = map[string]*Theme{
	"default":      newDefaultTheme(),
	"tango-dark":    newTangoDarkTheme(),
	"flexoki-dark": newFlexokiDarkTheme(),
}

// Names is the stable display order used by the theme selector.
var Names = []string{"default", "tango-dark", "flexoki-dark"}

// Current is the theme presently in effect.
var Current = Themes["default"]

// Default returns the builtin default theme.
func Default() *Theme {
	return Themes["default"]
}

// Get looks up a theme by name, returning nil if unknown.
func Get(name string) *Theme {
	return Themes[name]
}

// IndexOf returns the position of name within Names, or 0 if not found.
func IndexOf(name string) int {
	for i, n := range Names {
		if n == name {
			return i
		}
	}
	return 0
}
