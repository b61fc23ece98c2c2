// Package keymap maps a raw key string (as reported by
// github.com/charmbracelet/bubbletea's tea.KeyMsg.String()) to an
// action.Action, per spec.md §4.5 step 2: a context-sensitive keymap whose
// context is resolved in priority order (error present, theme selector open,
// palette open, tab panel open, selected tab's modal kind, schema view,
// tabular view).
// Unmapped keys produce action.NoAction, keeping the reducer total.
//
// KeyMap itself (the key.Binding table below) exists purely for the help
// view; routing is done by Resolve's string switch, a global/focused-key
// dispatch rather than key.Matches.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/state"
)

// KeyMap documents the tabular-view bindings for the help screen. It is not
// consulted by Resolve, which switches on the raw key string instead, but
// gives FullHelp something stable to render.
type KeyMap struct {
	Up, Down, Left, Right     key.Binding
	Top, Bottom               key.Binding
	PageUp, PageDown          key.Binding
	HalfPageUp, HalfPageDown  key.Binding
	ScrollLeft, ScrollRight   key.Binding
	GotoRandom                key.Binding
	Expand                    key.Binding
	Sheet                     key.Binding
	Search, SearchExact       key.Binding
	Palette                   key.Binding
	NewTab, CloseTab          key.Binding
	NextTab, PrevTab          key.Binding
	TabPanel                  key.Binding
	Schema                    key.Binding
	Theme                     key.Binding
	Info                      key.Binding
	Yank                      key.Binding
	Help                      key.Binding
	Quit                      key.Binding
}

// Default returns the tabular-view bindings used to build the help table.
func Default() KeyMap {
	return KeyMap{
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "down")),
		Left:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/←", "scroll left")),
		Right:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l/→", "scroll right")),
		Top:           key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "first row")),
		Bottom:        key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last row")),
		PageUp:        key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "page up")),
		PageDown:      key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "page down")),
		HalfPageUp:    key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "half page up")),
		HalfPageDown:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "half page down")),
		ScrollLeft:    key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "scroll start")),
		ScrollRight:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "scroll end")),
		GotoRandom:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "random row")),
		Expand:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "toggle expansion")),
		Sheet:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open sheet")),
		Search:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "fuzzy search")),
		SearchExact:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "exact search")),
		Palette:       key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command palette")),
		NewTab:        key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "new tab")),
		CloseTab:      key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close tab")),
		NextTab:       key.NewBinding(key.WithKeys("ctrl+]"), key.WithHelp("ctrl+]", "next tab")),
		PrevTab:       key.NewBinding(key.WithKeys("ctrl+["), key.WithHelp("ctrl+[", "prev tab")),
		TabPanel:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "tab panel")),
		Schema:        key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "schema browser")),
		Theme:         key.NewBinding(key.WithKeys(":theme"), key.WithHelp(":theme", "theme selector")),
		Info:          key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "data frame info")),
		Yank:          key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy cell")),
		Help:          key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:          key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp returns the handful of bindings shown in the one-line status bar
// help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Palette, k.Search, k.Help, k.Quit}
}

// FullHelp groups every binding for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Top, k.Bottom},
		{k.PageUp, k.PageDown, k.HalfPageUp, k.HalfPageDown, k.ScrollLeft, k.ScrollRight},
		{k.Expand, k.Sheet, k.Yank, k.GotoRandom, k.Info},
		{k.Search, k.SearchExact, k.Palette},
		{k.NewTab, k.CloseTab, k.NextTab, k.PrevTab, k.TabPanel},
		{k.Schema, k.Theme, k.Help, k.Quit},
	}
}

// Resolve maps one raw key string to an Action, given the current AppState.
// Context is picked in the priority order spec.md §4.5 names; once a context
// is selected every other context's bindings are inert for that keystroke.
func Resolve(keyStr string, s *state.AppState) action.Action {
	if s == nil {
		return action.NoAction{}
	}

	if s.Error != "" {
		return resolveError(keyStr)
	}
	if s.ThemeSelector != nil {
		return resolveThemeSelector(keyStr)
	}
	if s.Palette != nil {
		return resolvePalette(keyStr)
	}
	if s.TabPanelVisible {
		return resolveTabPanel(keyStr)
	}

	tab := s.SelectedTabContent()
	if tab != nil && tab.Modal.Kind != state.ModalNone {
		return resolveModal(keyStr, tab.Modal.Kind)
	}

	if s.Content == state.ContentSchema {
		return resolveSchema(keyStr)
	}
	return resolveTabular(keyStr)
}

func resolveError(keyStr string) action.Action {
	switch keyStr {
	case ":":
		return action.DismissErrorAndShowPalette{}
	default:
		return action.DismissError{}
	}
}

func resolveThemeSelector(keyStr string) action.Action {
	switch keyStr {
	case "up", "k":
		return action.ThemeSelectorSelectPrev{}
	case "down", "j":
		return action.ThemeSelectorSelectNext{}
	case "enter":
		return action.ThemeSelectorCommit{}
	case "esc":
		return action.ThemeSelectorRollback{}
	default:
		return action.NoAction{}
	}
}

func resolvePalette(keyStr string) action.Action {
	switch keyStr {
	case "esc":
		return action.PaletteDeselectOrDismiss{}
	case "enter":
		return action.PaletteInsertSelectedOrCommit{}
	case "left":
		return action.PaletteCursorLeft{}
	case "right":
		return action.PaletteCursorRight{}
	case "up":
		return action.PaletteSelectPrevious{}
	case "down":
		return action.PaletteSelectNext{}
	case "backspace":
		return action.PaletteBackspace{}
	default:
		if r, ok := singleRune(keyStr); ok {
			return action.PaletteInsert{Ch: r}
		}
		return action.NoAction{}
	}
}

func resolveTabPanel(keyStr string) action.Action {
	switch keyStr {
	case "esc", "tab":
		return action.TabHidePanel{}
	case "left", "h":
		return action.TabPanelPrev{}
	case "right", "l":
		return action.TabPanelNext{}
	case "enter":
		return action.TabHidePanel{}
	default:
		return action.NoAction{}
	}
}

func resolveModal(keyStr string, kind state.ModalKind) action.Action {
	switch kind {
	case state.ModalSheet:
		return resolveSheet(keyStr)
	case state.ModalSearchBar:
		return resolveSearch(keyStr)
	case state.ModalDataFrameInfo:
		return resolveDataFrameInfo(keyStr)
	case state.ModalScatterPlot:
		return resolveScroll(keyStr)
	case state.ModalHistogramPlot:
		return resolveHistogram(keyStr)
	case state.ModalInlineQuery:
		return resolveInlineQuery(keyStr)
	case state.ModalHelp:
		return resolveDismissOnly(keyStr)
	default:
		return action.NoAction{}
	}
}

func resolveSheet(keyStr string) action.Action {
	switch keyStr {
	case "esc", "q":
		return action.DismissModal{}
	case "up", "k":
		return action.SheetScrollUp{}
	case "down", "j":
		return action.SheetScrollDown{}
	case "y":
		return action.CopyCellToClipboard{}
	default:
		return action.NoAction{}
	}
}

func resolveSearch(keyStr string) action.Action {
	switch keyStr {
	case "esc":
		return action.SearchRollback{}
	case "enter":
		return action.SearchCommit{}
	case "left":
		return action.SearchCursorLeft{}
	case "right":
		return action.SearchCursorRight{}
	case "backspace":
		return action.SearchBackspace{}
	default:
		if r, ok := singleRune(keyStr); ok {
			return action.SearchInsert{Ch: r}
		}
		return action.NoAction{}
	}
}

func resolveDataFrameInfo(keyStr string) action.Action {
	switch keyStr {
	case "esc", "q", "enter":
		return action.DismissModal{}
	case "up", "k":
		return action.DataFrameInfoScrollUp{}
	case "down", "j":
		return action.DataFrameInfoScrollDown{}
	default:
		return action.NoAction{}
	}
}

func resolveScroll(keyStr string) action.Action {
	switch keyStr {
	case "esc", "q", "enter":
		return action.DismissModal{}
	default:
		return action.NoAction{}
	}
}

func resolveHistogram(keyStr string) action.Action {
	switch keyStr {
	case "esc", "q", "enter":
		return action.DismissModal{}
	case "up", "k":
		return action.HistogramScrollUp{}
	case "down", "j":
		return action.HistogramScrollDown{}
	default:
		return action.NoAction{}
	}
}

func resolveInlineQuery(keyStr string) action.Action {
	switch keyStr {
	case "esc":
		return action.DismissModal{}
	case "enter":
		return action.InlineQueryCommit{}
	case "left":
		return action.InlineQueryCursorLeft{}
	case "right":
		return action.InlineQueryCursorRight{}
	case "backspace":
		return action.InlineQueryBackspace{}
	default:
		if r, ok := singleRune(keyStr); ok {
			return action.InlineQueryInsert{Ch: r}
		}
		return action.NoAction{}
	}
}

func resolveDismissOnly(keyStr string) action.Action {
	switch keyStr {
	case "esc", "q", "enter":
		return action.DismissModal{}
	default:
		return action.NoAction{}
	}
}

func resolveSchema(keyStr string) action.Action {
	switch keyStr {
	case "up", "k":
		return action.SchemaNamesSelectPrev{}
	case "down", "j":
		return action.SchemaNamesSelectNext{}
	case "g":
		return action.SchemaNamesSelectFirst{}
	case "G":
		return action.SchemaNamesSelectLast{}
	case "ctrl+u":
		return action.SchemaFieldsScrollUp{}
	case "ctrl+d":
		return action.SchemaFieldsScrollDown{}
	case "enter":
		return action.SchemaOpenTable{}
	case "d", "x":
		return action.SchemaUnloadTable{}
	case "ctrl+s", "esc":
		return action.SwitchToTabulars{}
	case ":":
		return action.PaletteShow{}
	case "ctrl+c":
		return action.Quit{}
	case "f1":
		return action.Help{}
	default:
		return action.NoAction{}
	}
}

func resolveTabular(keyStr string) action.Action {
	switch keyStr {
	case "up", "k":
		return action.GoUp{N: 1}
	case "down", "j":
		return action.GoDown{N: 1}
	case "left", "h":
		return action.ScrollLeft{}
	case "right", "l":
		return action.ScrollRight{}
	case "g":
		return action.GotoFirst{}
	case "G":
		return action.GotoLast{}
	case "H":
		return action.ScrollStart{}
	case "L":
		return action.ScrollEnd{}
	case "ctrl+f":
		return action.GoDownFullPage{}
	case "ctrl+b":
		return action.GoUpFullPage{}
	case "ctrl+d":
		return action.GoDownHalfPage{}
	case "ctrl+u":
		return action.GoUpHalfPage{}
	case "ctrl+r":
		return action.GotoRandom{}
	case "e":
		return action.ToggleExpansion{}
	case "enter":
		return action.SheetShow{}
	case "y":
		return action.CopyCellToClipboard{}
	case "/":
		return action.SearchFuzzyShow{}
	case "?":
		return action.SearchExactShow{}
	case ":":
		return action.PaletteShow{}
	case "tab":
		return action.TabShowPanel{}
	case "ctrl+t":
		return action.TabNewQuery{}
	case "ctrl+w":
		return action.TabRemoveOrQuit{}
	case "ctrl+]":
		return action.TabNext{}
	case "ctrl+[":
		return action.TabPrev{}
	case "ctrl+s":
		return action.SwitchToSchema{}
	case "i":
		return action.DataFrameInfoShow{}
	case "#":
		return action.GoToLineShow{}
	case "b":
		return action.ToggleBorders{}
	case "f1":
		return action.Help{}
	case "ctrl+c":
		return action.Quit{}
	default:
		return action.NoAction{}
	}
}

// singleRune reports whether keyStr is bubbletea's encoding of a single
// printable rune (as opposed to a named key like "enter" or "ctrl+c"),
// returning that rune for the text-editing contexts above.
func singleRune(keyStr string) (rune, bool) {
	runes := []rune(keyStr)
	if len(runes) != 1 {
		return 0, false
	}
	return runes[0], true
}
