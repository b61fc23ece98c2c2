// Package action defines the closed Action algebra (spec.md §4.3): the
// typed intents the keymap and the command grammar produce, and the only
// thing the reducer accepts, the same shape bubbletea uses for tea.Msg:
// `type Action any` plus one concrete struct per variant, exhaustively
// switched over in the reducer.
package action

// Action is the closed tagged union of every intent the UI can produce.
// Concrete variants are the struct types declared below; the reducer type
// switches over them exhaustively.
type Action any

// ---------------------------------------------------------------------------
// Table navigation
// ---------------------------------------------------------------------------

type ScrollLeft struct{}
type ScrollRight struct{}
type ScrollLeftColumn struct{}
type ScrollRightColumn struct{}
type ScrollStart struct{}
type ScrollEnd struct{}
type GotoFirst struct{}
type GotoLast struct{}
type GotoRandom struct{}
type GoUp struct{ N int }
type GoDown struct{ N int }
type GoUpHalfPage struct{}
type GoDownHalfPage struct{}
type GoUpFullPage struct{}
type GoDownFullPage struct{}
type ToggleExpansion struct{}
type DismissModal struct{}

// ---------------------------------------------------------------------------
// Table mutation via SQL
// ---------------------------------------------------------------------------

type TableSelect struct{ Cols string }
type TableOrder struct{ Spec string }
type TableFilter struct{ Cond string }
type TableQuery struct{ SQL string }
type TableSetDataFrame struct {
	// Frame is `any` here (not *dataframe.DataFrame) purely to keep
	// internal/action free of a dependency on internal/dataframe; the
	// reducer performs the type assertion.
	Frame any
}
type TableReset struct{}
type TableInferColumns struct {
	// Kind is one of "int", "float", "boolean", "date", "datetime", "all".
	Kind string
}
type TableGotoRandom struct{}

// ---------------------------------------------------------------------------
// Sheet modal
// ---------------------------------------------------------------------------

type SheetShow struct{}
type SheetScrollUp struct{}
type SheetScrollDown struct{}

// CopyCellToClipboard copies the selected cell's rendered text to the
// system clipboard via an OSC-52 escape (spec.md §6 Clipboard collaborator).
type CopyCellToClipboard struct{}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

type SearchFuzzyShow struct{}
type SearchExactShow struct{}
type SearchCursorLeft struct{}
type SearchCursorRight struct{}
type SearchInsert struct{ Ch rune }
type SearchBackspace struct{}
type SearchCommit struct{}
type SearchRollback struct{}

// ---------------------------------------------------------------------------
// Tabs
// ---------------------------------------------------------------------------

type TabNewQuery struct{ Query string }
type TabSelect struct{ Index int }
type TabRemove struct{ Index int }
type TabPrev struct{}
type TabNext struct{}
type TabRemoveOrQuit struct{}
type TabShowPanel struct{}
type TabHidePanel struct{}
type TabPanelPrev struct{}
type TabPanelNext struct{}
type TabPanelSelect struct{ Index int }

// TabRename is reserved but intentionally unimplemented (spec.md §9 open
// question (a)): the reducer always answers it with apperr.Unsupported.
type TabRename struct{ Name string }

// ---------------------------------------------------------------------------
// Palette
// ---------------------------------------------------------------------------

type PaletteShow struct{ Prefill string }
type PaletteCursorLeft struct{}
type PaletteCursorRight struct{}
type PaletteInsert struct{ Ch rune }
type PaletteBackspace struct{}
type PaletteInsertSelectedOrCommit struct{}
type PaletteDeselectOrDismiss struct{}
type PaletteSelectPrevious struct{}
type PaletteSelectNext struct{}

// ---------------------------------------------------------------------------
// Import / Export
// ---------------------------------------------------------------------------

type ImportCSV struct {
	Path      string
	Separator rune
	Quote     rune
	HasHeader bool
}
type ImportParquet struct{ Path string }
type ImportJSON struct{ Path string }
type ImportJSONLines struct{ Path string }
type ImportArrow struct{ Path string }
type ImportSQLite struct{ Path string }
type ImportFWF struct {
	Path            string
	SeparatorLength int
	Widths          []int
	HasHeader       bool
	FlexibleWidth   bool
}

type ExportCSV struct {
	Path      string
	Separator rune
}
type ExportParquet struct{ Path string }
type ExportJSON struct{ Path string }
type ExportJSONLines struct{ Path string }
type ExportArrow struct{ Path string }

// ---------------------------------------------------------------------------
// Schema
// ---------------------------------------------------------------------------

type SchemaNamesSelectPrev struct{}
type SchemaNamesSelectNext struct{}
type SchemaNamesSelectFirst struct{}
type SchemaNamesSelectLast struct{}
type SchemaFieldsScrollUp struct{}
type SchemaFieldsScrollDown struct{}
type SchemaOpenTable struct{}
type SchemaUnloadTable struct{}

// ---------------------------------------------------------------------------
// Plots / info
// ---------------------------------------------------------------------------

type DataFrameInfoShow struct{}
type DataFrameInfoScrollUp struct{}
type DataFrameInfoScrollDown struct{}
type ScatterPlot struct {
	X, Y   string
	Groups []string
}
type HistogramPlot struct {
	Col     string
	Buckets int
}
type HistogramScrollUp struct{}
type HistogramScrollDown struct{}

// ---------------------------------------------------------------------------
// Theme / config
// ---------------------------------------------------------------------------

type PreviewTheme struct{ Theme string }
type StoreConfig struct{}
type ThemeSelectorShow struct{}
type ThemeSelectorSelectPrev struct{}
type ThemeSelectorSelectNext struct{}
type ThemeSelectorRollback struct{}
type ThemeSelectorCommit struct{}
type ThemeSelectorHandleEvent struct{ Key string }

// ---------------------------------------------------------------------------
// Misc
// ---------------------------------------------------------------------------

type NoAction struct{}
type ToggleBorders struct{}
type DismissError struct{}
type DismissErrorAndShowPalette struct{}
type SwitchToSchema struct{}
type SwitchToTabulars struct{}
type RegisterDataFrame struct{ Name string }
type GotoLine struct{ N int }
type GoToLineShow struct{}
type InlineQueryShow struct{ Kind string }

// InlineQueryInsert/Backspace/CursorLeft/CursorRight/Commit drive the
// GotoLine/Filter/Order single-line popups (spec.md §3 InlineQuery modal),
// sharing one editing surface the way SearchInsert/PaletteInsert do for
// their own modals rather than introducing a third copy of cursor math.
type InlineQueryInsert struct{ Ch rune }
type InlineQueryBackspace struct{}
type InlineQueryCursorLeft struct{}
type InlineQueryCursorRight struct{}
type InlineQueryCommit struct{}

type Help struct{}
type Quit struct{}
