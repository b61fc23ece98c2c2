// Package state implements the AppState tree (spec.md §3): tabs, each with
// its own table view and mutually-exclusive modal, plus the palette, theme
// selector, and schema view top-level overlays.
package state

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/tabiew-go/tabiew/internal/dataframe"
	"github.com/tabiew-go/tabiew/internal/search"
)

// TableTypeKind tags TableType's variant.
type TableTypeKind int

const (
	TableTypeHelp TableTypeKind = iota
	TableTypeName
	TableTypeQuery
)

// TableType is the per-tab kind: Help, a weak Name(catalog_name)
// back-reference, or a standalone Query(sql_text).
type TableType struct {
	Kind        TableTypeKind
	CatalogName string
	SQLText     string
}

// TableView holds the tab's own frame and cursor/scroll position.
type TableView struct {
	Frame            *dataframe.DataFrame
	SelectedRow      int
	HorizontalOffset int
	ExpandedRows     bool
	RenderedRowsHint int
}

// ClampSelectedRow clamps SelectedRow into [0, height) for the view's
// current Frame, per the invariant that a frame replacement never leaves
// SelectedRow out of range.
func (v *TableView) ClampSelectedRow() {
	h := v.Frame.Height()
	if h == 0 {
		v.SelectedRow = 0
		return
	}
	if v.SelectedRow >= h {
		v.SelectedRow = h - 1
	}
	if v.SelectedRow < 0 {
		v.SelectedRow = 0
	}
}

// ModalKind tags Modal's variant.
type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalSheet
	ModalSearchBar
	ModalDataFrameInfo
	ModalScatterPlot
	ModalHistogramPlot
	ModalInlineQuery
	ModalHelp
)

// SearchKind distinguishes fuzzy from exact search.
type SearchKind int

const (
	SearchFuzzy SearchKind = iota
	SearchExact
)

// SearchBarState holds a live in-progress search: the pattern being typed,
// the most recent matcher result, and the frame to restore on rollback.
type SearchBarState struct {
	Kind          SearchKind
	Pattern       textinput.Model
	LastResult    *dataframe.DataFrame
	RollbackFrame *dataframe.DataFrame
	Session       *search.Session
}

// ColumnStat is one row of the DataFrameInfo modal: per-column null count
// and inferred type.
type ColumnStat struct {
	Name      string
	Type      dataframe.ColumnType
	NullCount int
}

// InlineQueryKind distinguishes the inline-query popup's purpose.
type InlineQueryKind string

const (
	InlineQueryFilter   InlineQueryKind = "filter"
	InlineQueryOrder    InlineQueryKind = "order"
	InlineQueryGotoLine InlineQueryKind = "goto_line"
)

// InlineQueryState backs the single-line popups (filter/order condition
// entry, the GotoLine numeric picker).
type InlineQueryState struct {
	Kind  InlineQueryKind
	Input textinput.Model
}

// ScatterPlotState holds the axes and (optional) grouping column for a
// scatter plot modal, plus the partitioned series to render.
type ScatterPlotState struct {
	X, Y    string
	Groups  []string
	Series  [][]int
}

// HistogramPlotState holds the column, bucket count, and computed counts
// for a histogram modal.
type HistogramPlotState struct {
	Col     string
	Buckets int
	Counts  []int
	Scroll  int
}

// Modal is the per-tab mutually-exclusive overlay.
type Modal struct {
	Kind ModalKind

	Sheet viewport.Model

	Search *SearchBarState

	DataFrameInfo viewport.Model
	ColumnStats   []ColumnStat

	Scatter *ScatterPlotState

	Histogram *HistogramPlotState

	InlineQuery *InlineQueryState
}

// TabContent is one independently navigable tab.
type TabContent struct {
	TableView TableView
	Modal     Modal
	Kind      TableType
}

// NewTab builds a TabContent with no modal open, wrapping frame in a
// TableView with a clamped initial selection.
func NewTab(kind TableType, frame *dataframe.DataFrame) *TabContent {
	tab := &TabContent{
		TableView: TableView{Frame: frame},
		Modal:     Modal{Kind: ModalNone},
		Kind:      kind,
	}
	tab.TableView.ClampSelectedRow()
	return tab
}

// ContentView selects between the Tabular table grid and the Schema
// browser as AppState's top-level view.
type ContentView int

const (
	ContentTabular ContentView = iota
	ContentSchema
)

// SchemaViewState tracks the schema browser's selected row and field
// scroll offset.
type SchemaViewState struct {
	SelectedIndex int
	FieldsScroll  int
}

// PaletteState backs the command palette: a text input plus a
// history-browsable selection list.
type PaletteState struct {
	Input          textinput.Model
	History        []string
	SelectedIndex  int // -1 means no history entry highlighted
}

// NewPaletteState builds a PaletteState with input prefilled and no history
// entry selected.
func NewPaletteState(prefill string, history []string) *PaletteState {
	ti := textinput.New()
	ti.SetValue(prefill)
	ti.CursorEnd()
	ti.Focus()
	return &PaletteState{Input: ti, History: history, SelectedIndex: -1}
}

// ThemeSelectorState backs the theme picker overlay: the selected index and
// the theme active before the selector was opened (for rollback).
type ThemeSelectorState struct {
	SelectedIndex  int
	RollbackTheme  string
}

// AppState is the application's root state tree.
type AppState struct {
	Tabs         []*TabContent
	SelectedTab  int
	Content      ContentView
	SchemaView   SchemaViewState
	Palette      *PaletteState
	ThemeSelector *ThemeSelectorState
	History      []string
	Error        string
	Borders      bool
	Running      bool

	// TabPanelVisible/TabPanelSelected back the TabShowPanel/TabHidePanel/
	// TabPanel{Prev,Next,Select} overlay: a separate tab switcher list from
	// the always-visible tab bar, supplementing spec.md §4.3's tab actions.
	TabPanelVisible  bool
	TabPanelSelected int
}

// New builds an initial AppState with a single empty Help tab, matching the
// "one tab with an empty frame" starting condition of the quit scenario.
func New() *AppState {
	return &AppState{
		Tabs:        []*TabContent{NewTab(TableType{Kind: TableTypeHelp}, dataframe.Empty())},
		SelectedTab: 0,
		Content:     ContentTabular,
		Borders:     true,
		Running:     true,
	}
}

// SelectedTabContent returns the currently selected tab, or nil if there are
// none (the app is exiting).
func (s *AppState) SelectedTabContent() *TabContent {
	if len(s.Tabs) == 0 {
		return nil
	}
	s.ClampSelectedTab()
	return s.Tabs[s.SelectedTab]
}

// ClampSelectedTab clamps SelectedTab into [0, len(Tabs)-1], a no-op when
// Tabs is empty (Running should already be false in that case).
func (s *AppState) ClampSelectedTab() {
	if len(s.Tabs) == 0 {
		s.SelectedTab = 0
		return
	}
	if s.SelectedTab >= len(s.Tabs) {
		s.SelectedTab = len(s.Tabs) - 1
	}
	if s.SelectedTab < 0 {
		s.SelectedTab = 0
	}
}

// RemoveTab deletes the tab at index i and selects index i again (clamped),
// so whatever shifted into slot i — the tab that was immediately to its
// right — becomes selected; only removing the last tab falls back to the
// tab to its left.
func (s *AppState) RemoveTab(i int) {
	if i < 0 || i >= len(s.Tabs) {
		return
	}
	s.Tabs = append(s.Tabs[:i], s.Tabs[i+1:]...)
	if len(s.Tabs) == 0 {
		s.SelectedTab = 0
		s.Running = false
		return
	}
	newSelected := i
	if newSelected >= len(s.Tabs) {
		newSelected = len(s.Tabs) - 1
	}
	s.SelectedTab = newSelected
}
