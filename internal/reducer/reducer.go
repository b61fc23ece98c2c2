// Package reducer implements the Executor (spec.md §4.4): the pure-ish
// function from (Action, *AppState) to (Option<Action>, error) that is the
// only thing allowed to mutate AppState, mutate the catalog, run SQL, touch
// the filesystem, or write config. One big, flat, exhaustive switch plus
// small per-group helper methods, mapping Action values to an Executor
// method instead of tea.Msg values to inline blocks, since the Action
// algebra (spec.md §4.3) is closed and already separates cleanly from
// bubbletea's tea.Msg.
package reducer

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/apperr"
	"github.com/tabiew-go/tabiew/internal/catalog"
	"github.com/tabiew-go/tabiew/internal/config"
	"github.com/tabiew-go/tabiew/internal/dataframe"
	"github.com/tabiew-go/tabiew/internal/search"
	"github.com/tabiew-go/tabiew/internal/state"
	"github.com/tabiew-go/tabiew/internal/tracelog"
)

// Executor holds the process-wide collaborators the reducer delegates to:
// the catalog (SQL + schema), the persisted config, and the trace logger.
// Exactly the "global state... process-wide but accessed only from the
// event-loop thread" of spec.md §9, threaded explicitly instead of hidden in
// package globals (other than internal/theme.Current, which is itself a
// single process-wide var by design — see internal/theme).
type Executor struct {
	Catalog    *catalog.Catalog
	Config     *config.Config
	ConfigPath string
	Trace      *tracelog.Logger

	rng *rand.Rand
}

// New builds an Executor. trace may be nil to disable tracing.
func New(cat *catalog.Catalog, cfg *config.Config, configPath string, trace *tracelog.Logger) *Executor {
	return &Executor{
		Catalog:    cat,
		Config:     cfg,
		ConfigPath: configPath,
		Trace:      trace,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Execute runs one Action against s, returning at most one follow-up Action
// per spec.md §4.4. It never panics on out-of-range tab indices; every
// helper below clamps instead. Errors are returned rather than stored —
// storing an error string into s.Error is the event loop's job (spec.md
// §4.5 step 3), since the fixpoint loop itself lives there.
func (ex *Executor) Execute(act action.Action, s *state.AppState) (follow action.Action, err error) {
	if ex.Trace != nil {
		start := time.Now()
		defer func() { ex.Trace.Trace(fmt.Sprintf("%T", act), start, err) }()
	}

	switch a := act.(type) {

	// -- Table navigation -------------------------------------------------
	case action.NoAction:
		return nil, nil
	case action.ScrollLeft, action.ScrollLeftColumn:
		return ex.scrollLeft(s)
	case action.ScrollRight, action.ScrollRightColumn:
		return ex.scrollRight(s)
	case action.ScrollStart:
		return ex.scrollStart(s)
	case action.ScrollEnd:
		return ex.scrollEnd(s)
	case action.GotoFirst:
		return ex.gotoFirst(s)
	case action.GotoLast:
		return ex.gotoLast(s)
	case action.GotoRandom:
		return ex.gotoRandom(s)
	case action.GoUp:
		return ex.goUp(s, a.N)
	case action.GoDown:
		return ex.goDown(s, a.N)
	case action.GoUpHalfPage:
		return ex.goUpHalfPage(s)
	case action.GoDownHalfPage:
		return ex.goDownHalfPage(s)
	case action.GoUpFullPage:
		return ex.goUpFullPage(s)
	case action.GoDownFullPage:
		return ex.goDownFullPage(s)
	case action.ToggleExpansion:
		return ex.toggleExpansion(s)
	case action.DismissModal:
		return ex.dismissModal(s)
	case action.CopyCellToClipboard:
		return ex.copyCellToClipboard(s)

	// -- Table mutation via SQL --------------------------------------------
	case action.TableSelect:
		return action.TableQuery{SQL: fmt.Sprintf("SELECT %s FROM _", a.Cols)}, nil
	case action.TableOrder:
		return action.TableQuery{SQL: fmt.Sprintf("SELECT * FROM _ ORDER BY %s", a.Spec)}, nil
	case action.TableFilter:
		return action.TableQuery{SQL: fmt.Sprintf("SELECT * FROM _ WHERE %s", a.Cond)}, nil
	case action.TableQuery:
		return ex.tableQuery(s, a.SQL)
	case action.TableSetDataFrame:
		return ex.tableSetDataFrame(s, a.Frame)
	case action.TableReset:
		return ex.tableReset(s)
	case action.TableInferColumns:
		return ex.tableInferColumns(s, a.Kind)
	case action.TableGotoRandom:
		return ex.gotoRandom(s)

	// -- Sheet modal --------------------------------------------------------
	case action.SheetShow:
		return ex.sheetShow(s)
	case action.SheetScrollUp:
		return ex.sheetScroll(s, -1)
	case action.SheetScrollDown:
		return ex.sheetScroll(s, 1)

	// -- Search ---------------------------------------------------------
	case action.SearchFuzzyShow:
		return ex.searchShow(s, search.Fuzzy)
	case action.SearchExactShow:
		return ex.searchShow(s, search.Exact)
	case action.SearchCursorLeft:
		return ex.searchCursor(s, -1)
	case action.SearchCursorRight:
		return ex.searchCursor(s, 1)
	case action.SearchInsert:
		return ex.searchInsert(s, a.Ch)
	case action.SearchBackspace:
		return ex.searchBackspace(s)
	case action.SearchCommit:
		return ex.searchCommit(s)
	case action.SearchRollback:
		return ex.searchRollback(s)

	// -- Tabs ---------------------------------------------------------------
	case action.TabNewQuery:
		return ex.tabNewQuery(s, a.Query)
	case action.TabSelect:
		return ex.tabSelect(s, a.Index)
	case action.TabRemove:
		return ex.tabRemove(s, a.Index)
	case action.TabPrev:
		return ex.tabPrev(s)
	case action.TabNext:
		return ex.tabNext(s)
	case action.TabRemoveOrQuit:
		return ex.tabRemoveOrQuit(s)
	case action.TabShowPanel:
		return ex.tabShowPanel(s)
	case action.TabHidePanel:
		return ex.tabHidePanel(s)
	case action.TabPanelPrev:
		return ex.tabPanelMove(s, -1)
	case action.TabPanelNext:
		return ex.tabPanelMove(s, 1)
	case action.TabPanelSelect:
		return ex.tabPanelSelect(s, a.Index)
	case action.TabRename:
		return nil, apperr.Unsupported("tab rename")

	// -- Palette --------------------------------------------------------
	case action.PaletteShow:
		return ex.paletteShow(s, a.Prefill)
	case action.PaletteCursorLeft:
		return ex.paletteCursor(s, -1)
	case action.PaletteCursorRight:
		return ex.paletteCursor(s, 1)
	case action.PaletteInsert:
		return ex.paletteInsert(s, a.Ch)
	case action.PaletteBackspace:
		return ex.paletteBackspace(s)
	case action.PaletteInsertSelectedOrCommit:
		return ex.paletteInsertSelectedOrCommit(s)
	case action.PaletteDeselectOrDismiss:
		return ex.paletteDeselectOrDismiss(s)
	case action.PaletteSelectPrevious:
		return ex.paletteSelectMove(s, -1)
	case action.PaletteSelectNext:
		return ex.paletteSelectMove(s, 1)

	// -- Import / Export ------------------------------------------------
	case action.ImportCSV:
		return ex.importCSV(s, a)
	case action.ImportFWF:
		return ex.importFWF(s, a)
	case action.ImportParquet:
		return ex.importParquet(s, a)
	case action.ImportJSON:
		return ex.importJSON(s, a)
	case action.ImportJSONLines:
		return ex.importJSONLines(s, a)
	case action.ImportArrow:
		return ex.importArrow(s, a)
	case action.ImportSQLite:
		return ex.importSQLite(s, a)
	case action.ExportCSV:
		return ex.exportCSV(s, a)
	case action.ExportParquet:
		return ex.exportParquet(s, a)
	case action.ExportJSON:
		return ex.exportJSON(s, a)
	case action.ExportJSONLines:
		return ex.exportJSONLines(s, a)
	case action.ExportArrow:
		return ex.exportArrow(s, a)

	// -- Schema -----------------------------------------------------------
	case action.SchemaNamesSelectPrev:
		return ex.schemaSelectMove(s, -1)
	case action.SchemaNamesSelectNext:
		return ex.schemaSelectMove(s, 1)
	case action.SchemaNamesSelectFirst:
		return ex.schemaSelectFirst(s)
	case action.SchemaNamesSelectLast:
		return ex.schemaSelectLast(s)
	case action.SchemaFieldsScrollUp:
		return ex.schemaFieldsScroll(s, -1)
	case action.SchemaFieldsScrollDown:
		return ex.schemaFieldsScroll(s, 1)
	case action.SchemaOpenTable:
		return ex.schemaOpenTable(s)
	case action.SchemaUnloadTable:
		return ex.schemaUnloadTable(s)

	// -- Plots / info -----------------------------------------------------
	case action.DataFrameInfoShow:
		return ex.dataFrameInfoShow(s)
	case action.DataFrameInfoScrollUp:
		return ex.dataFrameInfoScroll(s, -1)
	case action.DataFrameInfoScrollDown:
		return ex.dataFrameInfoScroll(s, 1)
	case action.ScatterPlot:
		return ex.scatterPlot(s, a.X, a.Y, a.Groups)
	case action.HistogramPlot:
		return ex.histogramPlot(s, a.Col, a.Buckets)
	case action.HistogramScrollUp:
		return ex.histogramScroll(s, -1)
	case action.HistogramScrollDown:
		return ex.histogramScroll(s, 1)

	// -- Theme / config ---------------------------------------------------
	case action.PreviewTheme:
		return ex.previewTheme(a.Theme)
	case action.StoreConfig:
		return ex.storeConfig()
	case action.ThemeSelectorShow:
		return ex.themeSelectorShow(s)
	case action.ThemeSelectorSelectPrev:
		return ex.themeSelectorMove(s, -1)
	case action.ThemeSelectorSelectNext:
		return ex.themeSelectorMove(s, 1)
	case action.ThemeSelectorRollback:
		return ex.themeSelectorRollback(s)
	case action.ThemeSelectorCommit:
		return ex.themeSelectorCommit(s)
	case action.ThemeSelectorHandleEvent:
		return ex.themeSelectorHandleEvent(a.Key)

	// -- Misc --------------------------------------------------------------
	case action.ToggleBorders:
		s.Borders = !s.Borders
		return nil, nil
	case action.DismissError:
		s.Error = ""
		return nil, nil
	case action.DismissErrorAndShowPalette:
		s.Error = ""
		return action.PaletteShow{}, nil
	case action.SwitchToSchema:
		s.Content = state.ContentSchema
		return nil, nil
	case action.SwitchToTabulars:
		s.Content = state.ContentTabular
		return nil, nil
	case action.RegisterDataFrame:
		return ex.registerDataFrame(s, a.Name)
	case action.GotoLine:
		return ex.gotoLine(s, a.N)
	case action.GoToLineShow:
		return ex.gotoLineShow(s)
	case action.InlineQueryShow:
		return ex.inlineQueryShow(s, a.Kind)
	case action.InlineQueryInsert:
		return ex.inlineQueryInsert(s, a.Ch)
	case action.InlineQueryBackspace:
		return ex.inlineQueryBackspace(s)
	case action.InlineQueryCursorLeft:
		return ex.inlineQueryCursor(s, -1)
	case action.InlineQueryCursorRight:
		return ex.inlineQueryCursor(s, 1)
	case action.InlineQueryCommit:
		return ex.inlineQueryCommit(s)
	case action.Help:
		return ex.help(s)
	case action.Quit:
		s.Running = false
		return nil, nil

	default:
		return nil, nil
	}
}

// Tick adopts the selected tab's search worker's latest result as the
// displayed frame, per spec.md §4.5 step 1 ("on timeout, call tick() on the
// selected tab, which inside a SearchBar modal adopts any newly available
// search result as the displayed frame"). Called by the event loop on every
// poll timeout, not dispatched as an Action since it carries no user intent.
func (ex *Executor) Tick(s *state.AppState) {
	tab := s.SelectedTabContent()
	if tab == nil || tab.Modal.Kind != state.ModalSearchBar || tab.Modal.Search == nil {
		return
	}
	sb := tab.Modal.Search
	if sb.Session == nil {
		return
	}
	if latest := sb.Session.Latest(); latest != nil {
		sb.LastResult = latest
		tab.TableView.Frame = latest
		tab.TableView.ClampSelectedRow()
	}
}

func quoteIdent(name string) string {
	escaped := ""
	for _, r := range name {
		if r == '"' {
			escaped += `""`
			continue
		}
		escaped += string(r)
	}
	return `"` + escaped + `"`
}

// dataframeOf performs the type assertion action.TableSetDataFrame.Frame
// requires, since internal/action keeps that field as `any` to stay free of
// a dependency on internal/dataframe.
func dataframeOf(v any) (*dataframe.DataFrame, bool) {
	df, ok := v.(*dataframe.DataFrame)
	return df, ok
}
