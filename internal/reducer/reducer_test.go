package reducer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/apperr"
	"github.com/tabiew-go/tabiew/internal/catalog"
	"github.com/tabiew-go/tabiew/internal/config"
	"github.com/tabiew-go/tabiew/internal/dataframe"
	"github.com/tabiew-go/tabiew/internal/state"
)

// fakeEngine is a minimal SQL stand-in: it recognizes the handful of
// statement shapes the reducer actually builds ("SELECT * FROM _[ WHERE a >
// 1]", "SELECT * FROM <name>") rather than parsing real SQL, mirroring how
// internal/catalog's own test suite fakes the engine collaborator.
type fakeEngine struct {
	calls []string
}

func (f *fakeEngine) Execute(sqlText string, tables map[string]*dataframe.DataFrame, current *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	f.calls = append(f.calls, sqlText)
	trimmed := strings.TrimSpace(sqlText)

	if strings.Contains(trimmed, "FROM _") {
		if current == nil {
			return dataframe.Empty(), nil
		}
		if strings.Contains(trimmed, "WHERE a > 1") {
			return filterAGreaterThan1(current), nil
		}
		return current, nil
	}

	for name, fr := range tables {
		if strings.Contains(trimmed, `"`+name+`"`) {
			return fr, nil
		}
	}
	return dataframe.Empty(), nil
}

func filterAGreaterThan1(df *dataframe.DataFrame) *dataframe.DataFrame {
	a := df.Column("a")
	var kept []int
	for i, v := range a.Data {
		n, ok := v.(int64)
		if ok && n > 1 {
			kept = append(kept, i)
		}
	}
	cols := make([]*dataframe.Column, len(df.Columns))
	for ci, c := range df.Columns {
		data := make([]any, len(kept))
		for i, row := range kept {
			data[i] = c.Data[row]
		}
		cols[ci] = &dataframe.Column{Name: c.Name, Type: c.Type, Data: data}
	}
	return dataframe.New(cols)
}

func newExecutor() (*Executor, *fakeEngine) {
	eng := &fakeEngine{}
	cat := catalog.New(eng)
	return New(cat, config.DefaultConfig(), "", nil), eng
}

func threeByTwoFrame() *dataframe.DataFrame {
	return dataframe.New([]*dataframe.Column{
		{Name: "a", Type: dataframe.TypeInt, Data: []any{int64(1), int64(2), int64(3)}},
		{Name: "b", Type: dataframe.TypeInt, Data: []any{int64(10), int64(20), int64(30)}},
	})
}

// Scenario 1: quit from a single empty session via the palette.
func TestScenarioQuitFromSinglEmptySession(t *testing.T) {
	ex, _ := newExecutor()
	s := state.New()

	if _, err := ex.Execute(action.PaletteShow{}, s); err != nil {
		t.Fatal(err)
	}
	for _, ch := range "q" {
		if _, err := ex.Execute(action.PaletteInsert{Ch: ch}, s); err != nil {
			t.Fatal(err)
		}
	}
	follow, err := ex.Execute(action.PaletteInsertSelectedOrCommit{}, s)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if _, ok := follow.(action.Quit); !ok {
		t.Fatalf("follow-up = %#v, want action.Quit", follow)
	}
	if _, err := ex.Execute(follow, s); err != nil {
		t.Fatal(err)
	}
	if s.Running {
		t.Error("Running should be false after Quit")
	}
}

// Scenario 2: a SQL filter command run against the current frame.
func TestScenarioFilterCurrentFrame(t *testing.T) {
	ex, _ := newExecutor()
	s := state.New()
	s.Tabs = []*state.TabContent{state.NewTab(state.TableType{Kind: state.TableTypeQuery, SQLText: "SELECT * FROM t"}, threeByTwoFrame())}
	s.SelectedTab = 0

	follow, err := ex.Execute(action.TableFilter{Cond: "a > 1"}, s)
	if err != nil {
		t.Fatal(err)
	}
	query, ok := follow.(action.TableQuery)
	if !ok || query.SQL != "SELECT * FROM _ WHERE a > 1" {
		t.Fatalf("follow-up = %#v", follow)
	}
	follow2, err := ex.Execute(query, s)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ex.Execute(follow2, s); err != nil {
		t.Fatal(err)
	}

	frame := s.Tabs[0].TableView.Frame
	if frame.Height() > 3 {
		t.Fatalf("height = %d, want <= 3", frame.Height())
	}
	for _, v := range frame.Column("a").Data {
		if v.(int64) <= 1 {
			t.Errorf("row with a=%v should have been filtered out", v)
		}
	}
}

// Scenario 3: registering "t" then importing a CSV whose suggested name is
// also "t" disambiguates to "t_2".
func TestScenarioNameDisambiguationOnImport(t *testing.T) {
	ex, _ := newExecutor()
	s := state.New()
	s.Tabs = []*state.TabContent{state.NewTab(state.TableType{Kind: state.TableTypeQuery, SQLText: "SELECT 1"}, threeByTwoFrame())}
	s.SelectedTab = 0

	ex.Catalog.Register("t", threeByTwoFrame(), dataframe.NewUserSource())

	dir := t.TempDir()
	path := filepath.Join(dir, "t.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ex.Execute(action.ImportCSV{Path: path, Separator: ',', Quote: '"', HasHeader: true}, s); err != nil {
		t.Fatal(err)
	}

	names := make([]string, 0, 2)
	for _, info := range ex.Catalog.Schema() {
		names = append(names, info.Name)
	}
	if len(names) != 2 || names[0] != "t" || names[1] != "t_2" {
		t.Errorf("catalog names = %v, want [t t_2]", names)
	}
}

// Scenario 4: opening a schema row creates a new tab the first time and
// reuses it the second time.
func TestScenarioSchemaJumpToTabReuse(t *testing.T) {
	ex, _ := newExecutor()
	s := state.New()
	ex.Catalog.Register("orders", threeByTwoFrame(), dataframe.NewUserSource())
	s.SchemaView.SelectedIndex = 0

	follow, err := ex.Execute(action.SchemaOpenTable{}, s)
	if err != nil {
		t.Fatal(err)
	}
	tabNew, ok := follow.(action.TabNewQuery)
	if !ok || tabNew.Query != "orders" {
		t.Fatalf("follow-up = %#v, want TabNewQuery{orders}", follow)
	}
	if _, err := ex.Execute(tabNew, s); err != nil {
		t.Fatal(err)
	}
	if len(s.Tabs) != 2 {
		t.Fatalf("len(Tabs) = %d, want 2 (help tab + orders tab)", len(s.Tabs))
	}

	s.SelectedTab = 0
	follow2, err := ex.Execute(action.SchemaOpenTable{}, s)
	if err != nil {
		t.Fatal(err)
	}
	if follow2 != nil {
		t.Fatalf("second SchemaOpenTable follow-up = %#v, want nil (tab reused)", follow2)
	}
	if len(s.Tabs) != 2 {
		t.Fatalf("len(Tabs) = %d after reuse, want 2", len(s.Tabs))
	}
	if s.SelectedTab != 1 {
		t.Errorf("SelectedTab = %d, want 1 (the existing orders tab)", s.SelectedTab)
	}
}

// Scenario 5: search commit keeps the last matcher result; a fresh rollback
// restores the original frame.
func TestScenarioSearchCommitKeepsLastResult(t *testing.T) {
	ex, _ := newExecutor()
	s := state.New()
	original := threeByTwoFrame()
	s.Tabs = []*state.TabContent{state.NewTab(state.TableType{Kind: state.TableTypeQuery, SQLText: "SELECT 1"}, original)}
	s.SelectedTab = 0

	if _, err := ex.Execute(action.SearchFuzzyShow{}, s); err != nil {
		t.Fatal(err)
	}
	tab := s.SelectedTabContent()
	if tab.Modal.Kind != state.ModalSearchBar {
		t.Fatal("expected a search bar modal")
	}
	matched := dataframe.New([]*dataframe.Column{{Name: "a", Type: dataframe.TypeInt, Data: []any{int64(2)}}})
	tab.Modal.Search.LastResult = matched

	if _, err := ex.Execute(action.SearchCommit{}, s); err != nil {
		t.Fatal(err)
	}
	if s.Tabs[0].TableView.Frame != matched {
		t.Error("SearchCommit should adopt the matcher's last result frame")
	}
}

func TestScenarioSearchRollbackRestoresOriginal(t *testing.T) {
	ex, _ := newExecutor()
	s := state.New()
	original := threeByTwoFrame()
	s.Tabs = []*state.TabContent{state.NewTab(state.TableType{Kind: state.TableTypeQuery, SQLText: "SELECT 1"}, original)}
	s.SelectedTab = 0

	if _, err := ex.Execute(action.SearchExactShow{}, s); err != nil {
		t.Fatal(err)
	}
	tab := s.SelectedTabContent()
	tab.TableView.Frame = dataframe.Empty() // simulate a live preview swap mid-search
	if _, err := ex.Execute(action.SearchRollback{}, s); err != nil {
		t.Fatal(err)
	}
	if s.Tabs[0].TableView.Frame != original {
		t.Error("SearchRollback should restore the pre-search frame")
	}
}

// Boundary: TabSelect(i) with i >= len clamps to len-1.
func TestTabSelectClampsOutOfRange(t *testing.T) {
	ex, _ := newExecutor()
	s := state.New()
	s.Tabs = append(s.Tabs, state.NewTab(state.TableType{Kind: state.TableTypeHelp}, dataframe.Empty()))

	if _, err := ex.Execute(action.TabSelect{Index: 99}, s); err != nil {
		t.Fatal(err)
	}
	if s.SelectedTab != len(s.Tabs)-1 {
		t.Errorf("SelectedTab = %d, want %d", s.SelectedTab, len(s.Tabs)-1)
	}
}

// Boundary: an empty tabs list after TabRemoveOrQuit sets Running = false.
func TestTabRemoveOrQuitEmptiesRunsQuit(t *testing.T) {
	ex, _ := newExecutor()
	s := state.New()
	if _, err := ex.Execute(action.TabRemoveOrQuit{}, s); err != nil {
		t.Fatal(err)
	}
	if len(s.Tabs) != 0 || s.Running {
		t.Errorf("Tabs = %v, Running = %v, want empty and false", s.Tabs, s.Running)
	}
}

// Boundary: GotoLine(0) with an empty frame is a no-op.
func TestGotoLineZeroOnEmptyFrameIsNoop(t *testing.T) {
	ex, _ := newExecutor()
	s := state.New()
	if _, err := ex.Execute(action.GotoLine{N: 0}, s); err != nil {
		t.Fatal(err)
	}
	if s.Tabs[0].TableView.SelectedRow != 0 {
		t.Errorf("SelectedRow = %d, want 0", s.Tabs[0].TableView.SelectedRow)
	}
}

// Reserved action: TabRename always errors Unsupported.
func TestTabRenameIsUnsupported(t *testing.T) {
	ex, _ := newExecutor()
	s := state.New()
	_, err := ex.Execute(action.TabRename{Name: "x"}, s)
	if !apperr.IsKind(err, apperr.KindUnsupportedFormat) {
		t.Errorf("err = %v, want KindUnsupportedFormat", err)
	}
}

// NoAction leaves state untouched.
func TestNoActionIsIdempotent(t *testing.T) {
	ex, _ := newExecutor()
	s := state.New()
	before := s.SelectedTab
	if _, err := ex.Execute(action.NoAction{}, s); err != nil {
		t.Fatal(err)
	}
	if s.SelectedTab != before || len(s.Tabs) != 1 || !s.Running {
		t.Error("NoAction must not mutate state")
	}
}

// Theme selector arrow keys move the index without previewing, per the
// "commit-only preview" design decision.
func TestThemeSelectorArrowsDoNotPreview(t *testing.T) {
	ex, _ := newExecutor()
	s := state.New()
	if _, err := ex.Execute(action.ThemeSelectorShow{}, s); err != nil {
		t.Fatal(err)
	}
	before := s.SelectedTab
	follow, err := ex.Execute(action.ThemeSelectorSelectNext{}, s)
	if err != nil {
		t.Fatal(err)
	}
	if follow != nil {
		t.Errorf("arrow move follow-up = %#v, want nil (no live preview)", follow)
	}
	if s.SelectedTab != before {
		t.Error("arrow move should not touch the selected tab")
	}
}

// tenRowFrame gives GoDownHalfPage/GoDownFullPage room to move more than one
// row.
func tenRowFrame() *dataframe.DataFrame {
	data := make([]any, 10)
	for i := range data {
		data[i] = int64(i)
	}
	return dataframe.New([]*dataframe.Column{{Name: "a", Type: dataframe.TypeInt, Data: data}})
}

// A zero RenderedRowsHint (view never rendered yet) leaves the selection
// untouched rather than moving by a single row.
func TestGoDownHalfPageWithZeroHintIsNoop(t *testing.T) {
	ex, _ := newExecutor()
	s := state.New()
	s.Tabs = []*state.TabContent{state.NewTab(state.TableType{Kind: state.TableTypeQuery, SQLText: "SELECT * FROM t"}, tenRowFrame())}

	if _, err := ex.Execute(action.GoDownHalfPage{}, s); err != nil {
		t.Fatal(err)
	}
	if got := s.Tabs[0].TableView.SelectedRow; got != 0 {
		t.Errorf("SelectedRow = %d, want 0 (no-op on zero hint)", got)
	}
}

// GoDownFullPage moves by RenderedRowsHint rows; GoUpFullPage moves back by
// the same amount.
func TestGoDownThenUpFullPageRoundTrips(t *testing.T) {
	ex, _ := newExecutor()
	s := state.New()
	s.Tabs = []*state.TabContent{state.NewTab(state.TableType{Kind: state.TableTypeQuery, SQLText: "SELECT * FROM t"}, tenRowFrame())}
	s.Tabs[0].TableView.RenderedRowsHint = 4

	if _, err := ex.Execute(action.GoDownFullPage{}, s); err != nil {
		t.Fatal(err)
	}
	if got := s.Tabs[0].TableView.SelectedRow; got != 4 {
		t.Fatalf("SelectedRow after GoDownFullPage = %d, want 4", got)
	}

	if _, err := ex.Execute(action.GoUpFullPage{}, s); err != nil {
		t.Fatal(err)
	}
	if got := s.Tabs[0].TableView.SelectedRow; got != 0 {
		t.Errorf("SelectedRow after GoUpFullPage = %d, want 0", got)
	}
}

// GoDownHalfPage moves by RenderedRowsHint/2 rows.
func TestGoDownHalfPageMovesByHalfTheHint(t *testing.T) {
	ex, _ := newExecutor()
	s := state.New()
	s.Tabs = []*state.TabContent{state.NewTab(state.TableType{Kind: state.TableTypeQuery, SQLText: "SELECT * FROM t"}, tenRowFrame())}
	s.Tabs[0].TableView.RenderedRowsHint = 6

	if _, err := ex.Execute(action.GoDownHalfPage{}, s); err != nil {
		t.Fatal(err)
	}
	if got := s.Tabs[0].TableView.SelectedRow; got != 3 {
		t.Errorf("SelectedRow = %d, want 3", got)
	}
}
