package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/catalog"
	"github.com/tabiew-go/tabiew/internal/config"
	"github.com/tabiew-go/tabiew/internal/dataframe"
	"github.com/tabiew-go/tabiew/internal/state"
)

type fakeEngine struct{}

func (fakeEngine) Execute(sql string, tables map[string]*dataframe.DataFrame, current *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	return dataframe.Empty(), nil
}

func newTestModel() Model {
	cat := catalog.New(fakeEngine{})
	m := New(cat, config.DefaultConfig(), "", nil)
	m.width, m.height = 80, 24
	return m
}

func threeByTwoFrame() *dataframe.DataFrame {
	return dataframe.New([]*dataframe.Column{
		{Name: "a", Type: dataframe.TypeInt, Data: []any{int64(1), int64(2), int64(3)}},
		{Name: "b", Type: dataframe.TypeInt, Data: []any{int64(10), int64(20), int64(30)}},
	})
}

func TestUpdate_WindowSizeSetsDimensionsAndRenderedRowsHint(t *testing.T) {
	m := newTestModel()
	m.state.Tabs = append(m.state.Tabs, state.NewTab(state.TableType{Kind: state.TableTypeName, CatalogName: "t"}, threeByTwoFrame()))

	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	got := updated.(Model)

	if got.width != 100 || got.height != 30 {
		t.Fatalf("expected dimensions 100x30, got %dx%d", got.width, got.height)
	}
	if cmd != nil {
		t.Fatalf("expected nil cmd for a resize, got non-nil")
	}
	for _, tab := range got.state.Tabs {
		if tab.TableView.RenderedRowsHint <= 0 {
			t.Fatalf("expected a positive RenderedRowsHint, got %d", tab.TableView.RenderedRowsHint)
		}
	}
}

func TestUpdate_KeystrokeDownMovesSelection(t *testing.T) {
	m := newTestModel()
	m.state.Tabs = []*state.TabContent{state.NewTab(state.TableType{Kind: state.TableTypeName, CatalogName: "t"}, threeByTwoFrame())}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	got := updated.(Model)

	if got.state.Tabs[0].TableView.SelectedRow != 1 {
		t.Fatalf("expected selected row 1 after 'j', got %d", got.state.Tabs[0].TableView.SelectedRow)
	}
}

func TestUpdate_CtrlCStopsRunningAndQuits(t *testing.T) {
	m := newTestModel()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	got := updated.(Model)

	if got.state.Running {
		t.Fatalf("expected Running to be false after ctrl+c")
	}
	if !got.quitting {
		t.Fatalf("expected quitting to be set")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit cmd, got nil")
	}
}

func TestRunToFixpoint_ErrorIsStashedNotPropagated(t *testing.T) {
	m := newTestModel()
	m.state.Tabs = []*state.TabContent{state.NewTab(state.TableType{Kind: state.TableTypeQuery, SQLText: "select 1"}, dataframe.Empty())}

	m.runToFixpoint(action.SchemaOpenTable{})

	if m.state.Error == "" {
		t.Fatalf("expected an error message to be stashed in state, got empty string")
	}
}

func TestView_BeforeFirstResizeShowsLoading(t *testing.T) {
	cat := catalog.New(fakeEngine{})
	m := New(cat, config.DefaultConfig(), "", nil)

	view := m.View()
	if !strings.Contains(view, "Loading") {
		t.Fatalf("expected a loading placeholder before the first WindowSizeMsg, got %q", view)
	}
}

func TestView_RendersWithoutPanicking(t *testing.T) {
	m := newTestModel()
	m.state.Tabs = []*state.TabContent{state.NewTab(state.TableType{Kind: state.TableTypeName, CatalogName: "t"}, threeByTwoFrame())}

	view := m.View()
	if view == "" {
		t.Fatalf("expected a non-empty rendered view")
	}
}

func TestView_ErrorStateRendersStatusBanner(t *testing.T) {
	m := newTestModel()
	m.state.Error = "boom"

	view := m.render()
	if !strings.Contains(view, "boom") {
		t.Fatalf("expected the error banner to include the error text, got %q", view)
	}
}

func TestTickCmd_ProducesATickMsg(t *testing.T) {
	cmd := tickCmd()
	msg := cmd()
	if _, ok := msg.(tickMsg); !ok {
		t.Fatalf("expected tickCmd to produce a tickMsg, got %T", msg)
	}
	if time.Time(msg.(tickMsg)).IsZero() {
		t.Fatalf("expected a non-zero timestamp")
	}
}
