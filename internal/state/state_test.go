package state

import (
	"testing"

	"github.com/tabiew-go/tabiew/internal/dataframe"
)

func TestNewHasOneTab(t *testing.T) {
	s := New()
	if len(s.Tabs) != 1 {
		t.Fatalf("New() has %d tabs, want 1", len(s.Tabs))
	}
	if !s.Running {
		t.Error("New() should start Running")
	}
}

func TestClampSelectedRowOnShrink(t *testing.T) {
	v := &TableView{
		Frame:       dataframe.New([]*dataframe.Column{{Name: "a", Data: []any{1, 2, 3}}}),
		SelectedRow: 2,
	}
	v.Frame = dataframe.New([]*dataframe.Column{{Name: "a", Data: []any{1}}})
	v.ClampSelectedRow()
	if v.SelectedRow != 0 {
		t.Errorf("SelectedRow = %d, want 0", v.SelectedRow)
	}
}

func TestClampSelectedRowEmptyFrame(t *testing.T) {
	v := &TableView{Frame: dataframe.Empty(), SelectedRow: 5}
	v.ClampSelectedRow()
	if v.SelectedRow != 0 {
		t.Errorf("SelectedRow = %d, want 0", v.SelectedRow)
	}
}

func TestRemoveTabSelectsLeftNeighbor(t *testing.T) {
	s := New()
	s.Tabs = append(s.Tabs,
		NewTab(TableType{Kind: TableTypeQuery, SQLText: "a"}, dataframe.Empty()),
		NewTab(TableType{Kind: TableTypeQuery, SQLText: "b"}, dataframe.Empty()),
	)
	s.SelectedTab = 2
	s.RemoveTab(2)
	if s.SelectedTab != 1 {
		t.Errorf("SelectedTab = %d, want 1 (left neighbor)", s.SelectedTab)
	}
	if len(s.Tabs) != 2 {
		t.Errorf("len(Tabs) = %d, want 2", len(s.Tabs))
	}
}

func TestRemoveMiddleTabSelectsRightNeighbor(t *testing.T) {
	s := New()
	s.Tabs[0].Kind = TableType{Kind: TableTypeQuery, SQLText: "a"}
	s.Tabs = append(s.Tabs,
		NewTab(TableType{Kind: TableTypeQuery, SQLText: "b"}, dataframe.Empty()),
		NewTab(TableType{Kind: TableTypeQuery, SQLText: "c"}, dataframe.Empty()),
		NewTab(TableType{Kind: TableTypeQuery, SQLText: "d"}, dataframe.Empty()),
	)
	s.SelectedTab = 1
	s.RemoveTab(1)
	if s.SelectedTab != 1 {
		t.Fatalf("SelectedTab = %d, want 1 (right neighbor shifted into slot 1)", s.SelectedTab)
	}
	if got := s.Tabs[s.SelectedTab].Kind.SQLText; got != "c" {
		t.Errorf("selected tab SQLText = %q, want %q", got, "c")
	}
}

func TestRemoveLastTabStopsRunning(t *testing.T) {
	s := New()
	s.RemoveTab(0)
	if s.Running {
		t.Error("Running should be false after removing the last tab")
	}
	if len(s.Tabs) != 0 {
		t.Errorf("len(Tabs) = %d, want 0", len(s.Tabs))
	}
}

func TestClampSelectedTabOutOfRange(t *testing.T) {
	s := New()
	s.Tabs = append(s.Tabs, NewTab(TableType{Kind: TableTypeHelp}, dataframe.Empty()))
	s.SelectedTab = 99
	s.ClampSelectedTab()
	if s.SelectedTab != 1 {
		t.Errorf("SelectedTab = %d, want 1 (clamped to len-1)", s.SelectedTab)
	}
}
