package reducer

import (
	"fmt"

	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/dataframe"
	"github.com/tabiew-go/tabiew/internal/state"
)

// tabNewQuery opens a new tab for query, which is either a registered
// catalog name (opened as a weak Name back-reference) or arbitrary SQL
// (opened as a standalone Query tab), per spec.md §3's TableType variants.
func (ex *Executor) tabNewQuery(s *state.AppState, query string) (action.Action, error) {
	var kind state.TableType
	sqlText := query
	if ex.Catalog.Get(query) != nil {
		kind = state.TableType{Kind: state.TableTypeName, CatalogName: query}
		sqlText = fmt.Sprintf("SELECT * FROM %s", quoteIdent(query))
	} else {
		kind = state.TableType{Kind: state.TableTypeQuery, SQLText: query}
	}

	var current *dataframe.DataFrame
	if tab := s.SelectedTabContent(); tab != nil {
		current = tab.TableView.Frame
	}

	frame, err := ex.Catalog.Execute(sqlText, current)
	if err != nil {
		return nil, err
	}
	s.Tabs = append(s.Tabs, state.NewTab(kind, frame))
	s.SelectedTab = len(s.Tabs) - 1
	return nil, nil
}

func (ex *Executor) tabSelect(s *state.AppState, index int) (action.Action, error) {
	s.SelectedTab = index
	s.ClampSelectedTab()
	return nil, nil
}

func (ex *Executor) tabRemove(s *state.AppState, index int) (action.Action, error) {
	s.RemoveTab(index)
	return nil, nil
}

func (ex *Executor) tabPrev(s *state.AppState) (action.Action, error) {
	if len(s.Tabs) == 0 {
		return nil, nil
	}
	s.SelectedTab = ((s.SelectedTab-1)%len(s.Tabs) + len(s.Tabs)) % len(s.Tabs)
	return nil, nil
}

func (ex *Executor) tabNext(s *state.AppState) (action.Action, error) {
	if len(s.Tabs) == 0 {
		return nil, nil
	}
	s.SelectedTab = (s.SelectedTab + 1) % len(s.Tabs)
	return nil, nil
}

func (ex *Executor) tabRemoveOrQuit(s *state.AppState) (action.Action, error) {
	s.RemoveTab(s.SelectedTab)
	return nil, nil
}

func (ex *Executor) tabShowPanel(s *state.AppState) (action.Action, error) {
	s.TabPanelVisible = true
	s.TabPanelSelected = s.SelectedTab
	return nil, nil
}

func (ex *Executor) tabHidePanel(s *state.AppState) (action.Action, error) {
	s.TabPanelVisible = false
	return nil, nil
}

func (ex *Executor) tabPanelMove(s *state.AppState, delta int) (action.Action, error) {
	if len(s.Tabs) == 0 {
		return nil, nil
	}
	n := len(s.Tabs)
	s.TabPanelSelected = ((s.TabPanelSelected+delta)%n + n) % n
	return nil, nil
}

func (ex *Executor) tabPanelSelect(s *state.AppState, index int) (action.Action, error) {
	if index < 0 || index >= len(s.Tabs) {
		return nil, nil
	}
	s.SelectedTab = index
	s.TabPanelVisible = false
	return nil, nil
}
