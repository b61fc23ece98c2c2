package reducer

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/apperr"
	"github.com/tabiew-go/tabiew/internal/dataframe"
	"github.com/tabiew-go/tabiew/internal/state"
)

func (ex *Executor) registerDataFrame(s *state.AppState, name string) (action.Action, error) {
	if ex.Catalog.Get(name) != nil {
		return nil, apperr.NameInUse(name)
	}
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, apperr.NotFound("no selected tab")
	}
	ex.Catalog.Register(name, tab.TableView.Frame.Clone(), dataframe.NewUserSource())
	return nil, nil
}

func (ex *Executor) gotoLine(s *state.AppState, n int) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	tab.TableView.SelectedRow = n
	tab.TableView.ClampSelectedRow()
	return nil, nil
}

func (ex *Executor) gotoLineShow(s *state.AppState) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	ti := textinput.New()
	ti.Focus()
	tab.Modal = state.Modal{
		Kind:        state.ModalInlineQuery,
		InlineQuery: &state.InlineQueryState{Kind: state.InlineQueryGotoLine, Input: ti},
	}
	return nil, nil
}

func (ex *Executor) inlineQueryShow(s *state.AppState, kind string) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	var k state.InlineQueryKind
	switch kind {
	case "filter":
		k = state.InlineQueryFilter
	case "order":
		k = state.InlineQueryOrder
	default:
		k = state.InlineQueryGotoLine
	}
	ti := textinput.New()
	ti.Focus()
	tab.Modal = state.Modal{
		Kind:        state.ModalInlineQuery,
		InlineQuery: &state.InlineQueryState{Kind: k, Input: ti},
	}
	return nil, nil
}
