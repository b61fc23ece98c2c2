package reducer

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/search"
	"github.com/tabiew-go/tabiew/internal/state"
)

func (ex *Executor) searchShow(s *state.AppState, kind search.Kind) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	ti := textinput.New()
	ti.Focus()
	frame := tab.TableView.Frame
	tab.Modal = state.Modal{
		Kind: state.ModalSearchBar,
		Search: &state.SearchBarState{
			Kind:          stateSearchKind(kind),
			Pattern:       ti,
			LastResult:    frame,
			RollbackFrame: frame,
			Session:       search.NewSession(frame, kind),
		},
	}
	return nil, nil
}

func stateSearchKind(k search.Kind) state.SearchKind {
	if k == search.Exact {
		return state.SearchExact
	}
	return state.SearchFuzzy
}

func libSearchKind(k state.SearchKind) search.Kind {
	if k == state.SearchExact {
		return search.Exact
	}
	return search.Fuzzy
}

func (ex *Executor) searchCursor(s *state.AppState, delta int) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil || tab.Modal.Kind != state.ModalSearchBar || tab.Modal.Search == nil {
		return nil, nil
	}
	moveCursor(&tab.Modal.Search.Pattern, delta)
	return nil, nil
}

func (ex *Executor) searchInsert(s *state.AppState, ch rune) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil || tab.Modal.Kind != state.ModalSearchBar || tab.Modal.Search == nil {
		return nil, nil
	}
	sb := tab.Modal.Search
	insertRune(&sb.Pattern, ch)
	if sb.Session != nil {
		sb.Session.SetPattern(sb.Pattern.Value())
	}
	return nil, nil
}

func (ex *Executor) searchBackspace(s *state.AppState) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil || tab.Modal.Kind != state.ModalSearchBar || tab.Modal.Search == nil {
		return nil, nil
	}
	sb := tab.Modal.Search
	backspaceRune(&sb.Pattern)
	if sb.Session != nil {
		sb.Session.SetPattern(sb.Pattern.Value())
	}
	return nil, nil
}

func (ex *Executor) searchCommit(s *state.AppState) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil || tab.Modal.Kind != state.ModalSearchBar || tab.Modal.Search == nil {
		return nil, nil
	}
	sb := tab.Modal.Search
	if sb.LastResult != nil {
		tab.TableView.Frame = sb.LastResult
	}
	if sb.Session != nil {
		sb.Session.Cancel()
	}
	tab.TableView.ClampSelectedRow()
	tab.Modal = state.Modal{Kind: state.ModalNone}
	return nil, nil
}

func (ex *Executor) searchRollback(s *state.AppState) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil || tab.Modal.Kind != state.ModalSearchBar || tab.Modal.Search == nil {
		return nil, nil
	}
	sb := tab.Modal.Search
	tab.TableView.Frame = sb.RollbackFrame
	if sb.Session != nil {
		sb.Session.Cancel()
	}
	tab.TableView.ClampSelectedRow()
	tab.Modal = state.Modal{Kind: state.ModalNone}
	return nil, nil
}
