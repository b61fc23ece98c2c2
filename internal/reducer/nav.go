package reducer

import (
	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/apperr"
	"github.com/tabiew-go/tabiew/internal/clipboard"
	"github.com/tabiew-go/tabiew/internal/state"
)

func (ex *Executor) scrollLeft(s *state.AppState) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	if tab.TableView.HorizontalOffset > 0 {
		tab.TableView.HorizontalOffset--
	}
	return nil, nil
}

func (ex *Executor) scrollRight(s *state.AppState) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	if max := tab.TableView.Frame.Width() - 1; tab.TableView.HorizontalOffset < max {
		tab.TableView.HorizontalOffset++
	}
	return nil, nil
}

func (ex *Executor) scrollStart(s *state.AppState) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	tab.TableView.HorizontalOffset = 0
	return nil, nil
}

func (ex *Executor) scrollEnd(s *state.AppState) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	if w := tab.TableView.Frame.Width(); w > 0 {
		tab.TableView.HorizontalOffset = w - 1
	} else {
		tab.TableView.HorizontalOffset = 0
	}
	return nil, nil
}

func (ex *Executor) gotoFirst(s *state.AppState) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	tab.TableView.SelectedRow = 0
	return nil, nil
}

func (ex *Executor) gotoLast(s *state.AppState) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	if h := tab.TableView.Frame.Height(); h > 0 {
		tab.TableView.SelectedRow = h - 1
	} else {
		tab.TableView.SelectedRow = 0
	}
	return nil, nil
}

func (ex *Executor) gotoRandom(s *state.AppState) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	if h := tab.TableView.Frame.Height(); h > 0 {
		tab.TableView.SelectedRow = ex.rng.Intn(h)
	}
	return nil, nil
}

func (ex *Executor) goUp(s *state.AppState, n int) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	tab.TableView.SelectedRow -= n
	tab.TableView.ClampSelectedRow()
	return nil, nil
}

func (ex *Executor) goDown(s *state.AppState, n int) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	tab.TableView.SelectedRow += n
	tab.TableView.ClampSelectedRow()
	return nil, nil
}

func (ex *Executor) goUpHalfPage(s *state.AppState) (action.Action, error) {
	return ex.pagedMove(s, -1, 2)
}

func (ex *Executor) goDownHalfPage(s *state.AppState) (action.Action, error) {
	return ex.pagedMove(s, 1, 2)
}

func (ex *Executor) goUpFullPage(s *state.AppState) (action.Action, error) {
	return ex.pagedMove(s, -1, 1)
}

func (ex *Executor) goDownFullPage(s *state.AppState) (action.Action, error) {
	return ex.pagedMove(s, 1, 1)
}

// pagedMove moves the selected row by RenderedRowsHint/divisor rows in the
// given direction (-1 up, 1 down). A zero or undersized hint (view never
// rendered yet) is a no-op, matching select_up/select_down's behavior when
// given a zero page size rather than forcing a single-row move.
func (ex *Executor) pagedMove(s *state.AppState, direction, divisor int) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	n := tab.TableView.RenderedRowsHint / divisor
	tab.TableView.SelectedRow += direction * n
	tab.TableView.ClampSelectedRow()
	return nil, nil
}

func (ex *Executor) toggleExpansion(s *state.AppState) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	tab.TableView.ExpandedRows = !tab.TableView.ExpandedRows
	return nil, nil
}

func (ex *Executor) dismissModal(s *state.AppState) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	if tab.Modal.Kind == state.ModalSearchBar && tab.Modal.Search != nil && tab.Modal.Search.Session != nil {
		tab.Modal.Search.Session.Cancel()
	}
	if s.ThemeSelector != nil {
		s.ThemeSelector = nil
	}
	tab.Modal = state.Modal{Kind: state.ModalNone}
	return nil, nil
}

func (ex *Executor) copyCellToClipboard(s *state.AppState) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	col := tab.TableView.Frame.ColumnAt(tab.TableView.HorizontalOffset)
	if col == nil {
		return nil, apperr.NotFound("no cell at the current column")
	}
	row := tab.TableView.SelectedRow
	var v any
	if row >= 0 && row < len(col.Data) {
		v = col.Data[row]
	}
	if err := clipboard.WriteStdout([]byte(cellText(v))); err != nil {
		return nil, apperr.IO(err)
	}
	return nil, nil
}
