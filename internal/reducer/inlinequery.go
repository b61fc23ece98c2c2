package reducer

import (
	"strconv"
	"strings"

	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/state"
)

func (ex *Executor) inlineQueryInsert(s *state.AppState, ch rune) (action.Action, error) {
	q := inlineQueryOf(s)
	if q == nil {
		return nil, nil
	}
	if q.Kind == state.InlineQueryGotoLine && !isDigit(ch) {
		return nil, nil
	}
	insertRune(&q.Input, ch)
	return nil, nil
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func (ex *Executor) inlineQueryBackspace(s *state.AppState) (action.Action, error) {
	q := inlineQueryOf(s)
	if q == nil {
		return nil, nil
	}
	backspaceRune(&q.Input)
	return nil, nil
}

func (ex *Executor) inlineQueryCursor(s *state.AppState, delta int) (action.Action, error) {
	q := inlineQueryOf(s)
	if q == nil {
		return nil, nil
	}
	moveCursor(&q.Input, delta)
	return nil, nil
}

// inlineQueryCommit closes the popup and turns its text into the action the
// opening kind maps to: GotoLine for the line picker, TableFilter/TableOrder
// for the filter/order popups. An empty GotoLine input is a no-op, matching
// spec.md §8's "GotoLine(0) with empty frame is a no-op" scenario generalized
// to "empty input commits nothing".
func (ex *Executor) inlineQueryCommit(s *state.AppState) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil || tab.Modal.Kind != state.ModalInlineQuery || tab.Modal.InlineQuery == nil {
		return nil, nil
	}
	q := tab.Modal.InlineQuery
	text := strings.TrimSpace(q.Input.Value())
	tab.Modal = state.Modal{Kind: state.ModalNone}

	switch q.Kind {
	case state.InlineQueryGotoLine:
		if text == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, nil
		}
		return action.GotoLine{N: n - 1}, nil
	case state.InlineQueryFilter:
		if text == "" {
			return nil, nil
		}
		return action.TableFilter{Cond: text}, nil
	case state.InlineQueryOrder:
		if text == "" {
			return nil, nil
		}
		return action.TableOrder{Spec: text}, nil
	default:
		return nil, nil
	}
}

func inlineQueryOf(s *state.AppState) *state.InlineQueryState {
	tab := s.SelectedTabContent()
	if tab == nil || tab.Modal.Kind != state.ModalInlineQuery {
		return nil
	}
	return tab.Modal.InlineQuery
}
