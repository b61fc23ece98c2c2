package reducer

import (
	"strings"

	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/command"
	"github.com/tabiew-go/tabiew/internal/state"
)

func (ex *Executor) paletteShow(s *state.AppState, prefill string) (action.Action, error) {
	s.Palette = state.NewPaletteState(prefill, s.History)
	return nil, nil
}

func (ex *Executor) paletteCursor(s *state.AppState, delta int) (action.Action, error) {
	if s.Palette == nil {
		return nil, nil
	}
	moveCursor(&s.Palette.Input, delta)
	return nil, nil
}

func (ex *Executor) paletteInsert(s *state.AppState, ch rune) (action.Action, error) {
	if s.Palette == nil {
		return nil, nil
	}
	insertRune(&s.Palette.Input, ch)
	s.Palette.SelectedIndex = -1
	return nil, nil
}

func (ex *Executor) paletteBackspace(s *state.AppState) (action.Action, error) {
	if s.Palette == nil {
		return nil, nil
	}
	backspaceRune(&s.Palette.Input)
	return nil, nil
}

// paletteInsertSelectedOrCommit, per spec.md §4.4: if a history entry is
// highlighted, copy it into the input instead of submitting; otherwise parse
// and run the input text as a command.
func (ex *Executor) paletteInsertSelectedOrCommit(s *state.AppState) (action.Action, error) {
	p := s.Palette
	if p == nil {
		return nil, nil
	}
	if p.SelectedIndex >= 0 && p.SelectedIndex < len(p.History) {
		p.Input.SetValue(p.History[p.SelectedIndex])
		p.Input.CursorEnd()
		p.SelectedIndex = -1
		return nil, nil
	}

	text := p.Input.Value()
	if strings.TrimSpace(text) == "" {
		return action.PaletteDeselectOrDismiss{}, nil
	}
	s.Palette = nil
	s.History = append(s.History, text)
	return command.Parse(text)
}

func (ex *Executor) paletteDeselectOrDismiss(s *state.AppState) (action.Action, error) {
	if s.Palette == nil {
		return nil, nil
	}
	if s.Palette.SelectedIndex >= 0 {
		s.Palette.SelectedIndex = -1
		return nil, nil
	}
	s.Palette = nil
	return nil, nil
}

// paletteSelectMove cycles the highlighted history entry: -1 means "no
// selection"; each call steps to the next/previous entry, wrapping.
func (ex *Executor) paletteSelectMove(s *state.AppState, delta int) (action.Action, error) {
	p := s.Palette
	if p == nil || len(p.History) == 0 {
		return nil, nil
	}
	n := len(p.History)
	if p.SelectedIndex < 0 {
		if delta < 0 {
			p.SelectedIndex = n - 1
		} else {
			p.SelectedIndex = 0
		}
		return nil, nil
	}
	p.SelectedIndex = ((p.SelectedIndex+delta)%n + n) % n
	return nil, nil
}
