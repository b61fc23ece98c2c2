package reducer

import (
	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/apperr"
	"github.com/tabiew-go/tabiew/internal/state"
	"github.com/tabiew-go/tabiew/internal/theme"
)

func (ex *Executor) previewTheme(name string) (action.Action, error) {
	if t := theme.Get(name); t != nil {
		theme.Current = t
	}
	return nil, nil
}

func (ex *Executor) storeConfig() (action.Action, error) {
	if err := ex.Config.Save(ex.ConfigPath); err != nil {
		return nil, apperr.IO(err)
	}
	return nil, nil
}

func (ex *Executor) themeSelectorShow(s *state.AppState) (action.Action, error) {
	idx := theme.IndexOf(ex.Config.Theme)
	if idx < 0 {
		idx = 0
	}
	s.ThemeSelector = &state.ThemeSelectorState{SelectedIndex: idx, RollbackTheme: ex.Config.Theme}
	return nil, nil
}

// themeSelectorMove only updates the selected index. spec.md §9 open
// question (b): arrow keys inside the selector do not live-preview the
// theme in this implementation, matching the source's active (non-commented)
// behavior — preview happens only on ThemeSelectorCommit.
func (ex *Executor) themeSelectorMove(s *state.AppState, delta int) (action.Action, error) {
	if s.ThemeSelector == nil {
		return nil, nil
	}
	n := len(theme.Names)
	s.ThemeSelector.SelectedIndex = ((s.ThemeSelector.SelectedIndex+delta)%n + n) % n
	return nil, nil
}

func (ex *Executor) themeSelectorRollback(s *state.AppState) (action.Action, error) {
	if s.ThemeSelector == nil {
		return nil, nil
	}
	name := s.ThemeSelector.RollbackTheme
	s.ThemeSelector = nil
	return action.PreviewTheme{Theme: name}, nil
}

func (ex *Executor) themeSelectorCommit(s *state.AppState) (action.Action, error) {
	if s.ThemeSelector == nil {
		return nil, nil
	}
	name := theme.Names[s.ThemeSelector.SelectedIndex]
	if t := theme.Get(name); t != nil {
		theme.Current = t
	}
	ex.Config.Theme = name
	s.ThemeSelector = nil
	return action.StoreConfig{}, nil
}

// themeSelectorHandleEvent translates a raw key string into the
// corresponding theme-selector action, per spec.md §4.5's priority rule that
// the theme selector, when open, captures every key ahead of the keymap.
func (ex *Executor) themeSelectorHandleEvent(key string) (action.Action, error) {
	switch key {
	case "up", "k":
		return action.ThemeSelectorSelectPrev{}, nil
	case "down", "j":
		return action.ThemeSelectorSelectNext{}, nil
	case "enter":
		return action.ThemeSelectorCommit{}, nil
	case "esc", "escape":
		return action.ThemeSelectorRollback{}, nil
	default:
		return nil, nil
	}
}
