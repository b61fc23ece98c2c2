package reducer

import (
	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/apperr"
	"github.com/tabiew-go/tabiew/internal/state"
)

func (ex *Executor) schemaSelectMove(s *state.AppState, delta int) (action.Action, error) {
	n := ex.Catalog.Len()
	if n == 0 {
		s.SchemaView.SelectedIndex = 0
		return nil, nil
	}
	s.SchemaView.SelectedIndex = ((s.SchemaView.SelectedIndex+delta)%n + n) % n
	return nil, nil
}

func (ex *Executor) schemaSelectFirst(s *state.AppState) (action.Action, error) {
	s.SchemaView.SelectedIndex = 0
	return nil, nil
}

func (ex *Executor) schemaSelectLast(s *state.AppState) (action.Action, error) {
	if n := ex.Catalog.Len(); n > 0 {
		s.SchemaView.SelectedIndex = n - 1
	} else {
		s.SchemaView.SelectedIndex = 0
	}
	return nil, nil
}

func (ex *Executor) schemaFieldsScroll(s *state.AppState, delta int) (action.Action, error) {
	s.SchemaView.FieldsScroll += delta
	if s.SchemaView.FieldsScroll < 0 {
		s.SchemaView.FieldsScroll = 0
	}
	return nil, nil
}

// schemaOpenTable jumps to an already-open tab for the selected catalog
// table if one exists, per spec.md §4.4's "jump to tab reuse" decision;
// otherwise it opens a fresh one via TabNewQuery.
func (ex *Executor) schemaOpenTable(s *state.AppState) (action.Action, error) {
	info := ex.Catalog.GetByIndex(s.SchemaView.SelectedIndex)
	if info == nil {
		return nil, apperr.NotFound("no table selected")
	}
	s.Content = state.ContentTabular
	for i, t := range s.Tabs {
		if t.Kind.Kind == state.TableTypeName && t.Kind.CatalogName == info.Name {
			s.SelectedTab = i
			return nil, nil
		}
	}
	return action.TabNewQuery{Query: info.Name}, nil
}

func (ex *Executor) schemaUnloadTable(s *state.AppState) (action.Action, error) {
	info := ex.Catalog.GetByIndex(s.SchemaView.SelectedIndex)
	if info == nil {
		return nil, apperr.NotFound("no table selected")
	}
	ex.Catalog.Unregister(info.Name)
	if n := ex.Catalog.Len(); s.SchemaView.SelectedIndex >= n {
		s.SchemaView.SelectedIndex = n - 1
	}
	if s.SchemaView.SelectedIndex < 0 {
		s.SchemaView.SelectedIndex = 0
	}
	return nil, nil
}
