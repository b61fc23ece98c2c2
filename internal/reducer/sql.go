package reducer

import (
	"fmt"

	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/apperr"
	"github.com/tabiew-go/tabiew/internal/dataframe"
	"github.com/tabiew-go/tabiew/internal/state"
)

func (ex *Executor) tableQuery(s *state.AppState, sqlText string) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, apperr.NotFound("no selected tab")
	}
	frame, err := ex.Catalog.Execute(sqlText, tab.TableView.Frame)
	if err != nil {
		return nil, err
	}
	return action.TableSetDataFrame{Frame: frame}, nil
}

func (ex *Executor) tableSetDataFrame(s *state.AppState, raw any) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	frame, ok := dataframeOf(raw)
	if !ok {
		return nil, apperr.Parse("internal: TableSetDataFrame carried a non-DataFrame value")
	}
	tab.TableView.Frame = frame
	tab.TableView.HorizontalOffset = 0
	tab.TableView.ClampSelectedRow()
	return nil, nil
}

// tableReset re-runs the tab's original query: SELECT * FROM name for a
// Name tab, the stored SQL text (with no current frame bound) for a Query
// tab, and is a no-op for the Help tab.
func (ex *Executor) tableReset(s *state.AppState) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	switch tab.Kind.Kind {
	case state.TableTypeName:
		frame, err := ex.Catalog.Execute(fmt.Sprintf("SELECT * FROM %s", quoteIdent(tab.Kind.CatalogName)), nil)
		if err != nil {
			return nil, err
		}
		return action.TableSetDataFrame{Frame: frame}, nil
	case state.TableTypeQuery:
		frame, err := ex.Catalog.Execute(tab.Kind.SQLText, nil)
		if err != nil {
			return nil, err
		}
		return action.TableSetDataFrame{Frame: frame}, nil
	default:
		return nil, nil
	}
}

func (ex *Executor) tableInferColumns(s *state.AppState, kind string) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	t, all := inferKindOf(kind)
	tab.TableView.Frame = dataframe.InferColumns(tab.TableView.Frame, t, all)
	tab.TableView.ClampSelectedRow()
	return nil, nil
}

// inferKindOf maps the command grammar's kind token (spec.md §4.2.1 infer)
// onto a dataframe.ColumnType plus an "all" flag, since "all" has no type
// of its own and instead means "try every bucket per column".
func inferKindOf(kind string) (dataframe.ColumnType, bool) {
	switch kind {
	case "int":
		return dataframe.TypeInt, false
	case "float":
		return dataframe.TypeFloat, false
	case "boolean":
		return dataframe.TypeBool, false
	case "date":
		return dataframe.TypeDate, false
	case "datetime":
		return dataframe.TypeDateTime, false
	default:
		return dataframe.TypeString, true
	}
}
