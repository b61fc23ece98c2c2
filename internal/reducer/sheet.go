package reducer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/dataframe"
	"github.com/tabiew-go/tabiew/internal/state"
)

func (ex *Executor) sheetShow(s *state.AppState) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	vp := viewport.New(0, 0)
	vp.SetContent(renderSheet(tab.TableView.Frame, tab.TableView.SelectedRow))
	tab.Modal = state.Modal{Kind: state.ModalSheet, Sheet: vp}
	return nil, nil
}

func renderSheet(frame *dataframe.DataFrame, row int) string {
	var b strings.Builder
	for _, col := range frame.Columns {
		var v any
		if row >= 0 && row < len(col.Data) {
			v = col.Data[row]
		}
		fmt.Fprintf(&b, "%s: %s\n", col.Name, cellText(v))
	}
	return b.String()
}

func (ex *Executor) sheetScroll(s *state.AppState, delta int) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil || tab.Modal.Kind != state.ModalSheet {
		return nil, nil
	}
	vp := &tab.Modal.Sheet
	vp.YOffset += delta
	if vp.YOffset < 0 {
		vp.YOffset = 0
	}
	return nil, nil
}
