package reducer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/apperr"
	"github.com/tabiew-go/tabiew/internal/dataframe"
	"github.com/tabiew-go/tabiew/internal/state"
)

func (ex *Executor) dataFrameInfoShow(s *state.AppState) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	frame := tab.TableView.Frame
	stats := make([]state.ColumnStat, len(frame.Columns))
	for i, c := range frame.Columns {
		stats[i] = state.ColumnStat{Name: c.Name, Type: c.Type, NullCount: c.NullCount()}
	}
	vp := viewport.New(0, 0)
	vp.SetContent(renderDataFrameInfo(frame, stats))
	tab.Modal = state.Modal{Kind: state.ModalDataFrameInfo, DataFrameInfo: vp, ColumnStats: stats}
	return nil, nil
}

func renderDataFrameInfo(frame *dataframe.DataFrame, stats []state.ColumnStat) string {
	var b strings.Builder
	fmt.Fprintf(&b, "rows: %d  columns: %d  nulls: %d  est. bytes: %d\n\n",
		frame.Height(), frame.Width(), frame.TotalNullCount(), frame.EstimatedBytes())
	for _, st := range stats {
		fmt.Fprintf(&b, "%-24s %-10s nulls=%d\n", st.Name, st.Type, st.NullCount)
	}
	return b.String()
}

func (ex *Executor) dataFrameInfoScroll(s *state.AppState, delta int) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil || tab.Modal.Kind != state.ModalDataFrameInfo {
		return nil, nil
	}
	vp := &tab.Modal.DataFrameInfo
	vp.YOffset += delta
	if vp.YOffset < 0 {
		vp.YOffset = 0
	}
	return nil, nil
}

func (ex *Executor) scatterPlot(s *state.AppState, x, y string, groups []string) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	frame := tab.TableView.Frame
	if frame.Column(x) == nil {
		return nil, apperr.NotFound("column %q not found", x)
	}
	if frame.Column(y) == nil {
		return nil, apperr.NotFound("column %q not found", y)
	}
	for _, g := range groups {
		if frame.Column(g) == nil {
			return nil, apperr.NotFound("column %q not found", g)
		}
	}

	var series [][]int
	if len(groups) > 0 {
		series = frame.PartitionBy(groups, true)
	} else {
		all := make([]int, frame.Height())
		for i := range all {
			all[i] = i
		}
		series = [][]int{all}
	}

	tab.Modal = state.Modal{
		Kind:    state.ModalScatterPlot,
		Scatter: &state.ScatterPlotState{X: x, Y: y, Groups: groups, Series: series},
	}
	return nil, nil
}

func (ex *Executor) histogramPlot(s *state.AppState, col string, buckets int) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, nil
	}
	frame := tab.TableView.Frame
	c := frame.Column(col)
	if c == nil {
		return nil, apperr.NotFound("column %q not found", col)
	}
	if buckets <= 0 {
		buckets = 1
	}

	counts := make([]int, buckets)
	values := numericValues(c)
	if len(values) > 0 {
		lo, hi := values[0], values[0]
		for _, v := range values {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		span := hi - lo
		for _, v := range values {
			idx := 0
			if span > 0 {
				idx = int((v - lo) / span * float64(buckets))
				if idx >= buckets {
					idx = buckets - 1
				}
				if idx < 0 {
					idx = 0
				}
			}
			counts[idx]++
		}
	}

	tab.Modal = state.Modal{
		Kind:      state.ModalHistogramPlot,
		Histogram: &state.HistogramPlotState{Col: col, Buckets: buckets, Counts: counts},
	}
	return nil, nil
}

func numericValues(c *dataframe.Column) []float64 {
	out := make([]float64, 0, len(c.Data))
	for _, v := range c.Data {
		switch x := v.(type) {
		case int64:
			out = append(out, float64(x))
		case int:
			out = append(out, float64(x))
		case float64:
			out = append(out, x)
		case float32:
			out = append(out, float64(x))
		}
	}
	return out
}

func (ex *Executor) histogramScroll(s *state.AppState, delta int) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil || tab.Modal.Kind != state.ModalHistogramPlot || tab.Modal.Histogram == nil {
		return nil, nil
	}
	h := tab.Modal.Histogram
	h.Scroll += delta
	if h.Scroll < 0 {
		h.Scroll = 0
	}
	return nil, nil
}
