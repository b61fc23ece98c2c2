package tui

import (
	"fmt"
	"strings"

	"github.com/tabiew-go/tabiew/internal/state"
	"github.com/tabiew-go/tabiew/internal/theme"
)

// renderModal draws whichever per-tab overlay is open, bordered and titled
// the same way every other results/editor pane is framed.
func (m Model) renderModal(th *theme.Theme, tab *state.TabContent) string {
	title, body := modalTitleAndBody(tab, th)
	framed := th.ModalTitle.Render(title) + "\n\n" + body
	return th.ModalBorder.Render(framed)
}

func modalTitleAndBody(tab *state.TabContent, th *theme.Theme) (string, string) {
	switch tab.Modal.Kind {
	case state.ModalSheet:
		return "sheet", tab.Modal.Sheet.View()
	case state.ModalSearchBar:
		sb := tab.Modal.Search
		kind := "fuzzy"
		if sb.Kind == state.SearchExact {
			kind = "exact"
		}
		return kind + " search", sb.Pattern.View()
	case state.ModalDataFrameInfo:
		return "data frame info", tab.Modal.DataFrameInfo.View()
	case state.ModalScatterPlot:
		return "scatter plot", renderScatter(tab.Modal.Scatter)
	case state.ModalHistogramPlot:
		return "histogram", renderHistogram(tab.Modal.Histogram)
	case state.ModalInlineQuery:
		iq := tab.Modal.InlineQuery
		return string(iq.Kind), highlightSQL(iq.Input.Value(), th)
	case state.ModalHelp:
		return "help", ""
	default:
		return "", ""
	}
}

func renderScatter(s *state.ScatterPlotState) string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "x=%s y=%s groups=%v\n", s.X, s.Y, s.Groups)
	for i, series := range s.Series {
		fmt.Fprintf(&b, "series %d: %d points\n", i, len(series))
	}
	return b.String()
}

func renderHistogram(h *state.HistogramPlotState) string {
	if h == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s — %d buckets\n", h.Col, h.Buckets)
	maxCount := 1
	for _, c := range h.Counts {
		if c > maxCount {
			maxCount = c
		}
	}
	for i, c := range h.Counts {
		barLen := c * 30 / maxCount
		fmt.Fprintf(&b, "%3d |%s %d\n", i, strings.Repeat("#", barLen), c)
	}
	return b.String()
}

func (m Model) renderThemeSelector(th *theme.Theme) string {
	sel := m.state.ThemeSelector
	var b strings.Builder
	b.WriteString(th.ModalTitle.Render("theme"))
	b.WriteByte('\n')
	for i, name := range theme.Names {
		style := th.PaletteItem
		if i == sel.SelectedIndex {
			style = th.PaletteSelected
		}
		b.WriteString(style.Render(name))
		b.WriteByte('\n')
	}
	return th.ModalBorder.Render(b.String())
}

// renderPalette draws the command palette: its history list with the input
// line (SQL-highlighted) below it, the most recently used entry at the bottom
// nearest the cursor.
func (m Model) renderPalette(th *theme.Theme) string {
	p := m.state.Palette
	if p == nil {
		return ""
	}

	var b strings.Builder
	for i, entry := range p.History {
		style := th.PaletteItem
		if i == p.SelectedIndex {
			style = th.PaletteSelected
		}
		b.WriteString(style.Render(highlightSQL(entry, th)))
		b.WriteByte('\n')
	}
	b.WriteString(th.PaletteInput.Render(":" + highlightSQL(p.Input.Value(), th)))

	return th.PaletteBorder.Width(m.width - 4).Render(b.String())
}

func (m Model) renderTabPanel(th *theme.Theme) string {
	labels := renderTabPanelEntries(m.state.Tabs)
	var parts []string
	for i, label := range labels {
		style := th.PaletteItem
		if i == m.state.TabPanelSelected {
			style = th.PaletteSelected
		}
		parts = append(parts, style.Render(label))
	}
	return th.ModalBorder.Render(strings.Join(parts, "  "))
}
