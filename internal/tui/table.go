package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tabiew-go/tabiew/internal/dataframe"
	"github.com/tabiew-go/tabiew/internal/state"
	"github.com/tabiew-go/tabiew/internal/theme"
)

const cellWidth = 16

// renderTable draws the selected tab's frame as a scrollable grid: a header
// row of column names, then up to bodyHeight-1 data rows, scrolled so that
// SelectedRow is the last visible row once it moves past the first screen,
// honoring HorizontalOffset (scrolled-past columns) and
// ExpandedRows (one column per screen line instead of a dense row).
func (m Model) renderTable(th *theme.Theme, bodyHeight int) string {
	tab := m.state.SelectedTabContent()
	if tab == nil {
		return th.MutedText.Render("no tabs open")
	}
	frame := tab.TableView.Frame
	if frame.Width() == 0 {
		return th.MutedText.Render("(empty frame)")
	}
	if tab.TableView.ExpandedRows {
		return renderExpandedRow(th, frame, tab.TableView.SelectedRow)
	}

	rowsAvail := bodyHeight - 1 // header line
	if rowsAvail < 1 {
		rowsAvail = 1
	}

	start := 0
	if tab.TableView.SelectedRow >= rowsAvail {
		start = tab.TableView.SelectedRow - rowsAvail + 1
	}
	end := start + rowsAvail
	if end > frame.Height() {
		end = frame.Height()
	}

	cols := visibleColumns(frame, tab.TableView.HorizontalOffset, m.width)

	var b strings.Builder
	b.WriteString(renderRow(th.TableHeader, cols, func(c *dataframe.Column) string { return c.Name }))
	b.WriteByte('\n')
	for r := start; r < end; r++ {
		style := th.TableCell
		if r == tab.TableView.SelectedRow {
			style = th.TableSelectedRow
		}
		b.WriteString(renderRow(style, cols, func(c *dataframe.Column) string { return cellDisplay(th, c, r) }))
		if r < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// visibleColumns returns the slice of columns starting at offset that fit
// within width at cellWidth each, always showing at least one column.
func visibleColumns(frame *dataframe.DataFrame, offset, width int) []*dataframe.Column {
	if offset < 0 {
		offset = 0
	}
	if offset >= frame.Width() {
		offset = frame.Width() - 1
	}
	n := width / cellWidth
	if n < 1 {
		n = 1
	}
	end := offset + n
	if end > frame.Width() {
		end = frame.Width()
	}
	return frame.Columns[offset:end]
}

func renderRow(style lipgloss.Style, cols []*dataframe.Column, text func(*dataframe.Column) string) string {
	var cells []string
	for _, c := range cols {
		cells = append(cells, style.Width(cellWidth).Render(truncate(text(c), cellWidth)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func cellDisplay(th *theme.Theme, c *dataframe.Column, row int) string {
	if row < 0 || row >= len(c.Data) || c.Data[row] == nil {
		return th.TableNull.Render("null")
	}
	return formatCell(c.Data[row])
}

func formatCell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func truncate(s string, width int) string {
	if len([]rune(s)) <= width {
		return s
	}
	r := []rune(s)
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

// renderExpandedRow draws one "name: value" line per column for the
// selected row, the dense-row alternative toggled by ToggleExpansion.
func renderExpandedRow(th *theme.Theme, frame *dataframe.DataFrame, row int) string {
	var b strings.Builder
	for i, c := range frame.Columns {
		b.WriteString(th.SchemaFieldName.Render(c.Name))
		b.WriteString(": ")
		b.WriteString(cellDisplay(th, c, row))
		if i < len(frame.Columns)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderTabPanelEntries(tabs []*state.TabContent) []string {
	labels := make([]string, len(tabs))
	for i, t := range tabs {
		labels[i] = tabLabel(t)
	}
	return labels
}
