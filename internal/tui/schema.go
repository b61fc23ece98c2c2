package tui

import (
	"fmt"
	"strings"

	"github.com/tabiew-go/tabiew/internal/theme"
)

// renderSchema draws the catalog's registered tables as a selectable list
// (name + source) with the selected entry's columns shown to the right,
// mirroring a schema-browser split view: names on the left, fields on the right.
func (m Model) renderSchema(th *theme.Theme, bodyHeight int) string {
	entries := m.ex.Catalog.Schema()
	if len(entries) == 0 {
		return th.MutedText.Render("no tables registered")
	}

	var names strings.Builder
	for i, info := range entries {
		line := fmt.Sprintf("%s (%s)", info.Name, info.Source)
		style := th.SchemaName
		if i == m.state.SchemaView.SelectedIndex {
			style = th.SchemaSelected
		}
		names.WriteString(style.Render(line))
		if i < len(entries)-1 {
			names.WriteByte('\n')
		}
	}

	idx := m.state.SchemaView.SelectedIndex
	if idx < 0 || idx >= len(entries) {
		return names.String()
	}
	selected := entries[idx]

	var fields strings.Builder
	for i, c := range selected.Frame.Columns {
		fields.WriteString(th.SchemaFieldName.Render(c.Name))
		fields.WriteString("  ")
		fields.WriteString(th.SchemaFieldType.Render(c.Type.String()))
		if i < len(selected.Frame.Columns)-1 {
			fields.WriteByte('\n')
		}
	}

	return names.String() + "\n\n" + fields.String()
}
