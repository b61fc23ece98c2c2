package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tabiew-go/tabiew/internal/state"
	"github.com/tabiew-go/tabiew/internal/theme"
)

// tableBodyHeight returns the number of rows available to the table grid
// once the tab bar and status bar are subtracted.
func (m Model) tableBodyHeight() int {
	h := m.height - 2 // tab bar (1 line) + status bar (1 line)
	if h < 1 {
		h = 1
	}
	return h
}

// render assembles the full-screen view: tab bar, main content (table grid
// or schema browser), status bar, with whichever overlay (palette, theme
// selector, modal) is active drawn on top.
func (m Model) render() string {
	th := theme.Current
	s := m.state

	tabBar := m.renderTabBar(th)
	statusBar := m.renderStatusBar(th)
	bodyHeight := m.tableBodyHeight()

	var body string
	switch {
	case s.Content == state.ContentSchema:
		body = m.renderSchema(th, bodyHeight)
	default:
		body = m.renderTable(th, bodyHeight)
	}

	view := lipgloss.JoinVertical(lipgloss.Left, tabBar, body, statusBar)

	if tab := s.SelectedTabContent(); tab != nil && tab.Modal.Kind != state.ModalNone {
		overlay := m.renderModal(th, tab)
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
	}
	if s.ThemeSelector != nil {
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderThemeSelector(th))
	}
	if s.Palette != nil {
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Bottom, m.renderPalette(th))
	}
	if s.TabPanelVisible {
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, m.renderTabPanel(th))
	}

	return clampViewHeight(view, m.height)
}

// clampViewHeight ensures the rendered view never exceeds the terminal
// height, guarding against the off-by-one some terminals show on resize.
func clampViewHeight(view string, height int) string {
	if height <= 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTabBar(th *theme.Theme) string {
	var parts []string
	for i, tab := range m.state.Tabs {
		label := tabLabel(tab)
		style := th.TabInactive
		if i == m.state.SelectedTab {
			style = th.TabActive
		}
		parts = append(parts, style.Render(label))
	}
	return th.TabBar.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func tabLabel(tab *state.TabContent) string {
	switch tab.Kind.Kind {
	case state.TableTypeHelp:
		return "help"
	case state.TableTypeName:
		return tab.Kind.CatalogName
	default:
		return "query"
	}
}

func (m Model) renderStatusBar(th *theme.Theme) string {
	s := m.state
	if s.Error != "" {
		return th.ErrorBanner.Width(m.width).Render(s.Error)
	}

	tab := s.SelectedTabContent()
	var pos string
	if tab != nil {
		pos = fmt.Sprintf("row %d/%d col %d", tab.TableView.SelectedRow+1, tab.TableView.Frame.Height(), tab.TableView.HorizontalOffset+1)
	}
	left := th.StatusBarKey.Render(" tabiew ")
	right := th.StatusBarValue.Render(pos)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return th.StatusBar.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}
