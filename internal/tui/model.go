// Package tui implements the bubbletea presentation layer: a single Model
// whose Update drains keystrokes through internal/keymap and
// internal/reducer to a fixpoint (spec.md §4.5), and whose View renders the
// resulting internal/state.AppState with internal/theme styles: the same
// overall Init/Update/View shape, tea.WindowSizeMsg layout recompute, and
// clampViewHeight terminal-quirk guard as gotermsql's Model, generalized from
// its sidebar+editor+results panes to tabiew's tab-bar+table-grid+modal-
// overlay layout.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/catalog"
	"github.com/tabiew-go/tabiew/internal/config"
	"github.com/tabiew-go/tabiew/internal/keymap"
	"github.com/tabiew-go/tabiew/internal/reducer"
	"github.com/tabiew-go/tabiew/internal/state"
	"github.com/tabiew-go/tabiew/internal/tracelog"
)

// tickInterval bounds the terminal event poll per spec.md §4.5 step 1 —
// short enough that a live search result is adopted promptly, long enough
// not to burn CPU redrawing an idle screen.
const tickInterval = 120 * time.Millisecond

// tickMsg marks one poll-timeout iteration of the event loop.
type tickMsg time.Time

// Model is bubbletea's root model: the AppState tree plus the collaborators
// the reducer needs and the terminal's current size.
type Model struct {
	state *state.AppState
	ex    *reducer.Executor

	width, height int
	quitting      bool
}

// New builds a Model from already-constructed collaborators. cat and cfg are
// the process-wide catalog and configuration; configPath is where
// StoreConfig persists cfg; trace may be nil to disable action tracing.
func New(cat *catalog.Catalog, cfg *config.Config, configPath string, trace *tracelog.Logger) Model {
	return Model{
		state: state.New(),
		ex:    reducer.New(cat, cfg, configPath, trace),
	}
}

// Init starts the tick loop; there is no other startup work (initial imports
// are applied by cmd/tabiew before the program starts).
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles one bubbletea message: resize, tick, or keystroke.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.applyRenderedRowsHint()
		return m, nil

	case tickMsg:
		m.ex.Tick(m.state)
		if !m.state.Running {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd()

	case tea.KeyMsg:
		act := keymap.Resolve(msg.String(), m.state)
		m.runToFixpoint(act)
		if !m.state.Running {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	default:
		// cmd/tabiew feeds the initial file imports in as plain
		// action.Action messages via p.Send, outside the keymap.
		if act, ok := msg.(action.Action); ok {
			m.runToFixpoint(act)
			if !m.state.Running {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, nil
	}
}

// runToFixpoint executes act and every follow-up action it produces, per
// spec.md §9's "follow-up action chaining" design note: a keystroke is fully
// reduced, including any chain of follow-ups, before the next is consumed.
// An error aborts the chain and is stashed in state.Error rather than
// propagated, per spec.md §7's policy.
func (m Model) runToFixpoint(act action.Action) {
	for act != nil {
		follow, err := m.ex.Execute(act, m.state)
		if err != nil {
			m.state.Error = err.Error()
			return
		}
		act = follow
	}
}

// applyRenderedRowsHint tells every tab's TableView how many rows actually
// render, so GoUpHalfPage/GoDownHalfPage/GoUpFullPage/GoDownFullPage (which
// divide by RenderedRowsHint) see the real viewport height instead of 0.
func (m *Model) applyRenderedRowsHint() {
	hint := m.tableBodyHeight()
	for _, tab := range m.state.Tabs {
		tab.TableView.RenderedRowsHint = hint
	}
}

func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return m.render()
}
