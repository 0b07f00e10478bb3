// Package watch provides a live ledger view: the plan re-renders whenever
// the ledger file changes on disk, so progress from concurrently running
// phases shows up as it happens.
package watch

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/swarmline/swarmline/internal/domain"
	"github.com/swarmline/swarmline/internal/ledger"
)

// refreshInterval is how often the ledger is re-read from disk.
const refreshInterval = 2 * time.Second

// Model is the watch TUI model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	store  domain.LedgerStore
	ledger string

	// State
	plan *domain.TaskPlan
	err  error

	// Components
	keys     KeyMap
	styles   Styles
	spinner  spinner.Model
	progress progress.Model

	// Numeric state
	scroll int
	width  int
	height int

	// Boolean state
	loading bool
}

// New creates a new watch TUI model reading the named ledger from the store.
func New(store domain.LedgerStore, ledgerName string) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		store:    store,
		ledger:   ledgerName,
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		spinner:  sp,
		progress: progress.New(progress.WithDefaultGradient()),
		loading:  true,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadPlan(),
		tick(),
	)
}

// loadPlan reads and decodes the ledger off the UI goroutine.
func (m *Model) loadPlan() tea.Cmd {
	return func() tea.Msg {
		data, err := m.store.Read(m.ledger)
		if err != nil {
			return MsgPlanLoaded{Err: err}
		}
		plan, err := ledger.Decode(string(data))
		if err != nil {
			return MsgPlanLoaded{Err: err}
		}
		return MsgPlanLoaded{Plan: plan}
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return MsgTick{}
	})
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 4; w > 0 && w < 60 {
			m.progress.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.loadPlan()
		case key.Matches(msg, m.keys.Up):
			if m.scroll > 0 {
				m.scroll--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.scroll++
			return m, nil
		}
		return m, nil

	case MsgPlanLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.plan = msg.Plan
		return m, nil

	case MsgTick:
		return m, tea.Batch(m.loadPlan(), tick())
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View renders the model.
func (m *Model) View() string {
	var b strings.Builder

	if m.loading && m.plan == nil {
		b.WriteString(m.spinner.View() + " Reading ledger...\n")
		b.WriteString(m.helpView())
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
		b.WriteString(m.helpView())
		return b.String()
	}

	plan := m.plan
	title := fmt.Sprintf("%s — %.1f%%", plan.ProjectName, plan.CompletionPercentage())
	if plan.OverallCompleted {
		title += " ✓"
	}
	b.WriteString(m.styles.Title.Render(title) + "\n")
	b.WriteString(m.progress.ViewAs(plan.CompletionPercentage()/100) + "\n\n")

	lines := m.planLines(plan)
	for _, line := range m.visible(lines) {
		b.WriteString(line + "\n")
	}

	b.WriteString(m.helpView())
	return b.String()
}

// planLines renders every phase and task to a flat line list for scrolling.
func (m *Model) planLines(plan *domain.TaskPlan) []string {
	var lines []string
	for i := range plan.Phases {
		phase := &plan.Phases[i]
		completed := 0
		for j := range phase.Tasks {
			if phase.Tasks[j].Completed {
				completed++
			}
		}
		header := fmt.Sprintf("%s (%d/%d)", phase.Name, completed, len(phase.Tasks))
		if phase.Active {
			lines = append(lines, m.styles.PhaseActive.Render(header))
		} else {
			lines = append(lines, m.styles.PhaseInactive.Render(header+" [waiting]"))
		}
		for j := range phase.Tasks {
			task := &phase.Tasks[j]
			mark := m.styles.TaskPending.Render("[ ]")
			if task.Completed {
				mark = m.styles.TaskDone.Render("[X]")
			}
			lines = append(lines, fmt.Sprintf("  %s %s %s",
				mark, task.Description, m.styles.Agent.Render("@"+task.Agent)))
		}
		lines = append(lines, "")
	}
	return lines
}

// visible clamps the scroll offset and returns the lines that fit on screen.
func (m *Model) visible(lines []string) []string {
	// Title, progress bar, help, and margins take a few rows.
	budget := m.height - 6
	if m.height == 0 || budget >= len(lines) {
		m.scroll = 0
		return lines
	}
	if budget < 1 {
		budget = 1
	}
	maxScroll := len(lines) - budget
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	return lines[m.scroll : m.scroll+budget]
}

func (m *Model) helpView() string {
	return m.styles.Help.Render("↑/↓ scroll • r refresh • q quit")
}
