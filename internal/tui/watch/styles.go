package watch

import "github.com/charmbracelet/lipgloss"

// Colors used in the watch TUI.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#9CA3AF") // Light gray
)

// Styles holds the styles for the watch TUI.
type Styles struct {
	Title         lipgloss.Style
	PhaseActive   lipgloss.Style
	PhaseInactive lipgloss.Style
	TaskDone      lipgloss.Style
	TaskPending   lipgloss.Style
	Agent         lipgloss.Style
	Progress      lipgloss.Style
	Help          lipgloss.Style
	Error         lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1),
		PhaseActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess),
		PhaseInactive: lipgloss.NewStyle().
			Foreground(ColorMuted),
		TaskDone: lipgloss.NewStyle().
			Foreground(ColorSuccess),
		TaskPending: lipgloss.NewStyle().
			Foreground(ColorWarning),
		Agent: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),
		Progress: lipgloss.NewStyle().
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
	}
}
