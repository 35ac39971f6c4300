package tui

import (
	"fmt"

	"ftracker/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// ReportsModel is the workout list screen model
type ReportsModel struct {
	reports []service.Report
	summary service.Summary
	cursor  int
}

// NewReportsModel creates a new workout list model
func NewReportsModel(reports []service.Report, summary service.Summary) ReportsModel {
	return ReportsModel{
		reports: reports,
		summary: summary,
	}
}

// Cursor returns the index of the selected report
func (m ReportsModel) Cursor() int {
	return m.cursor
}

// Init initializes the list screen
func (m ReportsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ReportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.reports)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			if len(m.reports) > 0 {
				m.cursor = len(m.reports) - 1
			}
		case "enter":
			if len(m.reports) > 0 {
				index := m.cursor
				return m, func() tea.Msg {
					return OpenDetailMsg{Index: index}
				}
			}
		}
	}
	return m, nil
}

// View renders the workout list
func (m ReportsModel) View() string {
	if len(m.reports) == 0 {
		return "\n  No workouts to show. Add packages to the config file."
	}

	var sections []string

	title := cardTitleStyle.Render(fmt.Sprintf("Workouts (%d)", len(m.reports)))
	sections = append(sections, title)

	header := tableHeaderStyle.Render(fmt.Sprintf("  %-4s  %-14s  %9s  %10s  %10s  %10s",
		"Tag", "Type", "Duration", "Distance", "Speed", "Calories"))
	sections = append(sections, header)

	for i, r := range m.reports {
		info := r.Info

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		row := fmt.Sprintf("%s%-4s  %-14s  %7.3f h  %7.3f km  %10.3f  %10.3f",
			cursor,
			r.Package.Type,
			info.TrainingType,
			info.Duration,
			info.Distance,
			info.Speed,
			info.Calories,
		)

		if i == m.cursor {
			sections = append(sections, tableSelectedStyle.Render(row))
		} else {
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	sections = append(sections, "", m.renderSummary())

	help := statusStyle.Render("\n  enter: view details  j/k: navigate  ?: help")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ReportsModel) renderSummary() string {
	title := cardTitleStyle.Render("Session")

	lines := []string{
		RenderMetric("Workouts", humanize.Comma(int64(m.summary.Count))),
		RenderMetric("Duration", humanize.FormatFloat("#,###.###", m.summary.TotalDuration)+" h"),
		RenderMetric("Distance", humanize.FormatFloat("#,###.###", m.summary.TotalDistance)+" km"),
		RenderMetric("Calories", humanize.FormatFloat("#,###.###", m.summary.TotalCalories)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
