package tui

import (
	"fmt"
	"strings"

	"ftracker/internal/training"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Workout list"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	listSection := m.renderSection("Workout List", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"g / G", "First / last workout"},
		{"enter", "Show workout details"},
	})
	sections = append(sections, listSection)

	detailSection := m.renderSection("Workout Details", []keyHelp{
		{"j / k", "Scroll"},
	})
	sections = append(sections, detailSection)

	sections = append(sections, m.renderPackagesHelp())
	sections = append(sections, m.renderFormulasHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionTitleStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderPackagesHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionTitleStyle.Render("Sensor Packages"))

	for _, k := range training.Kinds() {
		desc := fmt.Sprintf("%s, %d values, %.2f m per action", k, k.Arity(), k.StepLength())
		lines = append(lines, "  "+RenderKeyHelp(k.Tag(), desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderFormulasHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionTitleStyle.Render("Figures Explained"))
	lines = append(lines, "")

	figures := []struct {
		name string
		desc string
	}{
		{"Distance", "Actions times step length (0.65 m per step, 1.38 m per stroke)."},
		{"Mean speed", "Distance over duration. Swimming uses pool length times laps."},
		{"Calories", "Empirical formula per workout type, driven by mean speed and weight."},
	}

	for _, f := range figures {
		lines = append(lines, "  "+helpKeyStyle.Render(f.name))
		lines = append(lines, "  "+helpDescStyle.Render(f.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
