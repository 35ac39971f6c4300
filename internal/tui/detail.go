package tui

import (
	"fmt"
	"math"

	"ftracker/internal/service"
	"ftracker/internal/training"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DetailModel is the single workout screen model
type DetailModel struct {
	reports     []service.Report
	index       int
	chartHeight int
	viewport    viewport.Model
	width       int
	height      int
	ready       bool
}

// NewDetailModel creates a detail model for reports[index]
func NewDetailModel(reports []service.Report, index, chartHeight, width, height int) DetailModel {
	m := DetailModel{
		reports:     reports,
		index:       index,
		chartHeight: chartHeight,
		width:       width,
		height:      height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6) // Reserve space for header/nav
		m.viewport.SetContent(m.renderContent())
		m.ready = true
	}

	return m
}

// Init initializes the detail screen
func (m DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.renderContent())
	}

	if !m.ready {
		return m, nil
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail screen
func (m DetailModel) View() string {
	if m.index < 0 || m.index >= len(m.reports) {
		return errorStyle.Render("\n  No workout selected.")
	}
	if !m.ready {
		return m.renderContent()
	}
	return m.viewport.View()
}

func (m DetailModel) renderContent() string {
	r := m.reports[m.index]
	info := r.Info

	var sections []string

	title := cardTitleStyle.Render(fmt.Sprintf("Workout %d of %d: %s", m.index+1, len(m.reports), info.TrainingType))
	sections = append(sections, title)
	sections = append(sections, info.Message())
	sections = append(sections, "")

	sections = append(sections, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, m.renderInputs(r.Training)...)))
	sections = append(sections, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		sectionTitleStyle.Render("Computed"),
		RenderMetric("Distance", fmt.Sprintf("%.3f km", info.Distance)),
		RenderMetric("Mean speed", fmt.Sprintf("%.3f km/h", info.Speed)),
		RenderMetric("Calories", fmt.Sprintf("%.3f", info.Calories)),
	)))

	sections = append(sections, m.renderChart())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DetailModel) renderInputs(t training.Training) []string {
	lines := []string{
		sectionTitleStyle.Render("Sensor reading"),
		RenderMetric("Tag", t.Kind().Tag()),
		RenderMetric("Actions", fmt.Sprintf("%d", t.Action())),
		RenderMetric("Duration", fmt.Sprintf("%.3f h", t.Duration())),
		RenderMetric("Weight", fmt.Sprintf("%.1f kg", t.Weight())),
	}

	switch t.Kind() {
	case training.SportsWalking:
		lines = append(lines, RenderMetric("Height", fmt.Sprintf("%.1f cm", t.Height())))
	case training.Swimming:
		lines = append(lines,
			RenderMetric("Pool length", fmt.Sprintf("%.1f m", t.LengthPool())),
			RenderMetric("Laps", fmt.Sprintf("%.0f", t.CountPool())),
		)
	}

	return lines
}

func (m DetailModel) renderChart() string {
	title := cardTitleStyle.Render("Calories per workout")

	data, finite := chartValues(service.Calories(m.reports))
	if finite < 2 || m.chartHeight <= 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "Not enough workouts to chart"))
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(m.chartHeight),
		asciigraph.Width(60),
		asciigraph.Precision(1),
	)

	// Mark which workout this screen shows
	marker := fmt.Sprintf("this workout: #%d (%.1f)", m.index+1, m.reports[m.index].Info.Calories)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, marker))
}

// chartValues replaces infinite values with NaN, which asciigraph draws as
// a gap, and counts the finite points left
func chartValues(values []float64) ([]float64, int) {
	out := make([]float64, len(values))
	finite := 0
	for i, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		out[i] = v
		finite++
	}
	return out, finite
}
