// internal/tui/viewer.go
// Package tui is an interactive terminal viewer for a plot table.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/accuracycharts/internal/plotdata"
	"github.com/mwiater/accuracycharts/internal/termplot"
)

// TableUpdatedMsg replaces the table shown by the viewer.
type TableUpdatedMsg struct {
	Table plotdata.PlotTable
}

// WatchErrMsg reports a failed reload; the previous table stays on screen.
type WatchErrMsg struct {
	Err error
}

const (
	headerHeight = 3
	footerHeight = 7
)

// Model is the bubbletea model of the viewer.
type Model struct {
	grid     table.Model
	plot     plotdata.PlotTable
	options  plotdata.ChartOptions
	source   string
	watching bool
	showPlot bool
	width    int
	height   int
	err      error
}

// New builds a viewer over t.
func New(t plotdata.PlotTable, opts plotdata.ChartOptions, source string, watching bool) *Model {
	columns := []table.Column{
		{Title: "Threshold", Width: 10},
		{Title: "Accuracy", Width: 10},
		{Title: "Precision", Width: 10},
		{Title: "Recall", Width: 10},
		{Title: "F1", Width: 10},
	}
	grid := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	grid.SetStyles(styles)

	m := &Model{
		grid:     grid,
		options:  opts,
		source:   source,
		watching: watching,
	}
	m.setTable(t)
	return m
}

func (m *Model) setTable(t plotdata.PlotTable) {
	m.plot = t
	rows := make([]table.Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, table.Row(termplot.FormatRow(r)))
	}
	m.grid.SetRows(rows)
	if len(rows) > 0 {
		m.grid.SetCursor(min(max(m.grid.Cursor(), 0), len(rows)-1))
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "p":
			m.showPlot = !m.showPlot
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.grid.SetWidth(msg.Width - 2)
		m.grid.SetHeight(max(3, msg.Height-headerHeight-footerHeight))
		return m, nil

	case TableUpdatedMsg:
		m.err = nil
		m.setTable(msg.Table)
		return m, nil

	case WatchErrMsg:
		m.err = msg.Err
		return m, nil
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	b.WriteString(headerStyle.Render(fmt.Sprintf("Source: %s", m.source)))
	b.WriteString(" ")
	b.WriteString(renderRowsBadge(len(m.plot.Rows)))
	b.WriteString(renderWatchBadge(deriveWatchStatus(m.watching)))
	b.WriteString("\n\n")

	if m.showPlot {
		width := m.width - 12
		height := m.height - headerHeight - footerHeight
		graph, err := termplot.Plot(m.plot, m.options, width, max(5, height))
		if err != nil {
			b.WriteString(fmt.Sprintf("  %v\n", err))
		} else {
			b.WriteString(graph)
			b.WriteString("\n")
		}
	} else {
		b.WriteString(m.grid.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.tooltips())

	if m.err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Reload failed: %v", m.err)))
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • p toggle plot • q quit"))
	return b.String()
}

// tooltips lists the four tooltip strings of the selected row.
func (m *Model) tooltips() string {
	row, ok := m.SelectedRow()
	if !ok {
		return "  No thresholds to show.\n"
	}
	var b strings.Builder
	for _, tip := range []string{row.AccuracyTooltip, row.PrecisionTooltip, row.RecallTooltip, row.F1Tooltip} {
		b.WriteString("  ")
		b.WriteString(tip)
		b.WriteString("\n")
	}
	return b.String()
}

// SelectedRow returns the plot row under the cursor.
func (m *Model) SelectedRow() (plotdata.PlotRow, bool) {
	i := m.grid.Cursor()
	if i < 0 || i >= len(m.plot.Rows) {
		return plotdata.PlotRow{}, false
	}
	return m.plot.Rows[i], true
}

// NewProgram wraps the viewer in a full-screen program bound to ctx.
func NewProgram(ctx context.Context, m *Model) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
}
