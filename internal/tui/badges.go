// internal/tui/badges.go
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// watchStatus reports whether the viewer follows its input file.
type watchStatus string

const (
	// watchStatusOff means the table was loaded once.
	watchStatusOff watchStatus = "off"
	// watchStatusActive means file changes rebuild the table.
	watchStatusActive watchStatus = "active"
)

func deriveWatchStatus(watching bool) watchStatus {
	if watching {
		return watchStatusActive
	}
	return watchStatusOff
}

// formatWatchIndicator returns a human-readable string for the given watch status.
func formatWatchIndicator(status watchStatus) string {
	switch status {
	case watchStatusActive:
		return "Watch: active"
	default:
		return "Watch: off"
	}
}

// renderWatchBadge returns a Lipgloss-styled badge string for the watch status.
func renderWatchBadge(status watchStatus) string {
	badgeStyle := lipgloss.NewStyle().Background(lipgloss.Color("229")).Foreground(lipgloss.Color("0")).Padding(0, 1).MarginLeft(1)
	return badgeStyle.Render(formatWatchIndicator(status))
}

// renderRowsBadge returns a Lipgloss-styled badge with the data row count.
func renderRowsBadge(rows int) string {
	badgeStyle := lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")).Padding(0, 1)
	return badgeStyle.Render(fmt.Sprintf("Rows: %d", rows))
}
