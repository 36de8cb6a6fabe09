// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// MarketStatus represents the exchange feed's availability.
type MarketStatus struct {
	Available bool
	Detail    string
	UpdatedAt time.Time
}

// StatusComponent renders the market feed status line.
type StatusComponent struct {
	status MarketStatus
	seen   bool
}

// NewStatusComponent creates a new status component.
func NewStatusComponent() *StatusComponent {
	return &StatusComponent{}
}

// Update replaces the market status.
func (s *StatusComponent) Update(status MarketStatus) {
	s.status = status
	s.seen = true
}

// View renders the status component.
func (s *StatusComponent) View() string {
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	if !s.seen {
		return mutedStyle.Render("○ Market: waiting")
	}

	if s.status.Available {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
		line := "● Market: live"
		if !s.status.UpdatedAt.IsZero() {
			line += fmt.Sprintf(" (updated %s ago)", time.Since(s.status.UpdatedAt).Round(time.Second))
		}
		return style.Render(line)
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	line := "○ Market: unavailable"
	if s.status.Detail != "" {
		line += " — " + s.status.Detail
	}
	return style.Render(line)
}
