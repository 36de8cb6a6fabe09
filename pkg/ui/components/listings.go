// Package components provides reusable TUI components.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ListingRow represents one orderbook entry in the market table.
// All values are pre-formatted by the caller - the UI does not calculate.
type ListingRow struct {
	Position  int
	Price     string
	Quality   int
	Quantity  string
	Seller    string
	PostedAgo string
	Own       bool
}

// ListingsComponent renders the market standing table.
type ListingsComponent struct {
	rows      []ListingRow
	position  int
	total     int
	suggested string
	available bool
	visible   int
	offset    int
	hasData   bool
}

// NewListingsComponent creates a new listings component showing at most
// visible rows at a time.
func NewListingsComponent(visible int) *ListingsComponent {
	return &ListingsComponent{
		rows:    make([]ListingRow, 0),
		visible: visible,
	}
}

// Update replaces the orderbook rows and standing summary.
func (l *ListingsComponent) Update(rows []ListingRow, position, total int, suggested string, available bool) {
	l.rows = rows
	l.position = position
	l.total = total
	l.suggested = suggested
	l.available = available
	l.hasData = true
	if l.offset > len(rows)-1 {
		l.offset = 0
	}
}

// ScrollUp scrolls the table up one row.
func (l *ListingsComponent) ScrollUp() {
	if l.offset > 0 {
		l.offset--
	}
}

// ScrollDown scrolls the table down one row.
func (l *ListingsComponent) ScrollDown() {
	if l.offset < len(l.rows)-l.visible {
		l.offset++
	}
}

// View renders the listings component.
func (l *ListingsComponent) View() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	ownStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60A5FA"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))

	if !l.hasData {
		return headerStyle.Render("MARKET STANDING") + "\n\n" +
			mutedStyle.Render("  Waiting for market data...")
	}

	result := headerStyle.Render(fmt.Sprintf("MARKET STANDING — rank %d of %d", l.position, l.total))
	result += "\n"
	if !l.available {
		result += warnStyle.Render("  ⚠ market data unavailable, showing your listing only")
		result += "\n"
	}
	result += "┌─────┬──────────┬────┬───────────┬──────────────────────┬──────────┐\n"
	result += "│  #  │  Price   │ Q  │ Quantity  │ Seller               │  Posted  │\n"
	result += "├─────┼──────────┼────┼───────────┼──────────────────────┼──────────┤\n"

	end := l.offset + l.visible
	if end > len(l.rows) {
		end = len(l.rows)
	}
	for _, row := range l.rows[l.offset:end] {
		line := fmt.Sprintf("│%4d │%9s │%3d │%10s │ %-20s │%9s │",
			row.Position, row.Price, row.Quality, row.Quantity,
			truncate(row.Seller, 20), row.PostedAgo)
		if row.Own {
			line = ownStyle.Render(line)
		}
		result += line + "\n"
	}

	result += "└─────┴──────────┴────┴───────────┴──────────────────────┴──────────┘\n"

	if len(l.rows) > l.visible {
		result += mutedStyle.Render(fmt.Sprintf("  showing %d-%d of %d (↑↓ to scroll)\n",
			l.offset+1, end, len(l.rows)))
	}

	result += fmt.Sprintf("\n  Suggested price: %s\n", ownStyle.Render(l.suggested))

	return result
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
