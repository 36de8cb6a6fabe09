// Package components provides reusable TUI components.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// BreakdownRow is one line of the contract vs. exchange comparison.
// All values are pre-formatted by the caller - the UI does not calculate.
type BreakdownRow struct {
	Label    string
	Contract string
	Exchange string
}

// BreakdownComponent renders the per-channel profit comparison table.
type BreakdownComponent struct {
	product        string
	quantity       string
	rows           []BreakdownRow
	requiredPrice  string
	exchangeBetter bool
	hasData        bool
}

// NewBreakdownComponent creates a new breakdown component.
func NewBreakdownComponent() *BreakdownComponent {
	return &BreakdownComponent{
		rows: make([]BreakdownRow, 0, 8),
	}
}

// SetScenario sets the product and quantity header fields.
func (b *BreakdownComponent) SetScenario(product, quantity string) {
	b.product = product
	b.quantity = quantity
}

// Update replaces the comparison rows.
func (b *BreakdownComponent) Update(rows []BreakdownRow) {
	b.rows = rows
	b.hasData = true
}

// SetVerdict sets the breakeven price and which channel wins.
func (b *BreakdownComponent) SetVerdict(requiredPrice string, exchangeBetter bool) {
	b.requiredPrice = requiredPrice
	b.exchangeBetter = exchangeBetter
}

// View renders the breakdown component.
func (b *BreakdownComponent) View() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	winStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	loseStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))

	if !b.hasData {
		return headerStyle.Render("PROFIT BREAKDOWN") + "\n\n" +
			mutedStyle.Render("  Waiting for first analysis...")
	}

	result := headerStyle.Render(fmt.Sprintf("PROFIT BREAKDOWN — %s × %s", b.product, b.quantity))
	result += "\n"
	result += "┌──────────────────────┬───────────────┬───────────────┐\n"
	result += "│                      │   Contract    │   Exchange    │\n"
	result += "├──────────────────────┼───────────────┼───────────────┤\n"

	for _, row := range b.rows {
		result += fmt.Sprintf("│ %-20s │%14s │%14s │\n",
			row.Label, row.Contract, row.Exchange)
	}

	result += "└──────────────────────┴───────────────┴───────────────┘\n"

	verdict := "Contract sale is better"
	style := loseStyle
	if b.exchangeBetter {
		verdict = "Exchange sale is better"
		style = winStyle
	}
	result += fmt.Sprintf("\n  %s  %s\n",
		style.Render(verdict),
		mutedStyle.Render(fmt.Sprintf("(breakeven exchange price: %s)", b.requiredPrice)))

	return result
}
