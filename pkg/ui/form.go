// Package ui provides the Bubble Tea TUI for the profit optimizer.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// ScenarioInput carries the user-edited scenario values out of the form.
type ScenarioInput struct {
	Quantity      int64
	Quality       int
	ContractPrice decimal.Decimal
	ExchangePrice decimal.Decimal
	Transport     decimal.Decimal
	Source        decimal.Decimal
}

const (
	fieldQuantity = iota
	fieldQuality
	fieldContractPrice
	fieldExchangePrice
	fieldTransport
	fieldSource
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Quantity",
	"Quality",
	"Contract price",
	"Exchange price",
	"Transport / unit",
	"Sourcing cost / unit",
}

// scenarioForm lets the user edit the sale scenario in place.
type scenarioForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	errMsg string
}

func newScenarioForm(initial ScenarioInput) scenarioForm {
	f := scenarioForm{}
	defaults := [fieldCount]string{
		strconv.FormatInt(initial.Quantity, 10),
		strconv.Itoa(initial.Quality),
		initial.ContractPrice.String(),
		initial.ExchangePrice.String(),
		initial.Transport.String(),
		initial.Source.String(),
	}
	for i := 0; i < fieldCount; i++ {
		in := textinput.New()
		in.SetValue(defaults[i])
		in.CharLimit = 16
		in.Width = 14
		in.Prompt = ""
		f.inputs[i] = in
	}
	f.inputs[0].Focus()
	return f
}

// Update handles form navigation and typing.
func (f scenarioForm) Update(msg tea.Msg) (scenarioForm, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.setFocus((f.focus + 1) % fieldCount)
			return f, nil
		case "shift+tab", "up":
			f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *scenarioForm) setFocus(idx int) {
	f.inputs[f.focus].Blur()
	f.focus = idx
	f.inputs[f.focus].Focus()
}

// Value parses the form into a ScenarioInput, recording the first
// parse failure in errMsg.
func (f *scenarioForm) Value() (ScenarioInput, bool) {
	var in ScenarioInput
	var err error

	if in.Quantity, err = strconv.ParseInt(strings.TrimSpace(f.inputs[fieldQuantity].Value()), 10, 64); err != nil {
		f.errMsg = "quantity must be a whole number"
		return in, false
	}
	if in.Quality, err = strconv.Atoi(strings.TrimSpace(f.inputs[fieldQuality].Value())); err != nil {
		f.errMsg = "quality must be a whole number"
		return in, false
	}

	money := [...]struct {
		idx  int
		dst  *decimal.Decimal
		name string
	}{
		{fieldContractPrice, &in.ContractPrice, "contract price"},
		{fieldExchangePrice, &in.ExchangePrice, "exchange price"},
		{fieldTransport, &in.Transport, "transport"},
		{fieldSource, &in.Source, "sourcing cost"},
	}
	for _, m := range money {
		*m.dst, err = decimal.NewFromString(strings.TrimSpace(f.inputs[m.idx].Value()))
		if err != nil {
			f.errMsg = m.name + " must be a number"
			return in, false
		}
	}

	f.errMsg = ""
	return in, true
}

// View renders the form.
func (f scenarioForm) View() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	labelStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	focusStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorHighlight)
	errStyle := lipgloss.NewStyle().Foreground(ColorDanger)

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("EDIT SCENARIO"))
	sb.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		label := fieldLabels[i]
		style := labelStyle
		marker := "  "
		if i == f.focus {
			style = focusStyle
			marker = "> "
		}
		sb.WriteString(fmt.Sprintf("%s%s %s\n",
			marker, style.Render(fmt.Sprintf("%-20s", label)), f.inputs[i].View()))
	}

	if f.errMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(errStyle.Render("  " + f.errMsg))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(HelpStyle.Render("tab: next field • enter: apply • esc: cancel"))

	return sb.String()
}
