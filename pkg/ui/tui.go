// Package ui provides the Bubble Tea TUI for the profit optimizer.
package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/noxustrader/simco-optimizer/business/profit/app"
	"github.com/noxustrader/simco-optimizer/pkg/ui/components"
)

// StartupStep represents a step in the startup process.
type StartupStep struct {
	Name   string
	Status string // "pending", "loading", "done", "failed"
}

// Phase represents the current UI phase.
type Phase string

const (
	PhaseWelcome   Phase = "welcome"   // Initial welcome screen
	PhaseStartup   Phase = "startup"   // Loading config and market module
	PhaseDashboard Phase = "dashboard" // Main dashboard
)

// WelcomeDuration is how long the welcome screen shows before auto-advancing.
const WelcomeDuration = 2 * time.Second

// ErrorEntry represents an error with timestamp.
type ErrorEntry struct {
	Message   string
	Timestamp time.Time
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	// Components
	breakdown *components.BreakdownComponent
	listings  *components.ListingsComponent
	status    *components.StatusComponent

	// Phase state
	phase        Phase
	welcomeStart time.Time

	// Scenario edit overlay
	editing bool
	form    scenarioForm

	// State
	ready         bool
	quitting      bool
	width         int
	height        int
	keys          KeyMap
	lastUpdate    time.Time
	analysisCount uint64
	errors        []ErrorEntry // Persistent error panel (last 3)
	logs          []string     // Recent log messages
	lastAnalysis  *app.Analysis

	// Startup state
	startupComplete bool
	startupSteps    map[string]*StartupStep
	startupTime     time.Time
}

// New creates a new TUI model.
func New() Model {
	now := time.Now()
	return Model{
		breakdown:    components.NewBreakdownComponent(),
		listings:     components.NewListingsComponent(12),
		status:       components.NewStatusComponent(),
		phase:        PhaseWelcome,
		welcomeStart: now,
		keys:         DefaultKeyMap(),
		logs:         make([]string, 0, 10),
		errors:       make([]ErrorEntry, 0, 3),
		startupSteps: map[string]*StartupStep{
			"config":    {Name: "Loading configuration", Status: "pending"},
			"market":    {Name: "Connecting to SimCompanies exchange", Status: "pending"},
			"optimizer": {Name: "Starting profit optimizer", Status: "pending"},
		},
		startupTime: now,
	}
}

// Init initializes the TUI model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd returns a command that sends a tick every 100ms for smooth animations.
func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Always allow quit
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

		// During welcome phase, any key skips to startup
		if m.phase == PhaseWelcome {
			m.phase = PhaseStartup
			m.startupTime = time.Now()
			// Trigger callback directly (don't use Send() from within Update)
			if OnStartModules != nil {
				go OnStartModules()
			}
			return m, tickCmd()
		}

		// Edit overlay swallows keys until applied or cancelled
		if m.editing {
			switch msg.String() {
			case "esc":
				m.editing = false
				return m, nil
			case "enter":
				input, ok := m.form.Value()
				if !ok {
					return m, nil
				}
				m.editing = false
				if OnScenarioChange != nil {
					go OnScenarioChange(input)
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "e":
			m.form = newScenarioForm(m.currentInput())
			m.editing = true
			return m, nil
		case "r":
			if OnRefresh != nil {
				go OnRefresh()
			}
			return m, nil
		case "up", "k":
			m.listings.ScrollUp()
			return m, nil
		case "down", "j":
			m.listings.ScrollDown()
			return m, nil
		case "c":
			m.errors = make([]ErrorEntry, 0, 3)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		// Check if welcome timeout has elapsed
		if m.phase == PhaseWelcome && time.Since(m.welcomeStart) >= WelcomeDuration {
			m.phase = PhaseStartup
			m.startupTime = time.Now()
			// Trigger callback directly (don't use Send() from within Update)
			if OnStartModules != nil {
				go OnStartModules()
			}
		}
		return m, tickCmd()

	case AnalysisMsg:
		if msg.Analysis != nil {
			m.applyAnalysis(msg.Analysis)
		}

	case MarketStatusMsg:
		m.status.Update(components.MarketStatus{
			Available: msg.Available,
			Detail:    msg.Detail,
			UpdatedAt: time.Now(),
		})
		if step, ok := m.startupSteps["market"]; ok && step.Status != "done" {
			step.Status = "done"
		}

	case ErrorMsg:
		m.logs = addLog(m.logs, "error", msg.Error.Error())
		// Keep last 3 in the persistent panel
		m.errors = append(m.errors, ErrorEntry{
			Message:   msg.Error.Error(),
			Timestamp: time.Now(),
		})
		if len(m.errors) > 3 {
			m.errors = m.errors[len(m.errors)-3:]
		}

	case LogMsg:
		m.logs = addLog(m.logs, msg.Level, msg.Message)

	case StartupMsg:
		if step, ok := m.startupSteps[msg.Step]; ok {
			step.Status = msg.Status
		}
		allDone := true
		for _, step := range m.startupSteps {
			if step.Status != "done" {
				allDone = false
				break
			}
		}
		if allDone {
			m.startupComplete = true
		}
	}

	return m, nil
}

// applyAnalysis feeds a finished analysis into the display components.
func (m *Model) applyAnalysis(a *app.Analysis) {
	m.lastAnalysis = a
	m.analysisCount++
	m.lastUpdate = time.Now()

	s := a.Scenario
	b := a.Breakdown

	m.breakdown.SetScenario(s.Product.Name(), groupDigits(s.Quantity))
	m.breakdown.Update([]components.BreakdownRow{
		{Label: "Unit price", Contract: s.ContractPrice.StringFixed(2), Exchange: s.ExchangePrice.StringFixed(2)},
		{Label: "Revenue", Contract: b.Contract.Revenue.StringFixed(2), Exchange: b.Exchange.Revenue.StringFixed(2)},
		{Label: "Transport", Contract: b.Contract.TransportCost.StringFixed(2), Exchange: b.Exchange.TransportCost.StringFixed(2)},
		{Label: "Production", Contract: b.Contract.ProductionCost.StringFixed(2), Exchange: b.Exchange.ProductionCost.StringFixed(2)},
		{Label: "Exchange fee", Contract: "-", Exchange: b.Exchange.Fee.StringFixed(2)},
		{Label: "In hand", Contract: b.Contract.InHand.StringFixed(2), Exchange: b.Exchange.InHand.StringFixed(2)},
		{Label: "Net profit", Contract: b.Contract.NetProfit.StringFixed(2), Exchange: b.Exchange.NetProfit.StringFixed(2)},
		{Label: "Net / unit", Contract: b.Contract.NetProfitPerUnit.StringFixed(4), Exchange: b.Exchange.NetProfitPerUnit.StringFixed(4)},
	})
	m.breakdown.SetVerdict(b.RequiredExchangePrice.StringFixed(4), b.ExchangeBeatsContract)

	if st := a.Standing; st != nil {
		rows := make([]components.ListingRow, 0, len(st.Listings))
		for i, l := range st.Listings {
			rows = append(rows, components.ListingRow{
				Position:  i + 1,
				Price:     l.Price.StringFixed(2),
				Quality:   l.Quality,
				Quantity:  groupDigits(l.Quantity),
				Seller:    l.Seller,
				PostedAgo: formatAgo(l.PostedAt),
				Own:       l.Own,
			})
		}
		m.listings.Update(rows, st.Position, st.Total,
			st.SuggestedPrice.StringFixed(2), st.MarketAvailable)
	}

	if step, ok := m.startupSteps["optimizer"]; ok && step.Status != "done" {
		step.Status = "done"
	}
	m.startupComplete = true
}

// currentInput seeds the edit form from the last analyzed scenario.
func (m *Model) currentInput() ScenarioInput {
	if m.lastAnalysis == nil {
		return ScenarioInput{}
	}
	s := m.lastAnalysis.Scenario
	return ScenarioInput{
		Quantity:      s.Quantity,
		Quality:       s.Quality,
		ContractPrice: s.ContractPrice,
		ExchangePrice: s.ExchangePrice,
		Transport:     s.TransportPerUnit,
		Source:        s.SourcePerUnit,
	}
}

// addLog adds a log message and returns the updated slice (keeps last 5).
func addLog(logs []string, level, message string) []string {
	timestamp := time.Now().Format("15:04:05")
	logLine := fmt.Sprintf("[%s] %s: %s", timestamp, level, message)
	logs = append(logs, logLine)
	if len(logs) > 5 {
		logs = logs[len(logs)-5:]
	}
	return logs
}

// groupDigits renders n with thousands separators.
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// formatAgo renders a timestamp as a compact "Xm ago" string.
func formatAgo(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "<1m ago"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return "\n  Goodbye!\n\n"
	}

	// Phase-based rendering
	switch m.phase {
	case PhaseWelcome:
		return m.renderWelcomeScreen()
	case PhaseStartup:
		if !m.startupComplete {
			return m.renderStartupScreen()
		}
		m.phase = PhaseDashboard
		fallthrough
	case PhaseDashboard:
		// Continue to main dashboard
	}

	if m.editing {
		return m.renderEditOverlay()
	}

	var b strings.Builder

	// Title
	title := TitleStyle.Render(" 📈 SimCompanies Profit Optimizer ")
	b.WriteString(title)
	b.WriteString("\n\n")

	// Status bar
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n\n")

	// Main content: breakdown on left, market standing on right
	leftCol := m.breakdown.View()
	rightCol := m.listings.View()

	if m.width > 120 {
		left := BoxStyle.Render(leftCol)
		right := BoxStyle.Render(rightCol)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	} else {
		b.WriteString(BoxStyle.Render(leftCol))
		b.WriteString("\n")
		b.WriteString(BoxStyle.Render(rightCol))
	}

	b.WriteString("\n\n")

	// Persistent error panel (show last 3 errors)
	if len(m.errors) > 0 {
		errorStyle := lipgloss.NewStyle().Foreground(ColorDanger)
		errorHeader := lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)
		mutedError := lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))

		b.WriteString(errorHeader.Render("ERRORS"))
		b.WriteString(mutedError.Render(" (c: clear)"))
		b.WriteString("\n")
		for _, err := range m.errors {
			ago := time.Since(err.Timestamp).Round(time.Second)
			b.WriteString(errorStyle.Render(fmt.Sprintf("  • %s ", err.Message)))
			b.WriteString(mutedError.Render(fmt.Sprintf("(%s ago)", ago)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Help
	b.WriteString(HelpStyle.Render("q: quit • e: edit scenario • r: refresh • ↑↓: scroll"))

	return b.String()
}

func (m Model) renderEditOverlay() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(" 📈 SimCompanies Profit Optimizer "))
	b.WriteString("\n\n")
	b.WriteString(BoxStyle.Render(m.form.View()))
	b.WriteString("\n")
	return b.String()
}

// renderWelcomeScreen renders the animated welcome screen.
func (m Model) renderWelcomeScreen() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	goldStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorWarning)

	mutedStyle := lipgloss.NewStyle().
		Foreground(ColorMuted)

	greenStyle := lipgloss.NewStyle().
		Foreground(ColorSecondary)

	// Animated dots based on time
	elapsed := time.Since(m.welcomeStart)
	dotCount := int(elapsed.Milliseconds()/300) % 4
	dots := strings.Repeat(".", dotCount)

	var sb strings.Builder

	sb.WriteString("\n\n\n\n")

	logo := `
   ███████╗██╗███╗   ███╗ ██████╗ ██████╗
   ██╔════╝██║████╗ ████║██╔════╝██╔═══██╗
   ███████╗██║██╔████╔██║██║     ██║   ██║
   ╚════██║██║██║╚██╔╝██║██║     ██║   ██║
   ███████║██║██║ ╚═╝ ██║╚██████╗╚██████╔╝
   ╚══════╝╚═╝╚═╝     ╚═╝ ╚═════╝ ╚═════╝
`
	sb.WriteString(titleStyle.Render(logo))
	sb.WriteString("\n")

	subtitle := "        P R O F I T   O P T I M I Z E R"
	sb.WriteString(mutedStyle.Render(subtitle))
	sb.WriteString("\n\n\n")

	tagline := "       💰  Contract or exchange?  💰"
	sb.WriteString(goldStyle.Render(tagline))
	sb.WriteString("\n\n\n")

	loading := fmt.Sprintf("           Initializing%s", dots)
	sb.WriteString(greenStyle.Render(loading))
	sb.WriteString("\n\n")

	hint := "     Press any key to skip, or wait..."
	sb.WriteString(mutedStyle.Render(hint))
	sb.WriteString("\n")

	return sb.String()
}

// renderStartupScreen renders the loading/startup screen.
func (m Model) renderStartupScreen() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF"))

	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	successStyle := lipgloss.NewStyle().Foreground(ColorSecondary)
	loadingStyle := lipgloss.NewStyle().Foreground(ColorWarning)
	failedStyle := lipgloss.NewStyle().Foreground(ColorDanger)

	var sb strings.Builder

	sb.WriteString("\n\n")
	sb.WriteString(titleStyle.Render("  📈 SimCompanies Profit Optimizer"))
	sb.WriteString("\n\n")
	sb.WriteString(headerStyle.Render("  Starting up..."))
	sb.WriteString("\n\n")

	stepOrder := []string{"config", "market", "optimizer"}
	for _, key := range stepOrder {
		step, ok := m.startupSteps[key]
		if !ok {
			continue
		}

		var icon, statusText string
		var style lipgloss.Style

		switch step.Status {
		case "done":
			icon = "✓"
			statusText = "Ready"
			style = successStyle
		case "loading":
			spinners := []string{"◐", "◓", "◑", "◒"}
			idx := int(time.Since(m.startupTime).Milliseconds()/200) % len(spinners)
			icon = spinners[idx]
			statusText = "Loading..."
			style = loadingStyle
		case "failed":
			icon = "✗"
			statusText = "Failed"
			style = failedStyle
		default:
			icon = "○"
			statusText = "Pending"
			style = mutedStyle
		}

		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			style.Render(icon),
			mutedStyle.Render(step.Name),
			style.Render(statusText),
		))
	}

	sb.WriteString("\n")
	elapsed := time.Since(m.startupTime).Round(time.Second)
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("  Elapsed: %s", elapsed)))
	sb.WriteString("\n\n")
	sb.WriteString(mutedStyle.Render("  Waiting for first analysis..."))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) renderStatusBar() string {
	var parts []string

	parts = append(parts, m.status.View())

	if m.analysisCount > 0 {
		countStyle := lipgloss.NewStyle().Foreground(ColorSecondary)
		parts = append(parts, countStyle.Render(fmt.Sprintf("Analyses: %d", m.analysisCount)))
	}

	if m.lastAnalysis != nil {
		parts = append(parts, MutedValue.Render(fmt.Sprintf("Product: %s", m.lastAnalysis.Scenario.Product.Name())))
	}

	if !m.lastUpdate.IsZero() {
		ago := time.Since(m.lastUpdate).Round(time.Second)
		parts = append(parts, MutedValue.Render(fmt.Sprintf("Updated: %s ago", ago)))
	}

	return strings.Join(parts, "  │  ")
}

// Program holds the Bubble Tea program instance for external access.
var Program *tea.Program

// OnStartModules is called when the welcome screen completes and modules should start.
// This is set by main.go to signal when to begin loading modules.
var OnStartModules func()

// OnScenarioChange is called when the user applies the scenario edit form.
var OnScenarioChange func(ScenarioInput)

// OnRefresh is called when the user requests an immediate re-analysis.
var OnRefresh func()

// Run starts the Bubble Tea program.
func Run() error {
	Program = tea.NewProgram(New(), tea.WithAltScreen())
	_, err := Program.Run()
	return err
}

// Send sends a message to the running program.
func Send(msg tea.Msg) {
	if Program != nil {
		Program.Send(msg)
	}
	// Call OnStartModules callback when StartModulesMsg is sent
	if _, ok := msg.(StartModulesMsg); ok && OnStartModules != nil {
		OnStartModules()
	}
}
