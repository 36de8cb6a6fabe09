// Package ui provides the Bubble Tea TUI for the profit optimizer.
package ui

import (
	"github.com/noxustrader/simco-optimizer/business/profit/app"
)

// Message types for TUI updates

// AnalysisMsg is sent when a new profit analysis is ready.
type AnalysisMsg struct {
	Analysis *app.Analysis
}

// MarketStatusMsg is sent when market data availability changes.
type MarketStatusMsg struct {
	Available bool
	Detail    string
}

// ErrorMsg is sent when an error occurs.
type ErrorMsg struct {
	Error error
}

// LogMsg is sent to display a log message in the UI.
type LogMsg struct {
	Level   string // "info", "warn", "error"
	Message string
}

// TickMsg is sent periodically for UI updates.
type TickMsg struct{}

// StartModulesMsg signals that modules should start loading.
type StartModulesMsg struct{}

// StartupMsg is sent during application startup to show progress.
type StartupMsg struct {
	Step    string // Current step name
	Status  string // "pending", "loading", "done", "failed"
	Message string // Optional message
}
