// Package infra contains infrastructure adapters for the profit context.
package infra

import (
	"context"

	"github.com/noxustrader/simco-optimizer/business/profit/app"
	"github.com/noxustrader/simco-optimizer/pkg/ui"
)

// TUIReporter implements Reporter for the Bubble Tea dashboard. It
// forwards analyses as messages to the running program; the program
// itself is started by main before the modules come up.
type TUIReporter struct{}

// NewTUIReporter creates a new TUIReporter.
func NewTUIReporter() *TUIReporter {
	return &TUIReporter{}
}

// Start initializes the TUI reporter.
func (r *TUIReporter) Start(ctx context.Context) error {
	ui.Send(ui.StartupMsg{Step: "optimizer", Status: "loading"})
	return nil
}

// Report sends a profit analysis to the TUI.
func (r *TUIReporter) Report(a *app.Analysis) {
	ui.Send(ui.AnalysisMsg{Analysis: a})
}

// UpdateMarketStatus sends market availability to the TUI.
func (r *TUIReporter) UpdateMarketStatus(available bool, detail string) {
	ui.Send(ui.MarketStatusMsg{Available: available, Detail: detail})
}

// Stop gracefully shuts down the TUI reporter.
func (r *TUIReporter) Stop() error {
	return nil
}
