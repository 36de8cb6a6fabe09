// Package app contains application services and port definitions for the profit context.
package app

import (
	"context"
)

// Reporter defines the interface for presenting profit analyses.
type Reporter interface {
	// Start initializes the reporter.
	Start(ctx context.Context) error

	// Report sends a completed analysis to be displayed/logged.
	Report(a *Analysis)

	// UpdateMarketStatus updates the market data availability display.
	UpdateMarketStatus(available bool, detail string)

	// Stop gracefully shuts down the reporter.
	Stop() error
}
