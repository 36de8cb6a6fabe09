// Package infra contains infrastructure adapters for the profit context.
package infra

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/noxustrader/simco-optimizer/business/profit/app"
)

// ConsoleReporter implements Reporter for CLI output.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a new ConsoleReporter writing to stdout.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{
		out: os.Stdout,
	}
}

// NewConsoleReporterTo creates a ConsoleReporter writing to w.
func NewConsoleReporterTo(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: w}
}

// Start initializes the console reporter.
func (r *ConsoleReporter) Start(ctx context.Context) error {
	fmt.Fprintln(r.out, "SimCompanies Profit Optimizer")
	fmt.Fprintln(r.out, "=============================")
	return nil
}

// Report outputs a profit analysis to the console.
func (r *ConsoleReporter) Report(a *app.Analysis) {
	s := a.Scenario
	b := a.Breakdown

	fmt.Fprintln(r.out, "")
	fmt.Fprintln(r.out, "================================================================================")
	fmt.Fprintf(r.out, "PROFIT ANALYSIS — %s × %d (quality %d)\n", s.Product.Name(), s.Quantity, s.Quality)
	fmt.Fprintf(r.out, "Generated:      %s\n", a.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintln(r.out, "--------------------------------------------------------------------------------")
	fmt.Fprintf(r.out, "%-22s %15s %15s\n", "", "Contract", "Exchange")
	fmt.Fprintf(r.out, "%-22s %15s %15s\n", "Unit price", s.ContractPrice.StringFixed(2), s.ExchangePrice.StringFixed(2))
	fmt.Fprintf(r.out, "%-22s %15s %15s\n", "Revenue", b.Contract.Revenue.StringFixed(2), b.Exchange.Revenue.StringFixed(2))
	fmt.Fprintf(r.out, "%-22s %15s %15s\n", "Transport", b.Contract.TransportCost.StringFixed(2), b.Exchange.TransportCost.StringFixed(2))
	fmt.Fprintf(r.out, "%-22s %15s %15s\n", "Production", b.Contract.ProductionCost.StringFixed(2), b.Exchange.ProductionCost.StringFixed(2))
	fmt.Fprintf(r.out, "%-22s %15s %15s\n", "Exchange fee", "-", b.Exchange.Fee.StringFixed(2))
	fmt.Fprintf(r.out, "%-22s %15s %15s\n", "In hand", b.Contract.InHand.StringFixed(2), b.Exchange.InHand.StringFixed(2))
	fmt.Fprintf(r.out, "%-22s %15s %15s\n", "Net profit", b.Contract.NetProfit.StringFixed(2), b.Exchange.NetProfit.StringFixed(2))
	fmt.Fprintf(r.out, "%-22s %15s %15s\n", "Net / unit", b.Contract.NetProfitPerUnit.StringFixed(4), b.Exchange.NetProfitPerUnit.StringFixed(4))
	fmt.Fprintln(r.out, "--------------------------------------------------------------------------------")
	fmt.Fprintf(r.out, "Breakeven exchange price: %s\n", b.RequiredExchangePrice.StringFixed(4))
	fmt.Fprintf(r.out, "Verdict:                  %s sale is better\n", verdictLabel(a))

	if st := a.Standing; st != nil {
		fmt.Fprintln(r.out, "--------------------------------------------------------------------------------")
		fmt.Fprintf(r.out, "MARKET STANDING — rank %d of %d", st.Position, st.Total)
		if !st.MarketAvailable {
			fmt.Fprint(r.out, "  (market data unavailable)")
		}
		fmt.Fprintln(r.out, "")
		fmt.Fprintf(r.out, "%4s %10s %4s %11s  %-24s %s\n", "#", "Price", "Q", "Quantity", "Seller", "Posted")
		for i, l := range st.Listings {
			marker := " "
			if l.Own {
				marker = ">"
			}
			fmt.Fprintf(r.out, "%s%3d %10s %4d %11d  %-24s %s\n",
				marker, i+1, l.Price.StringFixed(2), l.Quality, l.Quantity,
				l.Seller, l.PostedAt.Format("15:04:05"))
		}
		fmt.Fprintf(r.out, "Suggested price:          %s\n", st.SuggestedPrice.StringFixed(2))
	}
	fmt.Fprintln(r.out, "================================================================================")
}

func verdictLabel(a *app.Analysis) string {
	if a.Breakdown.ExchangeBeatsContract {
		return "Exchange"
	}
	return "Contract"
}

// UpdateMarketStatus outputs market availability changes.
func (r *ConsoleReporter) UpdateMarketStatus(available bool, detail string) {
	status := "unavailable"
	if available {
		status = "live"
	}
	fmt.Fprintf(r.out, "[%s] market: %s (%s)\n", time.Now().Format("15:04:05"), status, detail)
}

// Stop gracefully shuts down the console reporter.
func (r *ConsoleReporter) Stop() error {
	fmt.Fprintln(r.out, "")
	fmt.Fprintln(r.out, "Profit Optimizer Stopped")
	return nil
}
