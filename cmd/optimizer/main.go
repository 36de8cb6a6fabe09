// Package main is the entry point for the SimCompanies Profit Optimizer.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/noxustrader/simco-optimizer/business/market"
	marketDI "github.com/noxustrader/simco-optimizer/business/market/di"
	"github.com/noxustrader/simco-optimizer/business/profit"
	profitApp "github.com/noxustrader/simco-optimizer/business/profit/app"
	profitDI "github.com/noxustrader/simco-optimizer/business/profit/di"
	profitDomain "github.com/noxustrader/simco-optimizer/business/profit/domain"
	"github.com/noxustrader/simco-optimizer/internal/apm"
	"github.com/noxustrader/simco-optimizer/internal/config"
	"github.com/noxustrader/simco-optimizer/internal/health"
	"github.com/noxustrader/simco-optimizer/internal/logger"
	"github.com/noxustrader/simco-optimizer/internal/metrics"
	"github.com/noxustrader/simco-optimizer/internal/monolith"
	"github.com/noxustrader/simco-optimizer/pkg/ui"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	// Parse flags
	configPath := flag.String("config", "", "Path to configuration file")
	cliMode := flag.Bool("cli", false, "Run in CLI mode with logs (no TUI)")
	once := flag.Bool("once", false, "Run one analysis and exit (implies -cli)")
	productName := flag.String("product", "", "Product to analyze (overrides config)")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("simco-optimizer %s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	// TUI is the default, CLI is for scripting and debugging
	tuiMode := !*cliMode && !*once

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		if !tuiMode {
			fmt.Fprintf(os.Stderr, "received shutdown signal: %v\n", sig)
		}
		cancel()
	}()

	// Run application
	if err := run(ctx, *configPath, *productName, tuiMode, *once); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, productName string, tuiMode, once bool) error {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Runtime overrides
	cfg.App.TUIMode = tuiMode
	if productName != "" {
		cfg.Scenario.Product = productName
	}

	// Setup logger (only log to stderr in CLI mode)
	logLevel := logger.LevelInfo
	switch cfg.App.LogLevel {
	case "debug":
		logLevel = logger.LevelDebug
	case "warn":
		logLevel = logger.LevelWarn
	case "error":
		logLevel = logger.LevelError
	}

	var log *logger.Logger
	if tuiMode {
		// In TUI mode, suppress logs (discard output)
		log = logger.New(io.Discard, logLevel, cfg.App.Name, nil)
	} else {
		log = logger.New(os.Stderr, logLevel, cfg.App.Name, nil)
		log.Info(ctx, "starting SimCompanies Profit Optimizer",
			"version", version,
			"environment", cfg.App.Environment,
		)
	}

	// Initialize observability if enabled
	var traceProvider apm.TraceProvider
	if cfg.Telemetry.Enabled {
		if cfg.Telemetry.ServiceName != "" {
			os.Setenv("OTEL_SERVICE_NAME", cfg.Telemetry.ServiceName)
		}
		if cfg.Telemetry.OTLPEndpoint != "" {
			os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Telemetry.OTLPEndpoint)
		}

		traceProvider = apm.NewTraceProvider(log, apm.WithProvider(apm.ZipkinProvider, log))
		log.Info(ctx, "tracing initialized", "provider", "zipkin", "endpoint", cfg.Telemetry.OTLPEndpoint)

		metrics.NewMetricProvider(
			metrics.WithServiceName(cfg.Telemetry.ServiceName),
			metrics.WithProviderConfig(metrics.ProviderCfg{
				Provider: metrics.PrometheusProvider,
			}),
		)

		port := cfg.Telemetry.PrometheusPort
		if port == 0 {
			port = 9090
		}
		go metrics.ServePrometheusMetrics(metrics.WithPort(strconv.Itoa(port)))
		log.Info(ctx, "prometheus metrics server started", "port", port)
	}
	defer func() {
		if traceProvider != nil {
			traceProvider.Stop()
		}
	}()

	// Create monolith (application container)
	mono, err := monolith.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create monolith: %w", err)
	}
	defer mono.Close()

	// Define modules in dependency order
	modules := []monolith.Module{
		&market.Module{}, // Must be first - provides the listing ranker
		&profit.Module{}, // Depends on market
	}

	// Register all module services
	if err := mono.RegisterModules(modules...); err != nil {
		return fmt.Errorf("failed to register modules: %w", err)
	}

	// Health check server with a market readiness probe
	if !once {
		healthServer := health.NewServer(8081, version)
		healthServer.RegisterCheck("market", func(ctx context.Context) (bool, string) {
			if err := marketDI.GetProvider(mono.Services()).CheckHealth(ctx); err != nil {
				return false, err.Error()
			}
			return true, ""
		})
		if err := healthServer.Start(); err != nil {
			log.Warn(ctx, "failed to start health server", "error", err)
		} else {
			log.Info(ctx, "health server started", "port", 8081)
		}
		defer healthServer.Stop(ctx)
	}

	if once {
		return runOnce(ctx, cfg, mono, log)
	}

	if tuiMode {
		// TUI mode: Start modules in background so TUI shows immediately
		startFunc := func() error {
			if err := mono.StartModules(ctx, modules...); err != nil {
				return fmt.Errorf("failed to start modules: %w", err)
			}
			return nil
		}
		stopFunc := func() {
			optimizer := profitDI.GetOptimizer(mono.Services())
			optimizer.Stop()
		}
		return runTUI(ctx, mono, startFunc, stopFunc)
	}

	// CLI mode: Start modules synchronously. The profit module starts
	// the optimizer's analysis loop.
	if err := mono.StartModules(ctx, modules...); err != nil {
		return fmt.Errorf("failed to start modules: %w", err)
	}

	optimizer := profitDI.GetOptimizer(mono.Services())
	return runCLI(ctx, optimizer, log)
}

// runOnce performs a single analysis and prints it, for scripting.
func runOnce(ctx context.Context, cfg *config.Config, mono monolith.Monolith, log *logger.Logger) error {
	scenario, err := profit.ScenarioFromConfig(&cfg.Scenario, mono.ProductRegistry())
	if err != nil {
		return err
	}

	log.Info(ctx, "running single analysis", "product", scenario.Product.Name())

	optimizer := profitDI.GetOptimizer(mono.Services())
	analysis, err := optimizer.Analyze(ctx, scenario)
	if err != nil {
		return err
	}

	reporter := profitDI.GetReporter(mono.Services())
	reporter.Report(analysis)
	return nil
}

func runCLI(ctx context.Context, optimizer *profitApp.Optimizer, log *logger.Logger) error {
	log.Info(ctx, "all modules started, analysis loop running")

	// Wait for shutdown
	<-ctx.Done()

	log.Info(ctx, "shutting down")

	if err := optimizer.Stop(); err != nil {
		log.Error(ctx, "error stopping optimizer", "error", err)
	}

	return nil
}

func runTUI(ctx context.Context, mono monolith.Monolith, startFunc func() error, stopFunc func()) error {
	// Channel to receive StartModulesMsg signal
	startSignal := make(chan struct{}, 1)
	ui.OnStartModules = func() {
		select {
		case startSignal <- struct{}{}:
		default:
		}
	}

	// User edits flow back into the optimizer
	ui.OnScenarioChange = func(input ui.ScenarioInput) {
		optimizer := profitDI.GetOptimizer(mono.Services())
		current := optimizer.Scenario()
		next := profitDomain.Scenario{
			Product:          current.Product,
			Quantity:         input.Quantity,
			Quality:          input.Quality,
			ContractPrice:    input.ContractPrice,
			ExchangePrice:    input.ExchangePrice,
			TransportPerUnit: input.Transport,
			SourcePerUnit:    input.Source,
		}
		if err := next.Validate(); err != nil {
			ui.Send(ui.ErrorMsg{Error: err})
			return
		}
		optimizer.SetScenario(next)
		optimizer.Refresh(ctx)
	}
	ui.OnRefresh = func() {
		profitDI.GetOptimizer(mono.Services()).Refresh(ctx)
	}

	// Create and start the TUI program IMMEDIATELY (shows welcome screen)
	p := tea.NewProgram(ui.New(), tea.WithAltScreen())
	ui.Program = p

	// Run module startup in background (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		// Wait for welcome screen to complete
		select {
		case <-startSignal:
			// Welcome complete, start modules
		case <-ctx.Done():
			errCh <- nil
			return
		}

		ui.Send(ui.StartupMsg{Step: "config", Status: "done"})
		ui.Send(ui.StartupMsg{Step: "market", Status: "loading"})

		if err := startFunc(); err != nil {
			ui.Send(ui.StartupMsg{Step: "market", Status: "failed"})
			ui.Send(ui.ErrorMsg{Error: err})
			errCh <- err
			return
		}
		ui.Send(ui.StartupMsg{Step: "market", Status: "done"})

		// Wait for context cancellation
		<-ctx.Done()

		stopFunc()
		errCh <- nil
	}()

	// Run TUI (blocking) - shows immediately with welcome screen
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	// Check for background errors
	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}
