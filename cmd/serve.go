package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/tabcal/internal/instrumentation"
	"github.com/teemow/tabcal/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		debugMode      bool
		addr           string
		settingsPath   string
		refreshSpec    string
		metricsEnabled bool
		metricsAddr    string
		srcFlags       sourceFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the new-tab calendar page server",
		Long: `Start the local HTTP server that renders the calendar page. Point the
browser's new-tab page at the server address (default http://127.0.0.1:8793).

Events are cached between page loads and refreshed in the background; the
Refresh button on the page forces a refetch. Settings changed through the
page form are persisted to the settings file.

Prometheus metrics are served on a dedicated port (default 127.0.0.1:9090)
unless disabled with --metrics-enabled=false or INSTRUMENTATION_ENABLED=false.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debugMode {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}

			return runServe(addr, settingsPath, refreshSpec, metricsEnabled, metricsAddr, srcFlags)
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "Listen address for the page server")
	cmd.Flags().StringVar(&settingsPath, "settings", "", "Settings file path (default: user config dir)")
	cmd.Flags().StringVar(&refreshSpec, "refresh", server.DefaultRefreshSpec, "Background refresh schedule (cron spec, e.g. '@every 5m')")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Metrics server address. Can also use METRICS_ADDR env var.")
	srcFlags.register(cmd)

	return cmd
}

func runServe(addr, settingsPath, refreshSpec string, metricsEnabled bool, metricsAddr string, srcFlags sourceFlags) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load metrics config from environment if not set via flags
	if os.Getenv("METRICS_ENABLED") == "false" {
		metricsEnabled = false
	}
	if env := os.Getenv("METRICS_ADDR"); env != "" && metricsAddr == server.DefaultMetricsAddr {
		metricsAddr = env
	}

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			slog.Error("error during instrumentation shutdown", "error", err)
		}
	}()

	// Start metrics server if enabled
	var metricsServer *server.MetricsServer
	if metricsEnabled && provider.Enabled() {
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsAddr,
			Enabled:                 true,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		// Use ready channel to confirm the metrics server started
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		select {
		case <-metricsReady:
			slog.Info("metrics server started", "addr", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
	}

	srv, err := server.New(server.Config{
		Addr:                    addr,
		SettingsPath:            settingsPath,
		SourceFactory:           srcFlags.factory(time.Local),
		InstrumentationProvider: provider,
		RefreshSpec:             refreshSpec,
	})
	if err != nil {
		return fmt.Errorf("failed to create page server: %w", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
		close(serverErr)
	}()

	fmt.Printf("tabcal serving on http://%s\n", srv.Addr())

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("page server failed: %w", err)
		}
		return nil
	case <-shutdownCtx.Done():
	}

	slog.Info("shutdown signal received")
	drainCtx, drainCancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
	defer drainCancel()

	if metricsServer != nil {
		if err := metricsServer.Shutdown(drainCtx); err != nil {
			slog.Error("error shutting down metrics server", "error", err)
		}
	}
	if err := srv.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("failed to shut down page server: %w", err)
	}
	return nil
}
