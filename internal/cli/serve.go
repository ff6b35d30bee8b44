package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"schedsim/api"
	"schedsim/internal/cache"
	"schedsim/internal/metrics"
	"schedsim/internal/store"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the scheduling HTTP service",
		Long: `serve starts the HTTP service exposing the scheduling algorithms, the
run history and a health endpoint. Run history is kept in SQLite; a Redis
result cache and a prometheus listener are attached when configured.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port (default from config)")

	return cmd
}

func runServer(port int) error {
	if port == 0 {
		port = cfg.Port
	}

	st, err := store.NewSQLiteStore(cfg.Store.Path, logger)
	if err != nil {
		return fmt.Errorf("open run history: %w", err)
	}
	defer st.Close()
	if err := st.Migrate(context.Background()); err != nil {
		return fmt.Errorf("migrate run history: %w", err)
	}
	logger.Info("run history ready", "path", cfg.Store.Path)

	var rc *cache.ResultCache
	if cfg.Cache.Enabled {
		rc = cache.New(cfg.Cache.Addr, cfg.Cache.TTL, logger)
		defer rc.Close()
		if err := rc.Ping(context.Background()); err != nil {
			logger.Warn("result cache unreachable, requests will recompute", "addr", cfg.Cache.Addr, "error", err)
		} else {
			logger.Info("result cache ready", "addr", cfg.Cache.Addr, "ttl", cfg.Cache.TTL)
		}
	}

	var m *metrics.Registry
	if cfg.Metrics.Enabled {
		promReg := prometheus.NewRegistry()
		m = metrics.NewRegistry(promReg)
		go func() {
			if err := metrics.Serve(cfg.Metrics.Addr, promReg, logger); err != nil {
				logger.Error("metrics listener failed", "error", err)
			}
		}()
	}

	handler := api.NewSchedulerHandlerImpl(&cfg.Scheduler, logger, st, rc, m)
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api.RegisterRoutes(app, handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", port)
		errCh <- app.Listen(fmt.Sprintf(":%d", port))
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
