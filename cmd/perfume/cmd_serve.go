package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/KurtErsin/perfume/internal/catalog"
	"github.com/KurtErsin/perfume/internal/event"
	"github.com/KurtErsin/perfume/internal/metrics"
	"github.com/KurtErsin/perfume/internal/server"
	"github.com/KurtErsin/perfume/internal/session"
	"github.com/KurtErsin/perfume/internal/web"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}
	cmd.Flags().String("host", "", "listen host (overrides server.host)")
	cmd.Flags().Int("port", 0, "listen port (overrides server.port)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		a.settings.Server.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		a.settings.Server.Port = port
	}

	logger, err := newLogger(a.settings.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("perfume server starting", zap.Int("perfumes", a.catalog.Len()))

	shop, err := a.shop()
	if err != nil {
		return err
	}

	m := metrics.New()
	bus := event.NewBus(logger.Named("event"))
	detach := m.Attach(bus)
	defer detach()

	sessions := session.NewStore(
		session.WithIdleTimeout(a.settings.Session.IdleTimeout),
		session.WithBus(bus),
		session.WithLogger(logger.Named("session")),
		session.WithSizeObserver(m.SetSessions),
	)

	pages, err := web.NewHandler(a.engine, sessions, shop, m, logger.Named("web"))
	if err != nil {
		return err
	}
	api := catalog.NewHandler(a.engine, shop, m, logger.Named("catalog"))

	addr := a.settings.Server.Addr()
	srv := server.New(addr, logger, m, server.Options{
		RateLimit: rate.Limit(a.settings.Server.RateLimit),
		Burst:     a.settings.Server.RateBurst,
	}, api, pages)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sessions.Run(ctx, a.settings.Session.SweepInterval)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	logger.Info("perfume server ready", zap.String("addr", addr))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
		return err
	}

	logger.Info("perfume server stopped")
	return nil
}
