package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/BrandishEconomy/internal/auction"
	"github.com/osse101/BrandishEconomy/internal/bootstrap"
	"github.com/osse101/BrandishEconomy/internal/config"
	"github.com/osse101/BrandishEconomy/internal/effect"
	"github.com/osse101/BrandishEconomy/internal/inventory"
	"github.com/osse101/BrandishEconomy/internal/ledger"
	"github.com/osse101/BrandishEconomy/internal/pricing"
	"github.com/osse101/BrandishEconomy/internal/server"
	"github.com/osse101/BrandishEconomy/internal/session"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load reads .env first, so validation sees its variables too
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return fmt.Errorf("environment validation failed: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()
	for _, warning := range warnings {
		slog.Warn(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	catalog, err := bootstrap.LoadCatalog(ctx, cfg)
	if err != nil {
		storage.Close()
		return err
	}
	prices := pricing.NewEngine(catalog)

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		storage.Close()
		return err
	}
	bootstrap.RegisterEventHandlers(eventBus)
	natsConn, err := bootstrap.ConnectEventForwarding(cfg, eventBus)
	if err != nil {
		storage.Close()
		return err
	}

	confirmations := session.NewStore(session.DefaultSize, cfg.SellConfirmTTL)
	auctions := auction.NewService(storage.Store, storage.Locker, catalog, prices, publisher)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
	}, storage.Store, server.Services{
		Ledger:    ledger.NewService(storage.Store, storage.Locker),
		Inventory: inventory.NewService(storage.Store, storage.Locker, catalog, prices, publisher, confirmations),
		Prices:    prices,
		Effects:   effect.NewService(storage.Store, storage.Locker, catalog, publisher),
		Auctions:  auctions,
	})

	// Background jobs outlive the signal context so in-flight settlements
	// finish under the shutdown deadline instead of being cut off.
	pool, sched, err := bootstrap.StartBackgroundWork(context.WithoutCancel(ctx), cfg, auctions)
	if err != nil {
		storage.Close()
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownDeadline)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		ResilientPublisher: publisher,
		NATS:               natsConn,
		Storage:            storage,
	})
	return err
}
