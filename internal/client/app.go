// Package client implements the agent application runtime.
//
// It wires the local record store, client services, and the background sync
// coordinator into a single process lifecycle.
package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/babynumtime/babynumtime/internal/config"
	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/internal/service"
)

// Client defines the minimal lifecycle contract for runnable agent
// applications.
type Client interface {
	// Run starts the agent and blocks until exit.
	Run() error
}

type App struct {
	services *service.ClientServices
	workers  config.ClientWorkers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, workers config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("no client services provided")
	}

	return &App{
		services: services,
		workers:  workers,
		logger:   log,
	}, nil
}

// Run reconciles local records with the backend once, keeps the periodic
// sync cycle going while the storage mode stays cloud, and blocks until the
// process is signalled to stop.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	cfg, err := a.services.Profile.ActiveBaby(ctx)
	if err != nil {
		return fmt.Errorf("read storage mode: %w", err)
	}

	switch {
	case cfg == nil:
		a.logger.Info().Msg("no baby configured yet, records stay on this device")
	case cfg.IsCloud():
		if err = a.services.Sync.FullSync(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("initial sync failed, will retry on the next cycle")
		}

		if err = a.services.Sync.Start(ctx); err != nil {
			return fmt.Errorf("start sync coordinator: %w", err)
		}
		defer a.services.Sync.Stop()

		a.logger.Info().Str("babyId", cfg.BabyID).Dur("interval", a.workers.SyncInterval).
			Msg("periodic sync running")
	default:
		a.logger.Info().Msg("offline storage mode, sync disabled")
	}

	<-ctx.Done()
	a.logger.Info().Msg("agent shutting down")

	return nil
}
