package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/babynumtime/babynumtime/internal/adapter"
	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/internal/store"
	"github.com/babynumtime/babynumtime/models"
)

const defaultSyncInterval = 30 * time.Minute

type syncCoordinator struct {
	localStore store.LocalRecordStore
	gateway    adapter.CloudGateway
	interval   time.Duration
	callbacks  SyncCallbacks
	logger     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncCoordinator creates a coordinator that runs one sync cycle per
// interval. If interval is zero or negative it defaults to 30 minutes. The
// coordinator is idle until Start is called.
func NewSyncCoordinator(localStore store.LocalRecordStore, gateway adapter.CloudGateway, interval time.Duration, callbacks SyncCallbacks, log *logger.Logger) SyncCoordinator {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	return &syncCoordinator{
		localStore: localStore,
		gateway:    gateway,
		interval:   interval,
		callbacks:  callbacks,
		logger:     log,
	}
}

// Start implements SyncCoordinator. It stops any previously running job, then
// launches a background goroutine that runs one cycle immediately and one per
// interval tick afterwards. The goroutine exits when ctx is cancelled, Stop
// is called, or a cycle finds the config no longer in cloud mode.
func (c *syncCoordinator) Start(ctx context.Context) error {
	cfg, err := c.localStore.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("read config before sync start: %w", err)
	}
	if cfg == nil || !cfg.IsCloud() {
		return ErrNotCloudMode
	}

	c.Stop()

	c.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		t := time.NewTicker(c.interval)
		defer t.Stop()

		if !c.runCycle(jobCtx) {
			return
		}

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if !c.runCycle(jobCtx) {
					return
				}
			}
		}
	}()

	return nil
}

// Stop implements SyncCoordinator. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (c *syncCoordinator) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
}

// runCycle performs one push-then-conditional-pull cycle. It returns false
// when the coordinator should stop itself because the active config left
// cloud mode.
func (c *syncCoordinator) runCycle(ctx context.Context) bool {
	cfg, err := c.localStore.GetConfig(ctx)
	if err != nil {
		c.logger.Err(err).Msg("sync cycle: cannot read config")
		return true
	}
	if cfg == nil || !cfg.IsCloud() {
		c.logger.Info().Msg("config left cloud mode, stopping periodic sync")
		return false
	}

	pending, err := c.localStore.HasPendingSync(ctx)
	if err != nil {
		c.logger.Err(err).Msg("sync cycle: cannot read pending flag")
		return true
	}

	if pending {
		pushErr := c.push(ctx, cfg.BabyID)
		if pushErr != nil {
			c.logger.Warn().Err(pushErr).Msg("sync cycle: push failed, will retry next tick")
		}
		if c.callbacks.OnPush != nil {
			c.callbacks.OnPush(pushErr)
		}
	}

	// pull only when nothing is pending, so unsynced local edits are never
	// overwritten
	pending, err = c.localStore.HasPendingSync(ctx)
	if err != nil {
		c.logger.Err(err).Msg("sync cycle: cannot re-read pending flag")
		return true
	}
	if !pending {
		if pullErr := c.pull(ctx, cfg.BabyID); pullErr != nil {
			c.logger.Warn().Err(pullErr).Msg("sync cycle: pull failed")
		}
	}

	return true
}

func (c *syncCoordinator) PushNow(ctx context.Context) error {
	babyID, err := c.cloudBabyID(ctx)
	if err != nil {
		return err
	}

	return c.push(ctx, babyID)
}

func (c *syncCoordinator) SyncNow(ctx context.Context) error {
	babyID, err := c.cloudBabyID(ctx)
	if err != nil {
		return err
	}

	return c.push(ctx, babyID)
}

func (c *syncCoordinator) FullSync(ctx context.Context) error {
	babyID, err := c.cloudBabyID(ctx)
	if err != nil {
		return err
	}

	if err = c.push(ctx, babyID); err != nil {
		return err
	}

	// pull unconditionally: the user explicitly asked to converge on the
	// state just pushed
	if err = c.pull(ctx, babyID); err != nil {
		c.logger.Warn().Err(err).Msg("full sync: pull after push failed")
	}

	return nil
}

func (c *syncCoordinator) MarkPending(ctx context.Context) error {
	return c.localStore.MarkPendingSync(ctx)
}

func (c *syncCoordinator) LastSync(ctx context.Context) (*time.Time, error) {
	return c.localStore.GetLastSync(ctx)
}

// push uploads the full local snapshot. On success the pending flag clears
// and last-sync updates; on failure the pending flag is set so a later cycle
// retries.
func (c *syncCoordinator) push(ctx context.Context, babyID string) error {
	snapshot, err := c.localStore.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("read local snapshot: %w", err)
	}

	if err = c.gateway.SyncData(ctx, babyID, snapshot); err != nil {
		if markErr := c.localStore.MarkPendingSync(ctx); markErr != nil {
			c.logger.Err(markErr).Msg("cannot persist pending flag after failed push")
		}
		return fmt.Errorf("push snapshot: %w", err)
	}

	if err = c.localStore.ClearPendingSync(ctx); err != nil {
		return fmt.Errorf("clear pending flag: %w", err)
	}
	if err = c.localStore.SetLastSync(ctx, time.Now()); err != nil {
		return fmt.Errorf("record last sync: %w", err)
	}

	return nil
}

// pull downloads the remote snapshot and overwrites all local collections.
func (c *syncCoordinator) pull(ctx context.Context, babyID string) error {
	snapshot, err := c.gateway.GetData(ctx, babyID)
	if err != nil {
		if c.callbacks.OnPull != nil {
			c.callbacks.OnPull(models.DataSnapshot{}, err)
		}
		return fmt.Errorf("pull snapshot: %w", err)
	}

	if err = c.localStore.ReplaceAll(ctx, snapshot); err != nil {
		if c.callbacks.OnPull != nil {
			c.callbacks.OnPull(models.DataSnapshot{}, err)
		}
		return fmt.Errorf("overwrite local collections: %w", err)
	}

	if c.callbacks.OnPull != nil {
		c.callbacks.OnPull(snapshot, nil)
	}

	return nil
}

func (c *syncCoordinator) cloudBabyID(ctx context.Context) (string, error) {
	cfg, err := c.localStore.GetConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("read config: %w", err)
	}
	if cfg == nil || !cfg.IsCloud() {
		return "", ErrNotCloudMode
	}

	return cfg.BabyID, nil
}
