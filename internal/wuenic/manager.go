// Package wuenic owns the current coverage dataset. The Manager loads the
// source workbook through a dataset.Cache, publishes immutable snapshots with
// a single atomic swap, and reloads when the file changes or on request.
package wuenic

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/YnHaddad/MSBA382Dash/internal/dataset"
	"github.com/YnHaddad/MSBA382Dash/internal/logging"
)

// Manager holds the current dataset snapshot and the background goroutines
// that keep it fresh.
type Manager struct {
	config Config
	cache  *dataset.Cache
	logger *slog.Logger

	current     atomic.Pointer[dataset.Dataset]
	lastUpdated atomic.Int64

	reloadMutex sync.Mutex
	reloads     int64
	failures    int64
	lastError   error

	watcher      *fsnotify.Watcher
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// Status describes the manager for health and debug pages.
type Status struct {
	Source      dataset.Identity `json:"source"`
	LastUpdated time.Time        `json:"lastUpdated"`
	Reloads     int64            `json:"reloads"`
	Failures    int64            `json:"failures"`
	LastError   string           `json:"lastError,omitempty"`
	Watching    bool             `json:"watching"`
}

// InitManager performs the initial load and starts the watcher and poller the
// config asks for. A source that cannot be loaded is returned as an error and
// no goroutines are left running.
func InitManager(ctx context.Context, config Config, cache *dataset.Cache, logger *slog.Logger) (*Manager, error) {
	logger = logging.OrDiscard(logger).With(slog.String("component", "dataset_manager"))
	if cache == nil {
		cache = dataset.NewCache(dataset.NewLoader(nil, logger))
	}

	manager := &Manager{
		config:       config,
		cache:        cache,
		logger:       logger,
		shutdownChan: make(chan struct{}),
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ds, err := cache.Get(config.SourcePath)
	if err != nil {
		logging.LogError(logger, "initial dataset load failed", err,
			slog.String("source", config.SourcePath))
		return nil, fmt.Errorf("loading %s: %w", config.SourcePath, err)
	}
	manager.setDataset(ds)

	pollInterval := config.PollInterval
	if config.Watch {
		if err := manager.startWatcher(); err != nil {
			logger.Warn("file watcher unavailable, falling back to polling",
				slog.String("source", config.SourcePath),
				slog.String("error", err.Error()))
			if pollInterval <= 0 {
				pollInterval = FallbackPollInterval
			}
		}
	}
	if pollInterval > 0 {
		manager.wg.Add(1)
		go manager.poll(pollInterval)
	}

	return manager, nil
}

// Dataset returns the current snapshot. Callers should load it once per
// request and compute against that value.
func (manager *Manager) Dataset() *dataset.Dataset {
	return manager.current.Load()
}

// LastUpdated is when the current snapshot was published.
func (manager *Manager) LastUpdated() time.Time {
	return time.Unix(0, manager.lastUpdated.Load())
}

// Reload loads the source through the cache and publishes the result when it
// differs from the current snapshot. On failure the current snapshot stays in
// place and the error is returned.
func (manager *Manager) Reload(ctx context.Context) error {
	return manager.reload(ctx, false)
}

// ForceReload drops the cached dataset before reloading, so the workbook is
// read again even if its identity is unchanged.
func (manager *Manager) ForceReload(ctx context.Context) error {
	return manager.reload(ctx, true)
}

func (manager *Manager) reload(ctx context.Context, force bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	manager.reloadMutex.Lock()
	defer manager.reloadMutex.Unlock()

	if force {
		manager.cache.Invalidate()
	}

	start := time.Now()
	ds, err := manager.cache.Get(manager.config.SourcePath)
	if err != nil {
		manager.failures++
		manager.lastError = err
		logging.LogError(manager.logger, "dataset reload failed, keeping previous snapshot", err,
			slog.String("source", manager.config.SourcePath))
		return fmt.Errorf("reloading %s: %w", manager.config.SourcePath, err)
	}
	manager.lastError = nil

	if ds == manager.current.Load() {
		return nil
	}

	manager.reloads++
	manager.setDataset(ds)
	logging.LogOperation(manager.logger, "dataset_reloaded",
		slog.String("source", manager.config.SourcePath),
		slog.Int("indicators", ds.Len()),
		slog.Duration("duration", time.Since(start)))
	return nil
}

func (manager *Manager) setDataset(ds *dataset.Dataset) {
	manager.current.Store(ds)
	manager.lastUpdated.Store(time.Now().UnixNano())

	if manager.config.Verbose {
		manager.LogStatistics()
	}
}

// Status returns a point-in-time description of the manager.
func (manager *Manager) Status() Status {
	manager.reloadMutex.Lock()
	defer manager.reloadMutex.Unlock()

	status := Status{
		LastUpdated: manager.LastUpdated(),
		Reloads:     manager.reloads,
		Failures:    manager.failures,
		Watching:    manager.watcher != nil,
	}
	if ds := manager.Dataset(); ds != nil {
		status.Source = ds.Source()
	}
	if manager.lastError != nil {
		status.LastError = manager.lastError.Error()
	}
	return status
}

// LogStatistics logs the shape of the current snapshot.
func (manager *Manager) LogStatistics() {
	ds := manager.Dataset()
	if ds == nil {
		return
	}
	manager.logger.Info("dataset statistics",
		slog.String("source", ds.Source().Path),
		slog.Time("modified", ds.Source().ModTime),
		slog.Int("indicators", ds.Len()),
		slog.Int("countries", len(ds.Countries())),
		slog.Int("years", len(ds.Years())))
}

// Shutdown stops the watcher and poller and waits for them to exit. It is
// safe to call more than once.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
		if manager.watcher != nil {
			logging.SafeCloseWithLogging(manager.watcher, manager.logger, "file_watcher")
		}
	})
}

func (manager *Manager) poll(interval time.Duration) {
	defer manager.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Unchanged identity is a cache hit, so this is cheap.
			_ = manager.Reload(context.Background())
		case <-manager.shutdownChan:
			manager.logger.Debug("stopping dataset polling")
			return
		}
	}
}
