package wuenic

import (
	"log/slog"

	"github.com/YnHaddad/MSBA382Dash/internal/dataset"
	"github.com/YnHaddad/MSBA382Dash/internal/logging"
)

// NewStaticManager returns a Manager serving ds with no source, watcher or
// poller. Reload on it fails. Intended for handler tests.
func NewStaticManager(ds *dataset.Dataset, logger *slog.Logger) *Manager {
	manager := &Manager{
		config:       Config{SourcePath: ds.Source().Path},
		cache:        dataset.NewCache(nil),
		logger:       logging.OrDiscard(logger),
		shutdownChan: make(chan struct{}),
	}
	manager.setDataset(ds)
	return manager
}

// MockSetDataset publishes ds as the current snapshot.
func (manager *Manager) MockSetDataset(ds *dataset.Dataset) {
	manager.setDataset(ds)
}
