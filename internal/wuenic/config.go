package wuenic

import (
	"time"

	"github.com/YnHaddad/MSBA382Dash/internal/appconf"
)

const (
	// DefaultDebounce is how long the watcher waits after the last file
	// event before reloading. Spreadsheet editors write in several steps.
	DefaultDebounce = 500 * time.Millisecond

	// FallbackPollInterval is used when the file watcher cannot start and
	// no poll interval is configured.
	FallbackPollInterval = 30 * time.Second
)

type Config struct {
	SourcePath   string
	Watch        bool
	PollInterval time.Duration
	Debounce     time.Duration
	Env          appconf.Environment
	Verbose      bool
}

func (config Config) debounce() time.Duration {
	if config.Debounce <= 0 {
		return DefaultDebounce
	}
	return config.Debounce
}
