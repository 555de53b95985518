package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// SafeCloseWithLogging closes resource and logs, rather than returns, a
// close failure. Use it where nothing upstream can act on the error, such
// as shutdown paths.
func SafeCloseWithLogging(closer io.Closer, logger *slog.Logger, resource string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		LogError(logger, "failed to close resource", err, slog.String("resource", resource))
	}
}

// CloseInto is meant to be deferred by functions with a named error result.
// A close failure is logged and joined onto *errp so that callers see both
// the primary error and the cleanup failure.
func CloseInto(errp *error, closer io.Closer, logger *slog.Logger, resource string) {
	if closer == nil {
		return
	}
	err := closer.Close()
	if err == nil {
		return
	}
	LogError(logger, "failed to close resource", err, slog.String("resource", resource))
	*errp = errors.Join(*errp, fmt.Errorf("closing %s: %w", resource, err))
}
