package source

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Bounded retry around a single registry fetch. Kept tight because the fetch
// runs inside a request lifecycle.
const (
	maxRetries    = 2
	retryInterval = 100 * time.Millisecond
)

func fetchWithRetry(ctx context.Context, f Fetcher) ([]Row, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = retryInterval

	var rows []Row
	op := func() error {
		var err error
		rows, err = f.FetchAll(ctx)
		return err
	}
	notify := func(err error, next time.Duration) {
		slog.Warn("Retrying source fetch", "source", f.Source(), "error", err, "next", next)
	}

	err := backoff.RetryNotify(op, backoff.WithContext(backoff.WithMaxRetries(bo, maxRetries), ctx), notify)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
