// Package mem provides an in-memory registry fetcher for tests and local runs.
package mem

import (
	"context"
	"sync"

	"github.com/rotenkr/roten-api/internal/domain"
	"github.com/rotenkr/roten-api/internal/source"
)

type Fetcher struct {
	mu     sync.RWMutex
	source domain.Source
	rows   []source.Row
	err    error
}

func NewFetcher(src domain.Source, rows []source.Row) *Fetcher {
	return &Fetcher{source: src, rows: rows}
}

func (f *Fetcher) Source() domain.Source {
	return f.source
}

func (f *Fetcher) FetchAll(ctx context.Context) ([]source.Row, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.err != nil {
		return nil, f.err
	}
	out := make([]source.Row, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

// Fail makes every subsequent fetch return err. Pass nil to recover.
func (f *Fetcher) Fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}
