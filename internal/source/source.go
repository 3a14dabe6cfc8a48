// Package source adapts the two upstream announcement registries into the
// unified record shape. Fetching pages through the store until exhaustion;
// partial failure of one registry degrades the result instead of failing it.
package source

import (
	"context"
	"log/slog"

	"github.com/rotenkr/roten-api/internal/apperr"
	"github.com/rotenkr/roten-api/internal/domain"
)

// Row is one raw upstream row with its column candidates in fallback order.
// Normalization picks the first non-empty candidate per field.
type Row struct {
	Source   domain.Source
	NativeID string

	Title        []string
	Organization []string
	Region       []string
	Target       []string
	Scale        []string
	Summary      []string
	Description  []string
	Purpose      []string

	StartDate string
	EndDate   string

	DetailURL []string
	ApplyURL  string
	Phone     []string
	Email     string
	Website   []string

	Attachments []string
}

// Fetcher pages through one upstream registry.
type Fetcher interface {
	Source() domain.Source
	FetchAll(ctx context.Context) ([]Row, error)
}

// FetchResult is the combined working set plus any per-source failures.
type FetchResult struct {
	Rows   []Row
	Errors map[domain.Source]error
}

// Degraded reports whether at least one source failed while another survived.
func (r *FetchResult) Degraded() bool {
	return len(r.Errors) > 0
}

// MultiFetcher aggregates the per-registry fetchers with bounded retry.
// Both sources failing is an upstream error; one failing yields the surviving
// source's rows with a degraded marker.
type MultiFetcher struct {
	fetchers []Fetcher
}

func NewMultiFetcher(fetchers ...Fetcher) *MultiFetcher {
	return &MultiFetcher{fetchers: fetchers}
}

func (m *MultiFetcher) FetchAll(ctx context.Context) (*FetchResult, error) {
	result := &FetchResult{Errors: make(map[domain.Source]error)}

	for _, f := range m.fetchers {
		rows, err := fetchWithRetry(ctx, f)
		if err != nil {
			slog.Warn("Source fetch failed", "source", f.Source(), "error", err)
			result.Errors[f.Source()] = err
			continue
		}
		result.Rows = append(result.Rows, rows...)
	}

	if len(m.fetchers) > 0 && len(result.Errors) == len(m.fetchers) {
		return nil, apperr.NewUpstream("데이터 소스를 사용할 수 없습니다", firstError(result.Errors))
	}

	return result, nil
}

func firstError(errs map[domain.Source]error) error {
	for _, err := range errs {
		return err
	}
	return nil
}
