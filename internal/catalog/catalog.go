// Package catalog orchestrates the per-request pipeline: fetch both
// registries, normalize, enrich against today, then filter/rank/paginate.
// Nothing is cached between requests; the derived deadline flags must see the
// current date.
package catalog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/rotenkr/roten-api/internal/apperr"
	"github.com/rotenkr/roten-api/internal/domain"
	"github.com/rotenkr/roten-api/internal/enrich"
	"github.com/rotenkr/roten-api/internal/rules"
	"github.com/rotenkr/roten-api/internal/search"
	"github.com/rotenkr/roten-api/internal/source"
	"github.com/rotenkr/roten-api/pkg/pagination"
)

// AllFetcher is the combined upstream contract the catalog depends on.
type AllFetcher interface {
	FetchAll(ctx context.Context) (*source.FetchResult, error)
}

type Catalog struct {
	fetcher AllFetcher
	table   *rules.Table
	engine  *search.Engine
	now     func() time.Time
}

type Option func(*Catalog)

// WithClock injects the as-of date for deadline derivations. Tests use this;
// production keeps time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		c.now = now
	}
}

func New(fetcher AllFetcher, table *rules.Table, opts ...Option) *Catalog {
	c := &Catalog{
		fetcher: fetcher,
		table:   table,
		engine:  search.NewEngine(table),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search applies the listing filters and slices out the requested page.
func (c *Catalog) Search(ctx context.Context, criteria domain.SearchCriteria, page *pagination.OffsetRequest) (*pagination.OffsetResult[domain.Announcement], error) {
	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := c.engine.Filter(records, criteria)
	page.Normalize()

	results := pagination.Slice(filtered, page)
	return pagination.NewOffsetResult(results, int64(len(filtered)), page.Page, page.Size), nil
}

// SmartSearch filters then ranks by match score.
func (c *Catalog) SmartSearch(ctx context.Context, criteria domain.SearchCriteria) ([]domain.ScoredAnnouncement, error) {
	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := c.engine.Filter(records, criteria)
	return c.engine.Rank(filtered, criteria), nil
}

// CountResult is the count-only answer with its per-source breakdown.
type CountResult struct {
	Count     int
	Breakdown map[domain.Source]int
}

// Count sizes the filtered working set per source without shaping rows.
func (c *Catalog) Count(ctx context.Context, criteria domain.SearchCriteria) (*CountResult, error) {
	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := c.engine.Filter(records, criteria)
	breakdown := map[domain.Source]int{
		domain.SourceBizInfo:  0,
		domain.SourceKStartup: 0,
	}
	for _, a := range filtered {
		breakdown[a.Source]++
	}

	return &CountResult{Count: len(filtered), Breakdown: breakdown}, nil
}

// Get resolves a single record by its wire id. Expired records are still
// retrievable here; only listing paths exclude them.
func (c *Catalog) Get(ctx context.Context, id string) (*domain.Announcement, error) {
	prefix, _, found := strings.Cut(id, "_")
	if !found {
		return nil, apperr.NewValidation("잘못된 ID 형식입니다")
	}
	if _, ok := domain.SourceFromPrefix(prefix); !ok {
		return nil, apperr.NewValidation("잘못된 ID 형식입니다")
	}

	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, apperr.NewNotFound("데이터를 찾을 수 없습니다")
}

// Status labels used by the stats endpoint.
const (
	StatusOpen   = "진행중"
	StatusClosed = "마감"
)

// Stats summarizes the whole working set.
type Stats struct {
	Total   int
	Status  map[string]int
	Sources map[domain.Source]int
}

func (c *Catalog) Stats(ctx context.Context) (*Stats, error) {
	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Total:  len(records),
		Status: map[string]int{StatusOpen: 0, StatusClosed: 0},
		Sources: map[domain.Source]int{
			domain.SourceBizInfo:  0,
			domain.SourceKStartup: 0,
		},
	}
	for _, a := range records {
		stats.Sources[a.Source]++
		if a.IsExpired {
			stats.Status[StatusClosed]++
		} else {
			stats.Status[StatusOpen]++
		}
	}
	return stats, nil
}

func (c *Catalog) load(ctx context.Context) ([]domain.Announcement, error) {
	result, err := c.fetcher.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if result.Degraded() {
		for src, srcErr := range result.Errors {
			slog.Warn("Serving degraded result set", "failed_source", src, "error", srcErr)
		}
	}

	records := source.NormalizeAll(result.Rows)
	return enrich.EnrichAll(records, c.table, c.now()), nil
}
