// Package search implements the filter and ranking pipeline over enriched
// announcement records. All operations are O(n) scans over the request's
// working set; there is no shared state between requests.
package search

import (
	"strings"

	"github.com/rotenkr/roten-api/internal/domain"
	"github.com/rotenkr/roten-api/internal/rules"
	"github.com/rotenkr/roten-api/pkg/stringsutil"
)

type Engine struct {
	table *rules.Table
}

func NewEngine(table *rules.Table) *Engine {
	return &Engine{table: table}
}

// Filter applies the listing filters. Expired records never pass; detail
// lookups bypass this path on purpose.
func (e *Engine) Filter(records []domain.Announcement, c domain.SearchCriteria) []domain.Announcement {
	queryTokens := stringsutil.Tokens(strings.ToLower(c.Query))
	stageKeywords := e.table.StageKeywords(c.Stages)
	needsKeywords := e.table.NeedsKeywords(c.Needs)

	var out []domain.Announcement
	for _, a := range records {
		if a.IsExpired {
			continue
		}
		if !matchesQuery(&a, queryTokens) {
			continue
		}
		if !c.RegionIsWildcard() && !stringsutil.ContainsFold(a.Region, c.Region) {
			continue
		}
		if len(c.Stages) > 0 && !matchesAny(a.TargetSearchText(), stageKeywords) {
			continue
		}
		if c.SupportType != "" && !matchesSupportType(&a, c.SupportType) {
			continue
		}
		if !matchesDeadline(&a, c.Deadline) {
			continue
		}
		if len(needsKeywords) > 0 && !matchesAny(a.ContentText(), needsKeywords) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// matchesQuery requires every whitespace-separated token to occur in the
// searchable text (conjunctive, not any-of).
func matchesQuery(a *domain.Announcement, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	haystack := a.SearchText()
	for _, token := range tokens {
		if !strings.Contains(haystack, token) {
			return false
		}
	}
	return true
}

func matchesAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func matchesSupportType(a *domain.Announcement, want string) bool {
	for _, st := range a.SupportTypes {
		if stringsutil.ContainsFold(st, want) {
			return true
		}
	}
	return false
}

// matchesDeadline checks the bucketed day range. Records without a deadline
// never match a bucketed filter.
func matchesDeadline(a *domain.Announcement, bucket domain.DeadlineBucket) bool {
	min, max, ok := bucket.Range()
	if !ok {
		return true
	}
	if a.DaysRemaining == nil {
		return false
	}
	return *a.DaysRemaining >= min && *a.DaysRemaining <= max
}
