package search

import (
	"math"
	"sort"
	"strings"

	"github.com/rotenkr/roten-api/internal/domain"
	"github.com/rotenkr/roten-api/pkg/stringsutil"
)

// Additive score components. Total caps at 100.
const (
	regionPoints = 30
	needsPoints  = 40
	stagePoints  = 20
	fieldPoints  = 10
)

// Score computes the 0-100 match score for a record against the criteria.
// Components only apply when their criterion is non-empty.
func (e *Engine) Score(a *domain.Announcement, c domain.SearchCriteria) int {
	score := 0.0

	if !c.RegionIsWildcard() && stringsutil.ContainsFold(a.Region, c.Region) {
		score += regionPoints
	}

	if needsKeywords := e.table.NeedsKeywords(c.Needs); len(needsKeywords) > 0 {
		matched := countMatches(a.ContentText(), needsKeywords)
		score += float64(matched) / float64(len(needsKeywords)) * needsPoints
	}

	if stageKeywords := e.table.StageKeywords(c.Stages); len(stageKeywords) > 0 {
		matched := countMatches(a.TargetSearchText(), stageKeywords)
		score += float64(matched) / float64(len(stageKeywords)) * stagePoints
	}

	if c.Field != "" && strings.Contains(a.ContentText(), strings.ToLower(c.Field)) {
		score += fieldPoints
	}

	rounded := int(math.Round(score))
	if rounded > 100 {
		rounded = 100
	}
	if rounded < 0 {
		rounded = 0
	}
	return rounded
}

// Rank scores every record and sorts: score descending, urgent records first
// on ties, then ascending days remaining with open-ended deadlines last.
func (e *Engine) Rank(records []domain.Announcement, c domain.SearchCriteria) []domain.ScoredAnnouncement {
	scored := make([]domain.ScoredAnnouncement, 0, len(records))
	for _, a := range records {
		scored = append(scored, domain.ScoredAnnouncement{
			Announcement: a,
			MatchScore:   e.Score(&a, c),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].MatchScore != scored[j].MatchScore {
			return scored[i].MatchScore > scored[j].MatchScore
		}
		if scored[i].IsUrgent != scored[j].IsUrgent {
			return scored[i].IsUrgent
		}
		return lessDays(scored[i].DaysRemaining, scored[j].DaysRemaining)
	})

	return scored
}

func lessDays(a, b *int) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}

func countMatches(haystack string, keywords []string) int {
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			matched++
		}
	}
	return matched
}
