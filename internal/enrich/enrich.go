// Package enrich derives the per-record fields that depend on the rule tables
// and the current date. Everything here is pure: the as-of date is injected,
// never read from a global clock.
package enrich

import (
	"time"

	"github.com/rotenkr/roten-api/internal/domain"
	"github.com/rotenkr/roten-api/internal/rules"
)

const (
	urgentWindowDays = 3
	featureMaxRunes  = 40
)

// Enrich returns a copy of a with days-remaining, urgency flags, tags and
// summary bullets populated as of the given date.
func Enrich(a domain.Announcement, table *rules.Table, asOf time.Time) domain.Announcement {
	a.DaysRemaining = DaysRemaining(a.EndDate, asOf)
	a.IsExpired = a.DaysRemaining != nil && *a.DaysRemaining < 0
	a.IsUrgent = a.DaysRemaining != nil && *a.DaysRemaining >= 0 && *a.DaysRemaining <= urgentWindowDays

	a.Targets = table.TargetTags(a.TargetText)
	a.SupportTypes = table.SupportTypeTags(a.Title + " " + a.Summary + " " + a.Description)
	a.SummaryPoints = summaryPoints(a)

	return a
}

// EnrichAll enriches every record against the same as-of date.
func EnrichAll(records []domain.Announcement, table *rules.Table, asOf time.Time) []domain.Announcement {
	enriched := make([]domain.Announcement, 0, len(records))
	for _, a := range records {
		enriched = append(enriched, Enrich(a, table, asOf))
	}
	return enriched
}

// DaysRemaining computes the D-day count: nil when there is no deadline
// (rolling admission), negative when the deadline has passed. Both dates are
// truncated to midnight before subtracting.
func DaysRemaining(endDate *time.Time, asOf time.Time) *int {
	if endDate == nil {
		return nil
	}

	end := atMidnight(*endDate)
	today := atMidnight(asOf)

	days := int(end.Sub(today).Hours() / 24)
	return &days
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func summaryPoints(a domain.Announcement) []domain.SummaryPoint {
	return []domain.SummaryPoint{
		{Icon: "💰", Label: "지원규모", Text: a.SupportScale},
		{Icon: "✅", Label: "지원대상", Text: a.TargetText},
		{Icon: "🎯", Label: "특징", Text: truncateRunes(a.Summary, featureMaxRunes) + "..."},
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
