package domain

import "strings"

// DeadlineBucket filters by how many days remain until the application deadline.
type DeadlineBucket string

const (
	DeadlineNone      DeadlineBucket = ""
	DeadlineUrgent    DeadlineBucket = "urgent"
	DeadlineThisWeek  DeadlineBucket = "this-week"
	DeadlineThisMonth DeadlineBucket = "this-month"
)

// Range returns the inclusive day range for the bucket. ok is false for
// DeadlineNone, where no deadline filtering applies.
func (b DeadlineBucket) Range() (min, max int, ok bool) {
	switch b {
	case DeadlineUrgent:
		return 0, 3, true
	case DeadlineThisWeek:
		return 0, 7, true
	case DeadlineThisMonth:
		return 0, 30, true
	default:
		return 0, 0, false
	}
}

// SearchCriteria is a request-scoped value object; nothing here is persisted.
type SearchCriteria struct {
	Query       string         `json:"q"`
	Region      string         `json:"region"`
	Stages      []string       `json:"stage"`
	SupportType string         `json:"type"`
	Deadline    DeadlineBucket `json:"deadline"`
	Field       string         `json:"field"`
	Needs       string         `json:"needs"`
}

// RegionIsWildcard reports whether the region value means "no region filter".
// "전국" (nationwide) and "전체" (all) are wildcards, not literal substrings.
func (c *SearchCriteria) RegionIsWildcard() bool {
	r := strings.TrimSpace(c.Region)
	return r == "" || r == "전국" || r == "전체"
}
