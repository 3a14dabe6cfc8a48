package domain

import (
	"strings"
	"time"
)

// Source identifies the upstream registry an announcement came from.
type Source string

const (
	SourceBizInfo  Source = "BizInfo"
	SourceKStartup Source = "K-Startup"
)

// Wire id prefixes, e.g. "biz_123" and "ks_45".
const (
	PrefixBizInfo  = "biz"
	PrefixKStartup = "ks"
)

// SourceFromPrefix resolves a wire id prefix to its Source.
func SourceFromPrefix(prefix string) (Source, bool) {
	switch prefix {
	case PrefixBizInfo:
		return SourceBizInfo, true
	case PrefixKStartup:
		return SourceKStartup, true
	default:
		return "", false
	}
}

// Prefix returns the wire id prefix for the source.
func (s Source) Prefix() string {
	if s == SourceKStartup {
		return PrefixKStartup
	}
	return PrefixBizInfo
}

// SummaryPoint is one human-readable summary bullet shown on cards.
type SummaryPoint struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Announcement is the unified record shape after normalization and enrichment.
// Records are read-only projections built fresh per request; there is no write path.
type Announcement struct {
	ID           string `json:"id"`
	Source       Source `json:"source"`
	Title        string `json:"business_name"`
	Organization string `json:"organization"`
	Region       string `json:"region"`
	TargetText   string `json:"target"`
	SupportScale string `json:"support_scale"`
	Summary      string `json:"simple_summary"`
	Description  string `json:"detailed_summary"`
	Purpose      string `json:"purpose"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	// Derived per request from EndDate and the as-of date. Never cached
	// across a day boundary.
	DaysRemaining *int `json:"days_remaining"`
	IsExpired     bool `json:"is_expired"`
	IsUrgent      bool `json:"is_urgent"`

	// Best-effort tag extraction from free text, not a controlled vocabulary.
	Targets       []string       `json:"targets,omitempty"`
	SupportTypes  []string       `json:"support_types"`
	SummaryPoints []SummaryPoint `json:"summary_points,omitempty"`

	DetailURL      string   `json:"detail_url"`
	ApplyURL       string   `json:"apply_url"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	Website        string   `json:"website"`
	AttachmentURLs []string `json:"attachment_urls"`
}

// SearchText is the haystack for free-text queries: title, summary,
// organization and the derived tags.
func (a *Announcement) SearchText() string {
	parts := []string{a.Title, a.Summary, a.Organization}
	parts = append(parts, a.Targets...)
	parts = append(parts, a.SupportTypes...)
	return strings.ToLower(strings.Join(parts, " "))
}

// ContentText is the haystack for needs/field keyword matching.
func (a *Announcement) ContentText() string {
	return strings.ToLower(strings.Join([]string{a.Title, a.Summary, a.Description}, " "))
}

// TargetSearchText is the haystack for stage keyword matching.
func (a *Announcement) TargetSearchText() string {
	return strings.ToLower(a.TargetText)
}

// ScoredAnnouncement is an announcement with its transient match score attached.
type ScoredAnnouncement struct {
	Announcement
	MatchScore int `json:"matchScore"`
}
