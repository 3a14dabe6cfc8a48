package dto

import "github.com/rotenkr/roten-api/internal/domain"

// SearchResponse is the listing endpoint's page shape.
type SearchResponse struct {
	Results []domain.Announcement `json:"results"`
	Total   int                   `json:"total"`
	Page    int                   `json:"page"`
	Limit   int                   `json:"limit"`
	Success bool                  `json:"success"`
}

// SmartSearchRequest mirrors the smart-match form: region, company stages,
// business field and a free-text description of what the applicant needs.
type SmartSearchRequest struct {
	Region string   `json:"region"`
	Stage  []string `json:"stage"`
	Field  string   `json:"field"`
	Needs  string   `json:"needs"`
}

// SmartSearchResponse carries score-ordered results.
type SmartSearchResponse struct {
	Success bool                        `json:"success"`
	Data    []domain.ScoredAnnouncement `json:"data"`
	Total   int                         `json:"total"`
}

// CountBreakdown splits a match count by upstream registry.
type CountBreakdown struct {
	BizInfo  int `json:"bizinfo"`
	KStartup int `json:"kstartup"`
}

type CountResponse struct {
	Success   bool           `json:"success"`
	Count     int            `json:"count"`
	Breakdown CountBreakdown `json:"breakdown"`
}

type DetailResponse struct {
	Success bool                 `json:"success"`
	Data    *domain.Announcement `json:"data"`
}

type StatsResponse struct {
	Total   int            `json:"total"`
	Status  map[string]int `json:"status"`
	Sources map[string]int `json:"sources"`
	Success bool           `json:"success"`
}
