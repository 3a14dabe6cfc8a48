package router

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rotenkr/roten-api/internal/apperr"
	"github.com/rotenkr/roten-api/internal/catalog"
	"github.com/rotenkr/roten-api/internal/domain"
	"github.com/rotenkr/roten-api/internal/dto"
	"github.com/rotenkr/roten-api/pkg/pagination"
)

type SearchRouter struct {
	e       *echo.Echo
	catalog *catalog.Catalog
}

func NewSearchRouter(e *echo.Echo, c *catalog.Catalog) *SearchRouter {
	return &SearchRouter{
		e:       e,
		catalog: c,
	}
}

func (r *SearchRouter) Bind() {
	r.e.GET("/search", r.searchHandler)
	r.e.POST("/search/smart", r.smartSearchHandler)
	r.e.POST("/search/count", r.countHandler)
	r.e.GET("/announcement/:id", r.detailHandler)
	r.e.GET("/stats", r.statsHandler)
}

// searchHandler godoc
// @Summary List announcements
// @Description Filtered, paginated announcement listing. Expired announcements are excluded.
// @Param q query string false "free-text query, space-separated tokens are ANDed"
// @Param region query string false "region substring, 전국/전체 means no filter"
// @Param stage query string false "company stage tag, repeatable"
// @Param type query string false "support-type substring"
// @Param deadline query string false "deadline bucket: urgent, this-week or this-month"
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} dto.SearchResponse
// @Router /search [get]
func (r *SearchRouter) searchHandler(c echo.Context) error {
	criteria := domain.SearchCriteria{
		Query:       c.QueryParam("q"),
		Region:      c.QueryParam("region"),
		Stages:      c.QueryParams()["stage"],
		SupportType: c.QueryParam("type"),
		Deadline:    domain.DeadlineBucket(c.QueryParam("deadline")),
	}

	page := &pagination.OffsetRequest{
		Page: atoiOr(c.QueryParam("page"), 1),
		Size: atoiOr(c.QueryParam("limit"), pagination.PageDefaultSize),
	}

	result, err := r.catalog.Search(c.Request().Context(), criteria, page)
	if err != nil {
		return err
	}

	results := result.Items
	if results == nil {
		results = []domain.Announcement{}
	}

	return c.JSON(http.StatusOK, dto.SearchResponse{
		Results: results,
		Total:   int(result.Total),
		Page:    result.Page,
		Limit:   result.Size,
		Success: true,
	})
}

// smartSearchHandler godoc
// @Summary Smart match search
// @Description Interprets free-text needs, filters and orders announcements by match score.
// @Accept json
// @Param request body dto.SmartSearchRequest true "match criteria"
// @Success 200 {object} dto.SmartSearchResponse
// @Router /search/smart [post]
func (r *SearchRouter) smartSearchHandler(c echo.Context) error {
	var req dto.SmartSearchRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("잘못된 요청 형식입니다", err)
	}

	criteria := domain.SearchCriteria{
		Region: req.Region,
		Stages: req.Stage,
		Field:  req.Field,
		Needs:  req.Needs,
	}

	ranked, err := r.catalog.SmartSearch(c.Request().Context(), criteria)
	if err != nil {
		return err
	}
	if ranked == nil {
		ranked = []domain.ScoredAnnouncement{}
	}

	return c.JSON(http.StatusOK, dto.SmartSearchResponse{
		Success: true,
		Data:    ranked,
		Total:   len(ranked),
	})
}

// countHandler godoc
// @Summary Count matching announcements
// @Description Count-only variant of smart search with a per-registry breakdown.
// @Accept json
// @Param request body dto.SmartSearchRequest true "match criteria"
// @Success 200 {object} dto.CountResponse
// @Router /search/count [post]
func (r *SearchRouter) countHandler(c echo.Context) error {
	var req dto.SmartSearchRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("잘못된 요청 형식입니다", err)
	}

	criteria := domain.SearchCriteria{
		Region: req.Region,
		Stages: req.Stage,
		Field:  req.Field,
		Needs:  req.Needs,
	}

	result, err := r.catalog.Count(c.Request().Context(), criteria)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.CountResponse{
		Success: true,
		Count:   result.Count,
		Breakdown: dto.CountBreakdown{
			BizInfo:  result.Breakdown[domain.SourceBizInfo],
			KStartup: result.Breakdown[domain.SourceKStartup],
		},
	})
}

// detailHandler godoc
// @Summary Announcement detail
// @Description Single announcement by wire id, e.g. biz_42 or ks_7. Expired announcements are still returned.
// @Param id path string true "wire id"
// @Success 200 {object} dto.DetailResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /announcement/{id} [get]
func (r *SearchRouter) detailHandler(c echo.Context) error {
	a, err := r.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.DetailResponse{
		Success: true,
		Data:    a,
	})
}

// statsHandler godoc
// @Summary Dataset statistics
// @Success 200 {object} dto.StatsResponse
// @Router /stats [get]
func (r *SearchRouter) statsHandler(c echo.Context) error {
	stats, err := r.catalog.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	sources := make(map[string]int, len(stats.Sources))
	for src, n := range stats.Sources {
		sources[string(src)] = n
	}

	return c.JSON(http.StatusOK, dto.StatsResponse{
		Total:   stats.Total,
		Status:  stats.Status,
		Sources: sources,
		Success: true,
	})
}

func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
