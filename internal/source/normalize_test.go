package source_test

import (
	"testing"
	"time"

	"github.com/rotenkr/roten-api/internal/domain"
	"github.com/rotenkr/roten-api/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFallbackChains(t *testing.T) {
	t.Run("first non-empty candidate wins", func(t *testing.T) {
		a := source.Normalize(source.Row{
			Source:   domain.SourceBizInfo,
			NativeID: "42",
			Title:    []string{"", "청년창업 지원사업"},
			Region:   []string{"서울특별시", "전국"},
		})

		assert.Equal(t, "biz_42", a.ID)
		assert.Equal(t, domain.SourceBizInfo, a.Source)
		assert.Equal(t, "청년창업 지원사업", a.Title)
		assert.Equal(t, "서울특별시", a.Region)
	})

	t.Run("empty row gets the documented defaults", func(t *testing.T) {
		a := source.Normalize(source.Row{Source: domain.SourceKStartup, NativeID: "7"})

		assert.Equal(t, "ks_7", a.ID)
		assert.Equal(t, "제목 없음", a.Title)
		assert.Equal(t, "기관명 없음", a.Organization)
		assert.Equal(t, "전국", a.Region)
		assert.Equal(t, "중소기업", a.TargetText)
		assert.Equal(t, "협의", a.SupportScale)
		assert.Equal(t, "지원사업입니다", a.Summary)
		assert.Equal(t, "상세 내용이 없습니다", a.Description)
		assert.Equal(t, "중소기업 지원", a.Purpose)
		assert.Equal(t, "1577-8088", a.Phone)
		assert.Nil(t, a.StartDate)
		assert.Nil(t, a.EndDate)
	})

	t.Run("website falls back to detail url", func(t *testing.T) {
		a := source.Normalize(source.Row{
			Source:    domain.SourceBizInfo,
			NativeID:  "1",
			DetailURL: []string{"https://example.kr/1"},
		})
		assert.Equal(t, "https://example.kr/1", a.Website)
	})
}

func TestNormalizeDates(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *time.Time
	}{
		{"compact layout", "20251231", datePtr(2025, 12, 31)},
		{"dashed layout", "2025-12-31", datePtr(2025, 12, 31)},
		{"empty means rolling", "", nil},
		{"garbage means rolling", "soon", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := source.Normalize(source.Row{Source: domain.SourceBizInfo, NativeID: "1", EndDate: tt.in})
			if tt.want == nil {
				assert.Nil(t, a.EndDate)
			} else {
				require.NotNil(t, a.EndDate)
				assert.True(t, tt.want.Equal(*a.EndDate))
			}
		})
	}
}

func TestNormalizeDecodesEntities(t *testing.T) {
	a := source.Normalize(source.Row{
		Source:   domain.SourceBizInfo,
		NativeID: "1",
		Title:    []string{"R&amp;D &apos;혁신&apos; 지원"},
	})
	assert.Equal(t, "R&D '혁신' 지원", a.Title)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
