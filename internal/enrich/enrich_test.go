package enrich_test

import (
	"strings"
	"testing"
	"time"

	"github.com/rotenkr/roten-api/internal/domain"
	"github.com/rotenkr/roten-api/internal/enrich"
	"github.com/rotenkr/roten-api/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var asOf = time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestDaysRemaining(t *testing.T) {
	tests := []struct {
		name string
		end  *time.Time
		want *int
	}{
		{"nil deadline means rolling admission", nil, nil},
		{"deadline today", datePtr(2025, 6, 10), intPtr(0)},
		{"three days out", datePtr(2025, 6, 13), intPtr(3)},
		{"already closed", datePtr(2025, 6, 8), intPtr(-2)},
		{"time of day is ignored", timePtr(time.Date(2025, 6, 11, 23, 59, 0, 0, time.UTC)), intPtr(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := enrich.DaysRemaining(tt.end, asOf)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestEnrichFlags(t *testing.T) {
	table := rules.Default()

	t.Run("deadline three days out is urgent, not expired", func(t *testing.T) {
		a := enrich.Enrich(domain.Announcement{EndDate: datePtr(2025, 6, 13)}, table, asOf)
		require.NotNil(t, a.DaysRemaining)
		assert.Equal(t, 3, *a.DaysRemaining)
		assert.True(t, a.IsUrgent)
		assert.False(t, a.IsExpired)
	})

	t.Run("passed deadline is expired, not urgent", func(t *testing.T) {
		a := enrich.Enrich(domain.Announcement{EndDate: datePtr(2025, 6, 1)}, table, asOf)
		assert.True(t, a.IsExpired)
		assert.False(t, a.IsUrgent)
	})

	t.Run("no deadline sets neither flag", func(t *testing.T) {
		a := enrich.Enrich(domain.Announcement{}, table, asOf)
		assert.Nil(t, a.DaysRemaining)
		assert.False(t, a.IsExpired)
		assert.False(t, a.IsUrgent)
	})

	t.Run("urgent window is inclusive of zero", func(t *testing.T) {
		a := enrich.Enrich(domain.Announcement{EndDate: datePtr(2025, 6, 10)}, table, asOf)
		assert.True(t, a.IsUrgent)
	})

	t.Run("four days out is not urgent", func(t *testing.T) {
		a := enrich.Enrich(domain.Announcement{EndDate: datePtr(2025, 6, 14)}, table, asOf)
		assert.False(t, a.IsUrgent)
	})
}

func TestEnrichTags(t *testing.T) {
	table := rules.Default()

	a := enrich.Enrich(domain.Announcement{
		Title:      "청년 창업 자금 지원사업",
		TargetText: "예비창업자 및 청년 기업",
	}, table, asOf)

	assert.Contains(t, a.Targets, "예비창업")
	assert.Contains(t, a.Targets, "청년")
	assert.Contains(t, a.SupportTypes, "자금지원")
	assert.Contains(t, a.SupportTypes, "창업지원")
}

func TestEnrichSupportTypePlaceholder(t *testing.T) {
	table := rules.Default()

	a := enrich.Enrich(domain.Announcement{Title: "기타 안내"}, table, asOf)
	assert.Equal(t, []string{"지원사업"}, a.SupportTypes)
}

func TestSummaryPoints(t *testing.T) {
	table := rules.Default()

	long := strings.Repeat("가", 60)
	a := enrich.Enrich(domain.Announcement{
		SupportScale: "최대 1억원",
		TargetText:   "중소기업",
		Summary:      long,
	}, table, asOf)

	require.Len(t, a.SummaryPoints, 3)
	assert.Equal(t, "지원규모", a.SummaryPoints[0].Label)
	assert.Equal(t, "최대 1억원", a.SummaryPoints[0].Text)
	assert.Equal(t, "중소기업", a.SummaryPoints[1].Text)
	assert.Equal(t, strings.Repeat("가", 40)+"...", a.SummaryPoints[2].Text)
}

func TestEnrichIsDeterministic(t *testing.T) {
	table := rules.Default()
	in := domain.Announcement{Title: "창업 지원", EndDate: datePtr(2025, 7, 1)}

	first := enrich.Enrich(in, table, asOf)
	second := enrich.Enrich(in, table, asOf)
	assert.Equal(t, first, second)
}

func intPtr(n int) *int            { return &n }
func timePtr(t time.Time) *time.Time { return &t }
