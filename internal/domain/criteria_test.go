package domain_test

import (
	"testing"

	"github.com/rotenkr/roten-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDeadlineBucketRange(t *testing.T) {
	tests := []struct {
		bucket   domain.DeadlineBucket
		min, max int
		ok       bool
	}{
		{domain.DeadlineUrgent, 0, 3, true},
		{domain.DeadlineThisWeek, 0, 7, true},
		{domain.DeadlineThisMonth, 0, 30, true},
		{domain.DeadlineNone, 0, 0, false},
		{domain.DeadlineBucket("bogus"), 0, 0, false},
	}

	for _, tt := range tests {
		min, max, ok := tt.bucket.Range()
		assert.Equal(t, tt.ok, ok, string(tt.bucket))
		if ok {
			assert.Equal(t, tt.min, min)
			assert.Equal(t, tt.max, max)
		}
	}
}

func TestRegionIsWildcard(t *testing.T) {
	for _, region := range []string{"", "  ", "전국", "전체"} {
		c := domain.SearchCriteria{Region: region}
		assert.True(t, c.RegionIsWildcard(), region)
	}

	c := domain.SearchCriteria{Region: "서울"}
	assert.False(t, c.RegionIsWildcard())
}

func TestSourceFromPrefix(t *testing.T) {
	s, ok := domain.SourceFromPrefix("biz")
	assert.True(t, ok)
	assert.Equal(t, domain.SourceBizInfo, s)

	s, ok = domain.SourceFromPrefix("ks")
	assert.True(t, ok)
	assert.Equal(t, domain.SourceKStartup, s)

	_, ok = domain.SourceFromPrefix("xx")
	assert.False(t, ok)
}
