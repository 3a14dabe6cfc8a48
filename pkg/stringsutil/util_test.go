package stringsutil_test

import (
	"testing"

	"github.com/rotenkr/roten-api/pkg/stringsutil"
	"github.com/stretchr/testify/assert"
)

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", stringsutil.FirstNonEmpty("d", "a", "b"))
	assert.Equal(t, "b", stringsutil.FirstNonEmpty("d", "", "b"))
	assert.Equal(t, "b", stringsutil.FirstNonEmpty("d", "   ", "b"))
	assert.Equal(t, "d", stringsutil.FirstNonEmpty("d"))
	assert.Equal(t, "d", stringsutil.FirstNonEmpty("d", "", " "))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, stringsutil.ContainsFold("R&D 지원사업", "r&d"))
	assert.True(t, stringsutil.ContainsFold("서울시 청년창업", "청년"))
	assert.False(t, stringsutil.ContainsFold("서울", "부산"))
	assert.True(t, stringsutil.ContainsFold("anything", ""))
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"청년", "창업"}, stringsutil.Tokens("  청년  창업 "))
	assert.Empty(t, stringsutil.Tokens("   "))
}

func TestRemoveEmptyStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, stringsutil.RemoveEmptyStrings([]string{"", "a", "", "b"}))
}
