package rules_test

import (
	"testing"

	"github.com/rotenkr/roten-api/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRulesetIsValid(t *testing.T) {
	table := rules.Default()
	require.NotNil(t, table)
	assert.GreaterOrEqual(t, table.Version, 1)
	assert.NotEmpty(t, table.Needs)
	assert.NotEmpty(t, table.Stages)
	assert.NotEmpty(t, table.SupportTypes)
}

func TestNeedsKeywords(t *testing.T) {
	table := rules.Default()

	t.Run("office space request yields facility keywords", func(t *testing.T) {
		kws := table.NeedsKeywords("사무실이 필요해요")
		require.NotEmpty(t, kws)
		assert.Contains(t, kws, "입주공간")
		assert.Contains(t, kws, "시설지원")
	})

	t.Run("multiple categories fire for one input", func(t *testing.T) {
		kws := table.NeedsKeywords("창업 자금이 필요합니다")
		assert.Contains(t, kws, "자금지원")
		assert.Contains(t, kws, "창업지원")
	})

	t.Run("case insensitive triggers", func(t *testing.T) {
		kws := table.NeedsKeywords("R&D 과제를 찾고 있어요")
		assert.Contains(t, kws, "연구개발")
	})

	t.Run("empty input is a no-op", func(t *testing.T) {
		assert.Empty(t, table.NeedsKeywords(""))
		assert.Empty(t, table.NeedsKeywords("   "))
	})

	t.Run("no match yields empty set", func(t *testing.T) {
		assert.Empty(t, table.NeedsKeywords("qqqq"))
	})

	t.Run("idempotent", func(t *testing.T) {
		first := table.NeedsKeywords("마케팅과 수출을 하고 싶어요")
		second := table.NeedsKeywords("마케팅과 수출을 하고 싶어요")
		assert.Equal(t, first, second)
	})
}

func TestStageKeywords(t *testing.T) {
	table := rules.Default()

	kws := table.StageKeywords([]string{"예비창업"})
	assert.Equal(t, []string{"예비창업자", "예비창업", "창업준비"}, kws)

	kws = table.StageKeywords([]string{"예비창업", "3년차"})
	assert.Contains(t, kws, "초기기업")
	assert.Contains(t, kws, "창업준비")

	assert.Empty(t, table.StageKeywords(nil))
	assert.Empty(t, table.StageKeywords([]string{"unknown"}))
}

func TestTargetTags(t *testing.T) {
	table := rules.Default()

	tags := table.TargetTags("예비창업자 및 3년 미만 청년 창업기업")
	assert.Contains(t, tags, "예비창업")
	assert.Contains(t, tags, "청년")

	assert.Empty(t, table.TargetTags("해당 없음"))
}

func TestSupportTypeTags(t *testing.T) {
	table := rules.Default()

	t.Run("matches multiple types", func(t *testing.T) {
		tags := table.SupportTypeTags("사업화 자금 및 기술개발 지원")
		assert.Contains(t, tags, "자금지원")
		assert.Contains(t, tags, "R&D")
	})

	t.Run("placeholder when nothing matches", func(t *testing.T) {
		assert.Equal(t, []string{"지원사업"}, table.SupportTypeTags("기타 안내"))
	})
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing version", "needs: []\ndefault_support_type: x"},
		{"empty keyword set", "version: 1\nneeds:\n  - name: a\n    triggers: [b]\n    keywords: []\ndefault_support_type: x"},
		{"missing default support type", "version: 1"},
		{"tag rule without triggers", "version: 1\ntargets:\n  - tag: a\n    triggers: []\ndefault_support_type: x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rules.Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := rules.LoadFromFile("does/not/exist.yaml")
	assert.Error(t, err)
}
