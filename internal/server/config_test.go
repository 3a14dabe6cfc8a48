package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
}

func TestLoadConfigCorsParsing(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", " https://roten.kr , ,https://www.roten.kr ")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://roten.kr", "https://www.roten.kr"}, cfg.CorsOrigins)
}

func TestLoadConfigRejectsBadPort(t *testing.T) {
	for _, port := range []string{"abc", "0", "70000"} {
		t.Setenv("PORT", port)
		_, err := LoadConfig()
		assert.Error(t, err, port)
	}
}
