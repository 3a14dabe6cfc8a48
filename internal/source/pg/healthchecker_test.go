package pg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheckerNilPool(t *testing.T) {
	hc := NewHealthChecker(nil)
	assert.False(t, hc.Healthy(context.Background()))
}
