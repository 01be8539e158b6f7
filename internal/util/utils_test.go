package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAverage(t *testing.T) {
	assert.Zero(t, CalculateAverage(nil))
	assert.Zero(t, CalculateAverage(map[string]int{}))
	assert.InDelta(t, 2.5, CalculateAverage(map[string]int{"a": 1, "b": 4}), 1e-9)
}

func TestRatio(t *testing.T) {
	assert.Zero(t, Ratio(4, 0))
	assert.InDelta(t, 0.2, Ratio(4, 20), 1e-9)
}
