package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeights(t *testing.T) {
	w, err := parseWeights(" 1, 1.0 ,0.01")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0.01}, w)

	w, err = parseWeights("")
	require.NoError(t, err)
	assert.Nil(t, w)

	_, err = parseWeights("1,x")
	assert.ErrorContains(t, err, "weight 1")
}

func TestFormatWeights(t *testing.T) {
	assert.Equal(t, "[1, 0.99, -0.99]", formatWeights([]float64{1, 0.99, -0.99}))
	assert.Equal(t, "[]", formatWeights(nil))
}
