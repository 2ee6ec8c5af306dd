package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigmoidAtZero(t *testing.T) {
	assert.Equal(t, 0.5, Sigmoid.Apply(0, 123))
}

func TestSigmoidMonotonicAndBounded(t *testing.T) {
	prev := Sigmoid.Apply(-30, 0)
	assert.Greater(t, prev, 0.0)
	for x := -29.9; x <= 30; x += 0.1 {
		v := Sigmoid.Apply(x, 0)
		assert.Greater(t, v, 0.0)
		assert.Less(t, v, 1.0)
		assert.GreaterOrEqual(t, v, prev, "x=%f", x)
		prev = v
	}
}

func TestSigmoidIgnoresThreshold(t *testing.T) {
	assert.Equal(t, Sigmoid.Apply(1.01, 0), Sigmoid.Apply(1.01, 0.7))
}

func TestThresholdedSigmoidScales(t *testing.T) {
	for _, x := range []float64{-2, 0, 0.3, 5} {
		want := (1.0 / (1.0 + math.Exp(-x))) * 0.5
		assert.Equal(t, want, ThresholdedSigmoid.Apply(x, 0.5))
	}
	assert.Equal(t, 0.0, ThresholdedSigmoid.Apply(4, 0))
}

func TestBinaryStep(t *testing.T) {
	cases := []struct {
		activity, threshold, want float64
	}{
		{0.01, 0.05, 0},
		{0.05, 0.05, 0},
		{0.0500001, 0.05, 1},
		{1.01, 0.05, 1},
		{-3, -4, 1},
		{-4, -4, 0},
		{math.NaN(), 0, 0},
		{math.Inf(1), 1e300, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BinaryStep.Apply(tc.activity, tc.threshold), "activity=%v threshold=%v", tc.activity, tc.threshold)
	}
}

func TestActivationPropagatesNaN(t *testing.T) {
	assert.True(t, math.IsNaN(Sigmoid.Apply(math.NaN(), 0)))
	assert.True(t, math.IsNaN(ThresholdedSigmoid.Apply(1, math.NaN())))
	assert.True(t, math.IsNaN(Activation(42).Apply(1, 0)))
}

func TestParseActivation(t *testing.T) {
	for _, act := range []Activation{Sigmoid, ThresholdedSigmoid, BinaryStep} {
		got, err := ParseActivation(act.String())
		require.NoError(t, err)
		assert.Equal(t, act, got)
	}
	got, err := ParseActivation(" Binary_Step ")
	require.NoError(t, err)
	assert.Equal(t, BinaryStep, got)

	_, err = ParseActivation("relu")
	assert.Error(t, err)
}

func TestActivationText(t *testing.T) {
	text, err := BinaryStep.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "binary-step", string(text))

	var act Activation
	require.NoError(t, act.UnmarshalText([]byte("thresholded-sigmoid")))
	assert.Equal(t, ThresholdedSigmoid, act)

	_, err = Activation(9).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "activation(9)", Activation(9).String())
}

func TestActivationValid(t *testing.T) {
	assert.True(t, Sigmoid.Valid())
	assert.True(t, BinaryStep.Valid())
	assert.False(t, Activation(-1).Valid())
}
