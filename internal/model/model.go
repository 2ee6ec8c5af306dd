package model

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when a weight vector and an input vector
// disagree in length.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// DimensionError describes which operation saw mismatched lengths.
type DimensionError struct {
	Op      string
	Weights int
	Inputs  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %v: weights=%d inputs=%d", e.Op, ErrDimensionMismatch, e.Weights, e.Inputs)
}

func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// Activity returns the dot product of weights and inputs.
func Activity(weights, inputs []float64) (float64, error) {
	if len(weights) != len(inputs) {
		return 0, &DimensionError{Op: "activity", Weights: len(weights), Inputs: len(inputs)}
	}
	sum := 0.0
	for i := range weights {
		sum += weights[i] * inputs[i]
	}
	return sum, nil
}

// Predict runs inputs through Activity and the activation.
func Predict(weights, inputs []float64, act Activation, threshold float64) (float64, error) {
	activity, err := Activity(weights, inputs)
	if err != nil {
		return 0, err
	}
	return act.Apply(activity, threshold), nil
}
