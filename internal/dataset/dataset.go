package dataset

import (
	"errors"
	"fmt"

	"perceptron-forge/internal/model"
)

// Example pairs a bias-augmented input vector with its target.
type Example struct {
	Input  []float64 `yaml:"input"`
	Target float64   `yaml:"target"`
}

// Dataset is an ordered training set. Order matters: updates are applied
// example by example.
type Dataset struct {
	Name     string    `yaml:"name"`
	Examples []Example `yaml:"examples"`
}

// Len returns the number of examples.
func (d Dataset) Len() int { return len(d.Examples) }

// Width returns the input length of the first example, or 0 when empty.
func (d Dataset) Width() int {
	if len(d.Examples) == 0 {
		return 0
	}
	return len(d.Examples[0].Input)
}

// Validate checks the dataset can be trained against a weight vector of
// the given width.
func (d Dataset) Validate(width int) error {
	if len(d.Examples) == 0 {
		return errors.New("dataset: no examples")
	}
	if width <= 0 {
		return &model.DimensionError{Op: "dataset", Weights: width, Inputs: d.Width()}
	}
	for i, ex := range d.Examples {
		if len(ex.Input) != width {
			return fmt.Errorf("dataset: example %d: %w", i,
				&model.DimensionError{Op: "dataset", Weights: width, Inputs: len(ex.Input)})
		}
	}
	return nil
}
