package trainer

import (
	"fmt"

	"perceptron-forge/internal/dataset"
	"perceptron-forge/internal/model"
)

// Prediction is the trained unit's output for one example.
type Prediction struct {
	Input   []float64
	Target  float64
	Output  float64
	Correct bool
}

// Evaluate feeds every example through the trained weights. Correct uses
// the same exact comparison as training.
func Evaluate(ds dataset.Dataset, weights []float64, act model.Activation, threshold float64) ([]Prediction, error) {
	out := make([]Prediction, 0, ds.Len())
	for i, ex := range ds.Examples {
		y, err := model.Predict(weights, ex.Input, act, threshold)
		if err != nil {
			return nil, fmt.Errorf("evaluate example %d: %w", i, err)
		}
		out = append(out, Prediction{
			Input:   ex.Input,
			Target:  ex.Target,
			Output:  y,
			Correct: y == ex.Target,
		})
	}
	return out, nil
}

// Accuracy returns the fraction of correct predictions.
func Accuracy(preds []Prediction) float64 {
	if len(preds) == 0 {
		return 0
	}
	correct := 0
	for _, p := range preds {
		if p.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(preds))
}
