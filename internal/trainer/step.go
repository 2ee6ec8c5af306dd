package trainer

import (
	"fmt"

	"perceptron-forge/internal/metrics"
	"perceptron-forge/internal/model"
)

// Hyperparameters fix the learning rate, pass count and activation for a run.
type Hyperparameters struct {
	Eta        float64
	Epochs     int
	Activation model.Activation
	Threshold  float64
}

// Validate checks the hyperparameters describe a runnable training loop.
func (hp Hyperparameters) Validate() error {
	if !(hp.Eta > 0) {
		return fmt.Errorf("trainer: eta must be > 0 (got %v)", hp.Eta)
	}
	if hp.Epochs <= 0 {
		return fmt.Errorf("trainer: epochs must be > 0 (got %d)", hp.Epochs)
	}
	if !hp.Activation.Valid() {
		return fmt.Errorf("trainer: unknown activation %v", hp.Activation)
	}
	return nil
}

// Step runs one forward pass over inputs and, unless the activation equals
// target exactly, returns updated weights. The result never shares memory
// with weights.
func Step(inputs []float64, target float64, weights []float64, hp Hyperparameters, rec metrics.Recorder) ([]float64, error) {
	out, err := step(inputs, target, weights, hp, rec, metrics.StepRecord{})
	if err != nil {
		return nil, err
	}
	if !out.updated {
		return append([]float64(nil), weights...), nil
	}
	return out.weights, nil
}

type stepOutcome struct {
	weights    []float64
	activation float64
	updated    bool
}

func step(inputs []float64, target float64, weights []float64, hp Hyperparameters, rec metrics.Recorder, pos metrics.StepRecord) (stepOutcome, error) {
	activity, err := model.Activity(weights, inputs)
	if err != nil {
		return stepOutcome{}, err
	}
	output := hp.Activation.Apply(activity, hp.Threshold)

	if rec != nil {
		pos.Target = target
		pos.Activity = activity
		pos.Activation = output
		pos.Weights = append([]float64(nil), weights...)
		emit(rec, pos)
	}

	// Exact comparison: sigmoid outputs rarely hit a target, so those runs
	// update on every step.
	if output == target {
		return stepOutcome{weights: weights, activation: output}, nil
	}
	next, err := model.UpdateWeights(weights, hp.Eta, target, output, inputs)
	if err != nil {
		return stepOutcome{}, err
	}
	return stepOutcome{weights: next, activation: output, updated: true}, nil
}

// emit hands rec to the recorder. Recorder panics are dropped so
// diagnostics can never fail a run.
func emit(r metrics.Recorder, rec metrics.StepRecord) {
	defer func() { _ = recover() }()
	r.Record(rec)
}
