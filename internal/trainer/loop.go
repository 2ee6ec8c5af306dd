package trainer

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"

	"perceptron-forge/internal/dataset"
	"perceptron-forge/internal/metrics"
)

// ErrStopped wraps errors returned by Options.OnEpoch.
var ErrStopped = errors.New("trainer: stopped")

// EpochSummary describes one completed pass over the dataset.
type EpochSummary struct {
	Epoch   int
	Updates int
	Weights []float64
}

// Options are opt-in extensions to the fixed-length training loop. The zero
// value runs every epoch and discards diagnostics.
type Options struct {
	Recorder metrics.Recorder
	// Window, when set, accumulates per-step counts and timings. The caller
	// decides when to snapshot it.
	Window *metrics.Window
	// StopWhenConverged ends training after an epoch that left the weights
	// unchanged.
	StopWhenConverged bool
	// OnEpoch runs after each epoch. A non-nil error aborts training.
	OnEpoch func(EpochSummary) error
}

// Result is the outcome of Learn.
type Result struct {
	Weights []float64
	Epochs  int
	Steps   int
	Updates int
	// Converged reports whether the last epoch left the weights unchanged.
	Converged bool
}

// Learn trains weights over ds for hp.Epochs passes, feeding the weights
// produced by each example into the next, across epoch boundaries.
func Learn(ds dataset.Dataset, initial []float64, hp Hyperparameters, opts Options) (Result, error) {
	if err := hp.Validate(); err != nil {
		return Result{}, err
	}
	if err := ds.Validate(len(initial)); err != nil {
		return Result{}, err
	}

	weights := append([]float64(nil), initial...)
	res := Result{}

	for epoch := 0; epoch < hp.Epochs; epoch++ {
		start := weights
		updates := 0
		for index, ex := range ds.Examples {
			began := time.Now()
			out, err := step(ex.Input, ex.Target, weights, hp, opts.Recorder,
				metrics.StepRecord{Epoch: epoch, Index: index})
			if err != nil {
				return res, fmt.Errorf("epoch %d example %d: %w", epoch, index, err)
			}
			if opts.Window != nil {
				opts.Window.Record(out.updated, time.Since(began), out.activation)
			}
			weights = out.weights
			res.Steps++
			if out.updated {
				updates++
			}
		}
		res.Updates += updates
		res.Epochs++
		res.Weights = weights
		res.Converged = floats.Same(start, weights)

		if opts.OnEpoch != nil {
			summary := EpochSummary{
				Epoch:   epoch,
				Updates: updates,
				Weights: append([]float64(nil), weights...),
			}
			if err := opts.OnEpoch(summary); err != nil {
				return res, fmt.Errorf("%w after epoch %d: %w", ErrStopped, epoch, err)
			}
		}
		if opts.StopWhenConverged && res.Converged {
			break
		}
	}
	return res, nil
}
