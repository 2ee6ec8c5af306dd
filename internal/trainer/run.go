package trainer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"perceptron-forge/internal/dataset"
	"perceptron-forge/internal/metrics"
)

// RunConfig captures the knobs required by the training loop.
type RunConfig struct {
	Dataset           dataset.Dataset
	InitialWeights    []float64
	Hyperparameters   Hyperparameters
	LogEvery          int
	StopWhenConverged bool
	// Trace logs every step at Info level.
	Trace  bool
	Logger *slog.Logger
	// Recorder receives step diagnostics in addition to any trace logging.
	Recorder metrics.Recorder
}

// Run executes the training workload, logging progress every LogEvery
// epochs and the final per-example evaluation.
func Run(ctx context.Context, cfg RunConfig) (Result, error) {
	if len(cfg.InitialWeights) == 0 {
		return Result{}, errors.New("trainer: initial weights must be set")
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = 10
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("run_id", uuid.NewString(), "dataset", cfg.Dataset.Name)

	hp := cfg.Hyperparameters
	logger.Info("training started",
		"examples", cfg.Dataset.Len(),
		"eta", hp.Eta,
		"epochs", hp.Epochs,
		"activation", hp.Activation.String(),
		"threshold", hp.Threshold,
		"weights", cfg.InitialWeights,
	)

	recorders := metrics.Multi{cfg.Recorder}
	if cfg.Trace {
		recorders = append(recorders, metrics.LogRecorder{Logger: logger, Level: slog.LevelInfo})
	}

	var window metrics.Window
	opts := Options{
		Recorder:          recorders,
		Window:            &window,
		StopWhenConverged: cfg.StopWhenConverged,
		OnEpoch: func(s EpochSummary) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if (s.Epoch+1)%cfg.LogEvery == 0 {
				snap := window.Snapshot()
				logger.Info("epoch",
					"epoch", s.Epoch+1,
					"updates", s.Updates,
					"window_updates", snap.Updates,
					"steps_per_sec", snap.StepsPerSec,
					"last_activation", snap.LastActivation,
					"weights", s.Weights,
				)
			}
			return nil
		},
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	res, err := Learn(cfg.Dataset, cfg.InitialWeights, hp, opts)
	if err != nil {
		return res, err
	}

	preds, err := Evaluate(cfg.Dataset, res.Weights, hp.Activation, hp.Threshold)
	if err != nil {
		return res, err
	}
	for i, p := range preds {
		logger.Debug("prediction", "index", i, "input", p.Input, "target", p.Target, "output", p.Output, "correct", p.Correct)
	}
	logger.Info("training finished",
		"epochs", res.Epochs,
		"steps", res.Steps,
		"updates", res.Updates,
		"converged", res.Converged,
		"accuracy", Accuracy(preds),
		"weights", res.Weights,
	)
	return res, nil
}
