package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"perceptron-forge/internal/config"
	"perceptron-forge/internal/dataset"
	"perceptron-forge/internal/logging"
	"perceptron-forge/internal/trainer"
)

func main() {
	cfgPath := flag.String("config", "configs/or.yaml", "Path to YAML config")
	datasetRef := flag.String("dataset", "", "Override dataset (preset name, file, or name under -dataset-dir)")
	datasetDir := flag.String("dataset-dir", "", "Directory searched for dataset YAML files")
	eta := flag.Float64("eta", 0, "Learning rate")
	epochs := flag.Int("epochs", 0, "Number of passes over the dataset")
	activation := flag.String("activation", "", "sigmoid, thresholded-sigmoid or binary-step")
	threshold := flag.Float64("threshold", 0, "Activation threshold")
	weights := flag.String("weights", "", "Initial weights, comma separated, bias last")
	logEvery := flag.Int("log-every", 0, "Log every N epochs")
	logLevel := flag.String("log-level", "", "DEBUG, INFO, WARN or ERROR")
	stop := flag.Bool("stop-when-converged", false, "Stop after an epoch with no weight change")
	trace := flag.Bool("trace", false, "Log every training step")

	flag.Parse()

	logger := logging.Configure(os.Stderr)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal("failed to load config", err)
	}

	initial, err := parseWeights(*weights)
	if err != nil {
		fatal("invalid -weights", err)
	}
	overrides := config.Overrides{
		Dataset:           *datasetRef,
		DatasetDir:        *datasetDir,
		Eta:               *eta,
		Epochs:            *epochs,
		Activation:        *activation,
		InitialWeights:    initial,
		LogEvery:          *logEvery,
		LogLevel:          *logLevel,
		StopWhenConverged: *stop,
		Trace:             *trace,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "threshold" {
			overrides.Threshold = threshold
		}
	})
	if err := cfg.ApplyOverrides(overrides); err != nil {
		fatal("invalid override", err)
	}

	if err := cfg.Validate(); err != nil {
		fatal("invalid config", err)
	}
	logging.SetLevel(cfg.LogLevel)

	ds, err := dataset.Resolve(cfg.Dataset, cfg.DatasetDir)
	if err != nil {
		fatal("failed to load dataset", err)
	}

	ctx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	runCfg := trainer.RunConfig{
		Dataset:        ds,
		InitialWeights: cfg.InitialWeights,
		Hyperparameters: trainer.Hyperparameters{
			Eta:        cfg.Eta,
			Epochs:     cfg.Epochs,
			Activation: cfg.Activation,
			Threshold:  cfg.Threshold,
		},
		LogEvery:          cfg.LogEvery,
		StopWhenConverged: cfg.StopWhenConverged,
		Trace:             cfg.Trace,
		Logger:            logger,
	}

	res, err := trainer.Run(ctx, runCfg)
	if err != nil {
		fatal("training failed", err)
	}
	fmt.Println(formatWeights(res.Weights))
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

func parseWeights(raw string) ([]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]float64, 0, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("weight %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func formatWeights(w []float64) string {
	parts := make([]string, len(w))
	for i, v := range w {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
