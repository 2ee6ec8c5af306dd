package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"perceptron-forge/internal/model"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	Dataset           string           `yaml:"dataset"`
	DatasetDir        string           `yaml:"dataset_dir"`
	Eta               float64          `yaml:"eta"`
	Epochs            int              `yaml:"epochs"`
	Activation        model.Activation `yaml:"activation"`
	Threshold         float64          `yaml:"threshold"`
	InitialWeights    []float64        `yaml:"initial_weights"`
	LogEvery          int              `yaml:"log_every"`
	LogLevel          string           `yaml:"log_level"`
	StopWhenConverged bool             `yaml:"stop_when_converged"`
	Trace             bool             `yaml:"trace"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Dataset           string
	DatasetDir        string
	Eta               float64
	Epochs            int
	Activation        string
	Threshold         *float64
	InitialWeights    []float64
	LogEvery          int
	LogLevel          string
	StopWhenConverged bool
	Trace             bool
}

// Load reads and validates a Config from YAML.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := parseYAML(f)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) error {
	if o.Dataset != "" {
		c.Dataset = o.Dataset
	}
	if o.DatasetDir != "" {
		c.DatasetDir = o.DatasetDir
	}
	if o.Eta > 0 {
		c.Eta = o.Eta
	}
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.Activation != "" {
		act, err := model.ParseActivation(o.Activation)
		if err != nil {
			return fmt.Errorf("override activation: %w", err)
		}
		c.Activation = act
	}
	if o.Threshold != nil {
		c.Threshold = *o.Threshold
	}
	if len(o.InitialWeights) > 0 {
		c.InitialWeights = append([]float64(nil), o.InitialWeights...)
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.StopWhenConverged {
		c.StopWhenConverged = true
	}
	if o.Trace {
		c.Trace = true
	}
	return nil
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Dataset == "" {
		return errors.New("dataset must be set")
	}
	if !(c.Eta > 0) {
		return fmt.Errorf("eta must be > 0 (got %v)", c.Eta)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be > 0 (got %d)", c.Epochs)
	}
	if !c.Activation.Valid() {
		return fmt.Errorf("unknown activation %v", c.Activation)
	}
	if len(c.InitialWeights) == 0 {
		return errors.New("initial_weights must not be empty")
	}
	if c.LogEvery <= 0 {
		c.LogEvery = 10
	}
	switch strings.ToUpper(c.LogLevel) {
	case "":
		c.LogLevel = "INFO"
	case "DEBUG", "INFO", "WARN", "ERROR":
		c.LogLevel = strings.ToUpper(c.LogLevel)
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

func parseYAML(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}
