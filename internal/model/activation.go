package model

import (
	"fmt"
	"math"
	"strings"
)

// Activation selects the function applied to a unit's activity.
type Activation int

const (
	// Sigmoid is the logistic function; the threshold is ignored.
	Sigmoid Activation = iota
	// ThresholdedSigmoid scales the logistic output by the threshold.
	ThresholdedSigmoid
	// BinaryStep emits 1 when activity is strictly above the threshold.
	BinaryStep
)

var activationNames = map[Activation]string{
	Sigmoid:            "sigmoid",
	ThresholdedSigmoid: "thresholded-sigmoid",
	BinaryStep:         "binary-step",
}

// Apply evaluates the activation. NaN and Inf inputs flow through untouched.
func (a Activation) Apply(activity, threshold float64) float64 {
	switch a {
	case Sigmoid:
		return sigmoid(activity)
	case ThresholdedSigmoid:
		// multiplier, not a gate
		return sigmoid(activity) * threshold
	case BinaryStep:
		if activity > threshold {
			return 1.0
		}
		return 0.0
	default:
		return math.NaN()
	}
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Valid reports whether a is one of the defined activations.
func (a Activation) Valid() bool {
	_, ok := activationNames[a]
	return ok
}

func (a Activation) String() string {
	if name, ok := activationNames[a]; ok {
		return name
	}
	return fmt.Sprintf("activation(%d)", int(a))
}

// ParseActivation resolves a textual activation name.
func ParseActivation(name string) (Activation, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	for act, n := range activationNames {
		if n == normalized {
			return act, nil
		}
	}
	return 0, fmt.Errorf("unknown activation %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Activation) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("unknown activation %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Activation) UnmarshalText(text []byte) error {
	act, err := ParseActivation(string(text))
	if err != nil {
		return err
	}
	*a = act
	return nil
}
