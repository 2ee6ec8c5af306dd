package metrics

import "time"

// Window accumulates step stats between log lines.
type Window struct {
	steps          int
	updates        int
	elapsed        time.Duration
	lastActivation float64
}

// Record adds one step to the window.
func (w *Window) Record(updated bool, elapsed time.Duration, activation float64) {
	w.steps++
	if updated {
		w.updates++
	}
	w.elapsed += elapsed
	w.lastActivation = activation
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{
		Steps:          w.steps,
		Updates:        w.updates,
		LastActivation: w.lastActivation,
	}
	if w.elapsed > 0 {
		snap.StepsPerSec = float64(w.steps) / w.elapsed.Seconds()
	}

	w.steps = 0
	w.updates = 0
	w.elapsed = 0
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	StepsPerSec    float64
	Steps          int
	Updates        int
	LastActivation float64
}
