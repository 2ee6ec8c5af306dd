package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowSnapshot(t *testing.T) {
	var w Window
	w.Record(true, 10*time.Millisecond, 0.3)
	w.Record(false, 30*time.Millisecond, 0.8)
	snap := w.Snapshot()
	if math.Abs(snap.StepsPerSec-50) > 0.001 {
		t.Fatalf("unexpected throughput %.2f", snap.StepsPerSec)
	}
	assert.Equal(t, 2, snap.Steps)
	assert.Equal(t, 1, snap.Updates)
	assert.Equal(t, 0.8, snap.LastActivation)
	if w.steps != 0 || w.updates != 0 || w.elapsed != 0 {
		t.Fatalf("window was not reset")
	}
}

func TestWindowEmptySnapshot(t *testing.T) {
	var w Window
	snap := w.Snapshot()
	assert.Zero(t, snap.StepsPerSec)
	assert.Zero(t, snap.Steps)
}
