package metrics

import (
	"context"
	"log/slog"
	"sync"
)

// StepRecord is the diagnostic emitted by every training step, captured
// before the weights are updated.
type StepRecord struct {
	Epoch      int
	Index      int
	Target     float64
	Activity   float64
	Activation float64
	Weights    []float64
}

// Recorder receives step diagnostics.
type Recorder interface {
	Record(rec StepRecord)
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(rec StepRecord)

// Record calls f(rec).
func (f RecorderFunc) Record(rec StepRecord) { f(rec) }

// Trace keeps every record in arrival order.
type Trace struct {
	mu      sync.Mutex
	records []StepRecord
}

// Record stores a copy of rec.
func (t *Trace) Record(rec StepRecord) {
	rec.Weights = append([]float64(nil), rec.Weights...)
	t.mu.Lock()
	t.records = append(t.records, rec)
	t.mu.Unlock()
}

// Records returns the recorded steps.
func (t *Trace) Records() []StepRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]StepRecord(nil), t.records...)
}

// Len reports how many steps were recorded.
func (t *Trace) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}

// LogRecorder writes each record to a structured logger.
type LogRecorder struct {
	Logger *slog.Logger
	Level  slog.Level
}

// Record logs rec. A nil Logger falls back to slog.Default().
func (l LogRecorder) Record(rec StepRecord) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Log(context.Background(), l.Level, "step",
		"epoch", rec.Epoch,
		"index", rec.Index,
		"target", rec.Target,
		"activity", rec.Activity,
		"activation", rec.Activation,
		"weights", rec.Weights,
	)
}

// Multi fans a record out to several recorders. Nil entries are skipped.
type Multi []Recorder

// Record forwards rec to every recorder.
func (m Multi) Record(rec StepRecord) {
	for _, r := range m {
		if r != nil {
			r.Record(rec)
		}
	}
}
