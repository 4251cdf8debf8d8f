// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"time"
)

// Timing accumulates wall-clock statistics of Processor calls during one
// run. It is diagnostic only and never feeds back into control flow.
type Timing struct {
	// Chunks is the number of measured calls.
	Chunks int
	// Sum, Min and Max aggregate the per-call durations.
	Sum, Min, Max time.Duration
	// Budget is the real-time budget of one block, ChunkSize/SampleRate.
	Budget time.Duration
	// Over counts calls that exceeded Budget.
	Over int
	// Signal is the nominal duration of the input.
	Signal time.Duration
	// Elapsed is the wall time of the whole loop. It is set when the run
	// reaches its natural end, not when a consumer abandons it early.
	Elapsed time.Duration

	start time.Time
}

func newTiming(budget, signal time.Duration) *Timing {
	return &Timing{Budget: budget, Signal: signal}
}

func (t *Timing) begin() {
	if t.start.IsZero() {
		t.start = time.Now()
	}
}

func (t *Timing) record(d time.Duration) {
	if t.Chunks == 0 || d < t.Min {
		t.Min = d
	}
	if d > t.Max {
		t.Max = d
	}
	if d > t.Budget {
		t.Over++
	}
	t.Chunks++
	t.Sum += d
}

func (t *Timing) finish() {
	t.Elapsed = time.Since(t.start)
}

// Mean duration of a single call.
func (t *Timing) Mean() time.Duration {
	if t.Chunks == 0 {
		return 0
	}
	return t.Sum / time.Duration(t.Chunks)
}

// RealTimeFactor is how many times faster than real time the whole run
// was. Zero until the run completes.
func (t *Timing) RealTimeFactor() float64 {
	if t.Elapsed <= 0 {
		return 0
	}
	return t.Signal.Seconds() / t.Elapsed.Seconds()
}

// OverBudgetFraction is the share of calls that missed the block budget.
func (t *Timing) OverBudgetFraction() float64 {
	if t.Chunks == 0 {
		return 0
	}
	return float64(t.Over) / float64(t.Chunks)
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// String renders the post-run summary.
func (t *Timing) String() string {
	return fmt.Sprintf(
		"signal %0.3fs total compute %0.3fs speed %0.1f\n"+
			"chunk budget %0.1fms blocks %d\n"+
			"compute mean %0.1fms min %0.1fms max %0.1fms\n"+
			"over budget %d (%0.1f%%)",
		t.Signal.Seconds(), t.Elapsed.Seconds(), t.RealTimeFactor(),
		ms(t.Budget), t.Chunks,
		ms(t.Mean()), ms(t.Min), ms(t.Max),
		t.Over, 100*t.OverBudgetFraction(),
	)
}
