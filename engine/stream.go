// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"time"
)

// StreamTo runs every remaining step, appending the main stream's data to
// s in arrival order. Nothing is buffered or reordered, so a transform's
// internal latency shows up as a time shift in the written stream.
//
// A positive limit stops the run once the main stream's reported position,
// converted to seconds, reaches it. The check happens after the write, so
// the block that crosses the limit is still written, and it happens on
// every step, data or not. Stopping at the limit is not an error. Opening
// and closing the sink is the caller's business, as is closing it after
// an early stop.
func (r *Runner) StreamTo(s Sink, limit time.Duration) error {
	for r.Next() {
		main := r.res[r.main]
		if main.Data != nil {
			if err := s.WriteBlock(main.Block); err != nil {
				return fmt.Errorf("%w", err)
			}
		}
		if limit > 0 && main.End >= 0 &&
			float64(main.End)/r.cfg.SampleRate >= limit.Seconds() {
			break
		}
	}
	return r.Err()
}
