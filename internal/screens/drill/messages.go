package drill

import "time"

// tickMsg redraws the clock once a second. Ticks from an earlier pass of
// the run are dropped.
type tickMsg struct {
	runID string
	at    time.Time
}
