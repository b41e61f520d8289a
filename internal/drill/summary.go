package drill

import (
	"fmt"
	"strings"
	"time"
)

// Summary holds what the score screen shows after a pass.
type Summary struct {
	RunID    string
	Right    int
	Total    int
	Answered int
	Duration time.Duration
}

// Accuracy returns the share of answered tasks that were right.
func (s Summary) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Right) / float64(s.Answered)
}

// Score returns "You got right/total".
func (s Summary) Score() string {
	return fmt.Sprintf("You got %d/%d", s.Right, s.Total)
}

// TimeTaken returns "It took <duration>.".
func (s Summary) TimeTaken() string {
	return fmt.Sprintf("It took %s.", FormatDuration(s.Duration))
}

// FormatDuration renders d as [<h>h][<m>m]<s>.<cc>s. Hours and minutes are
// left out when zero and hundredths are truncated, e.g. "1h2m3.45s".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	centis := int64(d%time.Second) / int64(10*time.Millisecond)

	var b strings.Builder
	if hours != 0 {
		fmt.Fprintf(&b, "%dh", hours)
	}
	if minutes != 0 {
		fmt.Fprintf(&b, "%dm", minutes)
	}
	fmt.Fprintf(&b, "%d.%02ds", secs, centis)
	return b.String()
}
