package clock

import "time"

// Clock is a point in time. Values obtained from Now carry a monotonic
// reading, so Sub between two of them is unaffected by wall clock jumps.
type Clock struct {
	t time.Time
}

func NewClock(t time.Time) Clock { return Clock{t} }

func Now() Clock { return Clock{time.Now()} }

func (c Clock) Time() time.Time { return c.t }

func (c Clock) Add(d time.Duration) Clock { return Clock{c.t.Add(d)} }

func (c Clock) BeforeOrEqual(other Clock) bool { return !c.t.After(other.t) }

func (c Clock) Sub(start Clock) time.Duration { return c.t.Sub(start.t) }

// Milliseconds converts d to fractional milliseconds. Negative durations are 0.
func Milliseconds(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	return float64(d.Nanoseconds()) / float64(time.Millisecond)
}
