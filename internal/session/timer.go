// Package session models the timing of one incident attempt. A Timer is
// an explicit value scoped to a single incident: callers create one when
// an incident starts and pass it wherever elapsed time is needed. There is
// no process-wide timer registry; the clock is injected so tests and
// replays control time.
package session

import "time"

// Clock supplies the current time. The zero value is not usable; use
// time.Now for production timers.
type Clock func() time.Time

// Pressure levels by share of time remaining.
const (
	PressureLow      = "low"
	PressureMedium   = "medium"
	PressureHigh     = "high"
	PressureCritical = "critical"
	PressureInactive = "inactive"
)

// Timer tracks one incident's deadline.
type Timer struct {
	IncidentID string
	StartedAt  time.Time
	TimeLimit  time.Duration
	now        Clock
}

// Status is a point-in-time snapshot of a timer.
type Status struct {
	IncidentID       string
	ElapsedSeconds   int
	RemainingSeconds int
	RemainingPercent float64
	PressureLevel    string
	Expired          bool
}

// NewTimer starts a timer for an incident at the clock's current time.
func NewTimer(incidentID string, timeLimitMinutes int, now Clock) Timer {
	if now == nil {
		now = time.Now
	}
	return Timer{
		IncidentID: incidentID,
		StartedAt:  now(),
		TimeLimit:  time.Duration(timeLimitMinutes) * time.Minute,
		now:        now,
	}
}

// Resume reconstructs a timer for an incident that started earlier, e.g.
// one loaded from storage.
func Resume(incidentID string, startedAt time.Time, timeLimitMinutes int, now Clock) Timer {
	if now == nil {
		now = time.Now
	}
	return Timer{
		IncidentID: incidentID,
		StartedAt:  startedAt,
		TimeLimit:  time.Duration(timeLimitMinutes) * time.Minute,
		now:        now,
	}
}

// Elapsed returns time spent since the incident started.
func (t Timer) Elapsed() time.Duration {
	d := t.now().Sub(t.StartedAt)
	if d < 0 {
		return 0
	}
	return d
}

// ElapsedMinutes returns whole minutes spent, truncated, matching how
// resolution times are reported to the scorer.
func (t Timer) ElapsedMinutes() int {
	return int(t.Elapsed() / time.Minute)
}

// Remaining returns time left before the deadline, never negative.
func (t Timer) Remaining() time.Duration {
	r := t.TimeLimit - t.Elapsed()
	if r < 0 {
		return 0
	}
	return r
}

// Expired reports whether the deadline has passed.
func (t Timer) Expired() bool {
	return t.Elapsed() >= t.TimeLimit
}

// Status snapshots the timer, including the pressure level shown to the
// user as the deadline approaches.
func (t Timer) Status() Status {
	elapsed := t.Elapsed()
	remaining := t.Remaining()

	pct := 0.0
	if t.TimeLimit > 0 {
		pct = float64(remaining) / float64(t.TimeLimit) * 100
	}

	return Status{
		IncidentID:       t.IncidentID,
		ElapsedSeconds:   int(elapsed / time.Second),
		RemainingSeconds: int(remaining / time.Second),
		RemainingPercent: pct,
		PressureLevel:    pressureLevel(pct),
		Expired:          t.Expired(),
	}
}

func pressureLevel(remainingPercent float64) string {
	switch {
	case remainingPercent > 75:
		return PressureLow
	case remainingPercent > 50:
		return PressureMedium
	case remainingPercent > 25:
		return PressureHigh
	default:
		return PressureCritical
	}
}
