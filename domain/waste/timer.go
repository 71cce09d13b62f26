package waste

import "time"

// Timer is the Idle/Running session state machine. Calls made in the wrong
// state are ignored. It is not safe for concurrent use; the UI event loop
// serializes all access.
type Timer struct {
	state     TimerState
	startTime time.Time
	now       Clock
	listeners []StateListener
}

// NewTimer returns an idle timer reading time from now (time.Now when nil).
func NewTimer(now Clock) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{state: StateIdle, now: now}
}

// AddListener registers l for subsequent transitions.
func (t *Timer) AddListener(l StateListener) {
	if l == nil {
		return
	}
	t.listeners = append(t.listeners, l)
}

// State returns the current state.
func (t *Timer) State() TimerState { return t.state }

// Running reports whether a session is in progress.
func (t *Timer) Running() bool { return t.state == StateRunning }

// Start begins a session. It reports whether a transition happened.
func (t *Timer) Start() bool {
	if t.state != StateIdle {
		return false
	}
	t.startTime = t.now()
	t.transition(StateRunning)
	return true
}

// Pause ends the running session and returns its length in whole seconds.
// ok is false when the timer was already idle.
func (t *Timer) Pause() (elapsed int64, ok bool) {
	if t.state != StateRunning {
		return 0, false
	}
	elapsed = t.Elapsed()
	t.startTime = time.Time{}
	t.transition(StateIdle)
	return elapsed, true
}

// Elapsed returns the truncated seconds of the live session, 0 when idle.
func (t *Timer) Elapsed() int64 {
	if t.state != StateRunning {
		return 0
	}
	d := t.now().Sub(t.startTime)
	if d < 0 { // wall clock stepped backwards
		return 0
	}
	return int64(d / time.Second)
}

func (t *Timer) transition(next TimerState) {
	prev := t.state
	if prev == next {
		return
	}
	t.state = next
	for _, l := range t.listeners {
		l(prev, next)
	}
}
