package waste

import "time"

// TimerState enumerates the states of the session timer.
type TimerState int

const (
	StateIdle TimerState = iota
	StateRunning
)

func (s TimerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// StateListener is called on each successful timer transition.
type StateListener func(prev, next TimerState)

// Clock returns the current instant. Tests substitute a fake.
type Clock func() time.Time

// SessionEntry is one finished session as stored in the history.
type SessionEntry struct {
	Time    string `json:"time"`
	Session int64  `json:"session"`
}

// Record is the persisted accumulator state.
type Record struct {
	TotalSeconds int64          `json:"total_seconds"`
	History      []SessionEntry `json:"history"`
}

// DefaultRecord returns the first-run state.
func DefaultRecord() *Record {
	return &Record{TotalSeconds: 0, History: []SessionEntry{}}
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	if r == nil {
		return DefaultRecord()
	}
	c := &Record{TotalSeconds: r.TotalSeconds, History: make([]SessionEntry, len(r.History))}
	copy(c.History, r.History)
	return c
}

// Interface slices for consumers (presenters).
type TrackerStateSource interface {
	Running() bool
	SessionSeconds() int64
	TotalSeconds() int64
}
type TrackerControl interface {
	Start()
	Pause() error
}
