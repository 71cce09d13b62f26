package waste

import "time"

// TimestampLayout is the ISO-8601 local-time layout written into history entries.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Accumulator adds finished sessions to a Record.
type Accumulator struct {
	record *Record
	now    Clock
}

// NewAccumulator wraps rec (a default record when nil).
func NewAccumulator(rec *Record, now Clock) *Accumulator {
	if rec == nil {
		rec = DefaultRecord()
	}
	if rec.History == nil {
		rec.History = []SessionEntry{}
	}
	if now == nil {
		now = time.Now
	}
	return &Accumulator{record: rec, now: now}
}

// RecordSession adds elapsed seconds to the total, appends a history entry
// and returns the new total. Negative input counts as zero.
func (a *Accumulator) RecordSession(elapsed int64) int64 {
	if elapsed < 0 {
		elapsed = 0
	}
	a.record.TotalSeconds += elapsed
	a.record.History = append(a.record.History, SessionEntry{
		Time:    a.now().Format(TimestampLayout),
		Session: elapsed,
	})
	return a.record.TotalSeconds
}

// Total returns the accumulated seconds of all recorded sessions.
func (a *Accumulator) Total() int64 { return a.record.TotalSeconds }

// Sessions returns the number of history entries.
func (a *Accumulator) Sessions() int { return len(a.record.History) }

// LastEntry returns the most recent history entry.
func (a *Accumulator) LastEntry() (SessionEntry, bool) {
	if len(a.record.History) == 0 {
		return SessionEntry{}, false
	}
	return a.record.History[len(a.record.History)-1], true
}

// Record returns the live record backing the accumulator.
func (a *Accumulator) Record() *Record { return a.record }

// ParseTimestamp parses a history timestamp written by this or older
// versions of the tracker (fractional seconds optional).
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range []string{TimestampLayout, "2006-01-02T15:04:05", time.RFC3339Nano} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
