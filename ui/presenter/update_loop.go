package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback that
// re-arms the next tick. The zero value is usable (methods are nil-safe).
type Loop struct {
	Session  *SessionPresenter
	Quote    *QuotePresenter
	Status   *StatusPresenter
	Schedule func()
	Now      func() time.Time
}

func NewLoop(sess *SessionPresenter, quote *QuotePresenter, status *StatusPresenter, schedule func()) *Loop {
	return &Loop{Session: sess, Quote: quote, Status: status, Schedule: schedule, Now: time.Now}
}

// Tick refreshes all presenters and schedules the next tick.
func (l *Loop) Tick() {
	if l == nil {
		return
	}
	l.Refresh()
	if l.Schedule != nil {
		l.Schedule()
	}
}

// Refresh updates the view immediately without touching the schedule.
// User actions call it so the window reacts before the next tick.
func (l *Loop) Refresh() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Now != nil {
		now = l.Now()
	}
	// Session first: the status line reads its snapshot.
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Status != nil {
		l.Status.Tick(now)
	}
	if l.Quote != nil {
		l.Quote.Tick(now)
	}
}
