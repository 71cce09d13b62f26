package waste

import (
	"log/slog"
	"time"
)

// Tracker combines the session timer, the accumulator and the store.
// A session is recorded and persisted at the moment it is paused.
type Tracker struct {
	timer    *Timer
	acc      *Accumulator
	store    *Store
	logger   *slog.Logger
	sessions int // sessions finished since construction
}

// NewTracker loads the record from store and returns an idle tracker.
// A load error (failure to write the default file) is logged; the tracker
// still starts from the returned record.
func NewTracker(store *Store, logger *slog.Logger, now Clock) *Tracker {
	if now == nil {
		now = time.Now
	}
	rec, err := store.Load()
	if err != nil && logger != nil {
		logger.Error("waste data init failed", "path", store.Path(), "error", err)
	}
	return &Tracker{
		timer:  NewTimer(now),
		acc:    NewAccumulator(rec, now),
		store:  store,
		logger: logger,
	}
}

// AddListener registers l for timer transitions.
func (t *Tracker) AddListener(l StateListener) { t.timer.AddListener(l) }

// Start begins a session; ignored while running.
func (t *Tracker) Start() {
	if t.timer.Start() && t.logger != nil {
		t.logger.Debug("session started")
	}
}

// Pause ends the running session, adds it to the record and saves.
// Ignored while idle. A save failure is logged and returned; the in-memory
// record keeps the session either way.
func (t *Tracker) Pause() error {
	elapsed, ok := t.timer.Pause()
	if !ok {
		return nil
	}
	total := t.acc.RecordSession(elapsed)
	t.sessions++
	if t.logger != nil {
		t.logger.Info("session recorded", "session_seconds", elapsed, "total_seconds", total, "tier", LevelFor(total))
	}
	if err := t.store.Save(t.acc.Record()); err != nil {
		if t.logger != nil {
			t.logger.Error("waste data save failed", "error", err)
		}
		return err
	}
	return nil
}

// Toggle starts when idle and pauses when running.
func (t *Tracker) Toggle() error {
	if t.timer.Running() {
		return t.Pause()
	}
	t.Start()
	return nil
}

// Close pauses a running session and writes the record one final time.
func (t *Tracker) Close() error {
	if t.timer.Running() {
		return t.Pause()
	}
	if err := t.store.Save(t.acc.Record()); err != nil {
		if t.logger != nil {
			t.logger.Error("waste data save failed", "error", err)
		}
		return err
	}
	return nil
}

// State returns the timer state.
func (t *Tracker) State() TimerState { return t.timer.State() }

// Running reports whether a session is in progress.
func (t *Tracker) Running() bool { return t.timer.Running() }

// SessionSeconds returns the live session length, or the length of the last
// session finished by this tracker when idle.
func (t *Tracker) SessionSeconds() int64 {
	if t.timer.Running() {
		return t.timer.Elapsed()
	}
	if t.sessions == 0 {
		return 0
	}
	if last, ok := t.acc.LastEntry(); ok {
		return last.Session
	}
	return 0
}

// TotalSeconds returns the persisted total plus the live session.
func (t *Tracker) TotalSeconds() int64 {
	return t.acc.Total() + t.timer.Elapsed()
}

// SessionsThisRun returns how many sessions were finished since start-up.
func (t *Tracker) SessionsThisRun() int { return t.sessions }

// LastEntry returns the newest history entry, including ones loaded from disk.
func (t *Tracker) LastEntry() (SessionEntry, bool) { return t.acc.LastEntry() }

// Record returns a copy of the current record.
func (t *Tracker) Record() *Record { return t.acc.Record().Clone() }

var (
	_ TrackerStateSource = (*Tracker)(nil)
	_ TrackerControl     = (*Tracker)(nil)
)
