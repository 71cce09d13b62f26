package presenter

import (
	"log/slog"
	"time"

	"github.com/soocke/time-waster/ui/model"
)

// Messages shown by the focus policy.
const (
	MsgDistracted = "You got distracted. Wasting interrupted. Please focus on doing nothing."
	MsgWelcome    = "Welcome back. Carry on with your unfinished nothingness."
)

// Scheduler runs f once after d on the UI event loop.
type Scheduler interface {
	After(d time.Duration, f func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, f func())

func (s SchedulerFunc) After(d time.Duration, f func()) { s(d, f) }

// FocusTracker narrows the tracker contract needed by the focus watcher.
type FocusTracker interface {
	Running() bool
	Pause() error
}

// FocusWatcher turns window focus events into auto-pause decisions.
//
// Focus-out is debounced: after Debounce the window is asked whether it still
// holds focus, which filters focus moving between widgets of the same window.
// The delayed check is never cancelled; pausing an idle tracker is a no-op.
// Focus-in never resumes a session.
type FocusWatcher struct {
	Tracker        FocusTracker
	Quotes         QuoteRotator
	Logger         *slog.Logger
	HasFocus       func() bool
	Debounce       time.Duration
	DistractedLock time.Duration
	WelcomeLock    time.Duration
	AutoPause      bool
	OnChange       func()

	sched Scheduler
	now   func() time.Time
}

// NewFocusWatcher constructs a focus watcher with the default timings.
// hasFocus nil means "never focused", so every debounced focus-out pauses.
func NewFocusWatcher(tracker FocusTracker, quotes QuoteRotator, logger *slog.Logger, sched Scheduler, hasFocus func() bool) *FocusWatcher {
	if hasFocus == nil {
		hasFocus = func() bool { return false }
	}
	return &FocusWatcher{
		Tracker:        tracker,
		Quotes:         quotes,
		Logger:         logger,
		HasFocus:       hasFocus,
		Debounce:       50 * time.Millisecond,
		DistractedLock: 8 * time.Second,
		WelcomeLock:    6 * time.Second,
		AutoPause:      true,
		sched:          sched,
		now:            time.Now,
	}
}

// OnFocusLost schedules the debounced focus check.
func (w *FocusWatcher) OnFocusLost() {
	if w == nil || !w.AutoPause {
		return
	}
	if w.sched == nil {
		w.checkFocusLost()
		return
	}
	w.sched.After(w.Debounce, w.checkFocusLost)
}

func (w *FocusWatcher) checkFocusLost() {
	if w.HasFocus != nil && w.HasFocus() {
		return // focus moved inside the window
	}
	if w.Tracker != nil && w.Tracker.Running() {
		_ = w.Tracker.Pause()
		if w.Logger != nil {
			w.Logger.Info("auto-paused on focus loss")
		}
	}
	if w.Quotes != nil {
		w.Quotes.Lock(MsgDistracted, model.ToneWarning, w.DistractedLock, w.now())
	}
	w.changed()
}

// OnFocusGained greets the user when idle; the session stays paused.
func (w *FocusWatcher) OnFocusGained() {
	if w == nil || w.Tracker == nil {
		return
	}
	if w.Tracker.Running() {
		return
	}
	if w.Quotes != nil {
		w.Quotes.Lock(MsgWelcome, model.ToneNormal, w.WelcomeLock, w.now())
	}
	if w.Logger != nil {
		w.Logger.Debug("focus regained while idle")
	}
	w.changed()
}

func (w *FocusWatcher) changed() {
	if w.OnChange != nil {
		w.OnChange()
	}
}
