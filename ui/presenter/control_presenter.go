package presenter

import (
	"time"

	"github.com/soocke/time-waster/ui/model"
)

// Tracker narrows what the presenters need from the waste tracker.
type Tracker interface {
	Running() bool
	Start()
	Pause() error
	Close() error
}

// QuoteRotator is the part of the quote model touched by user actions.
type QuoteRotator interface {
	Rotate(now time.Time)
	Lock(text string, tone model.Tone, d time.Duration, now time.Time)
}

// ControlPresenter owns the toggle button and the close flow.
type ControlPresenter struct {
	tracker Tracker
	quotes  QuoteRotator
	refresh func()
	now     func() time.Time
}

// NewControlPresenter wires the toggle. refresh is called after every state
// change so the view does not wait for the next tick.
func NewControlPresenter(tracker Tracker, quotes QuoteRotator, refresh func()) *ControlPresenter {
	return &ControlPresenter{tracker: tracker, quotes: quotes, refresh: refresh, now: time.Now}
}

// Start begins a session. Idempotent.
func (c *ControlPresenter) Start() {
	if c == nil || c.tracker == nil {
		return
	}
	if c.tracker.Running() {
		return
	}
	c.tracker.Start()
	c.changed()
}

// Pause ends the running session and persists it. Idempotent.
// Save errors are already logged by the tracker and are not shown to the user.
func (c *ControlPresenter) Pause() {
	if c == nil || c.tracker == nil {
		return
	}
	if !c.tracker.Running() {
		return
	}
	_ = c.tracker.Pause()
	if c.quotes != nil {
		c.quotes.Rotate(c.now())
	}
	c.changed()
}

// Toggle flips the running state delegating to Start/Pause.
func (c *ControlPresenter) Toggle() {
	if c == nil || c.tracker == nil {
		return
	}
	if c.tracker.Running() {
		c.Pause()
		return
	}
	c.Start()
}

// Close pauses a running session and flushes the record before shutdown.
func (c *ControlPresenter) Close() error {
	if c == nil || c.tracker == nil {
		return nil
	}
	err := c.tracker.Close()
	c.changed()
	return err
}

func (c *ControlPresenter) changed() {
	if c.refresh != nil {
		c.refresh()
	}
}
