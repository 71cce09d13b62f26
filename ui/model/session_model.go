package model

import (
	"time"

	"github.com/soocke/time-waster/domain/waste"
)

// Toggle button captions.
const (
	LabelStart  = "Start Wasting"
	LabelPause  = "Pause Wasting"
	LabelResume = "Resume Wasting"
)

// TrackerSource is the read side of the tracker polled on every tick.
type TrackerSource interface {
	Running() bool
	SessionSeconds() int64
	TotalSeconds() int64
	SessionsThisRun() int
	LastEntry() (waste.SessionEntry, bool)
}

// SessionSnapshot is everything the window shows about the accounting state.
type SessionSnapshot struct {
	Running        bool
	SessionSeconds int64
	TotalSeconds   int64
	Tier           waste.Tier
	NextTier       waste.Tier
	ToNextTier     int64 // seconds; 0 at the top tier
	ButtonLabel    string
	LastWasted     time.Time // zero when unknown
}

// SessionModel projects the tracker into a SessionSnapshot.
// It is decoupled from the UI; presenters should call OnTick then Values.
type SessionModel struct {
	src  TrackerSource
	snap SessionSnapshot
}

// NewSessionModel returns a model reading from src.
func NewSessionModel(src TrackerSource) *SessionModel {
	m := &SessionModel{src: src}
	m.snap = SessionSnapshot{ButtonLabel: LabelStart, Tier: waste.TierFor(0)}
	return m
}

// OnTick refreshes the snapshot from the tracker.
func (m *SessionModel) OnTick(now time.Time) {
	if m == nil || m.src == nil {
		return
	}
	s := SessionSnapshot{
		Running:        m.src.Running(),
		SessionSeconds: m.src.SessionSeconds(),
		TotalSeconds:   m.src.TotalSeconds(),
	}
	s.Tier = waste.TierFor(s.TotalSeconds)
	if next, remaining, ok := waste.NextTier(s.TotalSeconds); ok {
		s.NextTier, s.ToNextTier = next, remaining
	}
	switch {
	case s.Running:
		s.ButtonLabel = LabelPause
		s.LastWasted = now
	case m.src.SessionsThisRun() > 0:
		s.ButtonLabel = LabelResume
	default:
		s.ButtonLabel = LabelStart
	}
	if !s.Running {
		if last, ok := m.src.LastEntry(); ok {
			if ts, ok := waste.ParseTimestamp(last.Time); ok {
				s.LastWasted = ts
			}
		}
	}
	m.snap = s
}

// Values returns the latest snapshot.
func (m *SessionModel) Values() SessionSnapshot {
	if m == nil {
		return SessionSnapshot{}
	}
	return m.snap
}
