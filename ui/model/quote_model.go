package model

import (
	"math/rand"
	"time"
)

// Tone selects how a quote is colored.
type Tone int

const (
	ToneNormal Tone = iota
	ToneWarning
)

// QuoteModel tracks the rotating quote line. A locked message is kept until
// its deadline; rotation requests are ignored meanwhile.
type QuoteModel struct {
	quotes      []string
	rng         *rand.Rand
	text        string
	tone        Tone
	lockedUntil time.Time
	rotatedAt   int64 // session second of the last in-session rotation
}

// NewQuoteModel picks an initial quote from quotes using rng (seeded from
// the clock when nil).
func NewQuoteModel(quotes []string, rng *rand.Rand) *QuoteModel {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	m := &QuoteModel{quotes: quotes, rng: rng}
	m.pick()
	return m
}

// Current returns the visible quote and its tone.
func (m *QuoteModel) Current() (string, Tone) {
	if m == nil {
		return "", ToneNormal
	}
	return m.text, m.tone
}

// Locked reports whether a pinned message is still showing at now.
func (m *QuoteModel) Locked(now time.Time) bool {
	return m != nil && now.Before(m.lockedUntil)
}

// Rotate switches to another random quote unless a message is locked.
func (m *QuoteModel) Rotate(now time.Time) {
	if m == nil || m.Locked(now) {
		return
	}
	m.pick()
}

// Lock pins text for d, replacing any previous lock.
func (m *QuoteModel) Lock(text string, tone Tone, d time.Duration, now time.Time) {
	if m == nil {
		return
	}
	m.text, m.tone = text, tone
	m.lockedUntil = now.Add(d)
}

// OnTick expires locks and rotates once per whole minute of a running session.
// An expired lock is replaced by a random quote only while idle.
func (m *QuoteModel) OnTick(running bool, sessionSeconds int64, now time.Time) {
	if m == nil {
		return
	}
	if !m.lockedUntil.IsZero() && !now.Before(m.lockedUntil) {
		m.lockedUntil = time.Time{}
		if !running {
			m.pick()
		}
	}
	if !running {
		m.rotatedAt = 0
		return
	}
	if sessionSeconds > 0 && sessionSeconds%60 == 0 && sessionSeconds != m.rotatedAt {
		m.rotatedAt = sessionSeconds
		m.Rotate(now)
	}
}

func (m *QuoteModel) pick() {
	m.tone = ToneNormal
	others := make([]string, 0, len(m.quotes))
	for _, q := range m.quotes {
		if q != m.text {
			others = append(others, q)
		}
	}
	if len(others) == 0 { // nothing else to show
		if len(m.quotes) == 0 {
			m.text = ""
		}
		return
	}
	m.text = others[m.rng.Intn(len(others))]
}
