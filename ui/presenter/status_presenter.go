package presenter

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/soocke/time-waster/domain/waste"
	"github.com/soocke/time-waster/ui/model"
)

// StatusView sets the footer line in the view.
type StatusView interface{ SetStatus(string) }

// StatusPresenter receives timer transitions and renders the footer line.
type StatusPresenter struct {
	sess    *model.SessionModel
	view    StatusView
	latest  waste.TimerState
	pending []waste.TimerState
	shown   string
}

func NewStatusPresenter(sess *model.SessionModel, view StatusView) *StatusPresenter {
	return &StatusPresenter{sess: sess, view: view}
}

// OnState queues a transition from the timer listener.
//
// The latest queued state will be reflected on the next Tick.
func (p *StatusPresenter) OnState(prev, next waste.TimerState) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, next)
}

// Tick applies queued states and refreshes the relative "last wasted" time.
// The session model is expected to be refreshed earlier in the same tick.
func (p *StatusPresenter) Tick(now time.Time) {
	if p == nil || p.view == nil {
		return
	}
	if len(p.pending) > 0 {
		p.latest = p.pending[len(p.pending)-1]
		p.pending = p.pending[:0]
	}
	text := "State: " + p.latest.String()
	if p.sess != nil {
		snap := p.sess.Values()
		if snap.NextTier.Name != "" {
			text += " · " + humanize.Comma(snap.ToNextTier) + "s to " + snap.NextTier.Name
		}
		if !snap.Running && !snap.LastWasted.IsZero() {
			text += " · last wasted " + humanize.RelTime(snap.LastWasted, now, "ago", "from now")
		}
	}
	if text != p.shown {
		p.shown = text
		p.view.SetStatus(text)
	}
}
