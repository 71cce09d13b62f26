package presenter

import (
	"time"

	"github.com/soocke/time-waster/ui/model"
)

// SessionView displays the session counter, the running total with its tier,
// and the toggle caption.
type SessionView interface {
	SetSession(snap model.SessionSnapshot)
}

// SessionPresenter pushes SessionModel snapshots to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, view: view}
}

// Tick refreshes the model and pushes the snapshot to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.view == nil {
		return
	}
	p.sess.OnTick(now)
	p.view.SetSession(p.sess.Values())
}
