package view

import (
	"github.com/soocke/time-waster/ui/model"
	"github.com/soocke/time-waster/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats updates the live session and cumulative total labels.
type SessionStats interface {
	SetSession(seconds int64)
	SetTotal(seconds int64, tier string)
}

type sessionStats struct {
	sessionLbl *LabelWidget
	totalLbl   *LabelWidget
}

// NewSessionStats creates the session and total labels stacked at rows row and row+1.
func NewSessionStats(row int) SessionStats {
	p := theme.CurrentPalette()
	s := &sessionStats{
		sessionLbl: Label(Foreground(p.Text), Background(p.AppBg), Font(theme.FontMono...)),
		totalLbl:   Label(Foreground(p.Total), Background(p.AppBg), Font(theme.FontSmall...)),
	}
	Grid(s.sessionLbl, Row(row), Column(0), Pady("1m"))
	Grid(s.totalLbl, Row(row+1), Column(0), Pady("1m"))
	s.SetSession(0)
	s.SetTotal(0, "")
	return s
}

// SetSession updates the session duration display.
func (s *sessionStats) SetSession(seconds int64) {
	if s == nil || s.sessionLbl == nil {
		return
	}
	s.sessionLbl.Configure(Txt(model.FormatSession(seconds)))
}

// SetTotal updates the total duration display.
func (s *sessionStats) SetTotal(seconds int64, tier string) {
	if s == nil || s.totalLbl == nil {
		return
	}
	s.totalLbl.Configure(Txt(model.FormatTotal(seconds, tier)))
}
