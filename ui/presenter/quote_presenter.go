package presenter

import (
	"time"

	"github.com/soocke/time-waster/ui/model"
)

// QuoteView shows the quote line.
type QuoteView interface {
	SetQuote(text string, tone model.Tone)
}

// RunningSource reports the live session for quote rotation.
type RunningSource interface {
	Running() bool
	SessionSeconds() int64
}

// QuotePresenter advances the quote model and reflects changes in the view.
type QuotePresenter struct {
	quotes *model.QuoteModel
	src    RunningSource
	view   QuoteView
	shown  string
	tone   model.Tone
}

func NewQuotePresenter(quotes *model.QuoteModel, src RunningSource, view QuoteView) *QuotePresenter {
	return &QuotePresenter{quotes: quotes, src: src, view: view}
}

// Tick expires locks, rotates on minute marks and updates the label when the text changed.
func (p *QuotePresenter) Tick(now time.Time) {
	if p == nil || p.quotes == nil || p.src == nil || p.view == nil {
		return
	}
	p.quotes.OnTick(p.src.Running(), p.src.SessionSeconds(), now)
	text, tone := p.quotes.Current()
	if text == p.shown && tone == p.tone {
		return
	}
	p.shown, p.tone = text, tone
	p.view.SetQuote(text, tone)
}
