package view

import (
	"log/slog"

	"github.com/soocke/time-waster/ui/model"
	"github.com/soocke/time-waster/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level window layout and wires UI callbacks.
// It owns the subviews and implements the presenter view contracts.
type RootView struct {
	logger *slog.Logger
	width  int

	// Subviews
	Session SessionStats

	// Widgets
	TitleLabel  *LabelWidget
	QuoteLabel  *LabelWidget
	ToggleBtn   *ButtonWidget
	StatusLabel *LabelWidget

	toggleText string
	running    bool
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	SetSession(snap model.SessionSnapshot)
	SetQuote(text string, tone model.Tone)
	SetStatus(text string)
}

func NewRootView(width int, logger *slog.Logger) *RootView {
	return &RootView{width: width, logger: logger}
}

// Build constructs the layout: title, session, total, quote, toggle button, footer.
func (rv *RootView) Build(title string, onToggle func()) {
	if rv == nil {
		return
	}
	p := theme.CurrentPalette()
	GridColumnConfigure(App, 0, Weight(1))

	rv.TitleLabel = Label(Txt(title), Foreground(p.Title), Background(p.AppBg), Font(theme.FontTitle...))
	Grid(rv.TitleLabel, Row(0), Column(0), Pady("2m"))

	rv.Session = NewSessionStats(1)

	wrap := rv.width - 60
	if wrap < 150 {
		wrap = 150
	}
	rv.QuoteLabel = Label(Wraplength(wrap), Justify("center"), Foreground(p.TextMuted), Background(p.AppBg), Font(theme.FontQuote...))
	Grid(rv.QuoteLabel, Row(3), Column(0), Padx("2m"), Pady("4m"))

	rv.toggleText = model.LabelStart
	rv.ToggleBtn = Button(Txt(rv.toggleText), Command(onToggle), Width(15),
		Background(p.Primary), Foreground("black"), Font(theme.FontButton...))
	Grid(rv.ToggleBtn, Row(4), Column(0), Pady("2m"))

	rv.StatusLabel = Label(Txt("State: idle"), Foreground(p.TextMuted), Background(p.AppBg), Font(theme.FontFooter...))
	Grid(rv.StatusLabel, Row(5), Column(0), Sticky("we"), Pady("1m"))
}

// SetSession updates the counters and the toggle button.
func (rv *RootView) SetSession(snap model.SessionSnapshot) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetSession(snap.SessionSeconds)
	rv.Session.SetTotal(snap.TotalSeconds, snap.Tier.Name)
	if rv.ToggleBtn == nil || (snap.ButtonLabel == rv.toggleText && snap.Running == rv.running) {
		return
	}
	rv.toggleText, rv.running = snap.ButtonLabel, snap.Running
	p := theme.CurrentPalette()
	bg := p.Primary
	if snap.Running {
		bg = p.Danger
	}
	rv.guard("toggle", func() { rv.ToggleBtn.Configure(Txt(snap.ButtonLabel), Background(bg)) })
}

// SetQuote replaces the quote line.
func (rv *RootView) SetQuote(text string, tone model.Tone) {
	if rv == nil || rv.QuoteLabel == nil {
		return
	}
	p := theme.CurrentPalette()
	fg := p.TextMuted
	if tone == model.ToneWarning {
		fg = p.Danger
	}
	rv.guard("quote", func() { rv.QuoteLabel.Configure(Txt(text), Foreground(fg)) })
}

// SetStatus updates the footer line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.guard("status", func() { rv.StatusLabel.Configure(Txt(text)) })
	}
}

// guard runs a widget update, swallowing the panic Tk raises once the
// widget has been destroyed during shutdown.
func (rv *RootView) guard(widget string, f func()) {
	defer func() {
		if r := recover(); r != nil && rv.logger != nil {
			rv.logger.Debug("widget update skipped", "widget", widget, "error", r)
		}
	}()
	f()
}

var _ UI = (*RootView)(nil)
