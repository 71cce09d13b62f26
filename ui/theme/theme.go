package theme

// Centralized palette for the tracker window. The dark palette is the
// default look; the light one is opt-in through config.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorTitle     = "#2563eb"
	ColorTotal     = "#b45309"
	ColorPrimary   = "#2563eb" // idle toggle button
	ColorDanger    = "#dc2626" // running toggle button, warnings
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// PaletteSnapshot represents resolved colors for the active mode.
type PaletteSnapshot struct {
	AppBg     string
	Title     string
	Total     string
	Primary   string
	Danger    string
	Text      string
	TextMuted string
}

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() PaletteSnapshot {
	if darkMode {
		return PaletteSnapshot{
			AppBg:     "#20232a",
			Title:     "#61dafb",
			Total:     "#f0db4f",
			Primary:   "#61dafb",
			Danger:    "#ff6666",
			Text:      "#ffffff",
			TextMuted: "#999999",
		}
	}
	return PaletteSnapshot{
		AppBg:     ColorBg,
		Title:     ColorTitle,
		Total:     ColorTotal,
		Primary:   ColorPrimary,
		Danger:    ColorDanger,
		Text:      ColorText,
		TextMuted: ColorTextMuted,
	}
}

// Fonts used by the window.
var (
	FontTitle  = []any{"Helvetica", 18, "bold"}
	FontMono   = []any{"Consolas", 14}
	FontSmall  = []any{"Consolas", 12}
	FontQuote  = []any{"Helvetica", 11, "italic"}
	FontButton = []any{"Helvetica", 12, "bold"}
	FontFooter = []any{"Helvetica", 9}
)

// internal flag for current mode
var darkMode = true

// SetDark switches palette mode and recolors the root window. Returns new mode value.
func SetDark(dark bool) bool {
	darkMode = dark
	App.Configure(Background(CurrentPalette().AppBg))
	return darkMode
}

// IsDark reports current mode.
func IsDark() bool { return darkMode }
