// Package window queries the operating system for the foreground window.
package window

import (
	"errors"
	"strings"
)

// ErrUnsupported is returned where the platform offers no foreground query.
var ErrUnsupported = errors.New("foreground window query unsupported on this platform")

// ErrNoForeground is returned when no window is in the foreground.
var ErrNoForeground = errors.New("no foreground window")

// IsForeground reports whether the foreground window title equals title,
// ignoring case and surrounding space. fg defaults to ForegroundTitle.
func IsForeground(title string, fg func() (string, error)) (bool, error) {
	if fg == nil {
		fg = ForegroundTitle
	}
	cur, err := fg()
	if err != nil {
		return false, err
	}
	want := strings.ToLower(strings.TrimSpace(title))
	return want != "" && strings.ToLower(strings.TrimSpace(cur)) == want, nil
}
