package model

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatSession renders the live session line.
func FormatSession(seconds int64) string {
	return fmt.Sprintf("Wasted this session: %s s", humanize.Comma(seconds))
}

// FormatTotal renders the cumulative line; tier may be empty.
func FormatTotal(seconds int64, tier string) string {
	if tier == "" {
		return fmt.Sprintf("Total wasted: %s s", humanize.Comma(seconds))
	}
	return fmt.Sprintf("Total wasted: %s s (%s)", humanize.Comma(seconds), tier)
}
