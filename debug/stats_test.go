package debug

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestStatsBox(t *testing.T) {
	var box StatsBox
	if _, ok := box.Latest(); ok {
		t.Fatalf("empty box should report no snapshot")
	}
	box.Publish(TrackerStats{Running: true, TotalSeconds: 61, Tier: "Time Libertarian"})
	s, ok := box.Latest()
	if !ok || !s.Running || s.TotalSeconds != 61 {
		t.Fatalf("got %+v %v", s, ok)
	}
}

func TestLogStatsIncludesTracker(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	box := &StatsBox{}
	box.Publish(TrackerStats{TotalSeconds: 600, Tier: "Procrastination Master"})
	logStats(logger, box)
	out := buf.String()
	if !strings.Contains(out, "total_seconds=600") || !strings.Contains(out, "goroutines=") {
		t.Fatalf("unexpected log line: %s", out)
	}
}
