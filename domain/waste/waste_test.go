package waste

import (
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// fakeClock is advanced manually by tests.
type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)}
}
func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTracker(t *testing.T) (*Tracker, *Store, *fakeClock) {
	t.Helper()
	clk := newFakeClock()
	store := NewStore(filepath.Join(t.TempDir(), DefaultDataFile), discardLogger)
	return NewTracker(store, discardLogger, clk.Now), store, clk
}

func TestTimer_StartPauseGuards(t *testing.T) {
	clk := newFakeClock()
	tm := NewTimer(clk.Now)
	if _, ok := tm.Pause(); ok {
		t.Fatalf("pause from idle should be ignored")
	}
	if !tm.Start() {
		t.Fatalf("start from idle should transition")
	}
	if tm.Start() {
		t.Fatalf("second start should be ignored")
	}
	clk.Advance(2900 * time.Millisecond)
	if got := tm.Elapsed(); got != 2 {
		t.Fatalf("elapsed should truncate to 2s, got %d", got)
	}
	elapsed, ok := tm.Pause()
	if !ok || elapsed != 2 {
		t.Fatalf("pause: got elapsed=%d ok=%v", elapsed, ok)
	}
	if tm.State() != StateIdle || tm.Elapsed() != 0 {
		t.Fatalf("expected idle with zero elapsed, got %v %d", tm.State(), tm.Elapsed())
	}
}

func TestTimer_Listeners(t *testing.T) {
	tm := NewTimer(newFakeClock().Now)
	var seq []string
	tm.AddListener(func(prev, next TimerState) { seq = append(seq, prev.String()+">"+next.String()) })
	tm.Start()
	tm.Start()
	tm.Pause()
	tm.Pause()
	want := []string{"idle>running", "running>idle"}
	if !reflect.DeepEqual(seq, want) {
		t.Fatalf("transitions: got %v want %v", seq, want)
	}
}

func TestLevelFor_Boundaries(t *testing.T) {
	cases := []struct {
		total int64
		rank  int
	}{
		{0, 0}, {59, 0}, {60, 1}, {599, 1}, {600, 2}, {3599, 2}, {3600, 3}, {86399, 3}, {86400, 4}, {1 << 40, 4},
	}
	for _, c := range cases {
		if got := TierFor(c.total).Rank; got != c.rank {
			t.Errorf("TierFor(%d) rank=%d want %d", c.total, got, c.rank)
		}
	}
	if LevelFor(-1) != UnknownTier.Name {
		t.Fatalf("negative total should map to unknown tier")
	}
	if LevelFor(60) != "Time Libertarian" {
		t.Fatalf("LevelFor(60) = %q", LevelFor(60))
	}
}

func TestLevelFor_Monotonic(t *testing.T) {
	prev := TierFor(0).Rank
	for x := int64(0); x <= 90000; x += 7 {
		r := TierFor(x).Rank
		if r < prev {
			t.Fatalf("rank decreased at %d: %d < %d", x, r, prev)
		}
		prev = r
	}
}

func TestNextTier(t *testing.T) {
	next, remaining, ok := NextTier(45)
	if !ok || next.Rank != 1 || remaining != 15 {
		t.Fatalf("NextTier(45) = %+v %d %v", next, remaining, ok)
	}
	if _, _, ok := NextTier(86400); ok {
		t.Fatalf("top tier should have no next tier")
	}
}

func TestStore_MissingFileCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waste.json")
	s := NewStore(path, discardLogger)
	rec, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec.TotalSeconds != 0 || len(rec.History) != 0 {
		t.Fatalf("expected default record, got %+v", rec)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default file should have been written: %v", err)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "waste.json"), discardLogger)
	orig := &Record{TotalSeconds: 185, History: []SessionEntry{
		{Time: "2025-03-01T12:00:00.000000", Session: 125},
		{Time: "2025-03-01T13:00:00.000000", Session: 60},
	}}
	if err := s.Save(orig); err != nil {
		t.Fatalf("save: %v", err)
	}
	first, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := s.Save(first); err != nil {
		t.Fatalf("resave: %v", err)
	}
	second, err := s.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(orig, first) || !reflect.DeepEqual(first, second) {
		t.Fatalf("round trip mismatch:\norig=%+v\nfirst=%+v\nsecond=%+v", orig, first, second)
	}
}

func TestStore_CorruptionRecovery(t *testing.T) {
	cases := map[string]string{
		"garbage":        "{not json",
		"truncated":      "{\n  \"total_seconds\": 12,\n  \"hist",
		"array":          "[1,2,3]",
		"null":           "null",
		"missing total":  `{"history": []}`,
		"string total":   `{"total_seconds": "ten", "history": []}`,
		"negative total": `{"total_seconds": -5, "history": []}`,
		"bad history":    `{"total_seconds": 5, "history": [{"time": 1, "session": "x"}]}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "waste.json")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			rec, err := NewStore(path, discardLogger).Load()
			if err != nil {
				t.Fatalf("load should absorb corruption, got %v", err)
			}
			if !reflect.DeepEqual(rec, DefaultRecord()) {
				t.Fatalf("expected default record, got %+v", rec)
			}
			again, _ := NewStore(path, discardLogger).Load()
			if !reflect.DeepEqual(again, DefaultRecord()) {
				t.Fatalf("file should have been repaired, got %+v", again)
			}
		})
	}
}

func TestStore_MissingHistoryIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waste.json")
	if err := os.WriteFile(path, []byte(`{"total_seconds": 42}`), 0o644); err != nil {
		t.Fatal(err)
	}
	rec, err := NewStore(path, discardLogger).Load()
	if err != nil || rec.TotalSeconds != 42 || rec.History == nil || len(rec.History) != 0 {
		t.Fatalf("got rec=%+v err=%v", rec, err)
	}
}

func TestStore_KeepsNonASCII(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waste.json")
	s := NewStore(path, discardLogger)
	if err := s.Save(&Record{TotalSeconds: 1, History: []SessionEntry{{Time: "今日 <now>", Session: 1}}}); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "今日 <now>") || !strings.Contains(string(data), "\n  \"history\"") {
		t.Fatalf("expected verbatim, indented output, got %s", data)
	}
}

func TestTracker_TwoSessionsSum(t *testing.T) {
	for _, c := range []struct{ a, b int64 }{{0, 0}, {1, 0}, {59, 1}, {125, 3600}} {
		tr, _, clk := newTestTracker(t)
		before := len(tr.Record().History)
		tr.Start()
		clk.Advance(time.Duration(c.a) * time.Second)
		if err := tr.Pause(); err != nil {
			t.Fatal(err)
		}
		tr.Start()
		clk.Advance(time.Duration(c.b) * time.Second)
		if err := tr.Pause(); err != nil {
			t.Fatal(err)
		}
		rec := tr.Record()
		if rec.TotalSeconds != c.a+c.b || len(rec.History) != before+2 {
			t.Fatalf("a=%d b=%d: total=%d history=%d", c.a, c.b, rec.TotalSeconds, len(rec.History))
		}
	}
}

func TestTracker_IdempotentPause(t *testing.T) {
	tr, _, clk := newTestTracker(t)
	tr.Start()
	clk.Advance(10 * time.Second)
	_ = tr.Pause()
	clk.Advance(10 * time.Second)
	_ = tr.Pause()
	rec := tr.Record()
	if rec.TotalSeconds != 10 || len(rec.History) != 1 {
		t.Fatalf("expected one 10s session, got %+v", rec)
	}
}

func TestTracker_EndToEnd(t *testing.T) {
	tr, store, clk := newTestTracker(t)
	tr.Start()
	clk.Advance(125 * time.Second)
	if got := tr.TotalSeconds(); got != 125 {
		t.Fatalf("live total should include running session, got %d", got)
	}
	if err := tr.Pause(); err != nil {
		t.Fatal(err)
	}
	onDisk, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if onDisk.TotalSeconds != 125 || len(onDisk.History) != 1 || onDisk.History[0].Session != 125 {
		t.Fatalf("persisted record wrong: %+v", onDisk)
	}
	if onDisk.History[0].Time != "2025-03-01T12:02:05.000000" {
		t.Fatalf("timestamp: %q", onDisk.History[0].Time)
	}
	if LevelFor(onDisk.TotalSeconds) != TierFor(60).Name {
		t.Fatalf("expected tier1, got %q", LevelFor(onDisk.TotalSeconds))
	}
	if tr.SessionSeconds() != 125 {
		t.Fatalf("idle session seconds should show last session, got %d", tr.SessionSeconds())
	}
}

func TestTracker_ResumesFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultDataFile)
	clk := newFakeClock()
	store := NewStore(path, discardLogger)
	_ = store.Save(&Record{TotalSeconds: 500, History: []SessionEntry{{Time: "x", Session: 500}}})
	tr := NewTracker(store, discardLogger, clk.Now)
	if tr.SessionSeconds() != 0 {
		t.Fatalf("no session finished this run yet")
	}
	tr.Start()
	clk.Advance(100 * time.Second)
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	rec, _ := store.Load()
	if rec.TotalSeconds != 600 || len(rec.History) != 2 || LevelFor(rec.TotalSeconds) != "Procrastination Master" {
		t.Fatalf("got %+v", rec)
	}
}

func TestTracker_SaveFailureKeepsSession(t *testing.T) {
	dir := t.TempDir()
	clk := newFakeClock()
	store := NewStore(filepath.Join(dir, "waste.json"), discardLogger)
	tr := NewTracker(store, discardLogger, clk.Now)
	// Point the store at a directory so the write fails.
	store.path = dir
	tr.Start()
	clk.Advance(3 * time.Second)
	if err := tr.Pause(); err == nil {
		t.Fatalf("expected save error")
	}
	if tr.Running() || tr.Record().TotalSeconds != 3 {
		t.Fatalf("session should still be recorded in memory")
	}
}

func TestParseTimestamp(t *testing.T) {
	for _, s := range []string{"2025-03-01T12:02:05.123456", "2025-03-01T12:02:05", "2025-03-01T12:02:05Z"} {
		ts, ok := ParseTimestamp(s)
		if !ok || ts.Minute() != 2 || ts.Second() != 5 {
			t.Fatalf("ParseTimestamp(%q) = %v %v", s, ts, ok)
		}
	}
	if _, ok := ParseTimestamp("yesterday"); ok {
		t.Fatalf("free text should not parse")
	}
}
