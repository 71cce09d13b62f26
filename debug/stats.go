package debug

// Periodic diagnostics logger. Started only when config.Debug is true.
// Emits goroutine count, heap usage and the latest tracker snapshot.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"sync/atomic"
	"time"
)

// TrackerStats is the accounting state published by the UI loop.
type TrackerStats struct {
	Running        bool
	SessionSeconds int64
	TotalSeconds   int64
	Tier           string
}

// StatsBox hands TrackerStats from the UI loop to the logger goroutine.
// The zero value is ready to use.
type StatsBox struct{ v atomic.Pointer[TrackerStats] }

// Publish stores s as the latest snapshot.
func (b *StatsBox) Publish(s TrackerStats) {
	if b == nil {
		return
	}
	b.v.Store(&s)
}

// Latest returns the most recent snapshot; ok is false before the first Publish.
func (b *StatsBox) Latest() (s TrackerStats, ok bool) {
	if b == nil {
		return TrackerStats{}, false
	}
	p := b.v.Load()
	if p == nil {
		return TrackerStats{}, false
	}
	return *p, true
}

// StartStatsLogger launches a ticker that logs runtime and tracker stats until ctx is done.
// It is lightweight; disable by running without the debug flag.
func StartStatsLogger(ctx context.Context, interval time.Duration, logger *slog.Logger, box *StatsBox) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				logStats(logger, box)
			}
		}
	}()
}

func logStats(logger *slog.Logger, box *StatsBox) {
	if logger == nil {
		return
	}
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	metrics.Read(samples)
	var goroutines uint64
	if samples[0].Value.Kind() == metrics.KindUint64 {
		goroutines = samples[0].Value.Uint64()
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	attrs := []any{
		slog.Uint64("goroutines", goroutines),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
		slog.Uint64("stack_inuse", ms.StackInuse),
	}
	if s, ok := box.Latest(); ok {
		attrs = append(attrs,
			slog.Bool("running", s.Running),
			slog.Int64("session_seconds", s.SessionSeconds),
			slog.Int64("total_seconds", s.TotalSeconds),
			slog.String("tier", s.Tier),
		)
	}
	logger.Debug("stats", attrs...)
}
