package debug

// Goroutine population logger, started only when config.Debug is true. The
// recorder runs a small fixed set of goroutines (Tk event loop, recording
// loop, hook dispatcher, signal watcher, encoder waiter), so growth over the
// starting count means something is leaking, usually a stuck channel send.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// goroutineGrowthWarn is how far above the baseline the count may drift
// before the periodic log is raised to a warning.
const goroutineGrowthWarn = 8

// StartGoroutineLogger records the current goroutine count as the baseline
// and then logs count and stack usage every interval.
func StartGoroutineLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = time.Second
	}
	baseline := runtime.NumGoroutine()

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for range t.C {
			metrics.Read(samples)
			goroutines := samples[0].Value.Uint64()
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			level := slog.LevelInfo
			if goroutines > uint64(baseline+goroutineGrowthWarn) {
				level = slog.LevelWarn
			}
			logger.Log(context.Background(), level, "goroutine-stacks",
				slog.Uint64("goroutines", goroutines),
				slog.Int("baseline", baseline),
				slog.Uint64("stack_inuse", uint64(ms.StackInuse)),
				slog.Uint64("stack_sys", uint64(ms.StackSys)),
				slog.Uint64("heap_alloc", uint64(ms.HeapAlloc)),
			)
		}
	}()
}
