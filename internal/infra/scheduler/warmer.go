package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/yanqian/weather-planner/internal/domain/weather"
)

const (
	defaultInterval = 10 * time.Minute
	defaultTimeout  = 30 * time.Second
)

// Refresher re-populates cached weather for one location.
type Refresher interface {
	Refresh(ctx context.Context, coords weather.Coordinates) error
}

// Config controls the cache warmer.
type Config struct {
	Enabled   bool
	Interval  time.Duration
	Timeout   time.Duration
	Locations []weather.Coordinates
}

// Warmer periodically refreshes the weather cache for configured locations.
type Warmer struct {
	cfg       Config
	refresher Refresher
	logger    *slog.Logger
	scheduler *gocron.Scheduler
}

// NewWarmer creates a warmer; call Start to schedule it.
func NewWarmer(cfg Config, refresher Refresher, logger *slog.Logger) *Warmer {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Warmer{
		cfg:       cfg,
		refresher: refresher,
		logger:    logger.With("component", "scheduler.warmer"),
		scheduler: gocron.NewScheduler(time.UTC),
	}
}

// Start schedules the refresh job and starts the underlying scheduler.
func (w *Warmer) Start() error {
	if !w.cfg.Enabled {
		w.logger.Info("cache warmer disabled")
		return nil
	}
	if len(w.cfg.Locations) == 0 {
		w.logger.Info("no locations configured; nothing to schedule")
		return nil
	}

	_, err := w.scheduler.Every(w.cfg.Interval).SingletonMode().Do(func() {
		w.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}
	w.scheduler.StartAsync()
	w.logger.Info("cache warmer started", "interval", w.cfg.Interval.String(), "locations", len(w.cfg.Locations))
	return nil
}

// RunOnce refreshes every location concurrently and returns the number of failures.
func (w *Warmer) RunOnce(ctx context.Context) int {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures int
	)
	started := time.Now()
	for _, loc := range w.cfg.Locations {
		loc := loc
		wg.Add(1)
		go func() {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, w.cfg.Timeout)
			defer cancel()

			if err := w.refresher.Refresh(callCtx, loc); err != nil {
				w.logger.Warn("refresh failed", "lat", loc.Latitude, "lon", loc.Longitude, "error", err)
				mu.Lock()
				failures++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	w.logger.Debug("cache warm complete",
		"locations", len(w.cfg.Locations),
		"failures", failures,
		"latency_ms", time.Since(started).Milliseconds(),
	)
	return failures
}

// Stop stops the scheduler and cancels any future runs.
func (w *Warmer) Stop() {
	if w.scheduler != nil && w.scheduler.IsRunning() {
		w.scheduler.Stop()
	}
}
