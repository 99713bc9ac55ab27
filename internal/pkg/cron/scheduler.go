package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/presensi-app/presensi-backend-go/internal/pkg/clock"
)

// runAnyHour marks a job with no daily gate.
const runAnyHour = -1

type job struct {
	name     string
	interval time.Duration
	hour     int // canonical-zone hour the job fires in, or runAnyHour
	fn       func(ctx context.Context) error
}

// Scheduler runs background jobs on fixed intervals. Daily jobs tick hourly
// and fire only in their configured hour of the canonical timezone, so a
// restart at any time of day cannot double-run them.
type Scheduler struct {
	clock  clock.Clock
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler(clk clock.Clock) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		clock:  clk,
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob registers a job that runs every interval, unconditionally.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.add(job{name: name, interval: interval, hour: runAnyHour, fn: fn})
}

// AddDailyJob registers a job that runs once a day, in the given hour of the
// canonical timezone.
func (s *Scheduler) AddDailyJob(name string, hour int, fn func(ctx context.Context) error) {
	s.add(job{name: name, interval: time.Hour, hour: hour, fn: fn})
}

func (s *Scheduler) add(j job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, j)
	slog.Info("Cron job registered", "name", j.name, "interval", j.interval, "hour", j.hour)
}

// Start launches one goroutine per registered job.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.run(j)
	}
	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all jobs and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) run(j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	// First pass at startup catches a job whose hour is right now.
	s.execute(j)

	for {
		select {
		case <-s.ctx.Done():
			slog.Info("Cron job stopping", "name", j.name)
			return
		case <-ticker.C:
			s.execute(j)
		}
	}
}

// due reports whether the job's daily gate allows it to fire now.
func (s *Scheduler) due(j job) bool {
	return j.hour == runAnyHour || s.clock.Now().Hour() == j.hour
}

func (s *Scheduler) execute(j job) {
	if !s.due(j) {
		return
	}

	start := time.Now()
	slog.Debug("Cron job starting", "name", j.name)

	if err := j.fn(s.ctx); err != nil {
		slog.Error("Cron job failed", "name", j.name, "error", err, "duration", time.Since(start))
	} else {
		slog.Debug("Cron job completed", "name", j.name, "duration", time.Since(start))
	}
}

// RunOnce executes every currently due job a single time.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		if !s.due(j) {
			continue
		}
		if err := j.fn(ctx); err != nil {
			slog.Error("Cron job failed", "name", j.name, "error", err)
		}
	}
}
