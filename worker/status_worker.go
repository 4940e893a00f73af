package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"airjustice/service"

	rcron "github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// StatusWorker periodically re-derives every complaint's lifecycle state so cached statuses
// and status_changed events keep up even when nobody reads a complaint.
type StatusWorker struct {
	complaintService *service.ComplaintService
	schedule         string

	mu      sync.Mutex
	cron    *rcron.Cron
	cancel  context.CancelFunc
	running bool
	initial sync.WaitGroup // the immediate pass started by Start; cron does not track it
}

// NewStatusWorker creates a new status worker. schedule is a robfig/cron spec, e.g. "@every 10m".
func NewStatusWorker(complaintService *service.ComplaintService, schedule string) *StatusWorker {
	return &StatusWorker{
		complaintService: complaintService,
		schedule:         schedule,
	}
}

// Start registers the refresh job and starts the scheduler. The first run happens immediately.
func (w *StatusWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		log.Warn().Str("component", "worker").Msg("status worker is already running")
		return nil
	}

	c := rcron.New(rcron.WithChain(rcron.SkipIfStillRunning(rcron.DiscardLogger)))
	runCtx, cancel := context.WithCancel(ctx)
	if _, err := c.AddFunc(w.schedule, func() { w.RunOnce(runCtx) }); err != nil {
		cancel()
		return fmt.Errorf("invalid status worker schedule %q: %w", w.schedule, err)
	}

	w.cron = c
	w.cancel = cancel
	w.running = true
	c.Start()

	w.initial.Add(1)
	go func() {
		defer w.initial.Done()
		w.RunOnce(runCtx)
	}()
	log.Info().Str("component", "worker").Str("schedule", w.schedule).Msg("status worker started")
	return nil
}

// Stop halts the scheduler and waits for every running pass, including the initial one, to finish
func (w *StatusWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	log.Info().Str("component", "worker").Msg("stopping status worker...")
	<-w.cron.Stop().Done()
	w.cancel()
	w.initial.Wait()
	w.running = false
	log.Info().Str("component", "worker").Msg("status worker stopped")
}

// RunOnce performs one refresh pass. Idempotent.
func (w *StatusWorker) RunOnce(ctx context.Context) {
	start := time.Now()
	results, err := w.complaintService.RefreshStatuses(ctx)
	if err != nil {
		log.Error().Err(err).Str("component", "worker").Msg("status refresh failed")
		return
	}

	changed := 0
	for _, r := range results {
		if r.Changed {
			changed++
		}
	}
	log.Info().
		Str("component", "worker").
		Int("processed", len(results)).
		Int("changed", changed).
		Dur("duration", time.Since(start)).
		Msg("status refresh completed")
}
