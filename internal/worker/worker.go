package worker

import (
	"context"
	"log/slog"
	"time"
)

type Config struct {
	Name      string
	Processor Processor
	// Interval is the pause after an empty or failed pass.
	Interval time.Duration
}

// Processor handles one unit of work and reports how many items it moved.
type Processor interface {
	Process(ctx context.Context) (int, error)
}

type Worker struct {
	name      string
	processor Processor
	interval  time.Duration
}

func New(cfg Config) *Worker {
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Second
	}
	return &Worker{
		name:      cfg.Name,
		processor: cfg.Processor,
		interval:  interval,
	}
}

func (w *Worker) Run(ctx context.Context) {
	slog.InfoContext(ctx, "Worker started...", "worker", w.name)
	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Worker stopped...", "worker", w.name)
			return
		case <-timer.C:
		}
		if ctx.Err() != nil {
			continue
		}

		n, err := w.processor.Process(ctx)
		if err != nil && ctx.Err() == nil {
			slog.ErrorContext(ctx, "Worker pass failed", "worker", w.name, "error", err)
		}
		if err != nil || n == 0 {
			timer.Reset(w.interval)
		} else {
			timer.Reset(0)
		}
	}
}
