package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"newsletter-delivery/internal/pkg/config"
	"newsletter-delivery/internal/usecase/commands"
)

// DeliveryWorker drains the delivery queue until stopped.
type DeliveryWorker struct {
	executor  commands.DeliveryCommands
	idleWait  time.Duration
	errorWait time.Duration
	logger    *slog.Logger

	mu       sync.Mutex
	running  bool
	stop     chan struct{}
	stopOnce sync.Once
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewDeliveryWorker(executor commands.DeliveryCommands, cfg config.DeliveryConfig, logger *slog.Logger) *DeliveryWorker {
	return &DeliveryWorker{
		executor:  executor,
		idleWait:  cfg.IdleWait,
		errorWait: cfg.ErrorWait,
		logger:    logger.With("component", "delivery_worker"),
		stop:      make(chan struct{}),
	}
}

func (w *DeliveryWorker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.running = true

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()
	w.logger.Info("delivery worker started")
}

// Stop waits for the in-flight task. If ctx expires first the task's context is canceled.
func (w *DeliveryWorker) Stop(ctx context.Context) error {
	w.stopOnce.Do(func() { close(w.stop) })

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	defer func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.cancel != nil {
			w.cancel()
		}
	}()

	select {
	case <-done:
		w.logger.Info("delivery worker stopped")
		return nil
	case <-ctx.Done():
		w.logger.Warn("delivery worker stop timed out, canceling in-flight task")
		return ctx.Err()
	}
}

func (w *DeliveryWorker) run(ctx context.Context) {
	for {
		select {
		case <-w.stop:
			return
		default:
		}

		outcome, err := w.executor.TryExecuteTask(ctx)

		var wait time.Duration
		switch {
		case err != nil:
			w.logger.Error("delivery task failed", "error", err.Error())
			wait = w.errorWait
		case outcome == commands.EmptyQueue:
			wait = w.idleWait
		default:
			continue
		}

		timer := time.NewTimer(wait)
		select {
		case <-w.stop:
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}
