package notifier

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

const notificationTimeout = 30 * time.Second

// Async delivers events in background goroutines. Notify always returns nil;
// delivery failures are logged and never reach the caller.
type Async struct {
	targets []Notifier
	logger  *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewAsync fans each event out to every target.
func NewAsync(logger *slog.Logger, targets ...Notifier) *Async {
	if logger == nil {
		logger = slog.Default()
	}
	return &Async{targets: targets, logger: logger, timeout: notificationTimeout}
}

// Notify implements Notifier. The caller's ctx only bounds logging; delivery
// runs on a detached context so a finished HTTP request does not cancel it.
func (a *Async) Notify(ctx context.Context, e Event) error {
	for _, target := range a.targets {
		a.wg.Add(1)
		go a.deliver(context.WithoutCancel(ctx), target, e)
	}
	return nil
}

func (a *Async) deliver(ctx context.Context, target Notifier, e Event) {
	defer a.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("notification goroutine panicked",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	if err := target.Notify(ctx, e); err != nil {
		a.logger.Warn("audit notification dropped",
			slog.String("event", string(e.Kind)),
			slog.Any("error", err))
	}
}

// Shutdown waits for in-flight deliveries or until ctx is done.
func (a *Async) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
