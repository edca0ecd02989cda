package feed

import (
	"context"
	"time"
)

// Poller runs a task immediately and then on a fixed interval until its
// context is cancelled. It decouples the clients' "current snapshot +
// status" contract from the scheduling mechanism.
type Poller struct {
	interval time.Duration
	task     func(context.Context)
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewPoller(interval time.Duration, task func(context.Context)) *Poller {
	return &Poller{interval: interval, task: task, done: make(chan struct{})}
}

// Start launches the polling loop in its own goroutine. The first run
// happens right away.
func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	go func() {
		defer close(p.done)
		p.task(ctx)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.task(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for the in-flight run, if any, to return.
func (p *Poller) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	<-p.done
}
