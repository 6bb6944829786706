package service

import (
	"context"
	"sync"
	"time"
)

// Poller runs a task once on Start and then on every interval tick until
// stopped or until the start context ends.
type Poller struct {
	interval time.Duration
	task     func(ctx context.Context)

	startOnce sync.Once
	stopOnce  sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewPoller(interval time.Duration, task func(ctx context.Context)) *Poller {
	return &Poller{
		interval: interval,
		task:     task,
		done:     make(chan struct{}),
	}
}

// Start launches the polling goroutine. Calling it again is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(ctx)
		p.cancel = cancel
		go p.run(ctx)
	})
}

func (p *Poller) run(ctx context.Context) {
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
}

// Stop cancels the poller and waits for an in-flight task to return.
// Stopping a poller that was never started returns immediately.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		p.startOnce.Do(func() {})
		if p.cancel == nil {
			return
		}
		p.cancel()
		<-p.done
	})
}
