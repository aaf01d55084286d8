package query

import (
	"context"
	"sync"
	"time"

	"github.com/dmuwanga/ohns-backoffice/internal/logging"
)

// Pollable is the part of a Resource the Poller needs.
type Pollable interface {
	Key() string
	Interval() time.Duration
	Refresh(ctx context.Context) error
}

// Poller drives timer-based background refreshes, one goroutine per active
// resource. Refresh failures are logged and the previous value stays served;
// the next tick tries again.
type Poller struct {
	log     logging.Logger
	mu      sync.Mutex
	cancels map[string]context.CancelFunc
	wg      sync.WaitGroup
}

func NewPoller(log logging.Logger) *Poller {
	return &Poller{log: log, cancels: make(map[string]context.CancelFunc)}
}

// Start begins polling r until Stop/StopAll or ctx cancellation. Starting a
// key that is already polled supersedes the old loop.
func (p *Poller) Start(ctx context.Context, r Pollable) {
	ctx, cancel := context.WithCancel(ctx)

	p.mu.Lock()
	if old, ok := p.cancels[r.Key()]; ok {
		old()
	}
	p.cancels[r.Key()] = cancel
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ticker := time.NewTicker(r.Interval())
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := r.Refresh(ctx); err != nil {
					p.log.Warn(ctx, "background refresh failed", "key", r.Key(), "error", err)
				}
			}
		}
	}()
}

// Stop ends polling for one key.
func (p *Poller) Stop(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cancel, ok := p.cancels[key]; ok {
		cancel()
		delete(p.cancels, key)
	}
}

// StopAll ends every poll loop and waits for the goroutines to exit.
func (p *Poller) StopAll() {
	p.mu.Lock()
	for key, cancel := range p.cancels {
		cancel()
		delete(p.cancels, key)
	}
	p.mu.Unlock()

	p.wg.Wait()
}
