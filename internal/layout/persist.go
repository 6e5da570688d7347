package layout

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const writeTimeout = 5 * time.Second

// Persister coalesces bursts of writes per key and performs them once the
// burst has been quiet for delay. Writes are best-effort: failures are
// logged and dropped. A zero delay writes synchronously.
type Persister struct {
	store  Store
	delay  time.Duration
	logger *log.Logger

	mu      sync.Mutex
	pending map[string][]byte
	timer   *time.Timer

	// wmu serialises flushes so an older batch never lands after a newer one.
	wmu sync.Mutex
}

func NewPersister(store Store, delay time.Duration, logger *log.Logger) *Persister {
	if logger == nil {
		logger = log.Default()
	}
	return &Persister{
		store:   store,
		delay:   delay,
		logger:  logger,
		pending: make(map[string][]byte),
	}
}

// Schedule records value as the latest state for key.
func (p *Persister) Schedule(key string, value []byte) {
	if p == nil || p.store == nil {
		return
	}
	p.mu.Lock()
	p.pending[key] = value
	if p.delay <= 0 {
		p.mu.Unlock()
		p.Flush(context.Background())
		return
	}
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(p.delay, p.fire)
	p.mu.Unlock()
}

func (p *Persister) fire() {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	p.Flush(ctx)
}

// Flush writes every pending entry now.
func (p *Persister) Flush(ctx context.Context) {
	if p == nil || p.store == nil {
		return
	}
	p.wmu.Lock()
	defer p.wmu.Unlock()

	p.mu.Lock()
	batch := p.pending
	p.pending = make(map[string][]byte)
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.mu.Unlock()

	for key, value := range batch {
		if err := p.store.Set(ctx, key, value); err != nil {
			p.logger.Warn("persist splitter state", "key", key, "err", err)
		}
	}
}

// Pending reports how many keys are waiting to be written.
func (p *Persister) Pending() int {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// Close flushes outstanding writes.
func (p *Persister) Close(ctx context.Context) {
	p.Flush(ctx)
}
