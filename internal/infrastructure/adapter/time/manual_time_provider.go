package time

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// ManualTimeProvider is a clock that only moves when told to.
// Each call to Now advances it by Step so consecutive records stay strictly ordered.
type ManualTimeProvider struct {
	mu   sync.Mutex
	now  time.Time
	Step time.Duration
}

// NewManualTimeProvider creates a manual clock starting at start
func NewManualTimeProvider(start time.Time, step time.Duration) *ManualTimeProvider {
	return &ManualTimeProvider{now: start.UTC(), Step: step}
}

// Now returns the current manual time and advances it by Step
func (p *ManualTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now
	p.now = p.now.Add(p.Step)
	return now
}

// Advance moves the clock forward by d
func (p *ManualTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = p.now.Add(d)
}

// Set moves the clock to t
func (p *ManualTimeProvider) Set(t time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = t.UTC()
}

func (p *ManualTimeProvider) peek() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

// Since returns the manual time elapsed since t
func (p *ManualTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(p.peek().Sub(t))
}

// Until returns the manual duration until t
func (p *ManualTimeProvider) Until(t time.Time) core.Duration {
	return core.Duration(t.Sub(p.peek()))
}

// Sleep advances the clock instead of blocking
func (p *ManualTimeProvider) Sleep(ctx context.Context, d core.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.Advance(d.Std())
	return nil
}

// WithTimeout uses a real timer; manual time does not drive context deadlines
func (p *ManualTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
