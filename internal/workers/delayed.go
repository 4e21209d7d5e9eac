package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-invoice-audit/internal/logger"
)

var _ Worker = (*Delayed)(nil)

// Delayed waits for a fixed delay and then calls its function.
type Delayed struct {
	delay time.Duration
	fn    func(ctx context.Context) error
}

func NewDelayed(delay time.Duration, fn func(ctx context.Context) error) *Delayed {
	return &Delayed{delay: delay, fn: fn}
}

// Run blocks for the configured delay. If ctx is done first, fn is not
// called and ctx.Err() is returned. A non-positive delay still checks ctx
// before calling fn.
func (d *Delayed) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).With().Str("func", "*Delayed.Run").Logger()

	if d.delay > 0 {
		timer := time.NewTimer(d.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			log.Debug().Dur("delay", d.delay).Msg("delayed task cancelled")
			return ctx.Err()
		case <-timer.C:
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if d.fn == nil {
		return nil
	}

	return d.fn(ctx)
}

// After runs fn once delay has elapsed, unless ctx ends first.
func After(ctx context.Context, delay time.Duration, fn func(ctx context.Context) error) error {
	var w Worker = NewDelayed(delay, fn)
	return w.Run(ctx)
}
