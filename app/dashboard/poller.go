package dashboard

import (
	"context"
	"time"
)

// poll re-fetches the recent orders feed on a fixed interval for the
// lifetime of the activation. No backoff, no jitter: every tick retries
// regardless of the previous outcome. Overlapping in-flight requests are
// allowed; the sequence tickets in refreshOrders drop whichever response
// lands stale. Exits when Activate's context is cancelled, closing done
// so Deactivate can observe the shutdown.
func (c *Controller) poll(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.spawn(func() { c.refreshOrders(ctx) })
		}
	}
}
