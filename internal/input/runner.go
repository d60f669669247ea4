// internal/input/runner.go
package input

import (
	"context"
	"time"
)

// Run starts the ticker loop and emits one Result per poll.
// One goroutine. No overlap. No retries inside a cycle.
func (p *Poller) Run(ctx context.Context, out chan<- Result) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res := p.PollOnce()
			select {
			case out <- res:
			case <-ctx.Done():
				return
			}
		}
	}
}
