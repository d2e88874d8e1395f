// Package poller drives the asynchronous analysis job to completion: query
// the session status immediately, then on a fixed interval, and stop at the
// first terminal state, error, or cancellation.
package poller

import (
	"context"
	"time"

	"github.com/Bebric123/MedAnalyzer/model"
)

// StatusClient is the single backend operation the poller needs.
type StatusClient interface {
	SessionStatus(ctx context.Context, sessionID string) (model.AnalysisSession, error)
}

// Update is one observation pushed to the consumer. Err is set at most once,
// as the final update before the channel closes (fail-stop policy).
type Update struct {
	Session model.AnalysisSession
	Err     error
}

// Poller polls one session at a time. Bind its Run context to the consumer's
// lifetime; cancelling it is the only way to stop a non-terminal job early.
type Poller struct {
	client   StatusClient
	interval time.Duration
}

func New(client StatusClient, interval time.Duration) *Poller {
	return &Poller{client: client, interval: interval}
}

// Run starts polling sessionID and returns the update channel. The channel
// closes when polling stops: terminal state observed, query failed, or ctx
// cancelled. Queries are issued strictly sequentially, so a slow response
// stretches the effective interval rather than overlapping the next query.
func (p *Poller) Run(ctx context.Context, sessionID string) <-chan Update {
	ch := make(chan Update, 1)
	go p.loop(ctx, sessionID, ch)
	return ch
}

func (p *Poller) loop(ctx context.Context, sessionID string, ch chan<- Update) {
	defer close(ch)

	// highest status rank observed; replies below it are stale and dropped
	// so displayed state never moves backwards
	best := -1

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		sess, err := p.client.SessionStatus(ctx, sessionID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			p.send(ctx, ch, Update{Err: err})
			return
		}

		if rank := sess.Status.Rank(); rank >= best {
			best = rank
			if !p.send(ctx, ch, Update{Session: sess}) {
				return
			}
			if sess.Status.Terminal() {
				return
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (p *Poller) send(ctx context.Context, ch chan<- Update, u Update) bool {
	select {
	case ch <- u:
		return true
	case <-ctx.Done():
		return false
	}
}
