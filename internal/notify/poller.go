// Package notify keeps a periodically refreshed snapshot of the user's
// notifications while a token-holding session is active.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"pymerp/internal/api"
	"pymerp/internal/core"
	"pymerp/internal/metrics"
)

// fetchLimit caps how many notifications one poll pulls.
const fetchLimit = 20

// Backend is the slice of the API client the poller needs. *api.Client
// satisfies it; tests substitute stubs.
type Backend interface {
	ListNotifications(ctx context.Context, limit int) api.Result[[]core.Notification]
	MarkNotificationRead(ctx context.Context, id int) error
	MarkAllNotificationsRead(ctx context.Context) error
}

// Poller refreshes the notification list on a fixed interval and on demand
// after mark-read actions. It is idle until Start and idle again after Stop;
// the ticker dies with the context, nothing survives the owning screen.
type Poller struct {
	backend  Backend
	interval time.Duration
	log      zerolog.Logger

	mu     sync.Mutex
	items  []core.Notification
	source api.Source
	gen    uint64

	cancel  context.CancelFunc
	refresh chan struct{}
	done    chan struct{}
}

// NewPoller builds a stopped poller. interval <= 0 defaults to 30s.
func NewPoller(backend Backend, interval time.Duration, log zerolog.Logger) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{
		backend:  backend,
		interval: interval,
		log:      log.With().Str("component", "notify").Logger(),
		source:   api.SourceFallback,
	}
}

// Start begins polling: one immediate fetch, then one per interval. Calling
// Start on a running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return
	}
	ctx, p.cancel = context.WithCancel(ctx)
	p.refresh = make(chan struct{}, 1)
	p.done = make(chan struct{})
	p.mu.Unlock()

	go p.run(ctx)
}

// Stop cancels the polling loop and waits for it to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// Refresh requests an immediate poll without waiting for the next tick.
func (p *Poller) Refresh() {
	p.mu.Lock()
	ch := p.refresh
	p.mu.Unlock()
	if ch == nil {
		return
	}
	select {
	case ch <- struct{}{}:
	default: // a refresh is already queued
	}
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	p.FetchNow(ctx)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.FetchNow(ctx)
		case <-p.refresh:
			p.FetchNow(ctx)
		}
	}
}

// FetchNow performs one synchronous fetch-and-adopt cycle. The polling loop
// uses it internally; mark-read paths call it so the unread count reflects
// the backend round trip rather than an optimistic local flip.
func (p *Poller) FetchNow(ctx context.Context) {
	metrics.PollTicksTotal.Inc()
	res := p.backend.ListNotifications(ctx, fetchLimit)
	p.adopt(res)
}

// adopt installs a fetch result unless a newer one already landed. The
// generation guard closes the slow-response race: a stale resolution can
// never clobber fresher data.
func (p *Poller) adopt(res api.Result[[]core.Notification]) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if res.Generation <= p.gen {
		metrics.StaleDropsTotal.Inc()
		p.log.Debug().Uint64("generation", res.Generation).Msg("dropped stale notification fetch")
		return
	}
	p.items = res.Data
	p.source = res.Source
	p.gen = res.Generation

	metrics.UnreadNotifications.Set(float64(countUnread(res.Data)))
	if res.Degraded() {
		p.log.Warn().Str("reason", res.Reason).Msg("notifications degraded to sample data")
	}
}

// Snapshot returns a copy of the current list and its data source.
func (p *Poller) Snapshot() ([]core.Notification, api.Source) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]core.Notification, len(p.items))
	copy(out, p.items)
	return out, p.source
}

// UnreadCount counts unread notifications in the current snapshot.
func (p *Poller) UnreadCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return countUnread(p.items)
}

// MarkRead flips one notification and refetches so the snapshot reflects
// what the backend actually stored.
func (p *Poller) MarkRead(ctx context.Context, id int) error {
	if err := p.backend.MarkNotificationRead(ctx, id); err != nil {
		return err
	}
	p.FetchNow(ctx)
	return nil
}

// MarkAllRead flips every notification and refetches.
func (p *Poller) MarkAllRead(ctx context.Context) error {
	if err := p.backend.MarkAllNotificationsRead(ctx); err != nil {
		return err
	}
	p.FetchNow(ctx)
	return nil
}

func countUnread(items []core.Notification) int {
	n := 0
	for _, item := range items {
		if !item.Read {
			n++
		}
	}
	return n
}
