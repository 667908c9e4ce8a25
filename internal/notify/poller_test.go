package notify_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pymerp/internal/api"
	"pymerp/internal/core"
	"pymerp/internal/notify"
)

// stubBackend serves a mutable in-memory notification list and hands out
// generations like the real client does.
type stubBackend struct {
	mu    sync.Mutex
	items []core.Notification
	gen   uint64

	markErr  error
	fetches  int
	nextGens []uint64 // when set, overrides the generation per fetch
}

func (s *stubBackend) ListNotifications(_ context.Context, _ int) api.Result[[]core.Notification] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetches++
	gen := s.gen + 1
	if len(s.nextGens) > 0 {
		gen = s.nextGens[0]
		s.nextGens = s.nextGens[1:]
	}
	if gen > s.gen {
		s.gen = gen
	}
	out := make([]core.Notification, len(s.items))
	copy(out, s.items)
	return api.Result[[]core.Notification]{Data: out, Source: api.SourceLive, Generation: gen}
}

func (s *stubBackend) MarkNotificationRead(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.markErr != nil {
		return s.markErr
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Read = true
		}
	}
	return nil
}

func (s *stubBackend) MarkAllNotificationsRead(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.markErr != nil {
		return s.markErr
	}
	for i := range s.items {
		s.items[i].Read = true
	}
	return nil
}

func notifications(readFlags ...bool) []core.Notification {
	out := make([]core.Notification, len(readFlags))
	for i, read := range readFlags {
		out[i] = core.Notification{ID: i + 1, Title: "n", Read: read}
	}
	return out
}

func TestPoller_FetchNowAdoptsList(t *testing.T) {
	backend := &stubBackend{items: notifications(false, false, true)}
	p := notify.NewPoller(backend, time.Minute, zerolog.Nop())

	p.FetchNow(context.Background())

	items, source := p.Snapshot()
	assert.Equal(t, api.SourceLive, source)
	assert.Len(t, items, 3)
	assert.Equal(t, 2, p.UnreadCount())
}

func TestPoller_MarkAllReadThenRefetchZeroesUnread(t *testing.T) {
	backend := &stubBackend{items: notifications(false, false, false)}
	p := notify.NewPoller(backend, time.Minute, zerolog.Nop())
	p.FetchNow(context.Background())
	require.Equal(t, 3, p.UnreadCount())

	require.NoError(t, p.MarkAllRead(context.Background()))
	assert.Equal(t, 0, p.UnreadCount())
}

func TestPoller_MarkReadRefetches(t *testing.T) {
	backend := &stubBackend{items: notifications(false, false)}
	p := notify.NewPoller(backend, time.Minute, zerolog.Nop())
	p.FetchNow(context.Background())

	fetchesBefore := backend.fetches
	require.NoError(t, p.MarkRead(context.Background(), 1))
	assert.Equal(t, 1, p.UnreadCount())
	assert.Greater(t, backend.fetches, fetchesBefore, "mark-read must trigger a refetch")
}

func TestPoller_MarkReadErrorLeavesSnapshot(t *testing.T) {
	backend := &stubBackend{items: notifications(false)}
	p := notify.NewPoller(backend, time.Minute, zerolog.Nop())
	p.FetchNow(context.Background())

	backend.markErr = context.DeadlineExceeded
	require.Error(t, p.MarkRead(context.Background(), 1))
	assert.Equal(t, 1, p.UnreadCount())
}

// A slow fetch that resolves after a newer one must be dropped, not adopted.
func TestPoller_StaleGenerationDiscarded(t *testing.T) {
	backend := &stubBackend{items: notifications(false, false)}
	p := notify.NewPoller(backend, time.Minute, zerolog.Nop())

	// Newer fetch (generation 5) lands first.
	backend.nextGens = []uint64{5}
	p.FetchNow(context.Background())
	require.Equal(t, 2, p.UnreadCount())

	// The older in-flight fetch (generation 3) resolves late with different
	// data; the snapshot must not move.
	backend.mu.Lock()
	backend.items = notifications(false)
	backend.nextGens = []uint64{3}
	backend.mu.Unlock()
	p.FetchNow(context.Background())

	items, _ := p.Snapshot()
	assert.Len(t, items, 2, "stale resolution clobbered newer data")
}

func TestPoller_StartPollsAndStopHalts(t *testing.T) {
	backend := &stubBackend{items: notifications(false)}
	p := notify.NewPoller(backend, 10*time.Millisecond, zerolog.Nop())

	p.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	p.Stop()

	backend.mu.Lock()
	after := backend.fetches
	backend.mu.Unlock()
	assert.GreaterOrEqual(t, after, 3, "expected several poll cycles")

	time.Sleep(30 * time.Millisecond)
	backend.mu.Lock()
	assert.Equal(t, after, backend.fetches, "poller kept fetching after Stop")
	backend.mu.Unlock()
}

func TestPoller_RefreshTriggersImmediateFetch(t *testing.T) {
	backend := &stubBackend{items: notifications(false)}
	p := notify.NewPoller(backend, time.Hour, zerolog.Nop())
	p.Start(context.Background())
	defer p.Stop()

	require.Eventually(t, func() bool {
		backend.mu.Lock()
		defer backend.mu.Unlock()
		return backend.fetches >= 1
	}, time.Second, 5*time.Millisecond)

	p.Refresh()
	require.Eventually(t, func() bool {
		backend.mu.Lock()
		defer backend.mu.Unlock()
		return backend.fetches >= 2
	}, time.Second, 5*time.Millisecond)
}
