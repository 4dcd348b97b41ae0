package listener

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promo-pages/internal/campaign"
	"promo-pages/internal/storage"
)

type countingSource struct {
	loads atomic.Int32
}

func (s *countingSource) Load(context.Context) (storage.Catalog, error) {
	s.loads.Add(1)
	return storage.Catalog{Campaigns: campaign.DefaultCampaigns()}, nil
}
func (s *countingSource) Ping(context.Context) error { return nil }
func (s *countingSource) Close()                     {}

func TestPollAndRefresh_UpdatesCacheUntilCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := &countingSource{}
	c := storage.NewCache()

	done := make(chan struct{})
	go func() {
		PollAndRefresh(ctx, src, c, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		cat, ok := c.Get()
		return ok && len(cat.Campaigns) == 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
	assert.GreaterOrEqual(t, src.loads.Load(), int32(1))
}

func TestJitter_Bounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		d := jitter(time.Second)
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.Less(t, d, 1500*time.Millisecond)
	}
	assert.GreaterOrEqual(t, jitter(0), 500*time.Millisecond)
}

type chanWaiter struct {
	notes chan *pgconn.Notification
	fail  chan error
}

func newChanWaiter() *chanWaiter {
	return &chanWaiter{notes: make(chan *pgconn.Notification), fail: make(chan error, 1)}
}

func (w *chanWaiter) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	select {
	case n := <-w.notes:
		return n, nil
	case err := <-w.fail:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (w *chanWaiter) notify() {
	w.notes <- &pgconn.Notification{Channel: "promo_campaigns_changed", Payload: "campaigns"}
}

func startConsume(t *testing.T, w *chanWaiter, window time.Duration) (*atomic.Int32, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	var reloads atomic.Int32
	done := make(chan error, 1)
	go func() { done <- consume(ctx, w, func() { reloads.Add(1) }, window) }()
	return &reloads, done
}

func TestConsume_NotificationInsideWindowIsDelayedNotDropped(t *testing.T) {
	w := newChanWaiter()
	reloads, _ := startConsume(t, w, 100*time.Millisecond)

	w.notify()
	assert.Eventually(t, func() bool { return reloads.Load() == 1 }, time.Second, 5*time.Millisecond)

	// arrives right after the first reload, inside the window
	w.notify()
	assert.Equal(t, int32(1), reloads.Load())
	assert.Eventually(t, func() bool { return reloads.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestConsume_BurstCoalescesIntoOneTrailingReload(t *testing.T) {
	w := newChanWaiter()
	reloads, _ := startConsume(t, w, 100*time.Millisecond)

	for i := 0; i < 5; i++ {
		w.notify()
	}
	assert.Eventually(t, func() bool { return reloads.Load() == 2 }, time.Second, 5*time.Millisecond)
	assert.Never(t, func() bool { return reloads.Load() > 2 }, 300*time.Millisecond, 10*time.Millisecond)
}

func TestConsume_ReturnsWaiterError(t *testing.T) {
	w := newChanWaiter()
	reloads, done := startConsume(t, w, 10*time.Millisecond)

	w.fail <- errors.New("conn closed")
	select {
	case err := <-done:
		require.Error(t, err)
		assert.Equal(t, "conn closed", err.Error())
	case <-time.After(time.Second):
		t.Fatal("consume did not return")
	}
	assert.Equal(t, int32(0), reloads.Load())
}
