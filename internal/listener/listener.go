package listener

import (
	"context"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"promo-pages/internal/logfields"
	"promo-pages/internal/storage"
)

// ListenAndRefresh reloads the catalog whenever Postgres signals a change on
// channel. It reconnects with jittered backoff until ctx is done.
func ListenAndRefresh(ctx context.Context, st *storage.Postgres, c *storage.Cache, channel string, baseBackoff time.Duration) {
	if channel == "" {
		channel = st.ListenChannel()
	}
	for ctx.Err() == nil {
		err := listen(ctx, st, c, channel)
		if ctx.Err() != nil {
			break
		}
		backoff := jitter(baseBackoff)
		log.Error().Err(err).Dur(logfields.RetryIn, backoff).Str(logfields.Channel, channel).Msg("listener interrupted")
		sleep(ctx, backoff)
	}
	log.Info().Msg("listener stopped")
}

func listen(ctx context.Context, st *storage.Postgres, c *storage.Cache, channel string) error {
	conn, err := st.PgxPool().Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err = conn.Exec(ctx, "LISTEN "+channel); err != nil {
		return err
	}
	log.Info().Str(logfields.Channel, channel).Msg("listening for catalog changes")

	// changes made while we were disconnected
	refresh(ctx, st, c)

	return consume(ctx, conn.Conn(), func() { refresh(ctx, st, c) }, debounceWindow)
}

const debounceWindow = 200 * time.Millisecond

type notificationWaiter interface {
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
}

// consume calls reload for notifications from w until w fails. Reloads are
// at least window apart; a notification arriving inside the window schedules
// one reload at its end, so no change is left unrefreshed.
func consume(ctx context.Context, w notificationWaiter, reload func(), window time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	notes := make(chan *pgconn.Notification)
	errc := make(chan error, 1)
	go func() {
		for {
			ntf, err := w.WaitForNotification(ctx)
			if err != nil {
				errc <- err
				return
			}
			select {
			case notes <- ntf:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
	}()

	var (
		last    time.Time
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case err := <-errc:
			// the waiter goroutine has exited, so the connection is free
			return err
		case ntf := <-notes:
			log.Debug().Str(logfields.Channel, ntf.Channel).Str("payload", ntf.Payload).Msg("catalog changed")
			if pending != nil {
				continue
			}
			if wait := window - time.Since(last); wait > 0 {
				timer = time.NewTimer(wait)
				pending = timer.C
				continue
			}
			reload()
			last = time.Now()
		case <-pending:
			pending = nil
			reload()
			last = time.Now()
		}
	}
}

// PollAndRefresh reloads the catalog from src every interval until ctx is done.
func PollAndRefresh(ctx context.Context, src storage.Source, c *storage.Cache, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			refresh(ctx, src, c)
		}
	}
}

func refresh(ctx context.Context, src storage.Source, c *storage.Cache) {
	n, err := storage.Refresh(ctx, src, c)
	if err != nil {
		log.Error().Err(err).Msg("refresh catalog")
		return
	}
	log.Debug().Int(logfields.Campaigns, n).Msg("catalog refreshed")
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func jitter(base time.Duration) time.Duration {
	if base <= 0 {
		base = time.Second
	}
	factor := 0.5 + rand.Float64() // 0.5x-1.5x
	return time.Duration(float64(base) * factor)
}
