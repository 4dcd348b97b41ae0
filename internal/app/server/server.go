package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"promo-pages/internal/api"
	"promo-pages/internal/config"
	"promo-pages/internal/listener"
	"promo-pages/internal/logfields"
	"promo-pages/internal/observability"
	"promo-pages/internal/render"
	"promo-pages/internal/storage"
	"promo-pages/internal/wordpress"
)

// Server serves previews and publishes the catalog held by its source.
type Server struct {
	cfg     config.Config
	src     storage.Source
	cache   *storage.Cache
	handler http.Handler
}

func New(cfg config.Config, src storage.Source, pub api.Publisher) *Server {
	cache := storage.NewCache()
	h := &api.Handler{
		Cache:         cache,
		Source:        src,
		Renderer:      render.New(),
		Publisher:     pub,
		DefaultTarget: cfg.WordPressTarget(),
		MaxBodyBytes:  cfg.Server.MaxBodyBytes,
	}
	return &Server{cfg: cfg, src: src, cache: cache, handler: api.Router(h)}
}

func (s *Server) Handler() http.Handler { return s.handler }

// Warmup loads the catalog once so the first request has data.
func (s *Server) Warmup(ctx context.Context) error {
	n, err := storage.Refresh(ctx, s.src, s.cache)
	if err != nil {
		return fmt.Errorf("initial catalog load: %w", err)
	}
	log.Info().Int(logfields.Campaigns, n).Msg("catalog loaded")
	return nil
}

// StartCacheRefresher keeps the cache current: Postgres sources push change
// notifications, other sources are polled.
func (s *Server) StartCacheRefresher(ctx context.Context) {
	if pg, ok := s.src.(*storage.Postgres); ok {
		go listener.ListenAndRefresh(ctx, pg, s.cache, s.cfg.Listener.Channel, s.cfg.Backoff())
		return
	}
	go listener.PollAndRefresh(ctx, s.src, s.cache, s.cfg.RefreshInterval())
}

func Run(cfg config.Config) error {
	config.SetupLogging(cfg.Server.LogLevel)

	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Storage
	src, err := storage.New(rootCtx, cfg)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer src.Close()

	if pg, ok := src.(*storage.Postgres); ok && cfg.Postgres.Migration != "" {
		if err := pg.Migrate(rootCtx, cfg.Postgres.Migration); err != nil {
			return err
		}
		log.Info().Str("migration", cfg.Postgres.Migration).Msg("migration applied")
	}

	pub := wordpress.NewPublisher(
		wordpress.WithRecorder(observability.NewPrometheusRecorder(nil)),
		wordpress.WithLogger(log.Logger),
	)
	s := New(cfg, src, pub)
	if err := s.Warmup(rootCtx); err != nil {
		return err
	}
	s.StartCacheRefresher(rootCtx)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str(logfields.Addr, cfg.Server.Addr).Str(logfields.Source, cfg.Source.Kind).Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case sig := <-waitForSignal():
		log.Info().Str("signal", sig.String()).Msg("shutdown...")
	case err := <-errCh:
		return fmt.Errorf("server crashed: %w", err)
	}

	// Graceful shutdown
	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	cancel() // stop background goroutines
	return srv.Shutdown(shCtx)
}

func waitForSignal() <-chan os.Signal {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	return c
}
