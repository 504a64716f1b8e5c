package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ticketvue/internal/clients"
	"ticketvue/internal/config"
	"ticketvue/internal/middleware"
	"ticketvue/internal/store"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Server runs the UI HTTP server next to the session janitor
type Server struct {
	httpServer    *http.Server
	registry      *store.Registry
	sweepInterval time.Duration
}

// New builds a server for cfg talking to backend
func New(cfg *config.Config, backend clients.Backend) *Server {
	registry := store.NewRegistry(store.Options{
		MessageTimeout:       cfg.UI.MessageTimeout,
		AddedFeedbackTimeout: cfg.UI.AddedFeedbackTimeout,
	}, cfg.Session.IdleTTL)

	cookies := middleware.NewCookieStore(
		cfg.Session.Secret,
		!cfg.Server.IsDevelopment(),
		int(cfg.Session.IdleTTL.Seconds()),
	)

	router := NewRouter(Dependencies{
		Backend:  backend,
		Registry: registry,
		Cookies:  cookies,
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		registry:      registry,
		sweepInterval: cfg.Session.SweepInterval,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	g, runCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.WithField("addr", s.httpServer.Addr).Info("Starting HTTP server...")
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("starting http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return s.registry.Run(runCtx, s.sweepInterval)
	})

	g.Go(func() error {
		<-runCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logrus.Info("Shutting down HTTP server...")
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		return nil
	})

	err := g.Wait()
	s.registry.Close()
	if err != nil {
		return fmt.Errorf("waiting for shutdown: %w", err)
	}
	logrus.Info("Shutdown complete.")

	return nil
}
