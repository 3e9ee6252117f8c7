package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

const shutdownTimeout = 15 * time.Second

// Serve runs every server until ctx is cancelled or one of them fails, then
// shuts all of them down gracefully.
func Serve(ctx context.Context, logger *slog.Logger, servers ...*Server) error {
	errCh := make(chan error, len(servers))
	for _, s := range servers {
		s.HTTP.BaseContext = func(net.Listener) context.Context { return ctx }
		go func(s *Server) {
			logger.Info("starting server", "server", s.Name, "addr", s.HTTP.Addr)
			if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("%s server: %w", s.Name, err)
			}
		}(s)
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping servers")
	case runErr = <-errCh:
		logger.Error("server failed, stopping the rest", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s *Server) {
			defer wg.Done()
			if err := s.HTTP.Shutdown(shutdownCtx); err != nil {
				logger.Error("graceful shutdown error", "server", s.Name, "error", err)
			}
			s.Close()
			logger.Info("server stopped", "server", s.Name)
		}(s)
	}
	wg.Wait()
	return runErr
}
