// internal/server/run.go
//
// Serve until ctx ends, then shut down gracefully.
//
// Context
// -------
// cmd/web derives ctx from signal.NotifyContext (SIGINT, SIGTERM).  One
// errgroup goroutine serves; the other waits for ctx and calls Shutdown
// with a bounded grace period.  A listener failure (port in use) cancels
// the group, so Run returns promptly either way.

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Run serves srv on ln (or srv.Addr when ln is nil) until ctx is done.
// A clean shutdown returns nil.
func Run(ctx context.Context, srv *http.Server, ln net.Listener, grace time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if ln != nil {
			zap.S().Infow("http listening", "addr", ln.Addr().String())
			err = srv.Serve(ln)
		} else {
			zap.S().Infow("http listening", "addr", srv.Addr)
			err = srv.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		zap.S().Infow("http shutting down", "grace", grace.String())

		sctx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	return g.Wait()
}
