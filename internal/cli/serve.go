package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/arbor/pkg/adapters/http"
	"github.com/aretw0/arbor/pkg/ports"
)

// ShutdownTimeout bounds how long in-flight requests may take after a stop signal.
const ShutdownTimeout = 5 * time.Second

// NewHTTPHandler wires the runtime into the HTTP adapter.
func NewHTTPHandler(rt *Runtime, source ports.DocumentSource) http.Handler {
	opts := []httpAdapter.Option{
		httpAdapter.WithLogger(rt.Logger),
		httpAdapter.WithMaxInputSize(rt.Config.Server.MaxInputSize),
	}
	if source != nil {
		opts = append(opts, httpAdapter.WithSource(source))
	}
	if rt.Cache != nil {
		opts = append(opts, httpAdapter.WithCache(rt.Cache))
	}
	if rt.Registry != nil {
		opts = append(opts, httpAdapter.WithMetrics(rt.Registry))
	}
	return httpAdapter.NewHandler(rt.Parser, opts...)
}

// Serve runs handler on ln until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, rt *Runtime, ln net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		rt.Logger.Info("Starting Arbor Server", "address", ln.Addr().String())
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		rt.Logger.Info("Start shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			rt.Logger.Warn("Graceful shutdown did not complete", "timeout", ShutdownTimeout, "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		rt.Logger.Info("Arbor Server stopped gracefully")
		return nil
	}
}
