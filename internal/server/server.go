// Package server builds the HTTP handler and owns the listen/serve
// lifecycle, including graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/vinayak/app/routes"
	"github.com/shashiranjanraj/vinayak/config"
	"github.com/shashiranjanraj/vinayak/pkg/logger"
	"github.com/shashiranjanraj/vinayak/pkg/metrics"
	"github.com/shashiranjanraj/vinayak/pkg/middleware"
	"github.com/shashiranjanraj/vinayak/pkg/reqid"
	"github.com/shashiranjanraj/vinayak/pkg/router"
)

// Build constructs the full HTTP handler: global middleware stack plus
// every API route. Exposed separately from Run so tests can mount the
// exact production handler on httptest.
func Build(deps routes.Deps) *router.Router {
	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. CORS              — allow-list enforcement
	//  6. Rate limiter      — reject abusers early
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions(config.CORSOrigins())))
	r.Use(middleware.RateLimit(200, time.Minute))

	routes.RegisterAPI(r, deps)
	return r
}

// Run serves handler on the configured port until SIGINT/SIGTERM, then
// drains in-flight requests for up to 15 seconds.
func Run(handler http.Handler) error {
	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", config.AppPort(), "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: listen: %w", err)
	case sig := <-stop:
		logger.Info("server shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
