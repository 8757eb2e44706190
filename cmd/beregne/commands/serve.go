package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	apphttp "beregne/internal/http"
	"beregne/internal/http/middleware"
	"beregne/internal/site"
)

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				cfg.HTTP.Address = addr
			}
			return serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides http.address")
	return cmd
}

func serve(ctx context.Context) error {
	s, err := site.New(cfg.Site)
	if err != nil {
		slog.Error("site.init", "err", err)
		return err
	}

	mux, err := apphttp.NewMux(s)
	if err != nil {
		slog.Error("site.render", "err", err)
		return err
	}

	var limiter *middleware.RateLimiter
	if cfg.HTTP.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimit, cfg.HTTP.RateWindow)
		limiter.TrustProxy = cfg.HTTP.TrustProxy
	}

	srv := &http.Server{
		Addr: cfg.HTTP.Address,
		Handler: apphttp.WithStandardMiddleware(mux, apphttp.MiddlewareOptions{
			FrameSrc:   s.Links.Widget,
			Limiter:    limiter,
			TrustProxy: cfg.HTTP.TrustProxy,
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		slog.Info("http.starting",
			"addr", cfg.HTTP.Address,
			"dashboard", s.Links.Dashboard,
			"widget", s.Links.Widget,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			slog.Error("http.listen", "err", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slog.Info("http.shutting_down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http.shutdown", "err", err)
		return err
	}
	slog.Info("http.stopped")
	return nil
}
