package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gazetteerlabs/placematch/internal/cli/config"
	"github.com/gazetteerlabs/placematch/internal/httpapi"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewServeCommand creates the serve command: stands up the engine's
// HTTP surface (spec §2 item c) and blocks until interrupted.
func NewServeCommand(getConfig func() *config.Config) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gazetteer resolution engine over HTTP",
		Long: `Serve loads the configured gazetteer, builds the engine once (spec §5:
process-wide and read-mostly), and exposes standardize/place over a
thin JSON surface until interrupted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := getConfig()
			if addr != "" {
				cfg.HTTPAddr = addr
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overriding config's http_addr")
	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eng, err := createEngine(cfg)
	if err != nil {
		return fmt.Errorf("serve: building engine: %w", err)
	}
	defer func() { _ = eng.Close() }()

	logger := newLogger(cfg)
	router := httpapi.NewRouter(eng, cfg.DefaultMode, cfg.DefaultNumResults, logger)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info("serving", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
