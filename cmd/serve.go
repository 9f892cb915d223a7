package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/farewell/internal/server"
)

const (
	// Generous for a single-admin app; mostly guards against runaway
	// clients hammering the public endpoints.
	defaultRateLimit = 50.0
	defaultBurst     = 100

	shutdownTimeout = 10 * time.Second
)

func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the farewell page web server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Override the bind address from the config",
			},
		},
		Action: r.Serve,
	}
}

// Serve runs the HTTP server until interrupted, then drains in-flight
// requests before exiting.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	r.loadConfig(cmd)

	storage, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	addr := r.config.Server.Addr()
	if override := cmd.String("addr"); override != "" {
		addr = override
	}

	srv := server.New(server.Opts{
		Store:     storage,
		Logger:    r.logger,
		Addr:      addr,
		BaseURL:   r.config.Server.BaseURL(),
		RateLimit: defaultRateLimit,
		Burst:     defaultBurst,
	})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		r.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
