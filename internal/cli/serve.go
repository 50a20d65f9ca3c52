package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bricklayer/internal/api"
)

const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		timeout time.Duration
		origins []string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pipeline over HTTP",
		Long: `Serve the pipeline over HTTP.

Endpoints:
  GET  /healthz
  GET  /patterns, /strategies
  GET  /layouts/{pattern}?width=&height=&seed=
  POST /plans/{strategy}          (body: layout JSON)
  GET  /plans/{strategy}?pattern=&width=&height=&seed=
  GET  /compare?pattern=&width=&height=&seed=
  GET  /stream/{strategy}?...     (websocket, one message per stride)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options()
			if err != nil {
				return err
			}
			srv := api.New(c.newRunner(), opts, api.WithTimeout(timeout), api.WithOriginPatterns(origins...))
			return c.runServe(cmd.Context(), addr, srv)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().DurationVar(&timeout, "timeout", api.DefaultTimeout, "per-request pipeline timeout")
	cmd.Flags().StringSliceVar(&origins, "origin", nil, "extra origin host patterns allowed to open the stream (e.g. viewer.example.com)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	printInfo("Listening on %s", addr)

	select {
	case err := <-errc:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
