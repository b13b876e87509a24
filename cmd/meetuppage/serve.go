package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pershin-daniil/MeetupPage/internal/config"
	"github.com/pershin-daniil/MeetupPage/internal/rest"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Mount the meetup page and serve it over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, app, err := setup(cmd)
			if err != nil {
				return err
			}

			opts, err := serverOptions(cfg, log)
			if err != nil {
				return err
			}
			server := rest.New(log, app, cfg.HTTPAddr, version, opts...)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
				select {
				case <-sigCh:
					log.Info("Received signal, shutting down...")
					cancel()
				case <-ctx.Done():
				}
			}()

			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				// The error is already logged; the page keeps serving an empty view.
				_ = app.Mount(ctx)
			}()
			err = server.Run(ctx)
			cancel()
			wg.Wait()
			log.Info("Server stopped")
			return err
		},
	}
	addPageFlags(cmd)
	return cmd
}

// serverOptions loads the debug key only when the debug routes exist.
func serverOptions(cfg config.Config, log *logrus.Logger) ([]rest.Option, error) {
	opts := []rest.Option{rest.WithCORSOrigins(cfg.CorsOrigins)}
	switch {
	case cfg.DebugPublicKey == "":
	case !rest.DebugEnabled:
		log.Warnf("DEBUG_PUBLIC_KEY is set but the binary was built without the debug tag, ignoring it")
	default:
		key, err := rest.LoadPublicKey(cfg.DebugPublicKey)
		if err != nil {
			return nil, err
		}
		opts = append(opts, rest.WithPublicKey(key))
	}
	return opts, nil
}
