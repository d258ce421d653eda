package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	httpctrl "github.com/reef-world/finsync/pkg/controller/http"
	"github.com/reef-world/finsync/pkg/service/worker"
	"github.com/reef-world/finsync/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var cfgs sourceConfigs

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("FINSYNC_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, cfgs.flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server and ingestion scheduler",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, tuning, closeAll, err := cfgs.build(ctx)
			if err != nil {
				return err
			}
			defer closeAll()

			scheduler := worker.NewScheduler(uc)
			for _, kind := range uc.Sources() {
				if err := scheduler.Register(ctx, kind, tuning.For(kind).Schedule); err != nil {
					return goerr.Wrap(err, "failed to register ingestion schedule")
				}
			}
			scheduler.Start(ctx)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				scheduler.Stop(shutdownCtx)

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
