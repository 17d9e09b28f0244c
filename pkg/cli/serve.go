package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/Sujal861/knee-xray-insight-system/pkg/cli/config"
	httpctrl "github.com/Sujal861/knee-xray-insight-system/pkg/controller/http"
	"github.com/Sujal861/knee-xray-insight-system/pkg/service/classifier"
	"github.com/Sujal861/knee-xray-insight-system/pkg/usecase"
	"github.com/Sujal861/knee-xray-insight-system/pkg/utils/errutil"
	"github.com/Sujal861/knee-xray-insight-system/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var repoCfg config.Repository
	var gradingCfg config.Grading

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("KNEE_XRAY_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, gradingCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			grading, err := gradingCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load grading configuration")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				errutil.Handle(ctx, repo.Close(), "failed to close repository")
			}()

			engine := classifier.New(
				classifier.WithInterpretations(grading.InterpretationTexts()),
			)

			uc := usecase.New(repo,
				usecase.WithEngine(engine),
				usecase.WithLatency(grading.AuthDelay(), grading.PredictDelay()),
			)

			httpHandler, err := httpctrl.New(uc, httpctrl.WithUploadPolicy(httpctrl.UploadPolicy{
				MaxSizeBytes: grading.MaxUploadBytes(),
				AllowedExts:  grading.Upload.AllowedTypes,
			}))
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			var eg errgroup.Group
			eg.Go(func() error {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return goerr.Wrap(err, "failed to start server")
				}
				return nil
			})
			eg.Go(func() error {
				<-sigCtx.Done()
				logging.Default().Info("Received shutdown signal")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				return nil
			})

			if err := eg.Wait(); err != nil {
				return err
			}

			logging.Default().Info("Server shutdown completed")
			return nil
		},
	}
}
