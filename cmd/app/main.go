package main

import (
	"bufio"
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pymerp/internal/adapters/cli"
	"pymerp/internal/adapters/repl"
	"pymerp/internal/api"
	"pymerp/internal/app"
	"pymerp/internal/config"
	"pymerp/internal/notify"
	"pymerp/internal/session"
	"pymerp/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("Unable to load configuration: %v", err)
	}

	zlog := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	sess, err := session.New(cfg.APIToken)
	if err != nil {
		log.Fatalf("Unable to open session: %v", err)
	}

	client := api.New(cfg.APIBaseURL, sess, cfg.RequestTimeout, zlog)
	svc := app.NewAppService(client, sess, cfg.DownloadDir, zlog)

	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				zlog.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	// One-shot subcommand → CLI adapter, no poller.
	if len(os.Args) > 1 {
		cli.Run(ctx, svc, os.Args[1:])
		return
	}

	poller := notify.NewPoller(client, cfg.PollInterval, zlog)
	poller.Start(ctx)
	defer poller.Stop()

	repl.Run(ctx, svc, poller, bufio.NewReader(os.Stdin))
}
