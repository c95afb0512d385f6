package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/amitvgi12/jarvis-configuration-service/internal/adapter"
	"github.com/amitvgi12/jarvis-configuration-service/internal/client"
	"github.com/amitvgi12/jarvis-configuration-service/internal/config"
	"github.com/amitvgi12/jarvis-configuration-service/internal/logger"
)

func main() {
	log := logger.NewClientLogger("config-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	var server adapter.ServerAdapter
	if cfg.ServerURL != "" {
		server, err = adapter.NewHTTPServerAdapter(cfg.ServerURL, cfg.RequestTimeout, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create server adapter")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var app client.Client = client.NewApp(client.NewConfigFetcher(server, *cfg, log), *cfg, os.Stdout, log)
	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
