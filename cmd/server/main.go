package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amitvgi12/jarvis-configuration-service/internal/config"
	"github.com/amitvgi12/jarvis-configuration-service/internal/handler"
	"github.com/amitvgi12/jarvis-configuration-service/internal/logger"
	"github.com/amitvgi12/jarvis-configuration-service/internal/server"
	"github.com/amitvgi12/jarvis-configuration-service/internal/service"
	"github.com/amitvgi12/jarvis-configuration-service/internal/store"
	"github.com/amitvgi12/jarvis-configuration-service/internal/workers"
	"github.com/amitvgi12/jarvis-configuration-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("config-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	background := workers.NewWorkers(storages, cfg.Workers, log)
	background.Run(ctx)

	srv.RunServer(ctx)
	background.Wait()
}
