package main

import (
	"context"
	"fmt"

	"github.com/avetrov/agencydesk/internal/config"
	httphandler "github.com/avetrov/agencydesk/internal/handler/http"
	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/internal/server"
	"github.com/avetrov/agencydesk/internal/service"
	"github.com/avetrov/agencydesk/internal/store"
	"github.com/avetrov/agencydesk/internal/vault"
	"github.com/avetrov/agencydesk/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("agencydesk-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	repositories, err := store.NewRepositories(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}

	services := service.NewServices(repositories, *cfg, log)

	var biometrics *vault.BiometricGate
	if cfg.App.WebAuthnRPID != "" {
		biometrics, err = vault.NewBiometricGate(cfg.App, repositories.WebAuthnRepository)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating biometric gate")
		}
	} else {
		log.Info().Msg("webauthn relying party not configured, authenticator endpoints disabled")
	}

	handler := httphandler.NewHandler(services, biometrics, repositories.UserRepository, log)

	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	refresher := workers.NewDomainRefreshWorker(services.DomainService, cfg.Workers.DomainRefreshInterval, log)
	go refresher.Run(workerCtx)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
