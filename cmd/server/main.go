package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/crypto"
	"github.com/MKhiriev/go-session-auth/internal/handler"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/mailer"
	"github.com/MKhiriev/go-session-auth/internal/metrics"
	"github.com/MKhiriev/go-session-auth/internal/server"
	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/workers"
	"github.com/MKhiriev/go-session-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// hashQueuePerWorker sizes the hashing job queue relative to the pool.
const hashQueuePerWorker = 4

func main() {
	build := printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("session-auth-server", "info", true).
			Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("session-auth-server", cfg.App.LogLevel, !cfg.App.IsProduction())
	log.Debug().
		Str("environment", cfg.App.Environment).
		Str("address", cfg.Server.HTTPAddress).
		Str("mail_provider", cfg.Mail.Provider).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	pool := workers.NewPool(cfg.Hashing.Workers, cfg.Hashing.Workers*hashQueuePerWorker)
	background := workers.NewWorkers(pool)
	background.Run()
	defer background.Stop()

	m := metrics.New()

	hasher := crypto.NewPasswordHasher(crypto.NewArgon2idHasher(crypto.Argon2Params{
		MemoryKiB:  cfg.Hashing.MemoryKiB,
		Iterations: cfg.Hashing.Iterations,
		Threads:    cfg.Hashing.Threads,
	}), pool, m)

	mail, err := mailer.NewMailer(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}

	services, err := service.NewServices(storages, hasher, mail, *cfg, m, build)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
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

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
