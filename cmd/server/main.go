// Command server runs the JPK website backend.
//
//	@title						JPK Web API
//	@version					1.0
//	@description				Navigation shell, login flow and admin panel for the Janasiksha Prochar Kendra website.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	_ "github.com/janasiksha/jpk-web/docs"
	"github.com/janasiksha/jpk-web/internal/api"
	"github.com/janasiksha/jpk-web/internal/api/handler"
	"github.com/janasiksha/jpk-web/internal/api/middleware"
	"github.com/janasiksha/jpk-web/internal/core/ports"
	"github.com/janasiksha/jpk-web/internal/core/service"
	"github.com/janasiksha/jpk-web/internal/infrastructure/config"
	"github.com/janasiksha/jpk-web/internal/infrastructure/db/memory"
	"github.com/janasiksha/jpk-web/internal/infrastructure/db/mongo"
	"github.com/janasiksha/jpk-web/internal/infrastructure/db/redis"
	"github.com/janasiksha/jpk-web/internal/infrastructure/queue"
	"github.com/janasiksha/jpk-web/internal/infrastructure/scheduler"
	"github.com/janasiksha/jpk-web/pkg/logger"
)

const (
	shutdownTimeout = 10 * time.Second
	devJWTSecret    = "dev-only-secret"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "jpk-web",
	})

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	secret := cfg.JWTSecret
	if secret == "" {
		log.Warn().Msg("JWT_SECRET not set, using the development secret")
		secret = devJWTSecret
	}

	// --- Backends ---
	readiness := map[string]handler.Pinger{}

	var rdb *goredis.Client
	if cfg.UsesRedis() {
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		readiness["redis"] = redis.Pinger{Client: rdb}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	}

	var mdb *gomongo.Database
	if cfg.UsesMongo() {
		var client *gomongo.Client
		client, mdb, err = mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			if err := mongo.Disconnect(context.Background(), client); err != nil {
				log.Error().Err(err).Msg("mongo disconnect failed")
			}
		}()
		readiness["mongodb"] = mongo.Pinger{Client: client}
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
	}

	// --- Stores ---
	var sessions ports.SessionRepository
	switch cfg.Stores.Session {
	case config.StoreRedis:
		sessions = redis.NewSessionStore(rdb)
	default:
		memSessions := memory.NewSessionStore()
		sweeper, err := scheduler.NewSweeper(cfg.Workers.SessionSweepSchedule, memSessions, logger.Component(log, "sweeper"))
		if err != nil {
			return err
		}
		sweeper.Start(ctx)
		sessions = memSessions
	}

	var credentials ports.CredentialRepository
	switch cfg.Stores.Credential {
	case config.StoreRedis:
		credentials = redis.NewCredentialStore(rdb, logger.Component(log, "credentials"))
	case config.StoreMongo:
		credentials = mongo.NewCredentialRepository(mdb)
	default:
		credentials = memory.NewCredentialStore(nil)
	}

	var donations ports.DonationRepository
	switch cfg.Stores.Donation {
	case config.StoreMongo:
		repo := mongo.NewDonationRepository(mdb)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("donation indexes: %w", err)
		}
		donations = repo
	default:
		donations = memory.NewDonationStore()
	}

	// --- Notices ---
	dispatcher := queue.NewDispatcher(cfg.Workers.NoticeWorkers, queue.NewLogSender(log), logger.Component(log, "notices"))
	dispatcher.Start(ctx)

	// --- Services ---
	nav := service.NewNavigationService(sessions, service.NewNavigator(cfg.NavStrategy), cfg.SessionTTL, logger.Component(log, "navigation"))
	e := api.NewRouter(api.Deps{
		Navigation: nav,
		Login:      service.NewLoginService(sessions, credentials, dispatcher, logger.Component(log, "login")),
		Admin: service.NewAdminService(
			memory.NewAdminUserStore(memory.SeedUsers()),
			memory.NewLedger(memory.SeedTransactions(), memory.SeedMonthlyTotals()),
			loc, logger.Component(log, "admin"),
		),
		Donations:     service.NewDonationService(donations, logger.Component(log, "donations")),
		Tokens:        middleware.NewSessionTokens(secret),
		Readiness:     readiness,
		CCTVStreamURL: cfg.CCTVStreamURL,
		Log:           logger.Component(log, "http"),
	})

	e.Server.ReadHeaderTimeout = 5 * time.Second

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
