// cmd/server/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/codr1/qlick/internal/config"
	"github.com/codr1/qlick/internal/db"
	"github.com/codr1/qlick/internal/models"
	"github.com/codr1/qlick/internal/scheduler"
	"github.com/codr1/qlick/internal/themeprovider"
)

const shutdownTimeout = 30 * time.Second

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Features.EnableDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("Failed to load configuration")
	}

	setupLogger(cfg)

	database, err := db.NewFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Database.SeedDemoMenu {
		if _, err := database.SeedDemoMenu(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed demo menu")
		}
	}

	catalog, err := models.LoadCatalog()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load theme catalog")
	}

	provider := themeprovider.New(catalog, themeprovider.NewStoreSource(database.Queries, cfg.Location()))
	scheduler.RefreshTheme(log.Logger.WithContext(ctx), provider)

	if err := scheduler.Init(cfg.Location()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize scheduler")
	}
	svc, err := scheduler.ServiceInstance()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get scheduler")
	}
	if _, err := svc.RegisterThemeRefresh(cfg.Themes.RefreshCron, provider); err != nil {
		log.Fatal().Err(err).Msg("Failed to register theme refresh job")
	}

	limiter := newLimiter(cfg.RateLimit)
	if limiter != nil {
		defer limiter.Close()
	}

	server := newServer(cfg, serverDeps{
		database: database,
		catalog:  catalog,
		provider: provider,
		limiter:  limiter,
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Int("port", cfg.App.Port).Str("app", cfg.App.Name).Msg("Starting server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		svc.Start()
		<-ctx.Done()
		if err := svc.Stop(); err != nil {
			log.Error().Err(err).Msg("Scheduler shutdown failed")
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
