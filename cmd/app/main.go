package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aidtracker/cmd"
	httpadapter "aidtracker/internal/adapters/in/http"
	"aidtracker/internal/adapters/out/postgres"
	"aidtracker/internal/core/application/usecases/commands"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config := cmd.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.SlogLevel()}))
	slog.SetDefault(logger)

	if err := run(config, logger); err != nil {
		log.Fatalf("aidtracker: %v", err)
	}
}

func run(config cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	location, err := config.Location()
	if err != nil {
		return err
	}

	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := cmd.NewCompositionRoot(config, gormDB, location, registry, logger)

	seedTeams := app.CreateSeedTeamsCommandHandler()
	created, err := seedTeams.Handle(ctx, commands.NewSeedTeamsCommand())
	if err != nil {
		return fmt.Errorf("seed teams: %w", err)
	}
	logger.Info("teams ready", "created", created)

	e, err := httpadapter.NewRouter(app.CreateServer(), registry, logger)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", "port", config.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if err := jobManager.StartAll(gctx); err != nil {
			return err
		}
		<-gctx.Done()
		jobManager.StopAll()
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
