package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transactions-report/api"
	"github.com/carson-networks/transactions-report/internal/config"
	"github.com/carson-networks/transactions-report/internal/integrations/productfeed"
	"github.com/carson-networks/transactions-report/internal/logging"
	"github.com/carson-networks/transactions-report/internal/operator"
	"github.com/carson-networks/transactions-report/internal/scheduler"
	"github.com/carson-networks/transactions-report/internal/service"
	"github.com/carson-networks/transactions-report/internal/storage"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).Fatal("godotenv.Load")
		return
	}

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := envConfig.Validate(); err != nil {
		logrus.WithError(err).Fatal("config.Validate")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.WithField("backend", envConfig.DataBackend).Info("transactions-report starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbStorage, err := storage.NewStorage(ctx, envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage)
	delegator.Start()

	feed := productfeed.NewClient(envConfig.SeedURL, envConfig.SeedTimeout, logger)
	svc := service.NewService(dbStorage, feed, delegator)

	var seedScheduler *scheduler.Scheduler
	if envConfig.SeedSchedule != "" {
		seedScheduler = scheduler.New(logger)
		if err := seedScheduler.ScheduleSeed(envConfig.SeedSchedule, svc.Seed, envConfig.SeedTimeout); err != nil {
			logger.WithError(err).Fatal("scheduler.ScheduleSeed")
			return
		}
		seedScheduler.Start()
	}

	httpRest := &api.Rest{
		Logger:         logger,
		Port:           envConfig.Port,
		Service:        svc,
		Backend:        dbStorage.Backend,
		RequestTimeout: envConfig.RequestTimeout,
		SeedTimeout:    envConfig.SeedTimeout,
		AllowedOrigins: envConfig.CORSAllowedOrigins,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpRest.Serve()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			logger.WithError(err).Error("api.Rest.Serve")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if seedScheduler != nil {
		if err := seedScheduler.Stop(shutdownCtx); err != nil {
			logger.WithError(err).Warn("scheduler.Stop")
		}
	}
	if err := httpRest.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("api.Rest.Shutdown")
	}
	delegator.Stop()
	if err := dbStorage.Close(shutdownCtx); err != nil {
		logger.WithError(err).Warn("storage.Close")
	}
	logger.Info("transactions-report stopped")
}
