package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/jpilocastillo/m8bizz-sub002/infrastructure/database/postgres"
	"github.com/jpilocastillo/m8bizz-sub002/infrastructure/repository"
	"github.com/jpilocastillo/m8bizz-sub002/internal/api"
	"github.com/jpilocastillo/m8bizz-sub002/internal/config"
	"github.com/jpilocastillo/m8bizz-sub002/internal/scheduler"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/aggregating"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/authenticating"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/events"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/reconciling"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/reporting"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/tracking"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	eventRepo := repository.NewEventRepository(pgConn)
	clientRepo := repository.NewEventClientRepository(pgConn)
	appointmentRepo := repository.NewAppointmentRepository(pgConn)
	expenseRepo := repository.NewExpenseRepository(pgConn)
	entryRepo := repository.NewMonthlyEntryRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	aggregator := aggregating.NewService(eventRepo, clientRepo, appointmentRepo, expenseRepo)
	reconciler := reconciling.NewService(eventRepo, clientRepo, entryRepo, aggregator)

	eventService := events.NewService(eventRepo, appointmentRepo, expenseRepo)
	clientTracker := tracking.NewService(eventRepo, clientRepo, reconciler)
	monthlyReporter := reporting.NewService(entryRepo, reconciler)

	monthlyRecalcSyncService := scheduler.NewMonthlyRecalcSyncService(userRepo, reconciler, cfg)

	if err := monthlyRecalcSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error starting monthly recalculation scheduler")
	} else {
		logrus.Info("Monthly recalculation scheduler started")
	}

	server, err := api.New(
		cfg,
		authenticator,
		eventService,
		clientTracker,
		monthlyReporter,
		monthlyRecalcSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
