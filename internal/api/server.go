package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/jpilocastillo/m8bizz-sub002/internal/api/handler"
	"github.com/jpilocastillo/m8bizz-sub002/internal/api/handler/router"
	"github.com/jpilocastillo/m8bizz-sub002/internal/config"
	"github.com/jpilocastillo/m8bizz-sub002/internal/scheduler"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/authenticating"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/events"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/reporting"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/tracking"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	eventService events.EventService,
	clientTracker tracking.ClientTracker,
	monthlyReporter reporting.MonthlyReporter,
	monthlyRecalcSyncService *scheduler.MonthlyRecalcSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		MonthlyRecalcSyncService: monthlyRecalcSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Events(eventService)...),
		router.WithRoutes(handler.EventClients(clientTracker)...),
		router.WithRoutes(handler.MonthlyEntries(monthlyReporter)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Error running server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Interrupt signal received")
	case <-ctx.Done():
		logrus.Info("Application context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error shutting down server")
		return err
	}

	logrus.Info("Server shut down")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
