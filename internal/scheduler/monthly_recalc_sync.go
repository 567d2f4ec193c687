package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/jpilocastillo/m8bizz-sub002/infrastructure/repository"
	"github.com/jpilocastillo/m8bizz-sub002/internal/config"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/reconciling"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/utils"
)

// MonthlyRecalcSyncConfig holds the scheduler settings for the monthly-entry
// recalculation job.
type MonthlyRecalcSyncConfig struct {
	CronSchedule  string
	MonthLookBack int
	SyncEnabled   bool
}

// MonthlyRecalcSyncService periodically reruns the fill-if-zero
// recalculation for every active user, covering the current month plus a
// configurable number of previous months. It repairs months whose best-effort
// syncs were lost.
type MonthlyRecalcSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyRecalcSyncConfig
	userRepo            repository.UserRepository
	reconciler          reconciling.Reconciler
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewMonthlyRecalcSyncService(
	userRepo repository.UserRepository,
	reconciler reconciling.Reconciler,
	appConfig *config.Config,
) *MonthlyRecalcSyncService {
	recalcConfig := MonthlyRecalcSyncConfig{
		CronSchedule:  appConfig.MonthlyRecalc.CronSchedule,
		MonthLookBack: appConfig.MonthlyRecalc.MonthLookBack,
		SyncEnabled:   appConfig.MonthlyRecalc.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  recalcConfig.CronSchedule,
		"month_lookback": recalcConfig.MonthLookBack,
		"sync_enabled":   recalcConfig.SyncEnabled,
	}).Info("Monthly recalculation scheduler configuration loaded")

	return &MonthlyRecalcSyncService{
		scheduler:  scheduler,
		config:     recalcConfig,
		userRepo:   userRepo,
		reconciler: reconciler,
	}
}

// Start schedules the job and runs the scheduler asynchronously.
func (s *MonthlyRecalcSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Monthly recalculation sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting monthly recalculation scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runRecalculation()
	})
	if err != nil {
		return fmt.Errorf("error scheduling monthly recalculation: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop halts the scheduler.
func (s *MonthlyRecalcSyncService) Stop() {
	logrus.Info("Stopping monthly recalculation scheduler")
	s.scheduler.Stop()
}

// RunNow triggers the recalculation outside the schedule. Returns an error if
// a run is already in progress.
func (s *MonthlyRecalcSyncService) RunNow() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return fmt.Errorf("monthly recalculation already running since %s", s.lastSyncStartedAt.Format(time.RFC3339))
	}
	s.syncMutex.Unlock()

	go s.runRecalculation()
	return nil
}

// Status reports whether a run is in progress and the last run timestamps.
func (s *MonthlyRecalcSyncService) Status() map[string]interface{} {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]interface{}{
		"running":           s.syncRunning,
		"last_started_at":   s.lastSyncStartedAt,
		"last_completed_at": s.lastSyncCompletedAt,
		"enabled":           s.config.SyncEnabled,
		"cron_schedule":     s.config.CronSchedule,
	}
}

func (s *MonthlyRecalcSyncService) runRecalculation() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Monthly recalculation skipped, previous run still in progress")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	userIDs, err := s.userRepo.ListActiveUserIDs()
	if err != nil {
		logrus.WithError(err).Error("Monthly recalculation: error listing active users")
		return
	}

	months := s.monthsToRecalculate(time.Now())

	logrus.WithFields(logrus.Fields{
		"users":  len(userIDs),
		"months": months,
	}).Info("Monthly recalculation started")

	var failures int
	for _, userID := range userIDs {
		for _, monthYear := range months {
			if err := s.reconciler.RecalculateMonthlyEntryFromEvents(userID, monthYear); err != nil {
				failures++
				logrus.WithError(err).WithFields(logrus.Fields{
					"user_id":    userID,
					"month_year": monthYear,
				}).Error("Monthly recalculation: error recalculating entry")
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"users":    len(userIDs),
		"failures": failures,
	}).Info("Monthly recalculation finished")
}

// monthsToRecalculate returns the current month plus the configured lookback,
// newest first.
func (s *MonthlyRecalcSyncService) monthsToRecalculate(now time.Time) []string {
	months := make([]string, 0, s.config.MonthLookBack+1)
	for i := 0; i <= s.config.MonthLookBack; i++ {
		months = append(months, utils.MonthYear(now.AddDate(0, -i, 0)))
	}
	return months
}
