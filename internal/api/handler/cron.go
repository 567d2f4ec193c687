package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/jpilocastillo/m8bizz-sub002/internal/scheduler"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/apiErrors"
)

const (
	CronJobTypeMonthlyRecalc = "monthly-recalc"
	CronJobTypeAll           = "all"
)

// CronJobServices holds the schedulers that can be triggered manually.
type CronJobServices struct {
	MonthlyRecalcSyncService *scheduler.MonthlyRecalcSyncService
}

// RunCronJob triggers a cron job by type outside its schedule. Admin only,
// enforced at the route level.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type not provided", nil)
			return
		}

		switch cronType {
		case CronJobTypeMonthlyRecalc, CronJobTypeAll:
			if services.MonthlyRecalcSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Monthly recalculation service is not available", nil)
				return
			}
			if err := services.MonthlyRecalcSyncService.RunNow(); err != nil {
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: monthly-recalc, all", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		response := map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
		}
	}
}

// GetCronStatus reports the state of the registered cron jobs.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"monthly-recalc": services.MonthlyRecalcSyncService.Status(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error(err)
		}
	}
}
