package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/jpilocastillo/m8bizz-sub002/internal/domain"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/reporting"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/apiErrors"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/log"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/middleware"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/utils"
)

func ListMonthlyEntries(service reporting.MonthlyReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r)
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authentication required", nil)
			return
		}

		year := time.Now().Year()
		if yearStr := r.URL.Query().Get("year"); yearStr != "" {
			parsed, err := strconv.Atoi(yearStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid year", nil)
				return
			}
			year = parsed
		}

		entries, err := service.ListEntries(claims.UserID, year)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing monthly entries", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logrus.Error(err)
		}
	}
}

func GetMonthlyEntry(service reporting.MonthlyReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r)
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authentication required", nil)
			return
		}

		monthYear := httprouter.ParamsFromContext(r.Context()).ByName("monthYear")

		entry, err := service.GetEntry(claims.UserID, monthYear)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error fetching monthly entry", nil)
			return
		}

		if entry == nil {
			apiErrors.WriteError(w, apiErrors.ErrEntryNotFound, "Monthly entry not found", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logrus.Error(err)
		}
	}
}

// SaveMonthlyEntry stores a manual edit. The advisor's values win: a later
// event sync only fills fields that are still zero.
func SaveMonthlyEntry(service reporting.MonthlyReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r)
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authentication required", nil)
			return
		}

		var entry *domain.MonthlyDataEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		entry.UserID = claims.UserID

		if err := service.SaveEntry(entry); err != nil {
			logrus.Error(err)

			if errors.Is(err, reporting.ErrMonthYearRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error saving monthly entry", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logrus.Error(err)
		}
	}
}

func RecalculateMonthlyEntry(service reporting.MonthlyReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r)
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authentication required", nil)
			return
		}

		monthYear := httprouter.ParamsFromContext(r.Context()).ByName("monthYear")

		entry, err := service.Recalculate(claims.UserID, monthYear)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, reporting.ErrMonthYearRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error recalculating monthly entry", nil)
			return
		}

		log.ForContext(r.Context()).WithField("month_year", monthYear).
			Debug("monthly entry recalculated: ", utils.PrettyJson(entry))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logrus.Error(err)
		}
	}
}
