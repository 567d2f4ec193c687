package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/jpilocastillo/m8bizz-sub002/internal/domain"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/reconciling"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/tracking"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/apiErrors"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/middleware"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/utils"
)

// clientMutationResponse reports the primary result together with the
// best-effort sync outcome, so clients can tell "saved and reconciled" from
// "saved, reconciliation pending".
type clientMutationResponse struct {
	Client      *domain.EventClient     `json:"client,omitempty"`
	SyncOutcome reconciling.SyncOutcome `json:"sync_outcome"`
}

func GetClientsByEvent(service tracking.ClientTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Event id not provided", nil)
			return
		}

		clients, err := service.GetClientsByEvent(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing clients", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(clients); err != nil {
			logrus.Error(err)
		}
	}
}

func GetClientsByUser(service tracking.ClientTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r)
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authentication required", nil)
			return
		}

		filters, err := parseClientFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		clients, err := service.GetClientsByUser(claims.UserID, filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing clients", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(clients); err != nil {
			logrus.Error(err)
		}
	}
}

func parseClientFilters(r *http.Request) (*domain.ClientFilters, error) {
	filters := &domain.ClientFilters{}
	query := r.URL.Query()

	if yearStr := query.Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, errors.New("invalid year")
		}
		filters.Year = year
	}

	if startStr := query.Get("start_date"); startStr != "" {
		start, err := utils.ParseDate(startStr)
		if err != nil {
			return nil, errors.New("invalid start_date, use YYYY-MM-DD")
		}
		filters.StartDate = start
	}

	if endStr := query.Get("end_date"); endStr != "" {
		end, err := utils.ParseDate(endStr)
		if err != nil {
			return nil, errors.New("invalid end_date, use YYYY-MM-DD")
		}
		filters.EndDate = end
	}

	filters.EventType = query.Get("event_type")
	filters.ProductType = query.Get("product_type")

	return filters, nil
}

func AddClient(service tracking.ClientTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r)
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authentication required", nil)
			return
		}

		eventID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var client *domain.EventClient
		if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		client.EventID = eventID

		created, outcome, err := service.AddClient(claims.UserID, client)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, tracking.ErrEventRequired) || errors.Is(err, tracking.ErrNameRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error adding client", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(clientMutationResponse{Client: created, SyncOutcome: outcome}); err != nil {
			logrus.Error(err)
		}
	}
}

func UpdateClient(service tracking.ClientTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r)
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authentication required", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var patch *domain.UpdateEventClientRequest
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		patch.ID = id

		outcome, err := service.UpdateClient(claims.UserID, patch)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, tracking.ErrClientNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Client not found", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error updating client", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(clientMutationResponse{SyncOutcome: outcome}); err != nil {
			logrus.Error(err)
		}
	}
}

func DeleteClient(service tracking.ClientTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r)
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authentication required", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		outcome, err := service.DeleteClient(claims.UserID, id)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, tracking.ErrClientNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Client not found", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error deleting client", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(clientMutationResponse{SyncOutcome: outcome}); err != nil {
			logrus.Error(err)
		}
	}
}

func GetYTDSummary(service tracking.ClientTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r)
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authentication required", nil)
			return
		}

		yearStr := r.URL.Query().Get("year")
		if yearStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "year query parameter is required", nil)
			return
		}

		year, err := strconv.Atoi(yearStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid year", nil)
			return
		}

		summary, err := service.YTDSummary(claims.UserID, year)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error computing summary", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.Error(err)
		}
	}
}
