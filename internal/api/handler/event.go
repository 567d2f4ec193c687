package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/jpilocastillo/m8bizz-sub002/internal/domain"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/events"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/apiErrors"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/middleware"
)

func ListEvents(service events.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r)
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authentication required", nil)
			return
		}

		list, err := service.ListEvents(claims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing events", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(list); err != nil {
			logrus.Error(err)
		}
	}
}

func GetEvent(service events.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Event id not provided", nil)
			return
		}

		event, err := service.GetEvent(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error fetching event", nil)
			return
		}

		if event == nil {
			apiErrors.WriteError(w, apiErrors.ErrEventNotFound, "Event not found", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(event); err != nil {
			logrus.Error(err)
		}
	}
}

func CreateEvent(service events.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r)
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authentication required", nil)
			return
		}

		var event *domain.MarketingEvent
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}

		event.UserID = claims.UserID

		event, err := service.CreateEvent(event)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error creating event", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(event); err != nil {
			logrus.Error(err)
		}
	}
}

func UpdateEvent(service events.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r)
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authentication required", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req *domain.UpdateMarketingEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		req.ID = id

		if err := service.UpdateEvent(claims.UserID, req); err != nil {
			writeEventError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteEvent(service events.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r)
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authentication required", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteEvent(claims.UserID, id); err != nil {
			writeEventError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func SaveEventAppointments(service events.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r)
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authentication required", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var appointment *domain.EventAppointment
		if err := json.NewDecoder(r.Body).Decode(&appointment); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		appointment.EventID = id

		if err := service.SaveAppointments(claims.UserID, appointment); err != nil {
			writeEventError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func AddEventExpense(service events.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r)
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authentication required", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var expense *domain.MarketingExpense
		if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		expense.EventID = id

		expense, err := service.AddExpense(claims.UserID, expense)
		if err != nil {
			writeEventError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(expense); err != nil {
			logrus.Error(err)
		}
	}
}

func writeEventError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, events.ErrEventNotFound):
		apiErrors.WriteError(w, apiErrors.ErrEventNotFound, "Event not found", nil)
	case errors.Is(err, events.ErrNotOwner):
		apiErrors.WriteError(w, apiErrors.ErrNotOwner, "Event belongs to another user", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error processing event", nil)
	}
}
