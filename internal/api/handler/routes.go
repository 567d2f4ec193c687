package handler

import (
	"net/http"

	"github.com/jpilocastillo/m8bizz-sub002/internal/api/handler/router"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/authenticating"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/events"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/reporting"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/tracking"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Events(service events.EventService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/events",
			Method:      http.MethodGet,
			Handler:     ListEvents(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events",
			Method:      http.MethodPost,
			Handler:     CreateEvent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events/:id",
			Method:      http.MethodGet,
			Handler:     GetEvent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events/:id",
			Method:      http.MethodPut,
			Handler:     UpdateEvent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteEvent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events/:id/appointments",
			Method:      http.MethodPut,
			Handler:     SaveEventAppointments(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events/:id/expenses",
			Method:      http.MethodPost,
			Handler:     AddEventExpense(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func EventClients(service tracking.ClientTracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/events/:id/clients",
			Method:      http.MethodGet,
			Handler:     GetClientsByEvent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events/:id/clients",
			Method:      http.MethodPost,
			Handler:     AddClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     GetClientsByUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodPut,
			Handler:     UpdateClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/summary/ytd",
			Method:      http.MethodGet,
			Handler:     GetYTDSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func MonthlyEntries(service reporting.MonthlyReporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/monthly-entries",
			Method:      http.MethodGet,
			Handler:     ListMonthlyEntries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/monthly-entries",
			Method:      http.MethodPut,
			Handler:     SaveMonthlyEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/monthly-entries/:monthYear",
			Method:      http.MethodGet,
			Handler:     GetMonthlyEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/monthly-entries/:monthYear/recalculate",
			Method:      http.MethodPost,
			Handler:     RecalculateMonthlyEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
