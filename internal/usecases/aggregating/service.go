package aggregating

import (
	"github.com/pkg/errors"
	"github.com/jpilocastillo/m8bizz-sub002/infrastructure/repository"
	"github.com/jpilocastillo/m8bizz-sub002/internal/domain"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/utils"
)

// Aggregator computes a user's monthly totals from the raw event tables.
type Aggregator interface {
	AggregateEventData(userID, month, year int) (*domain.AggregatedEventData, error)
}

type Service struct {
	eventRepo       repository.EventRepository
	clientRepo      repository.EventClientRepository
	appointmentRepo repository.AppointmentRepository
	expenseRepo     repository.ExpenseRepository
}

func NewService(
	eventRepo repository.EventRepository,
	clientRepo repository.EventClientRepository,
	appointmentRepo repository.AppointmentRepository,
	expenseRepo repository.ExpenseRepository,
) Aggregator {
	return &Service{
		eventRepo:       eventRepo,
		clientRepo:      clientRepo,
		appointmentRepo: appointmentRepo,
		expenseRepo:     expenseRepo,
	}
}

// AggregateEventData scans three independent sources (appointments, expenses
// and closed clients) restricted to the user's events dated inside the given
// calendar month. A user with no events in the window gets a zero-valued
// result without touching the dependent tables.
func (s *Service) AggregateEventData(userID, month, year int) (*domain.AggregatedEventData, error) {
	startDate, endDate := utils.MonthWindow(month, year)

	events, err := s.eventRepo.ListByUserAndDateRange(userID, startDate, endDate)
	if err != nil {
		return nil, errors.Wrap(err, "listing events for aggregation")
	}

	result := &domain.AggregatedEventData{
		ClientNames: []string{},
	}

	if len(events) == 0 {
		return result, nil
	}

	eventIDs := make([]string, 0, len(events))
	for _, event := range events {
		eventIDs = append(eventIDs, event.ID)
	}

	appointments, err := s.appointmentRepo.ListByEvents(eventIDs)
	if err != nil {
		return nil, errors.Wrap(err, "listing appointments for aggregation")
	}
	for _, appointment := range appointments {
		result.AppointmentsBooked += appointment.Booked()
	}

	expenses, err := s.expenseRepo.ListByEvents(eventIDs)
	if err != nil {
		return nil, errors.Wrap(err, "listing expenses for aggregation")
	}
	for _, expense := range expenses {
		result.MarketingExpenses += expense.TotalCost
	}

	clients, err := s.clientRepo.ListByEventsAndCloseDateRange(eventIDs, startDate, endDate)
	if err != nil {
		return nil, errors.Wrap(err, "listing clients for aggregation")
	}

	seen := make(map[string]bool)
	for _, client := range clients {
		result.AnnuitySales += client.AnnuityPremium
		result.AUMSales += client.AUMAmount
		result.LifeSales += client.LifeInsurancePremium

		// New clients are counted by distinct non-empty name, two rows
		// closing under the same name in a month are one client.
		if client.ClientName != "" && !seen[client.ClientName] {
			seen[client.ClientName] = true
			result.ClientNames = append(result.ClientNames, client.ClientName)
		}
	}
	result.NewClients = len(result.ClientNames)

	return result, nil
}
