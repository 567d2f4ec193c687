package events

import (
	"errors"

	"github.com/jpilocastillo/m8bizz-sub002/infrastructure/repository"
	"github.com/jpilocastillo/m8bizz-sub002/internal/domain"
)

var (
	ErrEventNotFound = errors.New("marketing event not found")
	ErrNotOwner      = errors.New("event belongs to another user")
)

// EventService manages marketing events and their attached appointment and
// expense records.
type EventService interface {
	GetEvent(id string) (*domain.MarketingEvent, error)
	ListEvents(userID int) ([]*domain.MarketingEvent, error)
	CreateEvent(event *domain.MarketingEvent) (*domain.MarketingEvent, error)
	UpdateEvent(authUserID int, req *domain.UpdateMarketingEventRequest) error
	DeleteEvent(authUserID int, id string) error
	SaveAppointments(authUserID int, appointment *domain.EventAppointment) error
	AddExpense(authUserID int, expense *domain.MarketingExpense) (*domain.MarketingExpense, error)
}

type Service struct {
	eventRepo       repository.EventRepository
	appointmentRepo repository.AppointmentRepository
	expenseRepo     repository.ExpenseRepository
}

func NewService(
	eventRepo repository.EventRepository,
	appointmentRepo repository.AppointmentRepository,
	expenseRepo repository.ExpenseRepository,
) EventService {
	return &Service{
		eventRepo:       eventRepo,
		appointmentRepo: appointmentRepo,
		expenseRepo:     expenseRepo,
	}
}

func (s *Service) GetEvent(id string) (*domain.MarketingEvent, error) {
	return s.eventRepo.GetByID(id)
}

func (s *Service) ListEvents(userID int) ([]*domain.MarketingEvent, error) {
	return s.eventRepo.ListByUser(userID)
}

func (s *Service) CreateEvent(event *domain.MarketingEvent) (*domain.MarketingEvent, error) {
	if event.Name == "" {
		return nil, errors.New("event name is required")
	}

	return s.eventRepo.Create(event)
}

func (s *Service) UpdateEvent(authUserID int, req *domain.UpdateMarketingEventRequest) error {
	event, err := s.ownedEvent(authUserID, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.EventType != nil {
		event.EventType = *req.EventType
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
	}
	if req.Location != nil {
		event.Location = req.Location
	}
	if req.Notes != nil {
		event.Notes = req.Notes
	}

	return s.eventRepo.Update(event)
}

func (s *Service) DeleteEvent(authUserID int, id string) error {
	if _, err := s.ownedEvent(authUserID, id); err != nil {
		return err
	}

	return s.eventRepo.Delete(id)
}

func (s *Service) SaveAppointments(authUserID int, appointment *domain.EventAppointment) error {
	if _, err := s.ownedEvent(authUserID, appointment.EventID); err != nil {
		return err
	}

	return s.appointmentRepo.SaveOrUpdate(appointment)
}

func (s *Service) AddExpense(authUserID int, expense *domain.MarketingExpense) (*domain.MarketingExpense, error) {
	if _, err := s.ownedEvent(authUserID, expense.EventID); err != nil {
		return nil, err
	}

	return s.expenseRepo.Create(expense)
}

func (s *Service) ownedEvent(authUserID int, eventID string) (*domain.MarketingEvent, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if event.UserID != authUserID {
		return nil, ErrNotOwner
	}

	return event, nil
}
