package tracking

import (
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/jpilocastillo/m8bizz-sub002/infrastructure/repository"
	"github.com/jpilocastillo/m8bizz-sub002/internal/domain"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/reconciling"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/utils"
)

var (
	ErrClientNotFound = errors.New("event client not found")
	ErrEventRequired  = errors.New("event_id is required")
	ErrNameRequired   = errors.New("client_name is required")
)

// ClientTracker is the application service around closed-client records.
// Every mutation triggers a best-effort monthly sync whose outcome is
// reported alongside the primary result but never fails it.
type ClientTracker interface {
	GetClientsByEvent(eventID string) ([]*domain.EventClient, error)
	GetClientsByUser(userID int, filters *domain.ClientFilters) ([]*domain.EventClient, error)
	AddClient(authUserID int, client *domain.EventClient) (*domain.EventClient, reconciling.SyncOutcome, error)
	UpdateClient(authUserID int, patch *domain.UpdateEventClientRequest) (reconciling.SyncOutcome, error)
	DeleteClient(authUserID int, id string) (reconciling.SyncOutcome, error)
	YTDSummary(userID int, year int) (*domain.YTDSummary, error)
}

type Service struct {
	eventRepo  repository.EventRepository
	clientRepo repository.EventClientRepository
	reconciler reconciling.Reconciler
}

func NewService(
	eventRepo repository.EventRepository,
	clientRepo repository.EventClientRepository,
	reconciler reconciling.Reconciler,
) ClientTracker {
	return &Service{
		eventRepo:  eventRepo,
		clientRepo: clientRepo,
		reconciler: reconciler,
	}
}

func (s *Service) GetClientsByEvent(eventID string) ([]*domain.EventClient, error) {
	return s.clientRepo.ListByEvent(eventID)
}

// GetClientsByUser resolves the user's events and returns their client rows,
// narrowed by the optional filters: year window and explicit date range in
// SQL, event type and product type in memory.
func (s *Service) GetClientsByUser(userID int, filters *domain.ClientFilters) ([]*domain.EventClient, error) {
	if filters == nil {
		filters = &domain.ClientFilters{}
	}

	events, err := s.eventRepo.ListByUser(userID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "listing user events")
	}
	if len(events) == 0 {
		return []*domain.EventClient{}, nil
	}

	eventsByID := make(map[string]*domain.MarketingEvent, len(events))
	eventIDs := make([]string, 0, len(events))
	for _, event := range events {
		eventsByID[event.ID] = event
		eventIDs = append(eventIDs, event.ID)
	}

	startDate, endDate, bounded := closeDateWindow(filters)

	var clients []*domain.EventClient
	if bounded {
		clients, err = s.clientRepo.ListByEventsAndCloseDateRange(eventIDs, startDate, endDate)
	} else {
		clients, err = s.clientRepo.ListByEvents(eventIDs)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "listing event clients")
	}

	filtered := make([]*domain.EventClient, 0, len(clients))
	for _, client := range clients {
		if filters.EventType != "" {
			event := eventsByID[client.EventID]
			if event == nil || event.EventType != filters.EventType {
				continue
			}
		}

		if !matchesProductType(client, filters.ProductType) {
			continue
		}

		filtered = append(filtered, client)
	}

	return filtered, nil
}

// closeDateWindow intersects the year window with the explicit date range.
func closeDateWindow(filters *domain.ClientFilters) (start, end time.Time, bounded bool) {
	if filters.Year != 0 {
		start = time.Date(filters.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(filters.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
		bounded = true
	}

	if filters.StartDate != nil && (!bounded || filters.StartDate.After(start)) {
		start = *filters.StartDate
		bounded = true
	}
	if filters.EndDate != nil {
		if !bounded || filters.EndDate.Before(end) || end.IsZero() {
			end = *filters.EndDate
		}
		bounded = true
	}

	if bounded && end.IsZero() {
		end = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
	}
	if bounded && start.IsZero() {
		start = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	return start, end, bounded
}

// matchesProductType keeps a row iff the monetary field for the requested
// product is positive.
func matchesProductType(client *domain.EventClient, productType string) bool {
	switch productType {
	case "":
		return true
	case domain.ProductTypeAnnuity:
		return client.AnnuityPremium > 0
	case domain.ProductTypeAUM:
		return client.AUMAmount > 0
	case domain.ProductTypeLife:
		return client.LifeInsurancePremium > 0
	case domain.ProductTypeFinancialPlanning:
		return client.FinancialPlanningFee > 0
	default:
		return false
	}
}

// AddClient inserts a client row and triggers the monthly sync for its
// close date. Monetary fields omitted by the caller come in as 0 and are
// stored as 0. The sync outcome is informational, a failed sync does not
// fail the add.
func (s *Service) AddClient(authUserID int, client *domain.EventClient) (*domain.EventClient, reconciling.SyncOutcome, error) {
	if client.EventID == "" {
		return nil, reconciling.OutcomeSkipped, ErrEventRequired
	}
	if client.ClientName == "" {
		return nil, reconciling.OutcomeSkipped, ErrNameRequired
	}
	if client.CloseDate.IsZero() {
		client.CloseDate = time.Now().UTC()
	}

	created, err := s.clientRepo.Create(client)
	if err != nil {
		return nil, reconciling.OutcomeSkipped, err
	}

	outcome := s.reconciler.SyncClientToMonthlyEntry(authUserID, created.EventID, created.CloseDate)
	return created, outcome, nil
}

// UpdateClient reads the current row first because the patch may omit the
// close date, which the post-update sync still needs.
func (s *Service) UpdateClient(authUserID int, patch *domain.UpdateEventClientRequest) (reconciling.SyncOutcome, error) {
	prior, err := s.clientRepo.GetByID(patch.ID)
	if err != nil {
		return reconciling.OutcomeSkipped, err
	}
	if prior == nil {
		return reconciling.OutcomeSkipped, ErrClientNotFound
	}

	if err := s.clientRepo.Update(patch); err != nil {
		return reconciling.OutcomeSkipped, err
	}

	closeDate := prior.CloseDate
	if patch.CloseDate != nil {
		closeDate = *patch.CloseDate
	}

	outcome := s.reconciler.SyncClientToMonthlyEntry(authUserID, prior.EventID, closeDate)
	return outcome, nil
}

// DeleteClient captures event and close date before deleting so the month's
// totals can be recomputed afterwards.
func (s *Service) DeleteClient(authUserID int, id string) (reconciling.SyncOutcome, error) {
	prior, err := s.clientRepo.GetByID(id)
	if err != nil {
		return reconciling.OutcomeSkipped, err
	}
	if prior == nil {
		return reconciling.OutcomeSkipped, ErrClientNotFound
	}

	if err := s.clientRepo.Delete(id); err != nil {
		return reconciling.OutcomeSkipped, err
	}

	outcome := s.reconciler.SyncClientToMonthlyEntry(authUserID, prior.EventID, prior.CloseDate)
	return outcome, nil
}

// YTDSummary computes the year-to-date totals and the 12-slot monthly
// breakdown over the user's closed clients. Nothing is persisted.
func (s *Service) YTDSummary(userID int, year int) (*domain.YTDSummary, error) {
	clients, err := s.GetClientsByUser(userID, &domain.ClientFilters{Year: year})
	if err != nil {
		return nil, err
	}

	summary := &domain.YTDSummary{Year: year}
	for i := range summary.MonthlyBreakdown {
		summary.MonthlyBreakdown[i].Month = i + 1
	}

	for _, client := range clients {
		value := client.TotalValue()

		summary.TotalClients++
		summary.TotalAnnuity += client.AnnuityPremium
		summary.TotalLife += client.LifeInsurancePremium
		summary.TotalAUM += client.AUMAmount
		summary.TotalFinancialPlanning += client.FinancialPlanningFee
		summary.TotalValue += value

		slot := &summary.MonthlyBreakdown[int(client.CloseDate.Month())-1]
		slot.Clients++
		slot.Value += value
	}

	if summary.TotalClients > 0 {
		summary.AverageDealSize = utils.RoundWithTwoDecimalPlace(summary.TotalValue / float64(summary.TotalClients))
	}

	return summary, nil
}
