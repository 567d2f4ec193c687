package reconciling

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/jpilocastillo/m8bizz-sub002/infrastructure/repository"
	"github.com/jpilocastillo/m8bizz-sub002/internal/domain"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/aggregating"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/log"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/utils"
)

// clientNotesPrefix marks the auto-generated line inside a monthly entry's
// notes. Syncs replace this line and leave everything else the advisor wrote.
const clientNotesPrefix = "Clients from events:"

// Reconciler merges freshly aggregated event data into the persisted monthly
// entries without clobbering values the advisor typed in by hand. A stored
// value of exactly 0 counts as "never manually set" and may be overwritten;
// anything non-zero is preserved.
type Reconciler interface {
	// SyncClientToMonthlyEntry recomputes the month addressed by closeDate
	// after a client mutation on eventID. Best-effort: failures are logged
	// and reported through the outcome, never returned.
	// Touches new_clients, annuity_sales, aum_sales and life_sales only.
	SyncClientToMonthlyEntry(authUserID int, eventID string, closeDate time.Time) SyncOutcome

	// RecalculateMonthlyEntryFromEvents is the manual repair path. Unlike
	// the sync above it also fills new_appointments and marketing_expenses,
	// and it writes a partial update containing only the fields that moved
	// from zero to a computed value.
	RecalculateMonthlyEntryFromEvents(userID int, monthYear string) error
}

type Service struct {
	eventRepo  repository.EventRepository
	clientRepo repository.EventClientRepository
	entryRepo  repository.MonthlyEntryRepository
	aggregator aggregating.Aggregator
}

func NewService(
	eventRepo repository.EventRepository,
	clientRepo repository.EventClientRepository,
	entryRepo repository.MonthlyEntryRepository,
	aggregator aggregating.Aggregator,
) Reconciler {
	return &Service{
		eventRepo:  eventRepo,
		clientRepo: clientRepo,
		entryRepo:  entryRepo,
		aggregator: aggregator,
	}
}

func (s *Service) SyncClientToMonthlyEntry(authUserID int, eventID string, closeDate time.Time) SyncOutcome {
	logger := log.L.WithFields(log.Fields{
		"event_id":   eventID,
		"close_date": closeDate.Format(time.DateOnly),
		"user_id":    authUserID,
	})

	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		logger.WithError(err).Error("monthly sync: error resolving event")
		return OutcomeFailed
	}
	if event == nil {
		logger.Error("monthly sync: event not found")
		return OutcomeFailed
	}

	if event.UserID != authUserID {
		logger.WithField("owner_id", event.UserID).Warn("monthly sync: caller does not own the event, skipping")
		return OutcomeSkipped
	}

	monthYear := utils.MonthYear(closeDate)
	startDate, endDate := utils.MonthWindow(int(closeDate.Month()), closeDate.Year())

	// Rescan every client row across ALL the user's events for this month,
	// not just the triggering record.
	events, err := s.eventRepo.ListByUser(event.UserID)
	if err != nil {
		logger.WithError(err).Error("monthly sync: error listing user events")
		return OutcomeFailed
	}

	eventIDs := make([]string, 0, len(events))
	for _, e := range events {
		eventIDs = append(eventIDs, e.ID)
	}

	clients, err := s.clientRepo.ListByEventsAndCloseDateRange(eventIDs, startDate, endDate)
	if err != nil {
		logger.WithError(err).Error("monthly sync: error listing in-month clients")
		return OutcomeFailed
	}

	var annuitySales, aumSales, lifeSales float64
	seen := make(map[string]bool)
	clientLabels := make([]string, 0, len(clients))

	for _, client := range clients {
		annuitySales += client.AnnuityPremium
		aumSales += client.AUMAmount
		lifeSales += client.LifeInsurancePremium

		if client.ClientName == "" || seen[client.ClientName] {
			continue
		}
		seen[client.ClientName] = true

		label := client.ClientName
		if client.Notes != nil && *client.Notes != "" {
			label = fmt.Sprintf("%s (%s)", client.ClientName, *client.Notes)
		}
		clientLabels = append(clientLabels, label)
	}
	newClients := len(seen)

	existing, err := s.entryRepo.GetByUserAndMonth(event.UserID, monthYear)
	if err != nil {
		logger.WithError(err).Error("monthly sync: error loading monthly entry")
		return OutcomeFailed
	}

	merged := mergeEntry(event.UserID, monthYear, existing, newClients, annuitySales, aumSales, lifeSales)
	merged.Notes = mergeClientNotes(merged.Notes, clientLabels)

	if err := s.entryRepo.Upsert(merged); err != nil {
		logger.WithError(err).Error("monthly sync: error upserting monthly entry")
		return OutcomeFailed
	}

	logger.WithFields(log.Fields{
		"month_year":  monthYear,
		"new_clients": newClients,
	}).Debug("monthly sync: entry reconciled")

	return OutcomeSynced
}

// mergeEntry applies the fill-only-if-zero rule to the four fields this sync
// path owns. new_appointments, new_leads and marketing_expenses are carried
// over from the existing entry untouched; they belong to the manual
// recalculation pass.
func mergeEntry(userID int, monthYear string, existing *domain.MonthlyDataEntry, newClients int, annuitySales, aumSales, lifeSales float64) *domain.MonthlyDataEntry {
	merged := &domain.MonthlyDataEntry{
		UserID:    userID,
		MonthYear: monthYear,
	}

	if existing != nil {
		merged.ID = existing.ID
		merged.NewAppointments = existing.NewAppointments
		merged.NewLeads = existing.NewLeads
		merged.MarketingExpenses = existing.MarketingExpenses
		merged.Notes = existing.Notes
	}

	merged.NewClients = newClients
	if existing != nil && existing.NewClients != 0 {
		merged.NewClients = existing.NewClients
	}

	merged.AnnuitySales = annuitySales
	if existing != nil && existing.AnnuitySales != 0 {
		merged.AnnuitySales = existing.AnnuitySales
	}

	merged.AUMSales = aumSales
	if existing != nil && existing.AUMSales != 0 {
		merged.AUMSales = existing.AUMSales
	}

	merged.LifeSales = lifeSales
	if existing != nil && existing.LifeSales != 0 {
		merged.LifeSales = existing.LifeSales
	}

	return merged
}

// mergeClientNotes rewrites the auto-generated client line inside the notes,
// replacing a previous one if present and appending otherwise. With no
// in-month clients the notes are left alone.
func mergeClientNotes(notes string, clientLabels []string) string {
	if len(clientLabels) == 0 {
		return notes
	}

	clientLine := fmt.Sprintf("%s %s", clientNotesPrefix, strings.Join(clientLabels, ", "))

	if notes == "" {
		return clientLine
	}

	lines := strings.Split(notes, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, clientNotesPrefix) {
			lines[i] = clientLine
			return strings.Join(lines, "\n")
		}
	}

	return notes + "\n" + clientLine
}

func (s *Service) RecalculateMonthlyEntryFromEvents(userID int, monthYear string) error {
	month, year, err := utils.ParseMonthYear(monthYear)
	if err != nil {
		return err
	}

	aggregated, err := s.aggregator.AggregateEventData(userID, month, year)
	if err != nil {
		return errors.Wrap(err, "aggregating event data for recalculation")
	}

	existing, err := s.entryRepo.GetByUserAndMonth(userID, monthYear)
	if err != nil {
		return errors.Wrap(err, "loading monthly entry for recalculation")
	}

	// First aggregation for a month with no entry yet: everything counts as
	// never-set, persist the computed values as a fresh row.
	if existing == nil {
		entry := &domain.MonthlyDataEntry{
			UserID:            userID,
			MonthYear:         monthYear,
			NewClients:        aggregated.NewClients,
			NewAppointments:   aggregated.AppointmentsBooked,
			AnnuitySales:      aggregated.AnnuitySales,
			AUMSales:          aggregated.AUMSales,
			LifeSales:         aggregated.LifeSales,
			MarketingExpenses: aggregated.MarketingExpenses,
		}
		return s.entryRepo.Upsert(entry)
	}

	patch := &domain.MonthlyEntryPatch{}

	if existing.NewClients == 0 && aggregated.NewClients != 0 {
		patch.NewClients = &aggregated.NewClients
	}
	if existing.NewAppointments == 0 && aggregated.AppointmentsBooked != 0 {
		patch.NewAppointments = &aggregated.AppointmentsBooked
	}
	if existing.AnnuitySales == 0 && aggregated.AnnuitySales != 0 {
		patch.AnnuitySales = &aggregated.AnnuitySales
	}
	if existing.AUMSales == 0 && aggregated.AUMSales != 0 {
		patch.AUMSales = &aggregated.AUMSales
	}
	if existing.LifeSales == 0 && aggregated.LifeSales != 0 {
		patch.LifeSales = &aggregated.LifeSales
	}
	if existing.MarketingExpenses == 0 && aggregated.MarketingExpenses != 0 {
		patch.MarketingExpenses = &aggregated.MarketingExpenses
	}

	if patch.IsEmpty() {
		return nil
	}

	if err := s.entryRepo.UpdateFields(userID, monthYear, patch); err != nil {
		return errors.Wrap(err, "updating monthly entry fields")
	}

	return nil
}
