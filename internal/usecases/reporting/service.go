package reporting

import (
	"errors"

	"github.com/jpilocastillo/m8bizz-sub002/infrastructure/repository"
	"github.com/jpilocastillo/m8bizz-sub002/internal/domain"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/reconciling"
)

var ErrMonthYearRequired = errors.New("month_year is required")

// MonthlyReporter exposes the monthly dashboard entries: manual edits by the
// advisor plus the out-of-band recalculation repair operation.
type MonthlyReporter interface {
	GetEntry(userID int, monthYear string) (*domain.MonthlyDataEntry, error)
	ListEntries(userID, year int) ([]*domain.MonthlyDataEntry, error)
	SaveEntry(entry *domain.MonthlyDataEntry) error
	Recalculate(userID int, monthYear string) (*domain.MonthlyDataEntry, error)
}

type Service struct {
	entryRepo  repository.MonthlyEntryRepository
	reconciler reconciling.Reconciler
}

func NewService(entryRepo repository.MonthlyEntryRepository, reconciler reconciling.Reconciler) MonthlyReporter {
	return &Service{
		entryRepo:  entryRepo,
		reconciler: reconciler,
	}
}

func (s *Service) GetEntry(userID int, monthYear string) (*domain.MonthlyDataEntry, error) {
	return s.entryRepo.GetByUserAndMonth(userID, monthYear)
}

func (s *Service) ListEntries(userID, year int) ([]*domain.MonthlyDataEntry, error) {
	return s.entryRepo.ListByUserAndYear(userID, year)
}

// SaveEntry persists a manual edit. Whatever the advisor types in, including
// zeros, is stored as-is; the reconciliation passes will only fill fields
// that read exactly 0.
func (s *Service) SaveEntry(entry *domain.MonthlyDataEntry) error {
	if entry.MonthYear == "" {
		return ErrMonthYearRequired
	}

	existing, err := s.entryRepo.GetByUserAndMonth(entry.UserID, entry.MonthYear)
	if err != nil {
		return err
	}
	if existing != nil {
		entry.ID = existing.ID
	}

	return s.entryRepo.Upsert(entry)
}

// Recalculate reruns the fill-if-zero aggregation pass and returns the
// refreshed entry.
func (s *Service) Recalculate(userID int, monthYear string) (*domain.MonthlyDataEntry, error) {
	if monthYear == "" {
		return nil, ErrMonthYearRequired
	}

	if err := s.reconciler.RecalculateMonthlyEntryFromEvents(userID, monthYear); err != nil {
		return nil, err
	}

	return s.entryRepo.GetByUserAndMonth(userID, monthYear)
}
