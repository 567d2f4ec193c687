package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jpilocastillo/m8bizz-sub002/infrastructure/repository/mocks"
	"github.com/jpilocastillo/m8bizz-sub002/internal/domain"
	recmocks "github.com/jpilocastillo/m8bizz-sub002/internal/usecases/reconciling/mocks"
	"go.uber.org/mock/gomock"
)

const userID = 42

func TestService_SaveEntry(t *testing.T) {
	t.Run("keeps the existing row id on re-save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		entryRepo := mocks.NewMockMonthlyEntryRepository(ctrl)
		entryRepo.EXPECT().GetByUserAndMonth(userID, "2025-03").Return(&domain.MonthlyDataEntry{
			ID:        "mde_00000001",
			UserID:    userID,
			MonthYear: "2025-03",
		}, nil)
		entryRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(entry *domain.MonthlyDataEntry) error {
			assert.Equal(t, "mde_00000001", entry.ID)
			assert.Equal(t, 3, entry.NewClients)
			return nil
		})

		service := NewService(entryRepo, recmocks.NewMockReconciler(ctrl))
		err := service.SaveEntry(&domain.MonthlyDataEntry{
			UserID:     userID,
			MonthYear:  "2025-03",
			NewClients: 3,
		})

		require.NoError(t, err)
	})

	t.Run("manual zeros are stored as-is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		entryRepo := mocks.NewMockMonthlyEntryRepository(ctrl)
		entryRepo.EXPECT().GetByUserAndMonth(userID, "2025-03").Return(nil, nil)
		entryRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(entry *domain.MonthlyDataEntry) error {
			assert.Equal(t, 0.0, entry.AnnuitySales)
			return nil
		})

		service := NewService(entryRepo, recmocks.NewMockReconciler(ctrl))
		require.NoError(t, service.SaveEntry(&domain.MonthlyDataEntry{UserID: userID, MonthYear: "2025-03"}))
	})

	t.Run("missing month key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockMonthlyEntryRepository(ctrl), recmocks.NewMockReconciler(ctrl))
		err := service.SaveEntry(&domain.MonthlyDataEntry{UserID: userID})
		assert.ErrorIs(t, err, ErrMonthYearRequired)
	})
}

func TestService_Recalculate(t *testing.T) {
	t.Run("runs the repair pass then returns the refreshed entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		entryRepo := mocks.NewMockMonthlyEntryRepository(ctrl)
		reconciler := recmocks.NewMockReconciler(ctrl)

		refreshed := &domain.MonthlyDataEntry{ID: "mde_00000001", UserID: userID, MonthYear: "2025-03", NewClients: 2}

		reconciler.EXPECT().RecalculateMonthlyEntryFromEvents(userID, "2025-03").Return(nil)
		entryRepo.EXPECT().GetByUserAndMonth(userID, "2025-03").Return(refreshed, nil)

		service := NewService(entryRepo, reconciler)
		entry, err := service.Recalculate(userID, "2025-03")

		require.NoError(t, err)
		assert.Equal(t, refreshed, entry)
	})

	t.Run("missing month key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockMonthlyEntryRepository(ctrl), recmocks.NewMockReconciler(ctrl))
		_, err := service.Recalculate(userID, "")
		assert.ErrorIs(t, err, ErrMonthYearRequired)
	})
}
