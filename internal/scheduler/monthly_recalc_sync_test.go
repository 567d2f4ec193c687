package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/jpilocastillo/m8bizz-sub002/infrastructure/repository/mocks"
	recmocks "github.com/jpilocastillo/m8bizz-sub002/internal/usecases/reconciling/mocks"
	"go.uber.org/mock/gomock"
)

func TestMonthlyRecalcSyncService_monthsToRecalculate(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lookback int
		want     []string
	}{
		{
			name:     "no lookback covers the current month only",
			lookback: 0,
			want:     []string{"2025-03"},
		},
		{
			name:     "one month lookback",
			lookback: 1,
			want:     []string{"2025-03", "2025-02"},
		},
		{
			name:     "lookback crosses the year boundary",
			lookback: 3,
			want:     []string{"2025-03", "2025-02", "2025-01", "2024-12"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &MonthlyRecalcSyncService{
				config: MonthlyRecalcSyncConfig{MonthLookBack: tt.lookback},
			}

			assert.Equal(t, tt.want, service.monthsToRecalculate(now))
		})
	}
}

func TestMonthlyRecalcSyncService_runRecalculation(t *testing.T) {
	t.Run("recalculates every active user for every month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		reconciler := recmocks.NewMockReconciler(ctrl)

		userRepo.EXPECT().ListActiveUserIDs().Return([]int{1, 2}, nil)

		currentMonth := time.Now().Format("2006-01")
		reconciler.EXPECT().RecalculateMonthlyEntryFromEvents(1, currentMonth).Return(nil)
		reconciler.EXPECT().RecalculateMonthlyEntryFromEvents(2, currentMonth).Return(nil)

		service := &MonthlyRecalcSyncService{
			config:     MonthlyRecalcSyncConfig{MonthLookBack: 0},
			userRepo:   userRepo,
			reconciler: reconciler,
		}

		service.runRecalculation()

		status := service.Status()
		assert.Equal(t, false, status["running"])
		assert.NotZero(t, status["last_completed_at"])
	})

	t.Run("one failing user does not stop the others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		reconciler := recmocks.NewMockReconciler(ctrl)

		userRepo.EXPECT().ListActiveUserIDs().Return([]int{1, 2}, nil)

		currentMonth := time.Now().Format("2006-01")
		reconciler.EXPECT().RecalculateMonthlyEntryFromEvents(1, currentMonth).Return(errors.New("db down"))
		reconciler.EXPECT().RecalculateMonthlyEntryFromEvents(2, currentMonth).Return(nil)

		service := &MonthlyRecalcSyncService{
			config:     MonthlyRecalcSyncConfig{MonthLookBack: 0},
			userRepo:   userRepo,
			reconciler: reconciler,
		}

		service.runRecalculation()
	})

	t.Run("skips when a run is already in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := &MonthlyRecalcSyncService{
			config:      MonthlyRecalcSyncConfig{MonthLookBack: 0},
			userRepo:    mocks.NewMockUserRepository(ctrl),
			reconciler:  recmocks.NewMockReconciler(ctrl),
			syncRunning: true,
		}

		service.runRecalculation()

		err := service.RunNow()
		assert.Error(t, err)
	})
}
