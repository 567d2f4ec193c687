package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jpilocastillo/m8bizz-sub002/infrastructure/repository/mocks"
	"github.com/jpilocastillo/m8bizz-sub002/internal/domain"
	"go.uber.org/mock/gomock"
)

const userID = 42

func strPtr(s string) *string { return &s }

func TestService_UpdateEvent(t *testing.T) {
	t.Run("applies only the provided fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		eventRepo := mocks.NewMockEventRepository(ctrl)

		stored := &domain.MarketingEvent{
			ID:        "evt_000000001",
			UserID:    userID,
			Name:      "Spring Dinner Seminar",
			EventType: "seminar",
			EventDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		}

		eventRepo.EXPECT().GetByID("evt_000000001").Return(stored, nil)
		eventRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(event *domain.MarketingEvent) error {
			assert.Equal(t, "Fall Dinner Seminar", event.Name)
			assert.Equal(t, "seminar", event.EventType, "omitted fields stay put")
			return nil
		})

		service := NewService(eventRepo, mocks.NewMockAppointmentRepository(ctrl), mocks.NewMockExpenseRepository(ctrl))
		err := service.UpdateEvent(userID, &domain.UpdateMarketingEventRequest{
			ID:   "evt_000000001",
			Name: strPtr("Fall Dinner Seminar"),
		})

		require.NoError(t, err)
	})

	t.Run("rejects updates from a different user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		eventRepo := mocks.NewMockEventRepository(ctrl)
		eventRepo.EXPECT().GetByID("evt_000000001").Return(&domain.MarketingEvent{
			ID:     "evt_000000001",
			UserID: 77,
		}, nil)

		service := NewService(eventRepo, mocks.NewMockAppointmentRepository(ctrl), mocks.NewMockExpenseRepository(ctrl))
		err := service.UpdateEvent(userID, &domain.UpdateMarketingEventRequest{ID: "evt_000000001"})

		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("unknown event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		eventRepo := mocks.NewMockEventRepository(ctrl)
		eventRepo.EXPECT().GetByID("evt_unknown").Return(nil, nil)

		service := NewService(eventRepo, mocks.NewMockAppointmentRepository(ctrl), mocks.NewMockExpenseRepository(ctrl))
		err := service.UpdateEvent(userID, &domain.UpdateMarketingEventRequest{ID: "evt_unknown"})

		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestService_SaveAppointments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventRepo := mocks.NewMockEventRepository(ctrl)
	appointmentRepo := mocks.NewMockAppointmentRepository(ctrl)

	eventRepo.EXPECT().GetByID("evt_000000001").Return(&domain.MarketingEvent{
		ID:     "evt_000000001",
		UserID: userID,
	}, nil)

	appointment := &domain.EventAppointment{EventID: "evt_000000001", SetAtEvent: 5, SetAfterEvent: 2}
	appointmentRepo.EXPECT().SaveOrUpdate(appointment).Return(nil)

	service := NewService(eventRepo, appointmentRepo, mocks.NewMockExpenseRepository(ctrl))
	require.NoError(t, service.SaveAppointments(userID, appointment))
}

func TestService_AddExpense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventRepo := mocks.NewMockEventRepository(ctrl)
	expenseRepo := mocks.NewMockExpenseRepository(ctrl)

	eventRepo.EXPECT().GetByID("evt_000000001").Return(&domain.MarketingEvent{
		ID:     "evt_000000001",
		UserID: userID,
	}, nil)

	expense := &domain.MarketingExpense{EventID: "evt_000000001", Category: "venue", TotalCost: 1800}
	expenseRepo.EXPECT().Create(expense).Return(expense, nil)

	service := NewService(eventRepo, mocks.NewMockAppointmentRepository(ctrl), expenseRepo)
	created, err := service.AddExpense(userID, expense)

	require.NoError(t, err)
	assert.Equal(t, expense, created)
}
