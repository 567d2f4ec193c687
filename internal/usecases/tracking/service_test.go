package tracking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jpilocastillo/m8bizz-sub002/infrastructure/repository/mocks"
	"github.com/jpilocastillo/m8bizz-sub002/internal/domain"
	"github.com/jpilocastillo/m8bizz-sub002/internal/usecases/reconciling"
	recmocks "github.com/jpilocastillo/m8bizz-sub002/internal/usecases/reconciling/mocks"
	"go.uber.org/mock/gomock"
)

const userID = 42

func TestService_AddClient(t *testing.T) {
	closeDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("creates the row and reports the sync outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockEventClientRepository(ctrl)
		reconciler := recmocks.NewMockReconciler(ctrl)

		input := &domain.EventClient{EventID: "evt_000000001", ClientName: "John Carter", CloseDate: closeDate, AnnuityPremium: 5000}
		created := &domain.EventClient{ID: "ecl_00000001", EventID: "evt_000000001", ClientName: "John Carter", CloseDate: closeDate, AnnuityPremium: 5000}

		clientRepo.EXPECT().Create(input).Return(created, nil)
		reconciler.EXPECT().SyncClientToMonthlyEntry(userID, "evt_000000001", closeDate).Return(reconciling.OutcomeSynced)

		service := NewService(mocks.NewMockEventRepository(ctrl), clientRepo, reconciler)
		got, outcome, err := service.AddClient(userID, input)

		require.NoError(t, err)
		assert.Equal(t, created, got)
		assert.Equal(t, reconciling.OutcomeSynced, outcome)
	})

	t.Run("a failed sync does not fail the add", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockEventClientRepository(ctrl)
		reconciler := recmocks.NewMockReconciler(ctrl)

		input := &domain.EventClient{EventID: "evt_000000001", ClientName: "John Carter", CloseDate: closeDate}

		clientRepo.EXPECT().Create(input).Return(input, nil)
		reconciler.EXPECT().SyncClientToMonthlyEntry(userID, "evt_000000001", closeDate).Return(reconciling.OutcomeFailed)

		service := NewService(mocks.NewMockEventRepository(ctrl), clientRepo, reconciler)
		got, outcome, err := service.AddClient(userID, input)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, reconciling.OutcomeFailed, outcome)
	})

	t.Run("defaults a zero close date before persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockEventClientRepository(ctrl)
		reconciler := recmocks.NewMockReconciler(ctrl)

		input := &domain.EventClient{EventID: "evt_000000001", ClientName: "John Carter"}

		clientRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(client *domain.EventClient) (*domain.EventClient, error) {
			assert.False(t, client.CloseDate.IsZero())
			return client, nil
		})
		reconciler.EXPECT().SyncClientToMonthlyEntry(userID, "evt_000000001", gomock.Any()).Return(reconciling.OutcomeSynced)

		service := NewService(mocks.NewMockEventRepository(ctrl), clientRepo, reconciler)
		_, _, err := service.AddClient(userID, input)
		require.NoError(t, err)
	})

	t.Run("validation failures skip the sync", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(
			mocks.NewMockEventRepository(ctrl),
			mocks.NewMockEventClientRepository(ctrl),
			recmocks.NewMockReconciler(ctrl),
		)

		_, outcome, err := service.AddClient(userID, &domain.EventClient{ClientName: "John Carter"})
		assert.ErrorIs(t, err, ErrEventRequired)
		assert.Equal(t, reconciling.OutcomeSkipped, outcome)

		_, outcome, err = service.AddClient(userID, &domain.EventClient{EventID: "evt_000000001"})
		assert.ErrorIs(t, err, ErrNameRequired)
		assert.Equal(t, reconciling.OutcomeSkipped, outcome)
	})
}

func TestService_UpdateClient(t *testing.T) {
	priorClose := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	newClose := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)

	t.Run("syncs with the patched close date when provided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockEventClientRepository(ctrl)
		reconciler := recmocks.NewMockReconciler(ctrl)

		prior := &domain.EventClient{ID: "ecl_00000001", EventID: "evt_000000001", ClientName: "John Carter", CloseDate: priorClose}
		patch := &domain.UpdateEventClientRequest{ID: "ecl_00000001", CloseDate: &newClose}

		clientRepo.EXPECT().GetByID("ecl_00000001").Return(prior, nil)
		clientRepo.EXPECT().Update(patch).Return(nil)
		reconciler.EXPECT().SyncClientToMonthlyEntry(userID, "evt_000000001", newClose).Return(reconciling.OutcomeSynced)

		service := NewService(mocks.NewMockEventRepository(ctrl), clientRepo, reconciler)
		outcome, err := service.UpdateClient(userID, patch)

		require.NoError(t, err)
		assert.Equal(t, reconciling.OutcomeSynced, outcome)
	})

	t.Run("falls back to the stored close date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockEventClientRepository(ctrl)
		reconciler := recmocks.NewMockReconciler(ctrl)

		prior := &domain.EventClient{ID: "ecl_00000001", EventID: "evt_000000001", CloseDate: priorClose}
		patch := &domain.UpdateEventClientRequest{ID: "ecl_00000001"}

		clientRepo.EXPECT().GetByID("ecl_00000001").Return(prior, nil)
		clientRepo.EXPECT().Update(patch).Return(nil)
		reconciler.EXPECT().SyncClientToMonthlyEntry(userID, "evt_000000001", priorClose).Return(reconciling.OutcomeSynced)

		service := NewService(mocks.NewMockEventRepository(ctrl), clientRepo, reconciler)
		_, err := service.UpdateClient(userID, patch)
		require.NoError(t, err)
	})

	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockEventClientRepository(ctrl)
		clientRepo.EXPECT().GetByID("ecl_unknown").Return(nil, nil)

		service := NewService(mocks.NewMockEventRepository(ctrl), clientRepo, recmocks.NewMockReconciler(ctrl))
		outcome, err := service.UpdateClient(userID, &domain.UpdateEventClientRequest{ID: "ecl_unknown"})

		assert.ErrorIs(t, err, ErrClientNotFound)
		assert.Equal(t, reconciling.OutcomeSkipped, outcome)
	})
}

func TestService_DeleteClient(t *testing.T) {
	closeDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("deletes then resyncs the month the row belonged to", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockEventClientRepository(ctrl)
		reconciler := recmocks.NewMockReconciler(ctrl)

		prior := &domain.EventClient{ID: "ecl_00000001", EventID: "evt_000000001", CloseDate: closeDate}

		clientRepo.EXPECT().GetByID("ecl_00000001").Return(prior, nil)
		clientRepo.EXPECT().Delete("ecl_00000001").Return(nil)
		reconciler.EXPECT().SyncClientToMonthlyEntry(userID, "evt_000000001", closeDate).Return(reconciling.OutcomeSynced)

		service := NewService(mocks.NewMockEventRepository(ctrl), clientRepo, reconciler)
		outcome, err := service.DeleteClient(userID, "ecl_00000001")

		require.NoError(t, err)
		assert.Equal(t, reconciling.OutcomeSynced, outcome)
	})

	t.Run("delete failure skips the sync", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockEventClientRepository(ctrl)

		prior := &domain.EventClient{ID: "ecl_00000001", EventID: "evt_000000001", CloseDate: closeDate}
		clientRepo.EXPECT().GetByID("ecl_00000001").Return(prior, nil)
		clientRepo.EXPECT().Delete("ecl_00000001").Return(errors.New("constraint violation"))

		service := NewService(mocks.NewMockEventRepository(ctrl), clientRepo, recmocks.NewMockReconciler(ctrl))
		outcome, err := service.DeleteClient(userID, "ecl_00000001")

		require.Error(t, err)
		assert.Equal(t, reconciling.OutcomeSkipped, outcome)
	})
}

func TestService_GetClientsByUser(t *testing.T) {
	t.Run("no events short-circuits to an empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		eventRepo := mocks.NewMockEventRepository(ctrl)
		eventRepo.EXPECT().ListByUser(userID).Return(nil, nil)

		service := NewService(eventRepo, mocks.NewMockEventClientRepository(ctrl), recmocks.NewMockReconciler(ctrl))
		clients, err := service.GetClientsByUser(userID, nil)

		require.NoError(t, err)
		assert.Empty(t, clients)
	})

	t.Run("year filter bounds the close date range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		eventRepo := mocks.NewMockEventRepository(ctrl)
		clientRepo := mocks.NewMockEventClientRepository(ctrl)

		eventRepo.EXPECT().ListByUser(userID).Return([]*domain.MarketingEvent{
			{ID: "evt_000000001", UserID: userID, EventType: "seminar"},
		}, nil)
		clientRepo.EXPECT().ListByEventsAndCloseDateRange(
			[]string{"evt_000000001"},
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		).Return([]*domain.EventClient{
			{ID: "ecl_00000001", EventID: "evt_000000001", ClientName: "John Carter"},
		}, nil)

		service := NewService(eventRepo, clientRepo, recmocks.NewMockReconciler(ctrl))
		clients, err := service.GetClientsByUser(userID, &domain.ClientFilters{Year: 2025})

		require.NoError(t, err)
		assert.Len(t, clients, 1)
	})

	t.Run("event type and product type filter in memory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		eventRepo := mocks.NewMockEventRepository(ctrl)
		clientRepo := mocks.NewMockEventClientRepository(ctrl)

		eventRepo.EXPECT().ListByUser(userID).Return([]*domain.MarketingEvent{
			{ID: "evt_000000001", UserID: userID, EventType: "seminar"},
			{ID: "evt_000000002", UserID: userID, EventType: "webinar"},
		}, nil)
		clientRepo.EXPECT().ListByEvents([]string{"evt_000000001", "evt_000000002"}).Return([]*domain.EventClient{
			{ID: "ecl_00000001", EventID: "evt_000000001", ClientName: "John Carter", AUMAmount: 90000},
			{ID: "ecl_00000002", EventID: "evt_000000001", ClientName: "Sue Park", AnnuityPremium: 5000},
			{ID: "ecl_00000003", EventID: "evt_000000002", ClientName: "Mary Li", AUMAmount: 40000},
		}, nil)

		service := NewService(eventRepo, clientRepo, recmocks.NewMockReconciler(ctrl))
		clients, err := service.GetClientsByUser(userID, &domain.ClientFilters{
			EventType:   "seminar",
			ProductType: domain.ProductTypeAUM,
		})

		require.NoError(t, err)
		require.Len(t, clients, 1)
		assert.Equal(t, "ecl_00000001", clients[0].ID)
	})
}

func TestService_YTDSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventRepo := mocks.NewMockEventRepository(ctrl)
	clientRepo := mocks.NewMockEventClientRepository(ctrl)

	eventRepo.EXPECT().ListByUser(userID).Return([]*domain.MarketingEvent{
		{ID: "evt_000000001", UserID: userID},
	}, nil)
	clientRepo.EXPECT().ListByEventsAndCloseDateRange(
		[]string{"evt_000000001"},
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	).Return([]*domain.EventClient{
		{
			ClientName:     "John Carter",
			CloseDate:      time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
			AnnuityPremium: 5000,
			AUMAmount:      100000,
		},
		{
			ClientName:           "Mary Li",
			CloseDate:            time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
			LifeInsurancePremium: 2000,
		},
		{
			ClientName:           "Sue Park",
			CloseDate:            time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			FinancialPlanningFee: 1500,
		},
	}, nil)

	service := NewService(eventRepo, clientRepo, recmocks.NewMockReconciler(ctrl))
	summary, err := service.YTDSummary(userID, 2025)

	require.NoError(t, err)
	assert.Equal(t, 2025, summary.Year)
	assert.Equal(t, 3, summary.TotalClients)
	assert.Equal(t, 5000.0, summary.TotalAnnuity)
	assert.Equal(t, 2000.0, summary.TotalLife)
	assert.Equal(t, 100000.0, summary.TotalAUM)
	assert.Equal(t, 1500.0, summary.TotalFinancialPlanning)
	assert.Equal(t, 108500.0, summary.TotalValue)
	assert.Equal(t, 36166.67, summary.AverageDealSize)

	march := summary.MonthlyBreakdown[2]
	assert.Equal(t, 3, march.Month)
	assert.Equal(t, 2, march.Clients)
	assert.Equal(t, 107000.0, march.Value)

	july := summary.MonthlyBreakdown[6]
	assert.Equal(t, 1, july.Clients)
	assert.Equal(t, 1500.0, july.Value)

	january := summary.MonthlyBreakdown[0]
	assert.Equal(t, 1, january.Month)
	assert.Equal(t, 0, january.Clients)
}
