package reconciling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jpilocastillo/m8bizz-sub002/infrastructure/repository/mocks"
	"github.com/jpilocastillo/m8bizz-sub002/internal/domain"
	aggmocks "github.com/jpilocastillo/m8bizz-sub002/internal/usecases/aggregating/mocks"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	m.Run()
}

func strPtr(s string) *string { return &s }

func TestService_SyncClientToMonthlyEntry(t *testing.T) {
	const userID = 42
	closeDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	event := &domain.MarketingEvent{ID: "evt_000000001", UserID: userID, Name: "Spring Dinner Seminar"}
	otherEvent := &domain.MarketingEvent{ID: "evt_000000002", UserID: userID, Name: "Tax Workshop"}

	tests := []struct {
		name  string
		setup func(eventRepo *mocks.MockEventRepository, clientRepo *mocks.MockEventClientRepository, entryRepo *mocks.MockMonthlyEntryRepository)
		want  SyncOutcome
	}{
		{
			name: "no existing entry, computed values written across all user events",
			setup: func(eventRepo *mocks.MockEventRepository, clientRepo *mocks.MockEventClientRepository, entryRepo *mocks.MockMonthlyEntryRepository) {
				eventRepo.EXPECT().GetByID("evt_000000001").Return(event, nil)
				eventRepo.EXPECT().ListByUser(userID).Return([]*domain.MarketingEvent{event, otherEvent}, nil)
				clientRepo.EXPECT().
					ListByEventsAndCloseDateRange([]string{"evt_000000001", "evt_000000002"}, monthStart, monthEnd).
					Return([]*domain.EventClient{
						{EventID: "evt_000000001", ClientName: "John Carter", AnnuityPremium: 5000, CloseDate: closeDate},
						{EventID: "evt_000000002", ClientName: "Mary Li", AUMAmount: 3000, CloseDate: closeDate, Notes: strPtr("rollover")},
					}, nil)
				entryRepo.EXPECT().GetByUserAndMonth(userID, "2025-03").Return(nil, nil)
				entryRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(entry *domain.MonthlyDataEntry) error {
					assert.Equal(t, userID, entry.UserID)
					assert.Equal(t, "2025-03", entry.MonthYear)
					assert.Equal(t, 2, entry.NewClients)
					assert.Equal(t, 5000.0, entry.AnnuitySales)
					assert.Equal(t, 3000.0, entry.AUMSales)
					assert.Equal(t, 0.0, entry.LifeSales)
					assert.Equal(t, "Clients from events: John Carter, Mary Li (rollover)", entry.Notes)
					return nil
				})
			},
			want: OutcomeSynced,
		},
		{
			name: "manual non-zero annuity value is preserved, zero aum is filled",
			setup: func(eventRepo *mocks.MockEventRepository, clientRepo *mocks.MockEventClientRepository, entryRepo *mocks.MockMonthlyEntryRepository) {
				eventRepo.EXPECT().GetByID("evt_000000001").Return(event, nil)
				eventRepo.EXPECT().ListByUser(userID).Return([]*domain.MarketingEvent{event}, nil)
				clientRepo.EXPECT().
					ListByEventsAndCloseDateRange([]string{"evt_000000001"}, monthStart, monthEnd).
					Return([]*domain.EventClient{
						{EventID: "evt_000000001", ClientName: "John Carter", AnnuityPremium: 5000, AUMAmount: 2500, CloseDate: closeDate},
						{EventID: "evt_000000001", ClientName: "Sue Park", AnnuityPremium: 3000, CloseDate: closeDate},
					}, nil)
				entryRepo.EXPECT().GetByUserAndMonth(userID, "2025-03").Return(&domain.MonthlyDataEntry{
					ID:              "mde_00000001",
					UserID:          userID,
					MonthYear:       "2025-03",
					AnnuitySales:    10000,
					NewAppointments: 7,
					NewLeads:        12,
				}, nil)
				entryRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(entry *domain.MonthlyDataEntry) error {
					assert.Equal(t, "mde_00000001", entry.ID)
					assert.Equal(t, 10000.0, entry.AnnuitySales, "manual value must survive the sync")
					assert.Equal(t, 2500.0, entry.AUMSales)
					assert.Equal(t, 2, entry.NewClients)
					assert.Equal(t, 7, entry.NewAppointments, "appointments belong to the recalculation pass")
					assert.Equal(t, 12, entry.NewLeads)
					return nil
				})
			},
			want: OutcomeSynced,
		},
		{
			name: "deleting the last client does not zero a manual value",
			setup: func(eventRepo *mocks.MockEventRepository, clientRepo *mocks.MockEventClientRepository, entryRepo *mocks.MockMonthlyEntryRepository) {
				eventRepo.EXPECT().GetByID("evt_000000001").Return(event, nil)
				eventRepo.EXPECT().ListByUser(userID).Return([]*domain.MarketingEvent{event}, nil)
				clientRepo.EXPECT().
					ListByEventsAndCloseDateRange([]string{"evt_000000001"}, monthStart, monthEnd).
					Return([]*domain.EventClient{}, nil)
				entryRepo.EXPECT().GetByUserAndMonth(userID, "2025-03").Return(&domain.MonthlyDataEntry{
					ID:           "mde_00000001",
					UserID:       userID,
					MonthYear:    "2025-03",
					AnnuitySales: 10000,
					Notes:        "watch Q2 pipeline\nClients from events: John Carter",
				}, nil)
				entryRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(entry *domain.MonthlyDataEntry) error {
					assert.Equal(t, 10000.0, entry.AnnuitySales)
					assert.Equal(t, 0, entry.NewClients)
					assert.Equal(t, "watch Q2 pipeline\nClients from events: John Carter", entry.Notes,
						"notes are untouched when the month has no clients")
					return nil
				})
			},
			want: OutcomeSynced,
		},
		{
			name: "duplicate client names counted once",
			setup: func(eventRepo *mocks.MockEventRepository, clientRepo *mocks.MockEventClientRepository, entryRepo *mocks.MockMonthlyEntryRepository) {
				eventRepo.EXPECT().GetByID("evt_000000001").Return(event, nil)
				eventRepo.EXPECT().ListByUser(userID).Return([]*domain.MarketingEvent{event}, nil)
				clientRepo.EXPECT().
					ListByEventsAndCloseDateRange([]string{"evt_000000001"}, monthStart, monthEnd).
					Return([]*domain.EventClient{
						{EventID: "evt_000000001", ClientName: "John Carter", AnnuityPremium: 1000, CloseDate: closeDate},
						{EventID: "evt_000000001", ClientName: "John Carter", AnnuityPremium: 2000, CloseDate: closeDate},
						{EventID: "evt_000000001", ClientName: "", LifeInsurancePremium: 700, CloseDate: closeDate},
					}, nil)
				entryRepo.EXPECT().GetByUserAndMonth(userID, "2025-03").Return(nil, nil)
				entryRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(entry *domain.MonthlyDataEntry) error {
					assert.Equal(t, 1, entry.NewClients, "distinct non-empty names only")
					assert.Equal(t, 3000.0, entry.AnnuitySales, "sums still cover every row")
					assert.Equal(t, 700.0, entry.LifeSales)
					assert.Equal(t, "Clients from events: John Carter", entry.Notes)
					return nil
				})
			},
			want: OutcomeSynced,
		},
		{
			name: "existing client line in notes is replaced, advisor lines kept",
			setup: func(eventRepo *mocks.MockEventRepository, clientRepo *mocks.MockEventClientRepository, entryRepo *mocks.MockMonthlyEntryRepository) {
				eventRepo.EXPECT().GetByID("evt_000000001").Return(event, nil)
				eventRepo.EXPECT().ListByUser(userID).Return([]*domain.MarketingEvent{event}, nil)
				clientRepo.EXPECT().
					ListByEventsAndCloseDateRange([]string{"evt_000000001"}, monthStart, monthEnd).
					Return([]*domain.EventClient{
						{EventID: "evt_000000001", ClientName: "Mary Li", AUMAmount: 900, CloseDate: closeDate},
					}, nil)
				entryRepo.EXPECT().GetByUserAndMonth(userID, "2025-03").Return(&domain.MonthlyDataEntry{
					ID:        "mde_00000001",
					UserID:    userID,
					MonthYear: "2025-03",
					Notes:     "great month\nClients from events: John Carter\nfollow up with Sue",
				}, nil)
				entryRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(entry *domain.MonthlyDataEntry) error {
					assert.Equal(t, "great month\nClients from events: Mary Li\nfollow up with Sue", entry.Notes)
					return nil
				})
			},
			want: OutcomeSynced,
		},
		{
			name: "caller does not own the event",
			setup: func(eventRepo *mocks.MockEventRepository, clientRepo *mocks.MockEventClientRepository, entryRepo *mocks.MockMonthlyEntryRepository) {
				eventRepo.EXPECT().GetByID("evt_000000001").Return(&domain.MarketingEvent{
					ID:     "evt_000000001",
					UserID: 77,
				}, nil)
			},
			want: OutcomeSkipped,
		},
		{
			name: "event not found",
			setup: func(eventRepo *mocks.MockEventRepository, clientRepo *mocks.MockEventClientRepository, entryRepo *mocks.MockMonthlyEntryRepository) {
				eventRepo.EXPECT().GetByID("evt_000000001").Return(nil, nil)
			},
			want: OutcomeFailed,
		},
		{
			name: "upsert failure is swallowed into the outcome",
			setup: func(eventRepo *mocks.MockEventRepository, clientRepo *mocks.MockEventClientRepository, entryRepo *mocks.MockMonthlyEntryRepository) {
				eventRepo.EXPECT().GetByID("evt_000000001").Return(event, nil)
				eventRepo.EXPECT().ListByUser(userID).Return([]*domain.MarketingEvent{event}, nil)
				clientRepo.EXPECT().
					ListByEventsAndCloseDateRange([]string{"evt_000000001"}, monthStart, monthEnd).
					Return([]*domain.EventClient{}, nil)
				entryRepo.EXPECT().GetByUserAndMonth(userID, "2025-03").Return(nil, nil)
				entryRepo.EXPECT().Upsert(gomock.Any()).Return(errors.New("connection reset"))
			},
			want: OutcomeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			eventRepo := mocks.NewMockEventRepository(ctrl)
			clientRepo := mocks.NewMockEventClientRepository(ctrl)
			entryRepo := mocks.NewMockMonthlyEntryRepository(ctrl)
			aggregator := aggmocks.NewMockAggregator(ctrl)

			tt.setup(eventRepo, clientRepo, entryRepo)

			service := NewService(eventRepo, clientRepo, entryRepo, aggregator)
			got := service.SyncClientToMonthlyEntry(userID, "evt_000000001", closeDate)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_RecalculateMonthlyEntryFromEvents(t *testing.T) {
	const userID = 42

	t.Run("invalid month format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(
			mocks.NewMockEventRepository(ctrl),
			mocks.NewMockEventClientRepository(ctrl),
			mocks.NewMockMonthlyEntryRepository(ctrl),
			aggmocks.NewMockAggregator(ctrl),
		)

		err := service.RecalculateMonthlyEntryFromEvents(userID, "March 2025")
		require.Error(t, err)
	})

	t.Run("no entry yet, fresh row persisted with computed values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		entryRepo := mocks.NewMockMonthlyEntryRepository(ctrl)
		aggregator := aggmocks.NewMockAggregator(ctrl)

		aggregator.EXPECT().AggregateEventData(userID, 3, 2025).Return(&domain.AggregatedEventData{
			AppointmentsBooked: 9,
			MarketingExpenses:  4200,
			AnnuitySales:       8000,
			NewClients:         2,
			ClientNames:        []string{"John Carter", "Mary Li"},
		}, nil)
		entryRepo.EXPECT().GetByUserAndMonth(userID, "2025-03").Return(nil, nil)
		entryRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(entry *domain.MonthlyDataEntry) error {
			assert.Equal(t, 2, entry.NewClients)
			assert.Equal(t, 9, entry.NewAppointments)
			assert.Equal(t, 8000.0, entry.AnnuitySales)
			assert.Equal(t, 4200.0, entry.MarketingExpenses)
			return nil
		})

		service := NewService(
			mocks.NewMockEventRepository(ctrl),
			mocks.NewMockEventClientRepository(ctrl),
			entryRepo,
			aggregator,
		)

		require.NoError(t, service.RecalculateMonthlyEntryFromEvents(userID, "2025-03"))
	})

	t.Run("partial patch only fills zero fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		entryRepo := mocks.NewMockMonthlyEntryRepository(ctrl)
		aggregator := aggmocks.NewMockAggregator(ctrl)

		aggregator.EXPECT().AggregateEventData(userID, 3, 2025).Return(&domain.AggregatedEventData{
			AppointmentsBooked: 9,
			MarketingExpenses:  4200,
			AnnuitySales:       8000,
			AUMSales:           1500,
			NewClients:         2,
		}, nil)
		entryRepo.EXPECT().GetByUserAndMonth(userID, "2025-03").Return(&domain.MonthlyDataEntry{
			UserID:       userID,
			MonthYear:    "2025-03",
			AnnuitySales: 10000,
			NewClients:   5,
		}, nil)
		entryRepo.EXPECT().UpdateFields(userID, "2025-03", gomock.Any()).DoAndReturn(
			func(_ int, _ string, patch *domain.MonthlyEntryPatch) error {
				assert.Nil(t, patch.AnnuitySales, "manual annuity value must not be patched")
				assert.Nil(t, patch.NewClients)
				require.NotNil(t, patch.NewAppointments)
				assert.Equal(t, 9, *patch.NewAppointments)
				require.NotNil(t, patch.MarketingExpenses)
				assert.Equal(t, 4200.0, *patch.MarketingExpenses)
				require.NotNil(t, patch.AUMSales)
				assert.Equal(t, 1500.0, *patch.AUMSales)
				assert.Nil(t, patch.LifeSales, "zero computed value writes nothing")
				return nil
			})

		service := NewService(
			mocks.NewMockEventRepository(ctrl),
			mocks.NewMockEventClientRepository(ctrl),
			entryRepo,
			aggregator,
		)

		require.NoError(t, service.RecalculateMonthlyEntryFromEvents(userID, "2025-03"))
	})

	t.Run("nothing to patch skips the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		entryRepo := mocks.NewMockMonthlyEntryRepository(ctrl)
		aggregator := aggmocks.NewMockAggregator(ctrl)

		aggregator.EXPECT().AggregateEventData(userID, 3, 2025).Return(&domain.AggregatedEventData{}, nil)
		entryRepo.EXPECT().GetByUserAndMonth(userID, "2025-03").Return(&domain.MonthlyDataEntry{
			UserID:       userID,
			MonthYear:    "2025-03",
			AnnuitySales: 10000,
		}, nil)

		service := NewService(
			mocks.NewMockEventRepository(ctrl),
			mocks.NewMockEventClientRepository(ctrl),
			entryRepo,
			aggregator,
		)

		require.NoError(t, service.RecalculateMonthlyEntryFromEvents(userID, "2025-03"))
	})

	t.Run("aggregation error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		aggregator := aggmocks.NewMockAggregator(ctrl)
		aggregator.EXPECT().AggregateEventData(userID, 3, 2025).Return(nil, errors.New("db down"))

		service := NewService(
			mocks.NewMockEventRepository(ctrl),
			mocks.NewMockEventClientRepository(ctrl),
			mocks.NewMockMonthlyEntryRepository(ctrl),
			aggregator,
		)

		err := service.RecalculateMonthlyEntryFromEvents(userID, "2025-03")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
	})
}

func TestMergeClientNotes(t *testing.T) {
	tests := []struct {
		name   string
		notes  string
		labels []string
		want   string
	}{
		{
			name:   "empty notes get the client line",
			notes:  "",
			labels: []string{"John Carter"},
			want:   "Clients from events: John Carter",
		},
		{
			name:   "no labels leaves notes untouched",
			notes:  "manual note",
			labels: nil,
			want:   "manual note",
		},
		{
			name:   "client line appended after advisor notes",
			notes:  "manual note",
			labels: []string{"John Carter", "Mary Li (rollover)"},
			want:   "manual note\nClients from events: John Carter, Mary Li (rollover)",
		},
		{
			name:   "previous client line replaced in place",
			notes:  "Clients from events: Old Name\ntrailing note",
			labels: []string{"John Carter"},
			want:   "Clients from events: John Carter\ntrailing note",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergeClientNotes(tt.notes, tt.labels))
		})
	}
}
