package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/jpilocastillo/m8bizz-sub002/infrastructure/database/postgres"
	"github.com/jpilocastillo/m8bizz-sub002/internal/domain"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/utils"
)

const (
	eventClientsTable   = "event_clients ec"
	eventClientsColumns = "ec.id, ec.event_id, ec.client_name, ec.close_date, " +
		"ec.annuity_premium, ec.annuity_commission, ec.annuity_commission_percentage, " +
		"ec.life_insurance_premium, ec.life_insurance_commission, ec.life_insurance_commission_percentage, " +
		"ec.aum_amount, ec.aum_fee_percentage, ec.aum_fees, " +
		"ec.financial_planning_fee, ec.notes, ec.created_at, ec.updated_at"
)

type EventClientRepository interface {
	GetByID(id string) (*domain.EventClient, error)
	ListByEvent(eventID string) ([]*domain.EventClient, error)
	ListByEvents(eventIDs []string) ([]*domain.EventClient, error)
	ListByEventsAndCloseDateRange(eventIDs []string, startDate, endDate time.Time) ([]*domain.EventClient, error)
	Create(client *domain.EventClient) (*domain.EventClient, error)
	Update(patch *domain.UpdateEventClientRequest) error
	Delete(id string) error
}

type eventClientRepository struct {
	conn *postgres.Connection
}

func NewEventClientRepository(conn *postgres.Connection) EventClientRepository {
	return &eventClientRepository{
		conn: conn,
	}
}

func (r *eventClientRepository) GetByID(id string) (*domain.EventClient, error) {
	query, args, err := squirrel.
		Select(eventClientsColumns).
		From(eventClientsTable).
		Where(squirrel.Eq{"ec.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	client, err := r.scanClient(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning event client: %w", err)
	}

	return client, nil
}

func (r *eventClientRepository) ListByEvent(eventID string) ([]*domain.EventClient, error) {
	query, args, err := squirrel.
		Select(eventClientsColumns).
		From(eventClientsTable).
		Where(squirrel.Eq{"ec.event_id": eventID}).
		OrderBy("ec.close_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.queryClients(query, args)
}

func (r *eventClientRepository) ListByEvents(eventIDs []string) ([]*domain.EventClient, error) {
	if len(eventIDs) == 0 {
		return []*domain.EventClient{}, nil
	}

	query, args, err := squirrel.
		Select(eventClientsColumns).
		From(eventClientsTable).
		Where(squirrel.Eq{"ec.event_id": eventIDs}).
		OrderBy("ec.close_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.queryClients(query, args)
}

func (r *eventClientRepository) ListByEventsAndCloseDateRange(eventIDs []string, startDate, endDate time.Time) ([]*domain.EventClient, error) {
	if len(eventIDs) == 0 {
		return []*domain.EventClient{}, nil
	}

	query, args, err := squirrel.
		Select(eventClientsColumns).
		From(eventClientsTable).
		Where(squirrel.Eq{"ec.event_id": eventIDs}).
		Where(squirrel.GtOrEq{"ec.close_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ec.close_date": endDate.Format(time.DateOnly)}).
		OrderBy("ec.close_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.queryClients(query, args)
}

// Create inserts a client row. Monetary fields come in already defaulted to 0
// by the tracking service, so no column is ever written as NULL except the
// nullable percentages and notes.
func (r *eventClientRepository) Create(client *domain.EventClient) (*domain.EventClient, error) {
	if client.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("error generating client id: %w", err)
		}
		client.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("event_clients").
		Columns(
			"id", "event_id", "client_name", "close_date",
			"annuity_premium", "annuity_commission", "annuity_commission_percentage",
			"life_insurance_premium", "life_insurance_commission", "life_insurance_commission_percentage",
			"aum_amount", "aum_fee_percentage", "aum_fees",
			"financial_planning_fee", "notes",
		).
		Values(
			client.ID,
			client.EventID,
			client.ClientName,
			client.CloseDate.Format(time.DateOnly),
			client.AnnuityPremium,
			client.AnnuityCommission,
			client.AnnuityCommissionPercentage,
			client.LifeInsurancePremium,
			client.LifeInsuranceCommission,
			client.LifeInsuranceCommissionPercentage,
			client.AUMAmount,
			client.AUMFeePercentage,
			client.AUMFees,
			client.FinancialPlanningFee,
			client.Notes,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return client, nil
}

// Update writes only the fields present in the patch.
func (r *eventClientRepository) Update(patch *domain.UpdateEventClientRequest) error {
	builder := squirrel.StatementBuilder.
		Update("event_clients").
		Set("updated_at", squirrel.Expr("NOW()"))

	if patch.ClientName != nil {
		builder = builder.Set("client_name", *patch.ClientName)
	}
	if patch.CloseDate != nil {
		builder = builder.Set("close_date", patch.CloseDate.Format(time.DateOnly))
	}
	if patch.AnnuityPremium != nil {
		builder = builder.Set("annuity_premium", *patch.AnnuityPremium)
	}
	if patch.AnnuityCommission != nil {
		builder = builder.Set("annuity_commission", *patch.AnnuityCommission)
	}
	if patch.AnnuityCommissionPercentage != nil {
		builder = builder.Set("annuity_commission_percentage", *patch.AnnuityCommissionPercentage)
	}
	if patch.LifeInsurancePremium != nil {
		builder = builder.Set("life_insurance_premium", *patch.LifeInsurancePremium)
	}
	if patch.LifeInsuranceCommission != nil {
		builder = builder.Set("life_insurance_commission", *patch.LifeInsuranceCommission)
	}
	if patch.LifeInsuranceCommissionPercentage != nil {
		builder = builder.Set("life_insurance_commission_percentage", *patch.LifeInsuranceCommissionPercentage)
	}
	if patch.AUMAmount != nil {
		builder = builder.Set("aum_amount", *patch.AUMAmount)
	}
	if patch.AUMFeePercentage != nil {
		builder = builder.Set("aum_fee_percentage", *patch.AUMFeePercentage)
	}
	if patch.AUMFees != nil {
		builder = builder.Set("aum_fees", *patch.AUMFees)
	}
	if patch.FinancialPlanningFee != nil {
		builder = builder.Set("financial_planning_fee", *patch.FinancialPlanningFee)
	}
	if patch.Notes != nil {
		builder = builder.Set("notes", *patch.Notes)
	}

	query, args, err := builder.
		Where(squirrel.Eq{"id": patch.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

func (r *eventClientRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("event_clients").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

func (r *eventClientRepository) queryClients(query string, args []interface{}) ([]*domain.EventClient, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	clients := make([]*domain.EventClient, 0)
	for rows.Next() {
		client, err := r.scanClientRows(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event clients: %w", err)
		}
		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return clients, nil
}

func (r *eventClientRepository) scanClient(row *sql.Row) (*domain.EventClient, error) {
	client := &domain.EventClient{}

	err := row.Scan(
		&client.ID,
		&client.EventID,
		&client.ClientName,
		&client.CloseDate,
		&client.AnnuityPremium,
		&client.AnnuityCommission,
		&client.AnnuityCommissionPercentage,
		&client.LifeInsurancePremium,
		&client.LifeInsuranceCommission,
		&client.LifeInsuranceCommissionPercentage,
		&client.AUMAmount,
		&client.AUMFeePercentage,
		&client.AUMFees,
		&client.FinancialPlanningFee,
		&client.Notes,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func (r *eventClientRepository) scanClientRows(rows *sql.Rows) (*domain.EventClient, error) {
	client := &domain.EventClient{}

	err := rows.Scan(
		&client.ID,
		&client.EventID,
		&client.ClientName,
		&client.CloseDate,
		&client.AnnuityPremium,
		&client.AnnuityCommission,
		&client.AnnuityCommissionPercentage,
		&client.LifeInsurancePremium,
		&client.LifeInsuranceCommission,
		&client.LifeInsuranceCommissionPercentage,
		&client.AUMAmount,
		&client.AUMFeePercentage,
		&client.AUMFees,
		&client.FinancialPlanningFee,
		&client.Notes,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return client, nil
}
