package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/jpilocastillo/m8bizz-sub002/infrastructure/database/postgres"
	"github.com/jpilocastillo/m8bizz-sub002/internal/domain"
	"github.com/jpilocastillo/m8bizz-sub002/pkg/utils"
)

const (
	monthlyDataEntriesTable   = "monthly_data_entries mde"
	monthlyDataEntriesColumns = "mde.id, mde.user_id, mde.month_year, " +
		"mde.new_clients, mde.new_appointments, mde.new_leads, " +
		"mde.annuity_sales, mde.aum_sales, mde.life_sales, " +
		"mde.marketing_expenses, mde.notes, mde.created_at, mde.updated_at"
)

type MonthlyEntryRepository interface {
	GetByUserAndMonth(userID int, monthYear string) (*domain.MonthlyDataEntry, error)
	ListByUserAndYear(userID int, year int) ([]*domain.MonthlyDataEntry, error)
	Upsert(entry *domain.MonthlyDataEntry) error
	UpdateFields(userID int, monthYear string, patch *domain.MonthlyEntryPatch) error
}

type monthlyEntryRepository struct {
	conn *postgres.Connection
}

func NewMonthlyEntryRepository(conn *postgres.Connection) MonthlyEntryRepository {
	return &monthlyEntryRepository{
		conn: conn,
	}
}

func (r *monthlyEntryRepository) GetByUserAndMonth(userID int, monthYear string) (*domain.MonthlyDataEntry, error) {
	query, args, err := squirrel.
		Select(monthlyDataEntriesColumns).
		From(monthlyDataEntriesTable).
		Where(squirrel.Eq{"mde.user_id": userID, "mde.month_year": monthYear}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := r.scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning monthly entry: %w", err)
	}

	return entry, nil
}

func (r *monthlyEntryRepository) ListByUserAndYear(userID int, year int) ([]*domain.MonthlyDataEntry, error) {
	// month_year is "YYYY-MM", a prefix match covers the whole year
	query, args, err := squirrel.
		Select(monthlyDataEntriesColumns).
		From(monthlyDataEntriesTable).
		Where(squirrel.Eq{"mde.user_id": userID}).
		Where(squirrel.Like{"mde.month_year": fmt.Sprintf("%04d-%%", year)}).
		OrderBy("mde.month_year ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.MonthlyDataEntry, 0)
	for rows.Next() {
		entry := &domain.MonthlyDataEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.MonthYear,
			&entry.NewClients,
			&entry.NewAppointments,
			&entry.NewLeads,
			&entry.AnnuitySales,
			&entry.AUMSales,
			&entry.LifeSales,
			&entry.MarketingExpenses,
			&entry.Notes,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning monthly entries: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}

// Upsert inserts or replaces the row for (user_id, month_year). Last write
// wins, there is no optimistic-concurrency check around the read-merge-write
// sequence performed by callers.
func (r *monthlyEntryRepository) Upsert(entry *domain.MonthlyDataEntry) error {
	if entry.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("error generating entry id: %w", err)
		}
		entry.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("monthly_data_entries").
		Columns(
			"id", "user_id", "month_year",
			"new_clients", "new_appointments", "new_leads",
			"annuity_sales", "aum_sales", "life_sales",
			"marketing_expenses", "notes",
		).
		Values(
			entry.ID,
			entry.UserID,
			entry.MonthYear,
			entry.NewClients,
			entry.NewAppointments,
			entry.NewLeads,
			entry.AnnuitySales,
			entry.AUMSales,
			entry.LifeSales,
			entry.MarketingExpenses,
			entry.Notes,
		).
		Suffix(`
			ON CONFLICT (user_id, month_year) DO UPDATE SET
				new_clients = EXCLUDED.new_clients,
				new_appointments = EXCLUDED.new_appointments,
				new_leads = EXCLUDED.new_leads,
				annuity_sales = EXCLUDED.annuity_sales,
				aum_sales = EXCLUDED.aum_sales,
				life_sales = EXCLUDED.life_sales,
				marketing_expenses = EXCLUDED.marketing_expenses,
				notes = EXCLUDED.notes,
				updated_at = NOW()
		`).
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

// UpdateFields applies a partial update to an existing row. Empty patches are
// a no-op.
func (r *monthlyEntryRepository) UpdateFields(userID int, monthYear string, patch *domain.MonthlyEntryPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Update("monthly_data_entries").
		Set("updated_at", squirrel.Expr("NOW()"))

	if patch.NewClients != nil {
		builder = builder.Set("new_clients", *patch.NewClients)
	}
	if patch.NewAppointments != nil {
		builder = builder.Set("new_appointments", *patch.NewAppointments)
	}
	if patch.AnnuitySales != nil {
		builder = builder.Set("annuity_sales", *patch.AnnuitySales)
	}
	if patch.AUMSales != nil {
		builder = builder.Set("aum_sales", *patch.AUMSales)
	}
	if patch.LifeSales != nil {
		builder = builder.Set("life_sales", *patch.LifeSales)
	}
	if patch.MarketingExpenses != nil {
		builder = builder.Set("marketing_expenses", *patch.MarketingExpenses)
	}

	query, args, err := builder.
		Where(squirrel.Eq{"user_id": userID, "month_year": monthYear}).
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

func (r *monthlyEntryRepository) scanEntry(row *sql.Row) (*domain.MonthlyDataEntry, error) {
	entry := &domain.MonthlyDataEntry{}

	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.MonthYear,
		&entry.NewClients,
		&entry.NewAppointments,
		&entry.NewLeads,
		&entry.AnnuitySales,
		&entry.AUMSales,
		&entry.LifeSales,
		&entry.MarketingExpenses,
		&entry.Notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}
