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
	marketingExpensesTable = "marketing_expenses mx"
)

type ExpenseRepository interface {
	ListByEvents(eventIDs []string) ([]*domain.MarketingExpense, error)
	Create(expense *domain.MarketingExpense) (*domain.MarketingExpense, error)
	Delete(id string) error
}

type expenseRepository struct {
	conn *postgres.Connection
}

func NewExpenseRepository(conn *postgres.Connection) ExpenseRepository {
	return &expenseRepository{
		conn: conn,
	}
}

func (r *expenseRepository) ListByEvents(eventIDs []string) ([]*domain.MarketingExpense, error) {
	if len(eventIDs) == 0 {
		return []*domain.MarketingExpense{}, nil
	}

	query, args, err := squirrel.
		Select("mx.id, mx.event_id, mx.category, mx.total_cost, mx.created_at, mx.updated_at").
		From(marketingExpensesTable).
		Where(squirrel.Eq{"mx.event_id": eventIDs}).
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

	expenses := make([]*domain.MarketingExpense, 0)
	for rows.Next() {
		expense := &domain.MarketingExpense{}
		err := rows.Scan(
			&expense.ID,
			&expense.EventID,
			&expense.Category,
			&expense.TotalCost,
			&expense.CreatedAt,
			&expense.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning marketing expenses: %w", err)
		}
		expenses = append(expenses, expense)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return expenses, nil
}

func (r *expenseRepository) Create(expense *domain.MarketingExpense) (*domain.MarketingExpense, error) {
	if expense.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("error generating expense id: %w", err)
		}
		expense.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("marketing_expenses").
		Columns("id", "event_id", "category", "total_cost").
		Values(expense.ID, expense.EventID, expense.Category, expense.TotalCost).
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

	return expense, nil
}

func (r *expenseRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("marketing_expenses").
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
