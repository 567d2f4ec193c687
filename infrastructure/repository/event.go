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
	marketingEventsTable = "marketing_events me"
)

type EventRepository interface {
	GetByID(id string) (*domain.MarketingEvent, error)
	ListByUser(userID int) ([]*domain.MarketingEvent, error)
	ListByUserAndDateRange(userID int, startDate, endDate time.Time) ([]*domain.MarketingEvent, error)
	Create(event *domain.MarketingEvent) (*domain.MarketingEvent, error)
	Update(event *domain.MarketingEvent) error
	Delete(id string) error
}

type eventRepository struct {
	conn *postgres.Connection
}

func NewEventRepository(conn *postgres.Connection) EventRepository {
	return &eventRepository{
		conn: conn,
	}
}

func (r *eventRepository) GetByID(id string) (*domain.MarketingEvent, error) {
	query, args, err := squirrel.
		Select("me.id, me.user_id, me.name, me.event_type, me.event_date, me.location, me.notes, me.created_at, me.updated_at").
		From(marketingEventsTable).
		Where(squirrel.Eq{"me.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	event, err := r.scanEvent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning marketing event: %w", err)
	}

	return event, nil
}

func (r *eventRepository) ListByUser(userID int) ([]*domain.MarketingEvent, error) {
	query, args, err := squirrel.
		Select("me.id, me.user_id, me.name, me.event_type, me.event_date, me.location, me.notes, me.created_at, me.updated_at").
		From(marketingEventsTable).
		Where(squirrel.Eq{"me.user_id": userID}).
		OrderBy("me.event_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.queryEvents(query, args)
}

func (r *eventRepository) ListByUserAndDateRange(userID int, startDate, endDate time.Time) ([]*domain.MarketingEvent, error) {
	query, args, err := squirrel.
		Select("me.id, me.user_id, me.name, me.event_type, me.event_date, me.location, me.notes, me.created_at, me.updated_at").
		From(marketingEventsTable).
		Where(squirrel.Eq{"me.user_id": userID}).
		Where(squirrel.GtOrEq{"me.event_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"me.event_date": endDate.Format(time.DateOnly)}).
		OrderBy("me.event_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.queryEvents(query, args)
}

func (r *eventRepository) Create(event *domain.MarketingEvent) (*domain.MarketingEvent, error) {
	if event.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("error generating event id: %w", err)
		}
		event.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("marketing_events").
		Columns("id", "user_id", "name", "event_type", "event_date", "location", "notes").
		Values(
			event.ID,
			event.UserID,
			event.Name,
			event.EventType,
			event.EventDate.Format(time.DateOnly),
			event.Location,
			event.Notes,
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

	return event, nil
}

func (r *eventRepository) Update(event *domain.MarketingEvent) error {
	query, args, err := squirrel.StatementBuilder.
		Update("marketing_events").
		Set("name", event.Name).
		Set("event_type", event.EventType).
		Set("event_date", event.EventDate.Format(time.DateOnly)).
		Set("location", event.Location).
		Set("notes", event.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": event.ID}).
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

func (r *eventRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("marketing_events").
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

func (r *eventRepository) queryEvents(query string, args []interface{}) ([]*domain.MarketingEvent, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.MarketingEvent, 0)
	for rows.Next() {
		event := &domain.MarketingEvent{}
		err := rows.Scan(
			&event.ID,
			&event.UserID,
			&event.Name,
			&event.EventType,
			&event.EventDate,
			&event.Location,
			&event.Notes,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning marketing events: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return events, nil
}

func (r *eventRepository) scanEvent(row *sql.Row) (*domain.MarketingEvent, error) {
	event := &domain.MarketingEvent{}

	err := row.Scan(
		&event.ID,
		&event.UserID,
		&event.Name,
		&event.EventType,
		&event.EventDate,
		&event.Location,
		&event.Notes,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return event, nil
}
