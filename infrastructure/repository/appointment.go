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
	eventAppointmentsTable = "event_appointments ea"
)

type AppointmentRepository interface {
	ListByEvents(eventIDs []string) ([]*domain.EventAppointment, error)
	SaveOrUpdate(appointment *domain.EventAppointment) error
}

type appointmentRepository struct {
	conn *postgres.Connection
}

func NewAppointmentRepository(conn *postgres.Connection) AppointmentRepository {
	return &appointmentRepository{
		conn: conn,
	}
}

func (r *appointmentRepository) ListByEvents(eventIDs []string) ([]*domain.EventAppointment, error) {
	if len(eventIDs) == 0 {
		return []*domain.EventAppointment{}, nil
	}

	query, args, err := squirrel.
		Select("ea.id, ea.event_id, ea.set_at_event, ea.set_after_event, ea.attended, ea.no_shows, ea.created_at, ea.updated_at").
		From(eventAppointmentsTable).
		Where(squirrel.Eq{"ea.event_id": eventIDs}).
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

	appointments := make([]*domain.EventAppointment, 0)
	for rows.Next() {
		appointment := &domain.EventAppointment{}
		err := rows.Scan(
			&appointment.ID,
			&appointment.EventID,
			&appointment.SetAtEvent,
			&appointment.SetAfterEvent,
			&appointment.Attended,
			&appointment.NoShows,
			&appointment.CreatedAt,
			&appointment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning event appointments: %w", err)
		}
		appointments = append(appointments, appointment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return appointments, nil
}

// SaveOrUpdate keeps one appointment row per event.
func (r *appointmentRepository) SaveOrUpdate(appointment *domain.EventAppointment) error {
	if appointment.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("error generating appointment id: %w", err)
		}
		appointment.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("event_appointments").
		Columns("id", "event_id", "set_at_event", "set_after_event", "attended", "no_shows").
		Values(
			appointment.ID,
			appointment.EventID,
			appointment.SetAtEvent,
			appointment.SetAfterEvent,
			appointment.Attended,
			appointment.NoShows,
		).
		Suffix(`
			ON CONFLICT (event_id) DO UPDATE SET
				set_at_event = EXCLUDED.set_at_event,
				set_after_event = EXCLUDED.set_after_event,
				attended = EXCLUDED.attended,
				no_shows = EXCLUDED.no_shows,
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
