package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	"github.com/oksasatya/eventhub/internal/domain/repository"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

const attendeeColumns = `id, event_id, user_id, status, registration_date, checked_in, checked_in_date,
	ticket_id, notes, is_active, created_at, updated_at`

type EventAttendeeRepository struct {
	pool *pgxpool.Pool
}

func NewEventAttendeeRepository(pool *pgxpool.Pool) *EventAttendeeRepository {
	return &EventAttendeeRepository{pool: pool}
}

func (r *EventAttendeeRepository) Create(ctx context.Context, a entity.EventAttendee) error {
	p := a.Props()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO event_attendees (`+attendeeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, p.ID, p.EventID, p.UserID, p.Status.Value(), p.RegistrationDate, p.CheckedIn, p.CheckedInDate,
		p.TicketID, p.Notes, p.IsActive, p.CreatedAt, p.UpdatedAt)
	return mapErr("insert event attendee", err)
}

func (r *EventAttendeeRepository) Update(ctx context.Context, a entity.EventAttendee) error {
	p := a.Props()
	return execOne(ctx, r.pool, "update event attendee", `
		UPDATE event_attendees
		SET status = $1, checked_in = $2, checked_in_date = $3, ticket_id = $4, notes = $5,
		    is_active = $6, updated_at = $7
		WHERE id = $8
	`, p.Status.Value(), p.CheckedIn, p.CheckedInDate, p.TicketID, p.Notes, p.IsActive, p.UpdatedAt, p.ID)
}

func (r *EventAttendeeRepository) GetByID(ctx context.Context, id string) (entity.EventAttendee, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+attendeeColumns+` FROM event_attendees WHERE id = $1`, id)
	a, err := scanAttendee(row)
	if err != nil {
		return entity.EventAttendee{}, mapErr("get event attendee", err)
	}
	return a, nil
}

func (r *EventAttendeeRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (entity.EventAttendee, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+attendeeColumns+` FROM event_attendees WHERE event_id = $1 AND user_id = $2`, eventID, userID)
	a, err := scanAttendee(row)
	if err != nil {
		return entity.EventAttendee{}, mapErr("get event attendee", err)
	}
	return a, nil
}

func (r *EventAttendeeRepository) List(ctx context.Context, f repository.EventAttendeeFilter, opts repository.ListOptions) (repository.Page[entity.EventAttendee], error) {
	var w filter
	w.eq("event_id", f.EventID)
	w.eq("user_id", f.UserID)
	w.eq("status", f.Status.Value())
	return list(ctx, r.pool, "event_attendees", attendeeColumns, w, opts, scanAttendee)
}

func scanAttendee(row rowScanner) (entity.EventAttendee, error) {
	var (
		p      entity.EventAttendeeProps
		status string
	)
	if err := row.Scan(&p.ID, &p.EventID, &p.UserID, &status, &p.RegistrationDate, &p.CheckedIn,
		&p.CheckedInDate, &p.TicketID, &p.Notes, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return entity.EventAttendee{}, err
	}
	var err error
	if p.Status, err = vo.NewAttendanceStatus(status); err != nil {
		return entity.EventAttendee{}, err
	}
	if p.CheckedInDate != nil {
		at := p.CheckedInDate.UTC()
		p.CheckedInDate = &at
	}
	p.RegistrationDate = p.RegistrationDate.UTC()
	p.CreatedAt, p.UpdatedAt = p.CreatedAt.UTC(), p.UpdatedAt.UTC()
	return entity.ReconstituteEventAttendee(p), nil
}

var _ repository.EventAttendeeRepository = (*EventAttendeeRepository)(nil)
