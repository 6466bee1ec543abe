package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	"github.com/oksasatya/eventhub/internal/domain/repository"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

const ticketColumns = `id, user_id, event_id, payment_id, ticket_type, ticket_price, status, qr_code,
	used_at, metadata, is_active, created_at, updated_at`

type TicketRepository struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{pool: pool}
}

func (r *TicketRepository) Create(ctx context.Context, t entity.Ticket) error {
	props := t.Props()
	meta, err := encodeMetadata(props.Metadata)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO tickets (`+ticketColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, props.ID, props.UserID, props.EventID, props.PaymentID, props.TicketType, props.TicketPrice,
		props.Status.Value(), props.QRCode, props.UsedAt, meta, props.IsActive, props.CreatedAt, props.UpdatedAt)
	return mapErr("insert ticket", err)
}

func (r *TicketRepository) Update(ctx context.Context, t entity.Ticket) error {
	props := t.Props()
	meta, err := encodeMetadata(props.Metadata)
	if err != nil {
		return err
	}
	return execOne(ctx, r.pool, "update ticket", `
		UPDATE tickets
		SET status = $1, used_at = $2, metadata = $3, is_active = $4, updated_at = $5
		WHERE id = $6
	`, props.Status.Value(), props.UsedAt, meta, props.IsActive, props.UpdatedAt, props.ID)
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (entity.Ticket, error) {
	return r.getOne(ctx, "id", id)
}

func (r *TicketRepository) GetByQRCode(ctx context.Context, qr string) (entity.Ticket, error) {
	return r.getOne(ctx, "qr_code", qr)
}

func (r *TicketRepository) getOne(ctx context.Context, col, value string) (entity.Ticket, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE `+col+` = $1`, value)
	t, err := scanTicket(row)
	if err != nil {
		return entity.Ticket{}, mapErr("get ticket", err)
	}
	return t, nil
}

func (r *TicketRepository) List(ctx context.Context, f repository.TicketFilter, opts repository.ListOptions) (repository.Page[entity.Ticket], error) {
	var w filter
	w.eq("user_id", f.UserID)
	w.eq("event_id", f.EventID)
	w.eq("payment_id", f.PaymentID)
	w.eq("status", f.Status.Value())
	return list(ctx, r.pool, "tickets", ticketColumns, w, opts, scanTicket)
}

func scanTicket(row rowScanner) (entity.Ticket, error) {
	var (
		t      entity.TicketProps
		status string
		meta   []byte
	)
	if err := row.Scan(&t.ID, &t.UserID, &t.EventID, &t.PaymentID, &t.TicketType, &t.TicketPrice,
		&status, &t.QRCode, &t.UsedAt, &meta, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return entity.Ticket{}, err
	}
	var err error
	if t.Status, err = vo.NewTicketStatus(status); err != nil {
		return entity.Ticket{}, err
	}
	if t.Metadata, err = decodeMetadata(meta); err != nil {
		return entity.Ticket{}, err
	}
	if t.UsedAt != nil {
		used := t.UsedAt.UTC()
		t.UsedAt = &used
	}
	t.CreatedAt, t.UpdatedAt = t.CreatedAt.UTC(), t.UpdatedAt.UTC()
	return entity.ReconstituteTicket(t), nil
}

var _ repository.TicketRepository = (*TicketRepository)(nil)
