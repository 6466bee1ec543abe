package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	"github.com/oksasatya/eventhub/internal/domain/repository"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

const paymentColumns = `id, user_id, event_id, amount, currency, status, provider, provider_payment_id,
	payment_method, metadata, is_active, created_at, updated_at`

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

func (r *PaymentRepository) Create(ctx context.Context, p entity.Payment) error {
	props := p.Props()
	meta, err := encodeMetadata(props.Metadata)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO payments (`+paymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, props.ID, props.UserID, props.EventID, props.Amount, props.Currency.Value(), props.Status.Value(),
		props.Provider.Value(), props.ProviderPaymentID, props.PaymentMethod.Value(), meta,
		props.IsActive, props.CreatedAt, props.UpdatedAt)
	return mapErr("insert payment", err)
}

func (r *PaymentRepository) Update(ctx context.Context, p entity.Payment) error {
	props := p.Props()
	meta, err := encodeMetadata(props.Metadata)
	if err != nil {
		return err
	}
	return execOne(ctx, r.pool, "update payment", `
		UPDATE payments
		SET status = $1, provider_payment_id = $2, payment_method = $3, metadata = $4,
		    is_active = $5, updated_at = $6
		WHERE id = $7
	`, props.Status.Value(), props.ProviderPaymentID, props.PaymentMethod.Value(), meta,
		props.IsActive, props.UpdatedAt, props.ID)
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (entity.Payment, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
	p, err := scanPayment(row)
	if err != nil {
		return entity.Payment{}, mapErr("get payment", err)
	}
	return p, nil
}

func (r *PaymentRepository) List(ctx context.Context, f repository.PaymentFilter, opts repository.ListOptions) (repository.Page[entity.Payment], error) {
	var w filter
	w.eq("user_id", f.UserID)
	w.eq("event_id", f.EventID)
	w.eq("status", f.Status.Value())
	return list(ctx, r.pool, "payments", paymentColumns, w, opts, scanPayment)
}

func scanPayment(row rowScanner) (entity.Payment, error) {
	var (
		p                                  entity.PaymentProps
		currency, status, provider, method string
		meta                               []byte
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.EventID, &p.Amount, &currency, &status, &provider,
		&p.ProviderPaymentID, &method, &meta, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return entity.Payment{}, err
	}
	var err error
	if p.Currency, err = vo.NewCurrency(currency); err != nil {
		return entity.Payment{}, err
	}
	if p.Status, err = vo.NewPaymentStatus(status); err != nil {
		return entity.Payment{}, err
	}
	if p.Provider, err = vo.NewPaymentProvider(provider); err != nil {
		return entity.Payment{}, err
	}
	if p.PaymentMethod, err = vo.NewPaymentMethod(method); err != nil {
		return entity.Payment{}, err
	}
	if p.Metadata, err = decodeMetadata(meta); err != nil {
		return entity.Payment{}, err
	}
	p.CreatedAt, p.UpdatedAt = p.CreatedAt.UTC(), p.UpdatedAt.UTC()
	return entity.ReconstitutePayment(p), nil
}

var _ repository.PaymentRepository = (*PaymentRepository)(nil)
