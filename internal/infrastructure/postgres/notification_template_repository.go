package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	"github.com/oksasatya/eventhub/internal/domain/repository"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

const templateColumns = `id, name, description, notification_type, channel, title_template,
	body_template, html_template, is_active, created_at, updated_at`

type NotificationTemplateRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationTemplateRepository(pool *pgxpool.Pool) *NotificationTemplateRepository {
	return &NotificationTemplateRepository{pool: pool}
}

func (r *NotificationTemplateRepository) Create(ctx context.Context, t entity.NotificationTemplate) error {
	p := t.Props()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO notification_templates (`+templateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, p.ID, p.Name, p.Description, p.NotificationType, p.Channel.Value(), p.TitleTemplate,
		p.BodyTemplate, p.HTMLTemplate, p.IsActive, p.CreatedAt, p.UpdatedAt)
	return mapErr("insert notification template", err)
}

func (r *NotificationTemplateRepository) Update(ctx context.Context, t entity.NotificationTemplate) error {
	p := t.Props()
	return execOne(ctx, r.pool, "update notification template", `
		UPDATE notification_templates
		SET name = $1, description = $2, title_template = $3, body_template = $4, html_template = $5,
		    is_active = $6, updated_at = $7
		WHERE id = $8
	`, p.Name, p.Description, p.TitleTemplate, p.BodyTemplate, p.HTMLTemplate, p.IsActive, p.UpdatedAt, p.ID)
}

func (r *NotificationTemplateRepository) GetByID(ctx context.Context, id string) (entity.NotificationTemplate, error) {
	return r.getOne(ctx, "id", id)
}

func (r *NotificationTemplateRepository) GetByName(ctx context.Context, name string) (entity.NotificationTemplate, error) {
	return r.getOne(ctx, "name", name)
}

func (r *NotificationTemplateRepository) getOne(ctx context.Context, col, value string) (entity.NotificationTemplate, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+templateColumns+` FROM notification_templates WHERE `+col+` = $1`, value)
	t, err := scanTemplate(row)
	if err != nil {
		return entity.NotificationTemplate{}, mapErr("get notification template", err)
	}
	return t, nil
}

func (r *NotificationTemplateRepository) List(ctx context.Context, f repository.NotificationTemplateFilter, opts repository.ListOptions) (repository.Page[entity.NotificationTemplate], error) {
	var w filter
	w.eq("channel", f.Channel.Value())
	w.eq("notification_type", f.NotificationType)
	w.isTrue("is_active", f.ActiveOnly)
	return list(ctx, r.pool, "notification_templates", templateColumns, w, opts, scanTemplate)
}

func scanTemplate(row rowScanner) (entity.NotificationTemplate, error) {
	var (
		p       entity.NotificationTemplateProps
		channel string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.NotificationType, &channel, &p.TitleTemplate,
		&p.BodyTemplate, &p.HTMLTemplate, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return entity.NotificationTemplate{}, err
	}
	var err error
	if p.Channel, err = vo.NewNotificationChannel(channel); err != nil {
		return entity.NotificationTemplate{}, err
	}
	p.CreatedAt, p.UpdatedAt = p.CreatedAt.UTC(), p.UpdatedAt.UTC()
	return entity.ReconstituteNotificationTemplate(p), nil
}

var _ repository.NotificationTemplateRepository = (*NotificationTemplateRepository)(nil)
