package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	"github.com/oksasatya/eventhub/internal/domain/repository"
	vo "github.com/oksasatya/eventhub/internal/domain/valueobject"
)

const groupColumns = `id, name, description, event_id, created_by_id, COALESCE(invitation_code, ''),
	max_members, status, metadata, is_active, created_at, updated_at`

type GroupRepository struct {
	pool *pgxpool.Pool
}

func NewGroupRepository(pool *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{pool: pool}
}

func (r *GroupRepository) Create(ctx context.Context, g entity.Group) error {
	p := g.Props()
	meta, err := encodeMetadata(p.Metadata)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO groups (id, name, description, event_id, created_by_id, invitation_code,
			max_members, status, metadata, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11, $12)
	`, p.ID, p.Name, p.Description, p.EventID, p.CreatedByID, p.InvitationCode, p.MaxMembers,
		p.Status.Value(), meta, p.IsActive, p.CreatedAt, p.UpdatedAt)
	return mapErr("insert group", err)
}

func (r *GroupRepository) Update(ctx context.Context, g entity.Group) error {
	p := g.Props()
	meta, err := encodeMetadata(p.Metadata)
	if err != nil {
		return err
	}
	return execOne(ctx, r.pool, "update group", `
		UPDATE groups
		SET name = $1, description = $2, invitation_code = NULLIF($3, ''), max_members = $4,
		    status = $5, metadata = $6, is_active = $7, updated_at = $8
		WHERE id = $9
	`, p.Name, p.Description, p.InvitationCode, p.MaxMembers, p.Status.Value(), meta,
		p.IsActive, p.UpdatedAt, p.ID)
}

func (r *GroupRepository) GetByID(ctx context.Context, id string) (entity.Group, error) {
	return r.getOne(ctx, "id", id)
}

func (r *GroupRepository) GetByInvitationCode(ctx context.Context, code string) (entity.Group, error) {
	return r.getOne(ctx, "invitation_code", code)
}

func (r *GroupRepository) getOne(ctx context.Context, col, value string) (entity.Group, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+groupColumns+` FROM groups WHERE `+col+` = $1`, value)
	g, err := scanGroup(row)
	if err != nil {
		return entity.Group{}, mapErr("get group", err)
	}
	return g, nil
}

func (r *GroupRepository) List(ctx context.Context, f repository.GroupFilter, opts repository.ListOptions) (repository.Page[entity.Group], error) {
	var w filter
	w.eq("event_id", f.EventID)
	w.eq("created_by_id", f.CreatedByID)
	w.eq("status", f.Status.Value())
	return list(ctx, r.pool, "groups", groupColumns, w, opts, scanGroup)
}

func scanGroup(row rowScanner) (entity.Group, error) {
	var (
		p      entity.GroupProps
		status string
		meta   []byte
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.EventID, &p.CreatedByID, &p.InvitationCode,
		&p.MaxMembers, &status, &meta, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return entity.Group{}, err
	}
	var err error
	if p.Status, err = vo.NewGroupStatus(status); err != nil {
		return entity.Group{}, err
	}
	if p.Metadata, err = decodeMetadata(meta); err != nil {
		return entity.Group{}, err
	}
	p.CreatedAt, p.UpdatedAt = p.CreatedAt.UTC(), p.UpdatedAt.UTC()
	return entity.ReconstituteGroup(p), nil
}

var _ repository.GroupRepository = (*GroupRepository)(nil)
