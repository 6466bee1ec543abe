package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/eventhub/internal/domain/entity"
	repo "github.com/oksasatya/eventhub/internal/domain/repository"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// mapErr translates driver errors into repository sentinels.
func mapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repo.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%s: %w", op, repo.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func execOne(ctx context.Context, pool *pgxpool.Pool, op, sql string, args ...any) error {
	tag, err := pool.Exec(ctx, sql, args...)
	if err != nil {
		return mapErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func encodeMetadata(m entity.Metadata) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func decodeMetadata(b []byte) (entity.Metadata, error) {
	m := entity.Metadata{}
	if len(b) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return m, nil
}

// filter accumulates "col = $n" clauses, skipping empty values.
type filter struct {
	clauses []string
	args    []any
}

func (f *filter) eq(col, value string) {
	if value == "" {
		return
	}
	f.args = append(f.args, value)
	f.clauses = append(f.clauses, fmt.Sprintf("%s = $%d", col, len(f.args)))
}

func (f *filter) isTrue(col string, on bool) {
	if on {
		f.clauses = append(f.clauses, col+" = TRUE")
	}
}

func (f *filter) where() string {
	if len(f.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.clauses, " AND ")
}

// list runs a count and a page query over table with the accumulated filter.
func list[T any](ctx context.Context, pool *pgxpool.Pool, table, columns string, f filter, opts repo.ListOptions, scan func(rowScanner) (T, error)) (repo.Page[T], error) {
	opts = opts.Normalize()
	where := f.where()

	var total int
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM "+table+where, f.args...).Scan(&total); err != nil {
		return repo.Page[T]{}, mapErr("count "+table, err)
	}

	args := append(append([]any{}, f.args...), opts.Limit, opts.Offset)
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d",
		columns, table, where, len(args)-1, len(args))
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return repo.Page[T]{}, mapErr("list "+table, err)
	}
	defer rows.Close()

	page := repo.Page[T]{Total: total, Items: make([]T, 0, opts.Limit)}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return repo.Page[T]{}, err
		}
		page.Items = append(page.Items, item)
	}
	if err := rows.Err(); err != nil {
		return repo.Page[T]{}, mapErr("list "+table, err)
	}
	return page, nil
}
