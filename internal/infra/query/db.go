// Package query holds the hand-maintained SQL for every table, one method per statement. Repositories
// and read stores depend on narrow interfaces over these methods so they can be mocked.
package query

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type Queries struct {
	psql squirrel.StatementBuilderType
}

func New() *Queries {
	return &Queries{psql: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
}

func (q *Queries) exec(ctx context.Context, db DBTX, b squirrel.Sqlizer) (int64, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) queryRow(ctx context.Context, db DBTX, b squirrel.Sqlizer) (pgx.Row, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return db.QueryRow(ctx, sql, args...), nil
}

func collect[T any](ctx context.Context, db DBTX, b squirrel.Sqlizer, scan func(pgx.Row) (T, error)) ([]T, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
