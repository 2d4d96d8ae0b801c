package query

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var idempotencyColumns = []string{
	"key", "actor_id", "endpoint", "request_hash", "status", "result_id", "expires_at",
}

func scanIdempotencyKey(row pgx.Row) (IdempotencyKeyRow, error) {
	var k IdempotencyKeyRow
	err := row.Scan(&k.Key, &k.ActorID, &k.Endpoint, &k.RequestHash, &k.Status, &k.ResultID, &k.ExpiresAt)
	return k, err
}

// GetIdempotencyKey ignores expired keys.
func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, key, actorID uuid.UUID) (IdempotencyKeyRow, error) {
	row, err := q.queryRow(ctx, db, q.psql.Select(idempotencyColumns...).
		From("idempotency_keys").
		Where(squirrel.Eq{"key": key, "actor_id": actorID}).
		Where(squirrel.Expr("expires_at > now()")))
	if err != nil {
		return IdempotencyKeyRow{}, err
	}
	return scanIdempotencyKey(row)
}

// UpsertIdempotencyKey inserts the key or takes over an expired one. pgx.ErrNoRows means a live
// key already exists.
func (q *Queries) UpsertIdempotencyKey(ctx context.Context, db DBTX, arg IdempotencyKeyRow) error {
	row, err := q.queryRow(ctx, db, q.psql.Insert("idempotency_keys").
		Columns(idempotencyColumns...).
		Values(arg.Key, arg.ActorID, arg.Endpoint, arg.RequestHash, arg.Status, arg.ResultID, arg.ExpiresAt).
		Suffix(`ON CONFLICT (key, actor_id) DO UPDATE SET
			endpoint = EXCLUDED.endpoint,
			request_hash = EXCLUDED.request_hash,
			status = EXCLUDED.status,
			result_id = EXCLUDED.result_id,
			expires_at = EXCLUDED.expires_at,
			created_at = now()
		WHERE idempotency_keys.expires_at <= now()
		RETURNING key`))
	if err != nil {
		return err
	}
	var key uuid.UUID
	return row.Scan(&key)
}
