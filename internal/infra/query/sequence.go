package query

import "context"

// NextSequenceValue bumps the per-class counter. The row lock it takes is held until the
// transaction ends, so concurrent allocators of one class queue up behind each other.
func (q *Queries) NextSequenceValue(ctx context.Context, db DBTX, entityClass string) (int64, error) {
	row, err := q.queryRow(ctx, db, q.psql.Insert("id_sequences").
		Columns("entity_class", "last_value").
		Values(entityClass, 1).
		Suffix("ON CONFLICT (entity_class) DO UPDATE SET last_value = id_sequences.last_value + 1 RETURNING last_value"))
	if err != nil {
		return 0, err
	}
	var next int64
	err = row.Scan(&next)
	return next, err
}
