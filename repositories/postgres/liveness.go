package postgres

import "context"

func (db *Database) Liveness(ctx context.Context) error {
	var result int
	return db.pool.QueryRow(ctx, "SELECT 1").Scan(&result)
}
