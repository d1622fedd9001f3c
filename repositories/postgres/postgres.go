package postgres

import (
	"context"
	"reflect"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Pool is the subset of *pgxpool.Pool the store relies on.
type Pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type Database struct {
	pool Pool
}

func New(pool Pool) *Database {
	return &Database{pool: pool}
}

func NewQueryBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// rowTo scans a row into T, assigning columns to the struct fields in declaration order.
func rowTo[T any](row pgx.CollectableRow) (T, error) {
	var out T
	err := row.Scan(fieldPointers(&out)...)
	return out, err
}

func fieldPointers[T any](v *T) []any {
	rv := reflect.ValueOf(v).Elem()
	pointers := make([]any, rv.NumField())
	for i := range rv.NumField() {
		pointers[i] = rv.Field(i).Addr().Interface()
	}
	return pointers
}
