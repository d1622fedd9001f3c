package repositories

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"github.com/cockroachdb/errors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsFolder = "migrations"

func setupDbConnection(ctx context.Context, connectionString string) (*sql.DB, error) {
	migrationDB, err := sql.Open("pgx", connectionString)
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to database")
	}

	if err := migrationDB.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to ping database")
	}

	return migrationDB, nil
}

func RunMigrations(ctx context.Context, connectionString string, logger *slog.Logger) error {
	db, err := setupDbConnection(ctx, connectionString)
	if err != nil {
		return errors.Wrap(err, "setupDbConnection error")
	}
	defer db.Close()

	logger.InfoContext(ctx, "Migrations starting to setup DB: "+migrationsFolder)
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, migrationsFolder); err != nil {
		return errors.Wrap(err, "unable to run migrations")
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return errors.Wrap(err, "unable to read migration version")
	}
	logger.InfoContext(ctx, "Migrations done", slog.Int64("version", version))
	return nil
}
