package postgres

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"docchat-api/internal/infrastructure/db/postgres/migrations"
)

// Migrate runs the embedded goose migrations over a short-lived
// database/sql connection; pgxpool stays the runtime query path.
func Migrate(ctx context.Context, logger *zap.Logger, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err = goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err = goose.UpContext(ctx, db, "."); err != nil {
		return err
	}

	logger.Info("db migrations applied")

	return nil
}
