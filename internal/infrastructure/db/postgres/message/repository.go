package message

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domain "docchat-api/internal/domain/message"
	"docchat-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchPage(
	ctx context.Context,
	ownerID string,
	fileID uuid.UUID,
	limit int,
	cursor *uuid.UUID,
) (domain.Messages, error) {
	var (
		rows pgx.Rows
		err  error
	)

	if cursor != nil {
		var (
			afterAt time.Time
			afterID uuid.UUID
		)
		err = r.db.QueryRow(ctx, SelectCursorKey, ownerID, fileID, *cursor).Scan(&afterAt, &afterID)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			// absent cursor row starts the sequence from the top
			cursor = nil
		case err != nil:
			return nil, err
		default:
			rows, err = r.db.Query(ctx, SelectMessagesPageAfter, ownerID, fileID, afterAt, afterID, limit)
		}
	}
	if cursor == nil {
		rows, err = r.db.Query(ctx, SelectMessagesPage, ownerID, fileID, limit)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ms Messages
	for rows.Next() {
		m := new(Message)

		if err = rows.Scan(
			&m.ID,
			&m.FileID,
			&m.OwnerID,

			&m.Text,
			&m.IsUserMessage,

			&m.CreatedAt,
		); err != nil {
			return nil, err
		}

		ms = append(ms, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ms), nil
}
