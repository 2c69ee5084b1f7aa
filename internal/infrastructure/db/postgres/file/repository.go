package file

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domain "docchat-api/internal/domain/file"
	"docchat-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFiles(ctx context.Context, ownerID string) (domain.Files, error) {
	rows, err := r.db.Query(ctx, SelectFilesWithCounts, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs Files
	for rows.Next() {
		f := new(File)

		if err = rows.Scan(
			&f.ID,
			&f.OwnerID,

			&f.Key,
			&f.Name,
			&f.URL,
			&f.UploadStatus,
			&f.MessageCount,

			&f.CreatedAt,
			&f.UpdatedAt,
		); err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fs), nil
}

func (r *Repository) FetchFileByID(ctx context.Context, ownerID string, id uuid.UUID) (*domain.File, error) {
	return r.fetchOne(ctx, SelectFileByID, ownerID, id)
}

func (r *Repository) FetchFileByKey(ctx context.Context, ownerID string, key string) (*domain.File, error) {
	return r.fetchOne(ctx, SelectFileByKey, ownerID, key)
}

// DeleteFile removes the row and returns it; nil means no owned file with
// that id existed.
func (r *Repository) DeleteFile(ctx context.Context, ownerID string, id uuid.UUID) (*domain.File, error) {
	return r.fetchOne(ctx, DeleteFileByID, ownerID, id)
}

func (r *Repository) CreateFile(ctx context.Context, req *domain.File) (*domain.File, error) {
	f := new(File)

	err := r.db.QueryRow(
		ctx,
		InsertFile,
		req.OwnerID, req.Key, req.Name, req.URL, string(req.UploadStatus),
	).Scan(
		&f.ID,
		&f.OwnerID,

		&f.Key,
		&f.Name,
		&f.URL,
		&f.UploadStatus,

		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) UpdateUploadStatus(ctx context.Context, key string, status domain.UploadStatus) (*domain.File, error) {
	return r.fetchOne(ctx, UpdateFileStatusByKey, key, string(status))
}

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*domain.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&f.ID,
		&f.OwnerID,

		&f.Key,
		&f.Name,
		&f.URL,
		&f.UploadStatus,

		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}
