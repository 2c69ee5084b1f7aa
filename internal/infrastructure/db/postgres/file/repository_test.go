package file

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "docchat-api/internal/domain/file"
)

var fileColumns = []string{"id", "owner_id", "key", "name", "url", "upload_status", "created_at", "updated_at"}

func TestRepository_FetchFiles_WithCounts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id1, id2 := uuid.New(), uuid.New()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	cols := []string{"id", "owner_id", "key", "name", "url", "upload_status", "message_count", "created_at", "updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta(SelectFilesWithCounts)).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(id1, "user-1", "uploads/user-1/a.pdf", "a.pdf", "https://cdn/a.pdf", "SUCCESS", int64(5), now, now).
			AddRow(id2, "user-1", "uploads/user-1/b.pdf", "b.pdf", "https://cdn/b.pdf", "PROCESSING", int64(0), now.Add(-time.Hour), now.Add(-time.Hour)))

	repo := NewRepository(mock)
	fs, err := repo.FetchFiles(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, fs, 2)
	assert.Equal(t, id1, fs[0].ID)
	assert.Equal(t, int64(5), fs[0].MessageCount)
	assert.Equal(t, domain.StatusSuccess, fs[0].UploadStatus)
	assert.Equal(t, int64(0), fs[1].MessageCount)
	assert.Equal(t, domain.StatusProcessing, fs[1].UploadStatus)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteFile_ReturnsDeletedRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(DeleteFileByID)).
		WithArgs("user-1", id).
		WillReturnRows(pgxmock.NewRows(fileColumns).
			AddRow(id, "user-1", "uploads/user-1/a.pdf", "a.pdf", "https://cdn/a.pdf", "SUCCESS", now, now))

	repo := NewRepository(mock)
	f, err := repo.DeleteFile(context.Background(), "user-1", id)
	require.NoError(t, err)

	require.NotNil(t, f)
	assert.Equal(t, "uploads/user-1/a.pdf", f.Key)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteFile_NotOwned(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()

	// the scoped DELETE matches nothing, same as a non-existent file
	mock.ExpectQuery(regexp.QuoteMeta(DeleteFileByID)).
		WithArgs("intruder", id).
		WillReturnRows(pgxmock.NewRows(fileColumns))

	repo := NewRepository(mock)
	f, err := repo.DeleteFile(context.Background(), "intruder", id)
	require.NoError(t, err)
	assert.Nil(t, f)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateUploadStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(UpdateFileStatusByKey)).
		WithArgs("uploads/user-1/a.pdf", "SUCCESS").
		WillReturnRows(pgxmock.NewRows(fileColumns).
			AddRow(id, "user-1", "uploads/user-1/a.pdf", "a.pdf", "https://cdn/a.pdf", "SUCCESS", now, now))

	repo := NewRepository(mock)
	f, err := repo.UpdateUploadStatus(context.Background(), "uploads/user-1/a.pdf", domain.StatusSuccess)
	require.NoError(t, err)

	require.NotNil(t, f)
	assert.Equal(t, domain.StatusSuccess, f.UploadStatus)

	require.NoError(t, mock.ExpectationsWereMet())
}
