package services

import (
	"context"
	"path"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"docchat-api/internal/application/ports"
	domain "docchat-api/internal/domain/file"
	"docchat-api/internal/infrastructure/mq"
	"docchat-api/pkg/rmqconsumer"
)

const maxFileNameLen = 100

type FileService struct {
	logger         *zap.Logger
	storage        ports.ObjectStorage
	fileRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewFileService(
	logger *zap.Logger,
	storage ports.ObjectStorage,
	fileRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) *FileService {
	return &FileService{
		logger:         logger,
		storage:        storage,
		fileRepository: fileRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (fs *FileService) FindUserFiles(ctx context.Context, ownerID string) (domain.Files, error) {
	fls, err := fs.fileRepository.FetchFiles(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return fls, nil
}

func (fs *FileService) FindFileByKey(ctx context.Context, ownerID string, key string) (*domain.File, error) {
	f, err := fs.fileRepository.FetchFileByKey(ctx, ownerID, key)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// DeleteFile removes the owned row first and only then asks object storage
// to drop the blob. A storage failure after the committed row delete is an
// accepted partial-failure mode: the orphaned object is logged, not rolled
// back and not surfaced to the caller.
func (fs *FileService) DeleteFile(ctx context.Context, ownerID string, id uuid.UUID) (*domain.File, error) {
	f, err := fs.fileRepository.DeleteFile(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}

	if err = fs.storage.DeleteObject(ctx, f.Key); err != nil {
		fs.logger.Error("orphaned storage object after row delete",
			zap.String("key", f.Key), zap.Error(err))
	}

	fs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Kind:    mq.EventFileDeleted,
		UserID:  ownerID,
		Payload: f.Key,
	}

	fs.mCounter.WithLabelValues("files_deleted_total").Inc()

	return f, nil
}

// UploadStatus degrades to PENDING when no owned file with that id exists;
// absence is never an error here.
func (fs *FileService) UploadStatus(ctx context.Context, ownerID string, id uuid.UUID) (domain.UploadStatus, error) {
	f, err := fs.fileRepository.FetchFileByID(ctx, ownerID, id)
	if err != nil {
		return "", err
	}
	if f == nil {
		return domain.StatusPending, nil
	}

	return f.UploadStatus, nil
}

// UploadCompleted registers a freshly uploaded object as a PROCESSING file.
func (fs *FileService) UploadCompleted(ctx context.Context, ev rmqconsumer.UploadEvent) error {
	url := ev.URL
	if url == "" {
		url = fs.storage.GetPublicURL(ev.Key)
	}

	f, err := fs.fileRepository.CreateFile(ctx, &domain.File{
		OwnerID:      ev.UserID,
		Key:          ev.Key,
		Name:         sanitizeFileName(ev.Name),
		URL:          url,
		UploadStatus: domain.StatusProcessing,
	})
	if err != nil {
		return err
	}

	fs.logger.Info("file registered from upload",
		zap.Stringer("file_id", f.ID), zap.String("key", f.Key))
	fs.mCounter.WithLabelValues("files_ingested_total").Inc()

	return nil
}

func (fs *FileService) UploadProcessed(ctx context.Context, key string) error {
	return fs.setUploadStatus(ctx, key, domain.StatusSuccess)
}

func (fs *FileService) UploadFailed(ctx context.Context, key string) error {
	return fs.setUploadStatus(ctx, key, domain.StatusFailed)
}

func (fs *FileService) setUploadStatus(ctx context.Context, key string, status domain.UploadStatus) error {
	f, err := fs.fileRepository.UpdateUploadStatus(ctx, key, status)
	if err != nil {
		return err
	}
	if f == nil {
		// status event for a file that was deleted in the meantime
		fs.logger.Warn("upload status for unknown key", zap.String("key", key))
	}

	return nil
}

// sanitizeFileName keeps display names ASCII-safe: diacritics stripped,
// control characters dropped, length capped.
func sanitizeFileName(original string) string {
	if original == "" {
		return "file"
	}

	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "file"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\x00' || r < 0x20 {
			continue
		}
		b.WriteRune(r)
	}
	s = b.String()

	for utf8.RuneCountInString(s) > maxFileNameLen {
		_, size := utf8.DecodeLastRuneInString(s)
		if size <= 0 || size > len(s) {
			break
		}
		s = s[:len(s)-size]
	}

	if s == "" {
		return "file"
	}

	return s
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
