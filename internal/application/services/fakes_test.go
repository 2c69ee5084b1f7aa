package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	"docchat-api/internal/domain/file"
	"docchat-api/internal/domain/message"
	"docchat-api/internal/domain/user"
	"docchat-api/internal/infrastructure/mq"
)

type fakeUserRepo struct {
	FetchUserByIDFunc func(ctx context.Context, id string) (*user.User, error)
	CreateUserFunc    func(ctx context.Context, req user.User) (*user.User, error)
}

func (f *fakeUserRepo) FetchUserByID(ctx context.Context, id string) (*user.User, error) {
	return f.FetchUserByIDFunc(ctx, id)
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	return f.CreateUserFunc(ctx, req)
}

type fakeFileRepo struct {
	FetchFilesFunc         func(ctx context.Context, ownerID string) (file.Files, error)
	FetchFileByIDFunc      func(ctx context.Context, ownerID string, id uuid.UUID) (*file.File, error)
	FetchFileByKeyFunc     func(ctx context.Context, ownerID string, key string) (*file.File, error)
	DeleteFileFunc         func(ctx context.Context, ownerID string, id uuid.UUID) (*file.File, error)
	CreateFileFunc         func(ctx context.Context, req *file.File) (*file.File, error)
	UpdateUploadStatusFunc func(ctx context.Context, key string, status file.UploadStatus) (*file.File, error)
}

func (f *fakeFileRepo) FetchFiles(ctx context.Context, ownerID string) (file.Files, error) {
	return f.FetchFilesFunc(ctx, ownerID)
}

func (f *fakeFileRepo) FetchFileByID(ctx context.Context, ownerID string, id uuid.UUID) (*file.File, error) {
	return f.FetchFileByIDFunc(ctx, ownerID, id)
}

func (f *fakeFileRepo) FetchFileByKey(ctx context.Context, ownerID string, key string) (*file.File, error) {
	return f.FetchFileByKeyFunc(ctx, ownerID, key)
}

func (f *fakeFileRepo) DeleteFile(ctx context.Context, ownerID string, id uuid.UUID) (*file.File, error) {
	return f.DeleteFileFunc(ctx, ownerID, id)
}

func (f *fakeFileRepo) CreateFile(ctx context.Context, req *file.File) (*file.File, error) {
	return f.CreateFileFunc(ctx, req)
}

func (f *fakeFileRepo) UpdateUploadStatus(ctx context.Context, key string, status file.UploadStatus) (*file.File, error) {
	return f.UpdateUploadStatusFunc(ctx, key, status)
}

type fakeMessageRepo struct {
	FetchPageFunc func(ctx context.Context, ownerID string, fileID uuid.UUID, limit int, cursor *uuid.UUID) (message.Messages, error)
}

func (f *fakeMessageRepo) FetchPage(ctx context.Context, ownerID string, fileID uuid.UUID, limit int, cursor *uuid.UUID) (message.Messages, error) {
	return f.FetchPageFunc(ctx, ownerID, fileID, limit, cursor)
}

type fakeStorage struct {
	DeleteObjectFunc func(ctx context.Context, key string) error
	PublicURLPrefix  string
}

func (f *fakeStorage) DeleteObject(ctx context.Context, key string) error {
	if f.DeleteObjectFunc == nil {
		return nil
	}
	return f.DeleteObjectFunc(ctx, key)
}

func (f *fakeStorage) GetPublicURL(key string) string { return f.PublicURLPrefix + key }
func (f *fakeStorage) GetBucket() string              { return "test-bucket" }

type fakeBillingProvider struct {
	CheckoutFunc func(ctx context.Context, userID, priceID string) (string, error)
	PortalFunc   func(ctx context.Context, customerID string) (string, error)
}

func (f *fakeBillingProvider) CreateCheckoutSession(ctx context.Context, userID, priceID string) (string, error) {
	return f.CheckoutFunc(ctx, userID, priceID)
}

func (f *fakeBillingProvider) CreateBillingPortalSession(ctx context.Context, customerID string) (string, error) {
	return f.PortalFunc(ctx, customerID)
}

// fakeRabbit collects emitted events on a buffered channel so tests can
// assert on them without a broker.
type fakeRabbit struct {
	in chan mq.Event
}

func newFakeRabbit() *fakeRabbit {
	return &fakeRabbit{in: make(chan mq.Event, 8)}
}

func (f *fakeRabbit) Connect(ctx context.Context, dsn string) error { return nil }
func (f *fakeRabbit) Init() error                                   { return nil }
func (f *fakeRabbit) PublisherWorker(ctx context.Context)           {}
func (f *fakeRabbit) GetInputChan() chan mq.Event                   { return f.in }
func (f *fakeRabbit) GetConn() *amqp091.Connection                  { return nil }

// testCounter is unregistered; constructing it per test avoids duplicate
// registration on the default registry.
func testCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_general_counters"},
		[]string{"result"},
	)
}
