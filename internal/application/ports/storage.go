package ports

import "context"

type ObjectStorage interface {
	DeleteObject(ctx context.Context, key string) error
	GetPublicURL(key string) string
	GetBucket() string
}
