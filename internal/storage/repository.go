package storage

import "context"

// Repository is the raw key-value surface over the settings table.
// Values are opaque bytes at this level; JSON encoding lives in Settings.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	DeleteMany(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
