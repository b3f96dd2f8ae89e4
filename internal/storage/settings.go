// Package storage is the persistent key-value store for session material,
// favourites and preferences. Values are JSON-encoded and kept in a local
// SQLite database (the mobile original used the platform's async storage;
// a single-file SQLite DB is the desktop equivalent).
//
// Contract:
//   - Put serializes the value to JSON; putting a nil value deletes the key.
//   - Get never fails: a missing key, an I/O error or a corrupt payload all
//     degrade to "absent" (logged, not surfaced).
//   - Remove, RemoveMany and Clear propagate I/O errors to the caller.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"skillup/internal/logging"
)

// Persisted keys. The durable copy is best-effort and always written after
// the in-memory state change, never before.
const (
	KeyAuthToken  = "auth_token"
	KeyUserData   = "user_data"
	KeyFavourites = "favourites"
	KeyTheme      = "theme"
)

// Settings is the JSON-encoding layer over a raw Repository.
type Settings struct {
	repo Repository
	log  logging.Logger
}

// NewSettings wraps repo with JSON encoding and degrade-on-read semantics.
func NewSettings(repo Repository, log logging.Logger) *Settings {
	return &Settings{repo: repo, log: log}
}

// Put stores value under key as JSON. A nil value (or typed nil pointer)
// deletes the key instead, mirroring "storing null removes the item".
func (s *Settings) Put(ctx context.Context, key string, value any) error {
	if isNil(value) {
		return s.Remove(ctx, key)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode settings[%s]: %w", key, err)
	}
	return s.repo.Set(ctx, key, data)
}

// Get decodes the value stored under key into out and reports whether a
// usable value was found. Read failures of any kind degrade to absent.
func (s *Settings) Get(ctx context.Context, key string, out any) bool {
	data, err := s.repo.Get(ctx, key)
	if err != nil {
		s.log.Error(ctx, "settings read failed, treating as absent", "key", key, "error", err)
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.Error(ctx, "settings decode failed, treating as absent", "key", key, "error", err)
		return false
	}
	return true
}

// Remove deletes key unconditionally.
func (s *Settings) Remove(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}

// RemoveMany deletes all given keys atomically.
func (s *Settings) RemoveMany(ctx context.Context, keys ...string) error {
	return s.repo.DeleteMany(ctx, keys...)
}

// Clear wipes every stored key.
func (s *Settings) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// isNil reports whether v is nil, including typed nil pointers, maps and
// slices hiding inside a non-nil interface value.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
