// Package storage serializes domain collections into a kv.Store through a
// single background Writer.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/ibadah/internal/kv"
)

// Repository owns one fixed key holding a JSON-encoded T.
type Repository[T any] struct {
	key    string
	store  kv.Store
	writer *Writer
}

// NewRepository binds key to store, with writes going through w.
func NewRepository[T any](key string, store kv.Store, w *Writer) *Repository[T] {
	return &Repository[T]{key: key, store: store, writer: w}
}

// Key returns the persistence key.
func (r *Repository[T]) Key() string {
	return r.key
}

// Load reads and decodes the stored value. found is false when nothing has
// been saved yet; a decode failure returns found=true and the error.
func (r *Repository[T]) Load(ctx context.Context) (value T, found bool, err error) {
	raw, err := r.store.Get(ctx, r.key)
	if errors.Is(err, kv.ErrNotFound) {
		return value, false, nil
	}
	if err != nil {
		return value, false, fmt.Errorf("read %s: %w", r.key, err)
	}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		var zero T
		return zero, true, fmt.Errorf("decode %s: %w", r.key, err)
	}
	return value, true, nil
}

// Save encodes value now and queues the write. The caller may keep mutating
// its copy after Save returns.
func (r *Repository[T]) Save(value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}
	r.writer.Set(r.key, string(data))
	return nil
}

// Remove queues deletion of the key.
func (r *Repository[T]) Remove() {
	r.writer.Remove(r.key)
}
