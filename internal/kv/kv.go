// Package kv defines the string-keyed persistence contract the domain stores
// write through, plus the in-process backends.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been set or was removed.
var ErrNotFound = errors.New("key not found")

// Store is an opaque string-keyed blob store. Values are owned by the caller.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	Close() error
}

// Lister is implemented by backends that can enumerate their keys.
type Lister interface {
	Keys(ctx context.Context) ([]string, error)
}

// Pinger is implemented by remote backends that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Describer names a backend without exposing secrets, for diagnostics.
type Describer interface {
	Describe() string
}

// Copy writes every key listed by src into dst.
func Copy(ctx context.Context, dst Store, src interface {
	Store
	Lister
}) (int, error) {
	keys, err := src.Keys(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, key := range keys {
		value, err := src.Get(ctx, key)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return n, err
		}
		if err := dst.Set(ctx, key, value); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
