// Package backend picks and opens a kv.Store from a connection string.
package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/julianstephens/ibadah/internal/kv"
	"github.com/julianstephens/ibadah/internal/kv/postgres"
	"github.com/julianstephens/ibadah/internal/kv/redis"
	"github.com/julianstephens/ibadah/internal/kv/sqlite"
	"github.com/julianstephens/ibadah/internal/utils"
)

// Kind names a storage backend.
type Kind string

const (
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
	KindRedis    Kind = "redis"
	KindJSON     Kind = "json"
	KindMemory   Kind = "memory"
)

// Detect infers the backend from the connection string. Anything that is
// not a recognized URL is treated as a sqlite file path.
func Detect(dsn string) Kind {
	switch {
	case postgres.IsURL(dsn):
		return KindPostgres
	case strings.HasPrefix(dsn, "redis://"), strings.HasPrefix(dsn, "rediss://"):
		return KindRedis
	case dsn == "memory:" || dsn == ":memory:":
		return KindMemory
	case strings.HasPrefix(dsn, "file:"), strings.HasSuffix(strings.ToLower(dsn), ".json"):
		return KindJSON
	}
	return KindSQLite
}

// Open returns a ready kv.Store for dsn.
func Open(ctx context.Context, dsn string) (kv.Store, error) {
	var (
		store kv.Store
		err   error
	)
	switch Detect(dsn) {
	case KindPostgres:
		var s *postgres.Store
		if s, err = postgres.Open(ctx, dsn); err == nil {
			store = s
		}
	case KindRedis:
		var s *redis.Store
		if s, err = redis.Open(ctx, dsn); err == nil {
			store = s
		}
	case KindMemory:
		store = kv.NewMemory()
	case KindJSON:
		var s *kv.JSONFile
		if s, err = kv.OpenJSONFile(utils.ExpandPath(strings.TrimPrefix(dsn, "file:"))); err == nil {
			store = s
		}
	default:
		var s *sqlite.Store
		if s, err = sqlite.Open(ctx, utils.ExpandPath(dsn)); err == nil {
			store = s
		}
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", Detect(dsn), err)
	}
	return store, nil
}
