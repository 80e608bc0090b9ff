// Package kvtest holds the behavioral checks every kv.Store backend must pass.
package kvtest

import (
	"context"
	"errors"
	"testing"

	"github.com/julianstephens/ibadah/internal/kv"
)

// Run exercises the kv.Store contract against stores built by newStore.
func Run(t *testing.T, newStore func(t *testing.T) kv.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing key", func(t *testing.T) {
		s := newStore(t)
		if _, err := s.Get(ctx, "absent"); !errors.Is(err, kv.ErrNotFound) {
			t.Errorf("Get() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		s := newStore(t)
		if err := s.Set(ctx, "settings", `{"reminderMinutes":60}`); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, err := s.Get(ctx, "settings")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != `{"reminderMinutes":60}` {
			t.Errorf("Get() = %q", got)
		}
	})

	t.Run("last write wins", func(t *testing.T) {
		s := newStore(t)
		for _, v := range []string{"[1]", "[1,2]", "[1,2,3]"} {
			if err := s.Set(ctx, "reflections", v); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
		}
		got, err := s.Get(ctx, "reflections")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != "[1,2,3]" {
			t.Errorf("Get() = %q, want last value", got)
		}
	})

	t.Run("remove", func(t *testing.T) {
		s := newStore(t)
		if err := s.Set(ctx, "badges", "[]"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := s.Remove(ctx, "badges"); err != nil {
			t.Fatalf("Remove() error = %v", err)
		}
		if _, err := s.Get(ctx, "badges"); !errors.Is(err, kv.ErrNotFound) {
			t.Errorf("Get() after Remove() error = %v, want ErrNotFound", err)
		}
		if err := s.Remove(ctx, "badges"); err != nil {
			t.Errorf("Remove() of absent key error = %v", err)
		}
	})

	t.Run("unicode values", func(t *testing.T) {
		s := newStore(t)
		value := `{"text":"سُبْحَانَ اللَّهِ"}`
		if err := s.Set(ctx, "dhikr_routines", value); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, err := s.Get(ctx, "dhikr_routines")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != value {
			t.Errorf("Get() = %q, want %q", got, value)
		}
	})

	t.Run("keys", func(t *testing.T) {
		s := newStore(t)
		lister, ok := s.(kv.Lister)
		if !ok {
			t.Skip("backend does not list keys")
		}
		for _, k := range []string{"b", "a"} {
			if err := s.Set(ctx, k, "1"); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
		}
		keys, err := lister.Keys(ctx)
		if err != nil {
			t.Fatalf("Keys() error = %v", err)
		}
		if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
			t.Errorf("Keys() = %v, want [a b]", keys)
		}
	})
}
