// Package clitest builds command contexts over an in-memory store.
package clitest

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/julianstephens/ibadah/internal/cli"
	"github.com/julianstephens/ibadah/internal/config"
	"github.com/julianstephens/ibadah/internal/kv"
	"github.com/julianstephens/ibadah/internal/store"
)

// Now is the fixed clock every test context starts at.
var Now = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

// Clock is a settable test clock.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Env bundles a context with its output buffer, backing store and clock.
type Env struct {
	Ctx   *cli.Context
	Out   *bytes.Buffer
	Mem   *kv.Memory
	Clock *Clock
}

// Output returns everything written so far.
func (e *Env) Output() string {
	return e.Out.String()
}

// Answer makes every confirmation prompt return ok.
func (e *Env) Answer(ok bool) {
	e.Ctx.Confirm = func(string, string) (bool, error) { return ok, nil }
}

// Input feeds lines to commands that read from stdin.
func (e *Env) Input(lines ...string) {
	e.Ctx.In = strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// New returns a context over a fresh memory store in UTC.
func New(t *testing.T, opts ...store.Option) (*Env, func()) {
	t.Helper()
	clock := &Clock{now: Now}
	seq := 0
	base := []store.Option{
		store.WithClock(clock.Now),
		store.WithLocation(time.UTC),
		store.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%03d", seq)
		}),
	}
	mem := kv.NewMemory()
	app := store.New(mem, append(base, opts...)...)
	app.Hydrate(context.Background())

	cfg := config.Default()
	out := &bytes.Buffer{}
	ctx := cli.NewContext(app, &cfg)
	ctx.DSN = "memory:"
	ctx.Out = out
	ctx.In = strings.NewReader("")
	env := &Env{Ctx: ctx, Out: out, Mem: mem, Clock: clock}
	env.Answer(false)

	cleanup := func() {
		if err := app.Close(context.Background()); err != nil {
			t.Errorf("failed to close app: %v", err)
		}
	}
	return env, cleanup
}
