package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/ibadah/internal/backup"
	"github.com/julianstephens/ibadah/internal/config"
	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/kv/backend"
	"github.com/julianstephens/ibadah/internal/logger"
	"github.com/julianstephens/ibadah/internal/notifier"
	"github.com/julianstephens/ibadah/internal/prayertimes"
	"github.com/julianstephens/ibadah/internal/stats"
	"github.com/julianstephens/ibadah/internal/store"
	"github.com/julianstephens/ibadah/internal/utils"
)

// Context is handed to every command's Run method.
type Context struct {
	// Base is cancelled on interrupt. Nil means context.Background.
	Base context.Context

	App        *store.App
	Config     *config.Config
	ConfigPath string
	DSN        string
	Times      *prayertimes.Service
	Scheduler  *notifier.Scheduler

	Out io.Writer
	In  io.Reader

	// Confirm asks a yes/no question. Tests replace it.
	Confirm func(title, description string) (bool, error)
}

// NewContext fills the io and prompt defaults.
func NewContext(app *store.App, cfg *config.Config) *Context {
	return &Context{
		App:     app,
		Config:  cfg,
		Times:   prayertimes.NewService(nil),
		Out:     os.Stdout,
		In:      os.Stdin,
		Confirm: confirm,
	}
}

// Ctx returns Base or context.Background.
func (c *Context) Ctx() context.Context {
	if c.Base == nil {
		return context.Background()
	}
	return c.Base
}

// Printf writes to the command output.
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

// Println writes a line to the command output.
func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Out, args...)
}

// Done flushes pending writes so a command's changes are durable before the
// process exits.
func (c *Context) Done() error {
	ctx, cancel := context.WithTimeout(c.Ctx(), constants.WriterFlushTimeout)
	defer cancel()
	if err := c.App.Flush(ctx); err != nil {
		return fmt.Errorf("failed to save changes: %w", err)
	}
	if n := c.App.WriteFailures(); n > 0 {
		logger.Warn("Some writes failed", "count", n)
	}
	return nil
}

// SQLitePath returns the database file when the backend is sqlite.
func (c *Context) SQLitePath() (string, bool) {
	if backend.Detect(c.DSN) != backend.KindSQLite {
		return "", false
	}
	return utils.ExpandPath(c.DSN), true
}

// PerformAutomaticBackup creates a backup and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	path, ok := c.SQLitePath()
	if !ok {
		return
	}
	if _, err := backup.NewManager(path).CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Now is the app clock in the display zone.
func (c *Context) Now() time.Time {
	return c.App.Now().In(c.App.Settings.Location())
}

// ResolveDate turns "", "today", "yesterday" or YYYY-MM-DD into a date key.
func (c *Context) ResolveDate(s string) (string, error) {
	today := c.App.Today()
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return today, nil
	case "yesterday":
		return utils.AddDays(today, -1)
	}
	if !utils.ValidateDate(s) {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return s, nil
}

// ResolveID accepts a full id or a 1-based position in list.
func ResolveID(arg string, ids []string) (string, error) {
	for _, id := range ids {
		if id == arg {
			return id, nil
		}
	}
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(ids) {
		return ids[n-1], nil
	}
	var match string
	for _, id := range ids {
		if strings.HasPrefix(id, arg) {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", arg)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("no entry matches %q", arg)
	}
	return match, nil
}

// Percent formats a 0..1 rate.
func Percent(rate float64) string {
	return fmt.Sprintf("%.0f%%", rate*100)
}

func confirm(title, description string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	return ok, err
}

// Bar draws done out of total as a fixed-width block bar.
func Bar(done, total int) string {
	if total <= 0 {
		return ""
	}
	done = min(max(done, 0), total)
	return strings.Repeat("█", done) + strings.Repeat("░", total-done)
}

// PrintWeekly lists one bar per day.
func (c *Context) PrintWeekly(weekly []stats.DayBucket) {
	for _, b := range weekly {
		c.Printf("  %s %s %d/%d\n", b.Day, Bar(b.Completed, b.Total), b.Completed, b.Total)
	}
}

// Print writes s unchanged.
func (c *Context) Print(s string) {
	fmt.Fprint(c.Out, s)
}
