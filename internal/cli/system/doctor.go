package system

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/ibadah/internal/backup"
	"github.com/julianstephens/ibadah/internal/cli"
	"github.com/julianstephens/ibadah/internal/keyring"
	"github.com/julianstephens/ibadah/internal/kv"
	"github.com/julianstephens/ibadah/internal/migration"
	"github.com/julianstephens/ibadah/internal/notifier"
	"github.com/julianstephens/ibadah/internal/utils"
	"github.com/julianstephens/ibadah/internal/validation"
)

// errSkipped marks a check that does not apply to the current setup.
var errSkipped = errors.New("skipped")

type DoctorCmd struct{}

type check struct {
	name string
	// warn checks never fail the command.
	warn bool
	// needsDB checks are skipped when the backend is unreachable.
	needsDB bool
	run     func(*cli.Context) error
}

var checks = []check{
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Backups present", warn: true, run: checkBackupsPresent},
	{name: "Data validation", needsDB: true, run: checkValidation},
	{name: "Clock/timezone", run: checkClockTimezone},
	{name: "Keyring", warn: true, run: checkKeyring},
	{name: "Reminder sender", warn: true, run: checkSender},
	{name: "Pending writes", run: checkWrites},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := true
	if err := checkDBReachable(ctx); err != nil {
		ctx.Printf("❌ Database reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
		dbReachable = false
	} else {
		ctx.Printf("✓ Database reachable: OK (%s)\n", describe(ctx.App.Backend()))
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case errors.Is(err, errSkipped):
			ctx.Printf("⊘ %s: SKIPPED (%s)\n", c.name, strings.TrimPrefix(err.Error(), errSkipped.Error()+": "))
		case c.warn:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Some checks failed. Please review the errors above.")
		return errors.New("diagnostics failed")
	}
	ctx.Println("All checks passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if p, ok := ctx.App.Backend().(kv.Pinger); ok {
		return p.Ping(ctx.Ctx())
	}
	return nil
}

// schemaVersioner is implemented by backends with a migrated schema.
type schemaVersioner interface {
	SchemaVersion(ctx context.Context) (current, latest int, err error)
}

func checkSchemaVersion(ctx *cli.Context) error {
	s, ok := ctx.App.Backend().(schemaVersioner)
	if !ok {
		return fmt.Errorf("%w: backend has no schema", errSkipped)
	}
	current, latest, err := s.SchemaVersion(ctx.Ctx())
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("%w: version %d, latest known %d", migration.ErrSchemaTooNew, current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations pending: version %d of %d", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	path, ok := ctx.SQLitePath()
	if !ok {
		return fmt.Errorf("%w: backups only apply to sqlite", errSkipped)
	}
	mgr := backup.NewManager(path)
	list, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(list) == 0 {
		return fmt.Errorf("no backups found in %s", mgr.GetBackupDir())
	}
	return nil
}

func checkValidation(ctx *cli.Context) error {
	v := validation.New()
	results := []validation.ValidationResult{
		v.ValidatePrayerLog(ctx.App.Prayers.Log()),
		v.ValidateReflections(ctx.App.Reflections.List()),
		v.ValidateDhikr(ctx.App.Dhikr.Routines(), ctx.App.Dhikr.Sessions()),
	}
	var reports []string
	for _, r := range results {
		if r.HasErrors() {
			reports = append(reports, r.FormatReport())
		}
	}
	if len(reports) > 0 {
		return errors.New(strings.Join(reports, "\n"))
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if tz := ctx.App.Settings.Get().Timezone; !utils.ValidateTimezone(tz) {
		return fmt.Errorf("timezone %q cannot be loaded", tz)
	}
	return nil
}

func checkKeyring(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	return nil
}

func checkSender(ctx *cli.Context) error {
	if !ctx.App.Settings.Get().NotificationsEnabled {
		return fmt.Errorf("%w: reminders are disabled", errSkipped)
	}
	sender, err := notifier.NewSender(ctx.Config.Notify.Sender, ctx.Config.Notify.SMTP)
	if err != nil {
		return err
	}
	if err := sender.Available(); err != nil {
		return fmt.Errorf("%s sender unavailable: %w", sender.Name(), err)
	}
	return nil
}

func checkWrites(ctx *cli.Context) error {
	if err := ctx.Done(); err != nil {
		return err
	}
	if n := ctx.App.WriteFailures(); n > 0 {
		return fmt.Errorf("%d writes failed since startup", n)
	}
	return nil
}
