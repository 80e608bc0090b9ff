package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/ibadah/internal/cli"
	"github.com/julianstephens/ibadah/internal/cli/backups"
	"github.com/julianstephens/ibadah/internal/cli/dhikr"
	"github.com/julianstephens/ibadah/internal/cli/journal"
	"github.com/julianstephens/ibadah/internal/cli/prayers"
	"github.com/julianstephens/ibadah/internal/cli/progress"
	"github.com/julianstephens/ibadah/internal/cli/settings"
	"github.com/julianstephens/ibadah/internal/cli/system"
	"github.com/julianstephens/ibadah/internal/config"
	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/keyring"
	"github.com/julianstephens/ibadah/internal/kv/backend"
	"github.com/julianstephens/ibadah/internal/kv/postgres"
	"github.com/julianstephens/ibadah/internal/logger"
	"github.com/julianstephens/ibadah/internal/models"
	"github.com/julianstephens/ibadah/internal/notifier"
	"github.com/julianstephens/ibadah/internal/store"
	"github.com/julianstephens/ibadah/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/ibadah/config.yaml"`
	DB      string `name:"db" help:"Storage DSN: sqlite path, postgres:// or redis:// URL, file:*.json, memory: or keyring. Overrides the config file."`
	Debug   bool   `help:"Log debug output to stderr."`

	Init     system.InitCmd       `cmd:"" help:"Initialize ibadah storage."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Prayer   prayers.PrayerCmd    `cmd:"" help:"Track the five daily prayers."`
	Times    prayers.TimesCmd     `cmd:"" help:"Show prayer times and the qibla."`
	Calendar prayers.CalendarCmd  `cmd:"" help:"Show a month of prayer completion."`
	Journal  journal.JournalCmd   `cmd:"" help:"Write and browse reflections."`
	Dhikr    dhikr.DhikrCmd       `cmd:"" help:"Manage and run dhikr routines."`
	Badges   progress.BadgesCmd   `cmd:"" help:"Show earned badges."`
	Hadith   progress.HadithCmd   `cmd:"" help:"Show the hadith of the day."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Remind   system.RemindCmd     `cmd:"" help:"Run the reminder daemon in the foreground."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Clear    system.ClearCmd      `cmd:"" help:"Delete all data."`
	Backup   backups.BackupCmd    `cmd:"" help:"Manage database backups."`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage credentials in the OS keyring."`
	Conf     system.ConfigCmd     `cmd:"" name:"config" help:"Manage the configuration file."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Prayer, dhikr and reflection companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := run(kctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(kctx *kong.Context) error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}
	if CLI.Debug {
		cfg.Logging.Debug = true
	}
	if err := logger.Init(logger.Config{
		Debug:     cfg.Logging.Debug,
		ConfigDir: utils.ExpandPath(constants.DefaultConfigDir),
		Level:     cfg.Logging.Level,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	base, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCtx := cli.NewContext(nil, cfg)
	appCtx.Base = base
	appCtx.ConfigPath = CLI.Config

	// Config and keyring commands must work without a reachable database.
	if needsStore(kctx.Command()) {
		dsn, err := resolveDSN(cfg)
		if err != nil {
			return err
		}
		kvStore, err := backend.Open(base, dsn)
		if err != nil {
			return err
		}
		defer kvStore.Close()

		sched := notifier.NewScheduler(newSender(cfg))
		opts := []store.Option{store.WithNotifier(sched)}
		// The TUI announces badges itself.
		if commandName(kctx.Command()) != "tui" {
			opts = append(opts, store.WithBadgeListener(func(earned []models.Badge) {
				for _, b := range earned {
					fmt.Printf("%s Badge earned: %s (%s)\n", b.Icon, b.Title, b.Description)
				}
			}))
		}
		app := store.New(kvStore, opts...)
		app.Hydrate(base)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), constants.WriterFlushTimeout)
			defer cancel()
			if err := app.Close(ctx); err != nil {
				logger.Error("Failed to close store", "error", err)
			}
		}()

		appCtx.App = app
		appCtx.DSN = dsn
		appCtx.Scheduler = sched
	}

	return kctx.Run(appCtx)
}

func commandName(command string) string {
	name, _, _ := strings.Cut(command, " ")
	return name
}

func needsStore(command string) bool {
	name := commandName(command)
	return name != "config" && name != "keyring"
}

// resolveDSN applies --db, reads "keyring" from the OS keyring and refuses
// postgres passwords written in plain text.
func resolveDSN(cfg *config.Config) (string, error) {
	dsn := cfg.Storage.DSN
	if CLI.DB != "" {
		dsn = CLI.DB
	}

	if dsn == "keyring" {
		stored, err := keyring.GetConnectionString()
		if errors.Is(err, keyring.ErrNotFound) {
			return "", errors.New("storage.dsn is \"keyring\" but no connection string is stored. Use 'ibadah keyring set database-connection <dsn>'")
		}
		return stored, err
	}

	if backend.Detect(dsn) == backend.KindPostgres {
		if err := postgres.ValidateConnString(dsn); errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return "", errors.New("PostgreSQL connection strings with embedded credentials are not allowed. " +
				"Store it with 'ibadah keyring set database-connection <dsn>' and set storage.dsn to \"keyring\", or use .pgpass")
		} else if err != nil {
			return "", err
		}
	}
	return dsn, nil
}

// newSender builds the configured sender. Reminders are disabled, not fatal,
// when it cannot be built.
func newSender(cfg *config.Config) notifier.Sender {
	smtp := cfg.Notify.SMTP
	if cfg.Notify.Sender == "email" && smtp.Password == "" {
		if pw, err := keyring.GetSMTPPassword(); err == nil {
			smtp.Password = pw
		} else if !errors.Is(err, keyring.ErrNotFound) {
			logger.Warn("Could not read SMTP password from keyring", "error", err)
		}
	}
	sender, err := notifier.NewSender(cfg.Notify.Sender, smtp)
	if err != nil {
		logger.Warn("Reminders disabled", "error", err)
		return nil
	}
	return sender
}
