package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/ibadah/internal/cli"
	"github.com/julianstephens/ibadah/internal/config"
)

type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"" help:"Write a default configuration file."`
	Show ConfigShowCmd `cmd:"" default:"1" help:"Show the effective configuration."`
}

type ConfigInitCmd struct {
	Force bool `help:"Overwrite an existing file."`
}

func (c *ConfigInitCmd) Run(ctx *cli.Context) error {
	path := ctx.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	if err := config.WriteDefault(path, c.Force); err != nil {
		if errors.Is(err, config.ErrExists) {
			return fmt.Errorf("%w (use --force to overwrite)", err)
		}
		return err
	}
	ctx.Printf("✓ Wrote default configuration to %s\n", path)
	return nil
}

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *cli.Context) error {
	cfg := ctx.Config
	ctx.Printf("Config file: %s\n", ctx.ConfigPath)
	ctx.Printf("  storage.dsn:       %s\n", maskPassword(cfg.Storage.DSN))
	ctx.Printf("  logging.level:     %s\n", cfg.Logging.Level)
	ctx.Printf("  logging.debug:     %v\n", cfg.Logging.Debug)
	ctx.Printf("  notify.sender:     %s\n", cfg.Notify.Sender)
	if cfg.Notify.Sender == "email" {
		ctx.Printf("  notify.smtp:       %s:%d -> %s\n", cfg.Notify.SMTP.Host, cfg.Notify.SMTP.Port, cfg.Notify.SMTP.To)
	}
	ctx.Printf("  location:          %.4f, %.4f\n", cfg.Location.Latitude, cfg.Location.Longitude)
	ctx.Printf("  location.timezone: %s\n", cfg.Location.Timezone)
	ctx.Printf("  location.method:   %s\n", cfg.Location.Method)
	return nil
}
