package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/ibadah/internal/cli"
	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/kv"
	"github.com/julianstephens/ibadah/internal/kv/backend"
	"github.com/julianstephens/ibadah/internal/kv/postgres"
	"github.com/julianstephens/ibadah/internal/models"
)

type InitCmd struct {
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Source != "" {
		if c.Source == ctx.DSN {
			return fmt.Errorf("source and destination are the same: %s", c.Source)
		}
		ctx.Printf("Copying data from: %s\n", c.Source)
		n, err := c.copyFrom(ctx)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		ctx.Printf("Copied %d keys\n", n)
	}

	seeded, err := seedSettings(ctx)
	if err != nil {
		return err
	}
	if seeded {
		ctx.Println("Initialized settings from configuration")
	}

	ctx.Printf("Initialized %s storage at: %s\n", constants.AppName, describe(ctx.App.Backend()))
	return ctx.Done()
}

func (c *InitCmd) copyFrom(ctx *cli.Context) (int, error) {
	if backend.Detect(c.Source) == backend.KindPostgres {
		if err := postgres.ValidateConnString(c.Source); errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return 0, errors.New("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
		} else if err != nil {
			return 0, err
		}
	}

	src, err := backend.Open(ctx.Ctx(), c.Source)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	lister, ok := src.(interface {
		kv.Store
		kv.Lister
	})
	if !ok {
		return 0, fmt.Errorf("source backend %s cannot list its keys", describe(src))
	}

	// Pending writes would otherwise land on top of the copied data.
	if err := ctx.Done(); err != nil {
		return 0, err
	}
	n, err := kv.Copy(ctx.Ctx(), ctx.App.Backend(), lister)
	if err != nil {
		return n, err
	}
	ctx.App.Hydrate(ctx.Ctx())
	return n, nil
}

// seedSettings writes settings from the config file unless some are stored.
func seedSettings(ctx *cli.Context) (bool, error) {
	_, err := ctx.App.Backend().Get(ctx.Ctx(), constants.KeySettings)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, kv.ErrNotFound) {
		return false, fmt.Errorf("failed to read settings: %w", err)
	}

	loc := ctx.Config.Location
	patch := models.SettingsPatch{
		Location: &models.Location{Latitude: loc.Latitude, Longitude: loc.Longitude},
	}
	if loc.Method != "" {
		patch.CalculationMethod = &loc.Method
	}
	if loc.Timezone != "" {
		patch.Timezone = &loc.Timezone
	}
	if _, err := ctx.App.Settings.Update(ctx.Ctx(), patch); err != nil {
		return false, fmt.Errorf("invalid location in configuration: %w", err)
	}
	return true, nil
}

func describe(s kv.Store) string {
	if d, ok := s.(kv.Describer); ok {
		return d.Describe()
	}
	return fmt.Sprintf("%T", s)
}
