package system

import (
	"fmt"

	"github.com/julianstephens/ibadah/internal/cli"
)

type ClearCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := ctx.Confirm("Delete all data?",
			"Prayer records, reflections, dhikr routines, sessions and badges will be removed and settings reset.")
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.App.ClearAllData(ctx.Ctx()); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	ctx.Println("✓ All data cleared")
	return ctx.Done()
}
