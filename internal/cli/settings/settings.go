package settings

import (
	"fmt"

	"github.com/julianstephens/ibadah/internal/cli"
	"github.com/julianstephens/ibadah/internal/models"
	"github.com/julianstephens/ibadah/internal/notifier"
	"github.com/julianstephens/ibadah/internal/prayertimes"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	NotificationsEnabled *bool    `name:"notifications" help:"Enable or disable reminders."`
	ReminderMinutes      *int     `name:"reminder-minutes" help:"Minutes between reminders."`
	Method               *string  `help:"Prayer time calculation method (MWL, ISNA, Egypt, Makkah, Karachi)."`
	Latitude             *float64 `name:"lat" help:"Latitude for prayer times."`
	Longitude            *float64 `name:"lon" help:"Longitude for prayer times."`
	ClearLocation        bool     `help:"Forget the location and use the default region."`
	Timezone             *string  `help:"IANA timezone used to decide what \"today\" is, or Local."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if c.List {
		printSettings(ctx, ctx.App.Settings.Get())
		return nil
	}

	patch := models.SettingsPatch{
		NotificationsEnabled: c.NotificationsEnabled,
		ReminderMinutes:      c.ReminderMinutes,
		CalculationMethod:    c.Method,
		ClearLocation:        c.ClearLocation,
		Timezone:             c.Timezone,
	}
	if (c.Latitude == nil) != (c.Longitude == nil) {
		return fmt.Errorf("--lat and --lon must be given together")
	}
	if c.Latitude != nil {
		patch.Location = &models.Location{Latitude: *c.Latitude, Longitude: *c.Longitude}
	}

	if patch == (models.SettingsPatch{}) {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	updated, err := ctx.App.Settings.Update(ctx.Ctx(), patch)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("Settings updated successfully.")
	printSettings(ctx, updated)
	return ctx.Done()
}

func printSettings(ctx *cli.Context, s models.Settings) {
	location := fmt.Sprintf("default (%.4f, %.4f)", prayertimes.DefaultLocation.Latitude, prayertimes.DefaultLocation.Longitude)
	if s.Location != nil {
		location = fmt.Sprintf("%.4f, %.4f", s.Location.Latitude, s.Location.Longitude)
	}

	ctx.Println("Current Settings:")
	ctx.Printf("  Reminders:          %v\n", s.NotificationsEnabled)
	ctx.Printf("  Reminder frequency: %s\n", notifier.FrequencyText(s.ReminderMinutes))
	ctx.Printf("  Calculation method: %s\n", s.CalculationMethod)
	ctx.Printf("  Location:           %s\n", location)
	ctx.Printf("  Timezone:           %s\n", s.Timezone)
}
