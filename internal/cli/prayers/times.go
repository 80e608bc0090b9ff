package prayers

import (
	"fmt"
	"time"

	"github.com/julianstephens/ibadah/internal/cli"
	"github.com/julianstephens/ibadah/internal/prayertimes"
)

type TimesCmd struct {
	Date   string `arg:"" optional:"" help:"Date (YYYY-MM-DD, today, yesterday)."`
	Method string `help:"Override the calculation method (MWL, ISNA, Egypt, Makkah, Karachi)."`
}

func (c *TimesCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	settings := ctx.App.Settings.Get()
	if c.Method != "" {
		if _, err := prayertimes.LookupMethod(c.Method); err != nil {
			return err
		}
		settings.CalculationMethod = c.Method
	}

	loc := ctx.App.Settings.Location()
	day, _ := time.ParseInLocation("2006-01-02", date, loc)
	now := ctx.Now()
	if date == ctx.App.Today() {
		day = now
	}

	schedule := ctx.Times.ForDay(settings, day)
	coords := prayertimes.DefaultLocation
	if settings.Location != nil {
		coords = *settings.Location
	}

	ctx.Printf("Prayer times for %s (%s, %.4f, %.4f)\n\n", date, settings.CalculationMethod, coords.Latitude, coords.Longitude)
	for _, e := range schedule.Entries {
		ctx.Printf("  %-8s %s\n", e.Name, e.Time)
	}
	if schedule.Fallback {
		ctx.Println("\n  (approximate seasonal times, calculation unavailable)")
	}

	if date == ctx.App.Today() {
		next, tomorrow := prayertimes.NextPrayer(schedule, now)
		when := "today"
		if tomorrow {
			when = "tomorrow"
		}
		ctx.Printf("\nNext: %s at %s %s\n", next.Name, next.Time, when)
	}
	ctx.Printf("Qibla: %s\n", formatBearing(prayertimes.Qibla(coords)))
	return nil
}

func formatBearing(deg float64) string {
	points := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	idx := int((deg+22.5)/45) % len(points)
	return fmt.Sprintf("%.1f° %s", deg, points[idx])
}
