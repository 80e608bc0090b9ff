package progress

import (
	"fmt"
	"time"

	"github.com/julianstephens/ibadah/internal/badges"
	"github.com/julianstephens/ibadah/internal/catalog"
	"github.com/julianstephens/ibadah/internal/cli"
	"github.com/julianstephens/ibadah/internal/stats"
)

type BadgesCmd struct {
	All bool `short:"a" help:"Also list badges not yet earned with progress."`
}

func (c *BadgesCmd) Run(ctx *cli.Context) error {
	earned := ctx.App.Badges.List()
	summary := ctx.App.Summary()
	loc := ctx.App.Settings.Location()

	ctx.Printf("Badges earned: %d/%d\n\n", len(earned), len(badges.Catalog))
	for _, b := range earned {
		ctx.Printf("  %s %-22s %s  (%s)\n", b.Icon, b.Title, b.Description, b.EarnedAt.In(loc).Format("2006-01-02"))
	}

	if c.All {
		have := badges.EarnedIDs(earned)
		ctx.Println("\nStill to earn")
		for _, rule := range badges.Catalog {
			if have[rule.ID] {
				continue
			}
			ctx.Printf("  %s %-22s %s  [%s]\n", rule.Icon, rule.Title, rule.Description, progressText(rule, summary))
		}
	}

	ctx.Printf("\n%s\n", badges.Motivation(summary.Prayers.CurrentStreak, nil))
	return nil
}

// progressText shows rates as percentages and counts as n/target.
func progressText(rule badges.Rule, s stats.Summary) string {
	v := rule.Value(s)
	if rule.Metric == badges.MetricOnTimeRate || rule.Metric == badges.MetricPrayerRate {
		return cli.Percent(v) + " of " + cli.Percent(rule.Threshold)
	}
	return fmt.Sprintf("%d/%d", int(v), int(rule.Threshold))
}

type HadithCmd struct {
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD, today, yesterday)."`
	All  bool   `help:"List every hadith in the rotation."`
}

func (c *HadithCmd) Run(ctx *cli.Context) error {
	if c.All {
		for _, h := range catalog.Hadiths() {
			ctx.Printf("%3d. %s\n     %s · %s\n", h.ID, h.Text, h.Narrator, h.Source)
		}
		return nil
	}

	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	h := catalog.DailyHadith(date)
	day, _ := time.Parse("2006-01-02", date)
	ctx.Printf("Hadith of the day · %s\n\n", day.Format("Monday, 2 January 2006"))
	ctx.Printf("  %s\n\n", h.Text)
	ctx.Printf("  Narrated by %s · %s", h.Narrator, h.Source)
	if h.Category != "" {
		ctx.Printf(" · %s", h.Category)
	}
	ctx.Println()
	return nil
}
