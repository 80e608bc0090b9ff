package prayers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/julianstephens/ibadah/internal/badges"
	"github.com/julianstephens/ibadah/internal/cli"
	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/models"
)

type PrayerCmd struct {
	Today PrayerTodayCmd `cmd:"" help:"Show a day's prayers." default:"1"`
	Mark  PrayerMarkCmd  `cmd:"" help:"Set the status of one prayer."`
	Note  PrayerNoteCmd  `cmd:"" help:"Attach a note to one prayer."`
	All   PrayerAllCmd   `cmd:"" help:"Mark every pending prayer of a day."`
	Stats PrayerStatsCmd `cmd:"" help:"Show prayer statistics."`
}

type PrayerTodayCmd struct {
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD, today, yesterday)."`
}

func (c *PrayerTodayCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	var rec models.DayRecord
	if date == ctx.App.Today() {
		rec = ctx.App.Prayers.EnsureToday()
	} else if r, ok := ctx.App.Prayers.Day(date); ok {
		rec = r
	} else {
		rec = models.NewDayRecord()
	}

	schedule := ctx.Times.ForDay(ctx.App.Settings.Get(), ctx.Now())
	ctx.Printf("Prayers for %s\n\n", date)
	for _, name := range constants.Prayers {
		p := rec[name]
		line := fmt.Sprintf("  %s %-8s %-5s %s", models.StatusIcon(p.Status), name, schedule.Get(name), p.Status)
		if p.Note != "" {
			line += "  (" + p.Note + ")"
		}
		ctx.Println(line)
	}

	summary := ctx.App.Summary()
	ctx.Printf("\n%d/%d prayed · streak %d\n", rec.CompletedCount(), constants.PrayersPerDay, summary.Prayers.CurrentStreak)
	ctx.Println(badges.Motivation(summary.Prayers.CurrentStreak, nil))
	return ctx.Done()
}

type PrayerMarkCmd struct {
	Prayer string `arg:"" help:"Prayer name (fajr, dhuhr, asr, maghrib, isha)."`
	Status string `arg:"" optional:"" default:"on-time" help:"on-time, late, missed or pending."`
	Date   string `help:"Date (YYYY-MM-DD, today, yesterday)." default:"today"`
}

func (c *PrayerMarkCmd) Run(ctx *cli.Context) error {
	name, err := models.ParsePrayerName(c.Prayer)
	if err != nil {
		return err
	}
	status, err := models.ParseStatus(c.Status)
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.App.Prayers.Mark(date, name, status); err != nil {
		return err
	}
	ctx.Printf("%s %s marked %s for %s\n", models.StatusIcon(status), name, status, date)
	return ctx.Done()
}

type PrayerNoteCmd struct {
	Prayer string `arg:"" help:"Prayer name."`
	Note   string `arg:"" optional:"" help:"Note text. Empty clears the note."`
	Date   string `help:"Date (YYYY-MM-DD, today, yesterday)." default:"today"`
}

func (c *PrayerNoteCmd) Run(ctx *cli.Context) error {
	name, err := models.ParsePrayerName(c.Prayer)
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.App.Prayers.SetNote(date, name, strings.TrimSpace(c.Note)); err != nil {
		return err
	}
	if c.Note == "" {
		ctx.Printf("Cleared note on %s for %s\n", name, date)
	} else {
		ctx.Printf("Saved note on %s for %s\n", name, date)
	}
	return ctx.Done()
}

type PrayerAllCmd struct {
	Status string `arg:"" optional:"" default:"on-time" help:"on-time, late or missed."`
	Date   string `help:"Date (YYYY-MM-DD, today, yesterday)." default:"today"`
}

func (c *PrayerAllCmd) Run(ctx *cli.Context) error {
	status, err := models.ParseStatus(c.Status)
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	n, err := ctx.App.Prayers.MarkAll(date, status)
	if err != nil {
		return err
	}
	if n == 0 {
		ctx.Printf("No pending prayers on %s\n", date)
	} else {
		ctx.Printf("Marked %d prayers %s for %s\n", n, status, date)
	}
	return ctx.Done()
}

type PrayerStatsCmd struct {
	JSON bool `help:"Print the summary as JSON."`
}

func (c *PrayerStatsCmd) Run(ctx *cli.Context) error {
	s := ctx.App.Summary().Prayers
	if c.JSON {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	ctx.Println("Prayer statistics")
	ctx.Printf("  Current streak:  %d days\n", s.CurrentStreak)
	ctx.Printf("  Best streak:     %d days\n", s.BestStreak)
	ctx.Printf("  Days tracked:    %d\n", s.DaysTracked)
	ctx.Printf("  Completed:       %d/%d\n", s.CompletedPrayers, s.TotalPrayers)
	ctx.Printf("  On-time rate:    %s\n", cli.Percent(s.OnTimeRate))

	ctx.Println("\nOn time by prayer")
	for _, name := range constants.Prayers {
		ctx.Printf("  %-8s %s\n", name, cli.Percent(s.PerPrayer[name]))
	}

	ctx.Println("\nLast 7 days")
	ctx.PrintWeekly(s.Weekly)
	return nil
}
