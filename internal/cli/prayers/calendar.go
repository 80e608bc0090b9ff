package prayers

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ibadah/internal/cli"
	"github.com/julianstephens/ibadah/internal/stats"
)

var levelStyles = map[stats.DayLevel]lipgloss.Style{
	stats.LevelEmpty:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	stats.LevelNone:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	stats.LevelPartial:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	stats.LevelComplete: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
}

var todayStyle = lipgloss.NewStyle().Underline(true)

type CalendarCmd struct {
	Month string `arg:"" optional:"" help:"Month to show (YYYY-MM). Defaults to the current month."`
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	now := ctx.Now()
	year, month := now.Year(), now.Month()
	if c.Month != "" {
		t, err := time.Parse("2006-01", c.Month)
		if err != nil {
			return fmt.Errorf("invalid month %q, expected YYYY-MM", c.Month)
		}
		year, month = t.Year(), t.Month()
	}

	days := stats.Month(ctx.App.Prayers.Log(), year, month, ctx.App.Today())
	ctx.Print(RenderMonth(year, month, days))
	return nil
}

// RenderMonth draws a Sunday-first month grid with a legend.
func RenderMonth(year int, month time.Month, days []stats.CalendarDay) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", month, year)
	b.WriteString(" Su Mo Tu We Th Fr Sa\n")

	if len(days) > 0 {
		b.WriteString(strings.Repeat("   ", int(days[0].Weekday)))
	}
	for _, d := range days {
		cell := fmt.Sprintf("%3d", d.Day)
		if !d.Future {
			cell = levelStyles[d.Level].Render(cell)
		}
		if d.Today {
			cell = todayStyle.Render(cell)
		}
		b.WriteString(cell)
		if d.Weekday == time.Saturday {
			b.WriteString("\n")
		}
	}
	if len(days) > 0 && days[len(days)-1].Weekday != time.Saturday {
		b.WriteString("\n")
	}

	complete, partial := 0, 0
	for _, d := range days {
		switch d.Level {
		case stats.LevelComplete:
			complete++
		case stats.LevelPartial:
			partial++
		}
	}
	fmt.Fprintf(&b, "\n%s all five  %s some  %s none\n",
		levelStyles[stats.LevelComplete].Render("■"),
		levelStyles[stats.LevelPartial].Render("■"),
		levelStyles[stats.LevelNone].Render("■"))
	fmt.Fprintf(&b, "%d complete days, %d partial\n", complete, partial)
	return b.String()
}
