package dhikr

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/ibadah/internal/catalog"
	"github.com/julianstephens/ibadah/internal/cli"
	"github.com/julianstephens/ibadah/internal/models"
)

type DhikrCmd struct {
	Catalog DhikrCatalogCmd `cmd:"" help:"Browse the dhikr catalog."`
	Create  DhikrCreateCmd  `cmd:"" help:"Create a routine from catalog items."`
	List    DhikrListCmd    `cmd:"" help:"List routines." default:"1"`
	Rename  DhikrRenameCmd  `cmd:"" help:"Rename a routine."`
	Delete  DhikrDeleteCmd  `cmd:"" help:"Delete a routine."`
	Run     DhikrRunCmd     `cmd:"" help:"Count through a routine."`
	Stats   DhikrStatsCmd   `cmd:"" help:"Show dhikr statistics."`
}

type DhikrCatalogCmd struct {
	Search   string `short:"s" help:"Match text, transliteration or translation."`
	Category string `short:"c" help:"Only this category." default:"All"`
}

func (c *DhikrCatalogCmd) Run(ctx *cli.Context) error {
	items := catalog.Search(c.Search, c.Category)
	if len(items) == 0 {
		ctx.Printf("No dhikr match. Categories: %s\n", strings.Join(catalog.Categories(), ", "))
		return nil
	}

	groups := catalog.GroupByCategory(items)
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ctx.Printf("%s\n", name)
		for _, item := range groups[name] {
			ctx.Printf("  %3s  %-32s ×%-4d %s\n", item.ID, item.Transliteration, item.Count, item.Translation)
		}
	}
	return nil
}

type DhikrCreateCmd struct {
	Name  string   `arg:"" help:"Routine name."`
	Items []string `arg:"" help:"Catalog ids, optionally with a count (e.g. 1 2:10 8:100)."`
	Start bool     `help:"Start counting right away."`
}

func (c *DhikrCreateCmd) Run(ctx *cli.Context) error {
	selections, err := ParseItems(c.Items)
	if err != nil {
		return err
	}
	id, err := ctx.App.Dhikr.CreateRoutine(models.RoutineInput{Name: c.Name, Items: selections})
	if err != nil {
		return err
	}
	r, _ := ctx.App.Dhikr.Routine(id)
	ctx.Printf("✓ Created routine %q with %d dhikr (%d repetitions)\n", r.Name, len(r.Items), r.TotalTarget())
	if err := ctx.Done(); err != nil {
		return err
	}
	if c.Start {
		return (&DhikrRunCmd{Routine: id}).Run(ctx)
	}
	return nil
}

// ParseItems reads "id" or "id:count" selections.
func ParseItems(args []string) ([]models.RoutineItemInput, error) {
	out := make([]models.RoutineItemInput, 0, len(args))
	for _, arg := range args {
		id, count, hasCount := strings.Cut(arg, ":")
		sel := models.RoutineItemInput{ID: strings.TrimSpace(id)}
		if hasCount {
			n, err := strconv.Atoi(count)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid count in %q", arg)
			}
			sel.Count = n
		}
		out = append(out, sel)
	}
	return out, nil
}

type DhikrListCmd struct{}

func (c *DhikrListCmd) Run(ctx *cli.Context) error {
	routines := ctx.App.Dhikr.Routines()
	if len(routines) == 0 {
		ctx.Println("No routines yet. Create one with: ibadah dhikr create <name> <ids...>")
		return nil
	}
	for i, r := range routines {
		ctx.Printf("%2d. %s  (%d dhikr, %d reps, completed %d×)\n", i+1, r.Name, len(r.Items), r.TotalTarget(), r.CompletedCount)
		for _, item := range r.Items {
			ctx.Printf("      %-32s ×%d\n", item.Transliteration, item.Count)
		}
	}
	return nil
}

type DhikrRenameCmd struct {
	Routine string `arg:"" help:"Routine id, id prefix or list position."`
	Name    string `arg:"" help:"New name."`
}

func (c *DhikrRenameCmd) Run(ctx *cli.Context) error {
	id, err := resolve(ctx, c.Routine)
	if err != nil {
		return err
	}
	if _, err := ctx.App.Dhikr.UpdateRoutine(id, models.RoutinePatch{Name: &c.Name}); err != nil {
		return err
	}
	ctx.Printf("✓ Renamed routine to %q\n", strings.TrimSpace(c.Name))
	return ctx.Done()
}

type DhikrDeleteCmd struct {
	Routine string `arg:"" help:"Routine id, id prefix or list position."`
	Yes     bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *DhikrDeleteCmd) Run(ctx *cli.Context) error {
	id, err := resolve(ctx, c.Routine)
	if err != nil {
		return err
	}
	r, _ := ctx.App.Dhikr.Routine(id)
	if !c.Yes {
		ok, err := ctx.Confirm(fmt.Sprintf("Delete routine %q?", r.Name), "Completed sessions are kept.")
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Cancelled.")
			return nil
		}
	}
	ctx.App.Dhikr.DeleteRoutine(id)
	ctx.Printf("✓ Deleted routine %q\n", r.Name)
	return ctx.Done()
}

type DhikrRunCmd struct {
	Routine string `arg:"" help:"Routine id, id prefix or list position."`
}

const runHelp = "Enter = count · n = next · p = pause/resume · r = reset · q = quit"

// Run counts taps read line by line from the input.
func (c *DhikrRunCmd) Run(ctx *cli.Context) error {
	id, err := resolve(ctx, c.Routine)
	if err != nil {
		return err
	}
	if !ctx.App.Dhikr.Start(id) {
		return fmt.Errorf("routine cannot be started")
	}
	ctx.Println(runHelp)
	printProgress(ctx)

	scanner := bufio.NewScanner(ctx.In)
	for scanner.Scan() {
		var session *models.DhikrSession
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "":
			session = ctx.App.Dhikr.Increment()
		case "n":
			session = ctx.App.Dhikr.Next()
		case "p":
			if !ctx.App.Dhikr.Pause() {
				ctx.App.Dhikr.Resume()
			}
		case "r":
			ctx.App.Dhikr.Reset()
			ctx.Println("Run reset.")
			return nil
		case "q":
			ctx.App.Dhikr.Reset()
			ctx.Println("Stopped without saving.")
			return nil
		default:
			ctx.Println(runHelp)
			continue
		}

		if session != nil {
			ctx.Printf("✓ Routine complete: %d repetitions in %s\n", session.TotalCount, session.Duration().Round(time.Second))
			return ctx.Done()
		}
		printProgress(ctx)
	}
	ctx.App.Dhikr.Reset()
	return scanner.Err()
}

func printProgress(ctx *cli.Context) {
	run, routine, ok := ctx.App.Dhikr.Run()
	if !ok {
		return
	}
	item := routine.Items[run.Index]
	state := ""
	if !run.Running() {
		state = " (paused)"
	}
	ctx.Printf("[%d/%d] %s  %d/%d%s\n", run.Index+1, len(routine.Items), item.Transliteration, run.Count, item.Count, state)
}

type DhikrStatsCmd struct{}

func (c *DhikrStatsCmd) Run(ctx *cli.Context) error {
	s := ctx.App.Summary().Dhikr
	ctx.Println("Dhikr statistics")
	ctx.Printf("  Sessions:        %d (%d today)\n", s.TotalSessions, s.TodaySessions)
	ctx.Printf("  Repetitions:     %d\n", s.TotalCount)
	ctx.Printf("  Time spent:      %s\n", s.TotalDuration.Round(time.Second))
	ctx.Printf("  Current streak:  %d days\n", s.CurrentStreak)
	ctx.Printf("  Best streak:     %d days\n", s.BestStreak)
	ctx.Println("\nLast 7 days")
	ctx.PrintWeekly(s.Weekly)
	return nil
}

func resolve(ctx *cli.Context, arg string) (string, error) {
	routines := ctx.App.Dhikr.Routines()
	ids := make([]string, len(routines))
	for i, r := range routines {
		ids[i] = r.ID
	}
	return cli.ResolveID(arg, ids)
}
