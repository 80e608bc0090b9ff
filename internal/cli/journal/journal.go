package journal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/ibadah/internal/cli"
	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/models"
)

type JournalCmd struct {
	Add    JournalAddCmd    `cmd:"" help:"Write a reflection."`
	Edit   JournalEditCmd   `cmd:"" help:"Edit a reflection."`
	Delete JournalDeleteCmd `cmd:"" help:"Delete a reflection."`
	List   JournalListCmd   `cmd:"" help:"List reflections, newest first." default:"1"`
	Stats  JournalStatsCmd  `cmd:"" help:"Show journaling statistics."`
}

type JournalAddCmd struct {
	Title   string `short:"t" help:"Title. Prompted for when omitted."`
	Content string `short:"c" help:"Content. Prompted for when omitted."`
}

func (c *JournalAddCmd) Run(ctx *cli.Context) error {
	title, content := c.Title, c.Content
	if title == "" || content == "" {
		if err := promptReflection(&title, &content); err != nil {
			return err
		}
	}

	id, err := ctx.App.Reflections.Create(models.ReflectionInput{Title: title, Content: content})
	if err != nil {
		return err
	}
	ctx.Printf("✓ Saved reflection %s\n", id)
	return ctx.Done()
}

func promptReflection(title, content *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				CharLimit(constants.MaxReflectionTitle).
				Value(title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("title is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Reflection").
				Value(content).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("content is required")
					}
					return nil
				}),
		),
	).Run()
}

type JournalEditCmd struct {
	ID      string  `arg:"" help:"Reflection id, id prefix or list position."`
	Title   *string `short:"t" help:"New title."`
	Content *string `short:"c" help:"New content."`
}

func (c *JournalEditCmd) Run(ctx *cli.Context) error {
	if c.Title == nil && c.Content == nil {
		return fmt.Errorf("nothing to change, pass --title and/or --content")
	}
	id, err := resolve(ctx, c.ID)
	if err != nil {
		return err
	}

	ok, err := ctx.App.Reflections.Update(id, models.ReflectionPatch{Title: c.Title, Content: c.Content})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("reflection %s not found", id)
	}
	ctx.Printf("✓ Updated reflection %s\n", id)
	return ctx.Done()
}

type JournalDeleteCmd struct {
	ID  string `arg:"" help:"Reflection id, id prefix or list position."`
	Yes bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *JournalDeleteCmd) Run(ctx *cli.Context) error {
	id, err := resolve(ctx, c.ID)
	if err != nil {
		return err
	}
	r, _ := ctx.App.Reflections.Get(id)

	if !c.Yes {
		ok, err := ctx.Confirm(fmt.Sprintf("Delete %q?", r.Title), "This cannot be undone.")
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Cancelled.")
			return nil
		}
	}

	ctx.App.Reflections.Delete(id)
	ctx.Printf("✓ Deleted reflection %q\n", r.Title)
	return ctx.Done()
}

type JournalListCmd struct {
	Limit int  `short:"n" help:"Show at most this many entries." default:"20"`
	Full  bool `help:"Print full content instead of a preview."`
}

func (c *JournalListCmd) Run(ctx *cli.Context) error {
	list := ctx.App.Reflections.List()
	if len(list) == 0 {
		ctx.Println("No reflections yet. Add one with: ibadah journal add")
		return nil
	}

	loc := ctx.App.Settings.Location()
	for i, r := range list {
		if c.Limit > 0 && i >= c.Limit {
			ctx.Printf("… %d more\n", len(list)-i)
			break
		}
		ctx.Printf("%2d. %s  %s  [%s]\n", i+1, r.CreatedAt.In(loc).Format("2006-01-02 15:04"), r.Title, shortID(r.ID))
		body := r.Content
		if !c.Full {
			body = preview(body, 72)
		}
		ctx.Printf("    %s\n", body)
	}
	return nil
}

type JournalStatsCmd struct{}

func (c *JournalStatsCmd) Run(ctx *cli.Context) error {
	s := ctx.App.Summary().Reflections
	ctx.Println("Journal statistics")
	ctx.Printf("  Total reflections: %d\n", s.Total)
	ctx.Printf("  Days journaled:    %d\n", s.DaysWithReflections)
	ctx.Printf("  This week:         %d\n", s.ThisWeekReflections)
	ctx.Printf("  Current streak:    %d days\n", s.CurrentStreak)
	ctx.Printf("  Best streak:       %d days\n", s.BestStreak)
	ctx.Printf("  Completion rate:   %s\n", cli.Percent(s.CompletionRate))
	ctx.Println("\nLast 7 days")
	ctx.PrintWeekly(s.Weekly)
	return nil
}

func resolve(ctx *cli.Context, arg string) (string, error) {
	list := ctx.App.Reflections.List()
	ids := make([]string, len(list))
	for i, r := range list {
		ids[i] = r.ID
	}
	return cli.ResolveID(arg, ids)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func preview(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
