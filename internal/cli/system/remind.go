package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/ibadah/internal/cli"
	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/notifier"
)

// RemindCmd runs the reminder scheduler in the foreground until interrupted.
type RemindCmd struct {
	Test bool `help:"Send a single reminder now and exit."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	sched := ctx.Scheduler
	if sched == nil || sched.Sender() == nil {
		return notifier.ErrNoSender
	}

	if c.Test {
		sender := sched.Sender()
		if err := sender.Available(); err != nil {
			return fmt.Errorf("%s sender unavailable: %w", sender.Name(), err)
		}
		if err := sender.Send(ctx.Ctx(), constants.ReminderTitle, constants.ReminderMessages[0]); err != nil {
			return fmt.Errorf("failed to send reminder: %w", err)
		}
		ctx.Printf("✓ Test reminder sent via %s\n", sender.Name())
		return nil
	}

	settings := ctx.App.Settings.Get()
	if !settings.NotificationsEnabled {
		ctx.Println("Reminders are disabled. Enable them with 'ibadah settings --notifications'.")
		return nil
	}

	sched.Start()
	defer sched.Stop()
	ctx.App.Settings.Reschedule(ctx.Ctx())
	if sched.Scheduled() == 0 {
		return errors.New("no reminder could be scheduled, check 'ibadah doctor'")
	}

	ctx.Printf("Sending reminders %s via %s. Press Ctrl+C to stop.\n",
		strings.ToLower(notifier.FrequencyText(settings.ReminderMinutes)), sched.Sender().Name())
	<-ctx.Ctx().Done()
	ctx.Println("Stopped.")
	return nil
}
