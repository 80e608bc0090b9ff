// Package notifier schedules recurring reminders and delivers them through a
// Sender (desktop tray, email or stdout).
package notifier

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNoSender is returned when a Scheduler has nothing to deliver through.
var ErrNoSender = errors.New("no notification sender configured")

// Handle identifies a scheduled reminder.
type Handle int

// Service is what the settings store needs from the notification layer.
type Service interface {
	// RequestPermission reports whether reminders can be delivered.
	RequestPermission(ctx context.Context) bool
	// ScheduleRecurring fires a reminder every interval with a body drawn
	// from messages at schedule time.
	ScheduleRecurring(ctx context.Context, interval time.Duration, messages []string) (Handle, error)
	// CancelAll removes every scheduled reminder.
	CancelAll(ctx context.Context) error
}

// Sender delivers a single notification.
type Sender interface {
	Name() string
	// Available returns nil when Send can be expected to succeed.
	Available() error
	Send(ctx context.Context, title, body string) error
}

// FrequencyText describes a reminder interval the way the settings screen
// lists it.
func FrequencyText(minutes int) string {
	switch minutes {
	case 1440:
		return "Once a day"
	case 720:
		return "2 times a day"
	case 360:
		return "Every 6 hours"
	case 240:
		return "Every 4 hours"
	case 120:
		return "Every 2 hours"
	case 60:
		return "Every hour"
	case 30:
		return "Every 30 minutes"
	}
	return fmt.Sprintf("Every %d minutes", minutes)
}
