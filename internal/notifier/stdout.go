package notifier

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/ibadah/internal/constants"
)

// StdoutSender prints reminders, for the foreground remind daemon.
type StdoutSender struct {
	w   io.Writer
	now func() time.Time
}

// NewStdoutSender writes to w, or os.Stdout when w is nil.
func NewStdoutSender(w io.Writer) *StdoutSender {
	if w == nil {
		w = os.Stdout
	}
	return &StdoutSender{w: w, now: time.Now}
}

// Name implements Sender.
func (s *StdoutSender) Name() string { return "stdout" }

// Available implements Sender.
func (s *StdoutSender) Available() error { return nil }

// Send implements Sender.
func (s *StdoutSender) Send(ctx context.Context, title, body string) error {
	_, err := fmt.Fprintf(s.w, "[%s] %s: %s\n", s.now().Format(constants.TimeFormat), title, body)
	return err
}

// NewSender picks a sender by name: "tray", "email", "stdout" or "" (tray).
func NewSender(name string, smtp SMTPConfig) (Sender, error) {
	switch name {
	case "", "tray":
		return NewTraySender(), nil
	case "email":
		return NewEmailSender(smtp), nil
	case "stdout":
		return NewStdoutSender(nil), nil
	}
	return nil, fmt.Errorf("unknown notification sender %q", name)
}
