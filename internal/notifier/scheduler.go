package notifier

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/logger"
)

// Scheduler implements Service with an in-process cron. Jobs only fire
// while the scheduler is started, e.g. by the remind daemon.
type Scheduler struct {
	sender Sender
	cron   *cron.Cron

	mu      sync.Mutex
	entries []cron.EntryID
	rnd     *rand.Rand
	started bool
}

// NewScheduler creates a stopped scheduler delivering through sender.
func NewScheduler(sender Sender) *Scheduler {
	return &Scheduler{
		sender: sender,
		cron:   cron.New(),
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// RequestPermission implements Service.
func (s *Scheduler) RequestPermission(ctx context.Context) bool {
	if s.sender == nil {
		logger.Warn("Notification permission denied", "error", ErrNoSender)
		return false
	}
	if err := s.sender.Available(); err != nil {
		logger.Warn("Notification permission denied", "sender", s.sender.Name(), "error", err)
		return false
	}
	return true
}

// ScheduleRecurring implements Service.
func (s *Scheduler) ScheduleRecurring(ctx context.Context, interval time.Duration, messages []string) (Handle, error) {
	if s.sender == nil {
		return 0, ErrNoSender
	}
	if interval < time.Minute {
		return 0, fmt.Errorf("reminder interval %s is shorter than a minute", interval)
	}
	if len(messages) == 0 {
		messages = constants.ReminderMessages
	}

	s.mu.Lock()
	body := messages[s.rnd.Intn(len(messages))]
	s.mu.Unlock()

	spec := fmt.Sprintf("@every %s", interval.String())
	id, err := s.cron.AddFunc(spec, func() { s.deliver(body) })
	if err != nil {
		return 0, fmt.Errorf("failed to add cron job: %w", err)
	}

	s.mu.Lock()
	s.entries = append(s.entries, id)
	s.mu.Unlock()

	logger.Info("Scheduled reminder", "every", interval, "sender", s.sender.Name())
	return Handle(id), nil
}

// CancelAll implements Service.
func (s *Scheduler) CancelAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.entries {
		s.cron.Remove(id)
	}
	if len(s.entries) > 0 {
		logger.Info("All reminders cancelled", "count", len(s.entries))
	}
	s.entries = nil
	return nil
}

// Sender returns the sender reminders are delivered through.
func (s *Scheduler) Sender() Sender {
	return s.sender
}

// Scheduled returns the number of active reminders.
func (s *Scheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Next returns when the given reminder fires next; zero if stopped or unknown.
func (s *Scheduler) Next(h Handle) time.Time {
	return s.cron.Entry(cron.EntryID(h)).Next
}

// Fire runs a scheduled reminder immediately.
func (s *Scheduler) Fire(h Handle) bool {
	entry := s.cron.Entry(cron.EntryID(h))
	if !entry.Valid() {
		return false
	}
	entry.Job.Run()
	return true
}

// Start begins firing scheduled reminders.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	s.cron.Start()
}

// Stop halts the cron and waits for a running delivery to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	s.mu.Unlock()

	<-s.cron.Stop().Done()
}

func (s *Scheduler) deliver(body string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.sender.Send(ctx, constants.ReminderTitle, body); err != nil {
		logger.Error("Reminder delivery failed", "sender", s.sender.Name(), "error", err)
	}
}
