package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	ps "github.com/mitchellh/go-ps"
	"gopkg.in/gomail.v2"

	"github.com/julianstephens/ibadah/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

type recordingSender struct {
	mu        sync.Mutex
	available error
	sent      []string
}

func (r *recordingSender) Name() string     { return "recording" }
func (r *recordingSender) Available() error { return r.available }
func (r *recordingSender) Send(ctx context.Context, title, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, title+": "+body)
	return nil
}

func TestSchedulerLifecycle(t *testing.T) {
	sender := &recordingSender{}
	s := NewScheduler(sender)
	ctx := context.Background()

	if !s.RequestPermission(ctx) {
		t.Fatal("permission should be granted when the sender is available")
	}

	h, err := s.ScheduleRecurring(ctx, 720*time.Minute, []string{"only message"})
	if err != nil {
		t.Fatalf("ScheduleRecurring() error = %v", err)
	}
	if s.Scheduled() != 1 {
		t.Errorf("Scheduled() = %d, want 1", s.Scheduled())
	}

	if !s.Fire(h) {
		t.Fatal("Fire() on a scheduled reminder should succeed")
	}
	if len(sender.sent) != 1 || sender.sent[0] != constants.ReminderTitle+": only message" {
		t.Errorf("sent = %v", sender.sent)
	}

	if err := s.CancelAll(ctx); err != nil {
		t.Fatalf("CancelAll() error = %v", err)
	}
	if s.Scheduled() != 0 {
		t.Errorf("Scheduled() after cancel = %d, want 0", s.Scheduled())
	}
	if s.Fire(h) {
		t.Error("Fire() after cancel should report false")
	}
}

func TestSchedulerPicksFromPool(t *testing.T) {
	sender := &recordingSender{}
	s := NewScheduler(sender)

	h, err := s.ScheduleRecurring(context.Background(), time.Hour, nil)
	if err != nil {
		t.Fatalf("ScheduleRecurring() error = %v", err)
	}
	s.Fire(h)
	s.Fire(h)

	if len(sender.sent) != 2 {
		t.Fatalf("sent %d reminders, want 2", len(sender.sent))
	}
	if sender.sent[0] != sender.sent[1] {
		t.Error("the body is chosen once at schedule time")
	}
	body := strings.TrimPrefix(sender.sent[0], constants.ReminderTitle+": ")
	if !slices.Contains(constants.ReminderMessages, body) {
		t.Errorf("body %q not from the default pool", body)
	}
}

func TestSchedulerRejects(t *testing.T) {
	ctx := context.Background()

	if _, err := NewScheduler(nil).ScheduleRecurring(ctx, time.Hour, nil); !errors.Is(err, ErrNoSender) {
		t.Errorf("nil sender: error = %v, want ErrNoSender", err)
	}
	if NewScheduler(nil).RequestPermission(ctx) {
		t.Error("nil sender should deny permission")
	}
	if _, err := NewScheduler(&recordingSender{}).ScheduleRecurring(ctx, time.Second, nil); err == nil {
		t.Error("sub-minute interval should be rejected")
	}
	unavailable := &recordingSender{available: errors.New("offline")}
	if NewScheduler(unavailable).RequestPermission(ctx) {
		t.Error("unavailable sender should deny permission")
	}
}

func TestSchedulerStartStop(t *testing.T) {
	s := NewScheduler(&recordingSender{})
	h, err := s.ScheduleRecurring(context.Background(), time.Hour, nil)
	if err != nil {
		t.Fatal(err)
	}

	s.Start()
	s.Start()
	if next := s.Next(h); next.IsZero() || next.Before(time.Now()) {
		t.Errorf("Next() = %v, want a future time", next)
	}
	s.Stop()
	s.Stop()
}

func TestFrequencyText(t *testing.T) {
	tests := map[int]string{
		720:  "2 times a day",
		1440: "Once a day",
		60:   "Every hour",
		45:   "Every 45 minutes",
	}
	for minutes, want := range tests {
		if got := FrequencyText(minutes); got != want {
			t.Errorf("FrequencyText(%d) = %q, want %q", minutes, got, want)
		}
	}
}

func TestGetTrayAppConfigDir(t *testing.T) {
	tempDir := t.TempDir()

	oldUserConfigDirFunc := userConfigDirFunc
	defer func() { userConfigDirFunc = oldUserConfigDirFunc }()
	userConfigDirFunc = func() (string, error) {
		return tempDir, nil
	}

	expectedDefault := filepath.Join(tempDir, constants.TrayAppIdentifier)
	dir, err := GetTrayAppConfigDir()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if dir != expectedDefault {
		t.Errorf("expected %s, got %s", expectedDefault, dir)
	}

	if err := os.MkdirAll(expectedDefault, 0755); err != nil {
		t.Fatal(err)
	}
	customDir := "/custom/ibadah/dir"
	settingsJSON := fmt.Sprintf(`{"settings": {"lockfile_dir": "%s"}}`, customDir)
	if err := os.WriteFile(filepath.Join(expectedDefault, "settings.json"), []byte(settingsJSON), 0644); err != nil {
		t.Fatal(err)
	}

	dir, err = GetTrayAppConfigDir()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if dir != customDir {
		t.Errorf("expected %s, got %s", customDir, dir)
	}
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	oldFindProcessFunc := findProcessFunc
	defer func() { findProcessFunc = oldFindProcessFunc }()

	lockfilePath := filepath.Join(t.TempDir(), constants.NotifierLockfileName)

	if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
		t.Error("expected error for missing lockfile")
	}

	bad := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"two-part format", "8080|12345", "malformed"},
		{"garbage", "invalid", "malformed"},
		{"empty secret", "8080|12345|", "secret"},
		{"empty port", "|12345|testsecret123", "port"},
		{"port out of range", "99999|12345|testsecret123", "range"},
		{"bad pid", "8080|abc|testsecret123", "process ID"},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			if err := os.WriteFile(lockfilePath, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, _, err := findAndValidateTrayProcess(lockfilePath)
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantMsg)
			}
		})
	}

	if err := os.WriteFile(lockfilePath, []byte("8080|12345|testsecret123"), 0644); err != nil {
		t.Fatal(err)
	}

	findProcessFunc = func(pid int) (ps.Process, error) { return nil, nil }
	if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
		t.Error("expected error for missing process")
	}

	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "other-app"}, nil
	}
	if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
		t.Error("expected error for wrong executable")
	}

	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "ibadah-tray"}, nil
	}
	port, secret, err := findAndValidateTrayProcess(lockfilePath)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if port != "8080" || secret != "testsecret123" {
		t.Errorf("got port=%s secret=%s", port, secret)
	}
}

func TestSendNotification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get(constants.TraySecretHeader) != "test-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorized"))
			return
		}
		var payload WebhookPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if payload.Text == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	parts := strings.Split(server.URL, ":")
	port := parts[len(parts)-1]
	ctx := context.Background()
	client := server.Client()

	tests := []struct {
		name    string
		secret  string
		text    string
		wantErr bool
	}{
		{"success", "test-secret", "hello", false},
		{"missing secret", "", "hello", true},
		{"wrong secret", "wrong-secret", "hello", true},
		{"server error", "test-secret", "fail", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sendNotification(ctx, client, port, tt.secret, WebhookPayload{Text: tt.text})
			if (err != nil) != tt.wantErr {
				t.Errorf("sendNotification() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func TestEmailSender(t *testing.T) {
	cfg := SMTPConfig{Host: "smtp.example.com", Port: 587, From: "ibadah@example.com", To: "me@example.com", UseTLS: true}
	dialer := &fakeDialer{}
	e := NewEmailSender(cfg)
	e.dialer = dialer

	if err := e.Available(); err != nil {
		t.Fatalf("Available() error = %v", err)
	}
	if err := e.Send(context.Background(), constants.ReminderTitle, "Take a moment"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if len(dialer.sent) != 1 {
		t.Fatalf("dialed %d messages, want 1", len(dialer.sent))
	}
	m := dialer.sent[0]
	if got := m.GetHeader("Subject"); len(got) != 1 || got[0] != constants.ReminderTitle {
		t.Errorf("Subject = %v", got)
	}
	if got := m.GetHeader("To"); len(got) != 1 || got[0] != "me@example.com" {
		t.Errorf("To = %v", got)
	}

	dialer.err = errors.New("connection refused")
	if err := e.Send(context.Background(), "t", "b"); err == nil {
		t.Error("expected dial error to surface")
	}

	if err := NewEmailSender(SMTPConfig{Host: "smtp.example.com"}).Available(); err == nil {
		t.Error("missing recipient should be unavailable")
	}
}

func TestStdoutSender(t *testing.T) {
	var buf bytes.Buffer
	s := NewStdoutSender(&buf)
	s.now = func() time.Time { return time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC) }

	if err := s.Send(context.Background(), "Dhikr Reminder", "Remember Allah"); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "[09:30] Dhikr Reminder: Remember Allah\n" {
		t.Errorf("output = %q", got)
	}
}

func TestNewSender(t *testing.T) {
	for _, name := range []string{"", "tray", "email", "stdout"} {
		if _, err := NewSender(name, SMTPConfig{}); err != nil {
			t.Errorf("NewSender(%q) error = %v", name, err)
		}
	}
	if _, err := NewSender("pigeon", SMTPConfig{}); err == nil {
		t.Error("unknown sender should fail")
	}
}
