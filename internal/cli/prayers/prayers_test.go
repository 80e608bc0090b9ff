package prayers

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/ibadah/internal/cli/clitest"
	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/stats"
)

func TestPrayerMarkCmd(t *testing.T) {
	env, cleanup := clitest.New(t)
	defer cleanup()

	cmd := &PrayerMarkCmd{Prayer: "asr", Status: "late", Date: "today"}
	if err := cmd.Run(env.Ctx); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	rec := env.Ctx.App.Prayers.Today()
	if rec[constants.Asr].Status != constants.StatusLate {
		t.Errorf("Asr = %q, want late", rec[constants.Asr].Status)
	}
	if !strings.Contains(env.Output(), "Asr marked late") {
		t.Errorf("unexpected output: %s", env.Output())
	}
	if _, err := env.Mem.Get(env.Ctx.Ctx(), constants.KeyPrayerRecords); err != nil {
		t.Errorf("mark should be flushed to storage: %v", err)
	}
}

func TestPrayerMarkCmdInvalid(t *testing.T) {
	env, cleanup := clitest.New(t)
	defer cleanup()

	tests := []PrayerMarkCmd{
		{Prayer: "witr", Status: "on-time", Date: "today"},
		{Prayer: "fajr", Status: "sometimes", Date: "today"},
		{Prayer: "fajr", Status: "on-time", Date: "15/03/2024"},
	}
	for _, cmd := range tests {
		if err := cmd.Run(env.Ctx); err == nil {
			t.Errorf("expected error for %+v", cmd)
		}
	}
}

func TestPrayerNoteCmd(t *testing.T) {
	env, cleanup := clitest.New(t)
	defer cleanup()

	if err := (&PrayerNoteCmd{Prayer: "Isha", Note: " at the masjid ", Date: "yesterday"}).Run(env.Ctx); err != nil {
		t.Fatalf("note failed: %v", err)
	}
	rec, ok := env.Ctx.App.Prayers.Day("2024-03-14")
	if !ok || rec[constants.Isha].Note != "at the masjid" {
		t.Errorf("note not saved: %+v", rec)
	}

	if err := (&PrayerNoteCmd{Prayer: "Isha", Date: "yesterday"}).Run(env.Ctx); err != nil {
		t.Fatal(err)
	}
	rec, _ = env.Ctx.App.Prayers.Day("2024-03-14")
	if rec[constants.Isha].Note != "" {
		t.Error("empty note should clear")
	}
}

func TestPrayerAllCmd(t *testing.T) {
	env, cleanup := clitest.New(t)
	defer cleanup()

	env.Ctx.App.Prayers.Mark("2024-03-15", constants.Fajr, constants.StatusMissed)
	if err := (&PrayerAllCmd{Status: "on-time", Date: "today"}).Run(env.Ctx); err != nil {
		t.Fatalf("all failed: %v", err)
	}
	rec := env.Ctx.App.Prayers.Today()
	if rec[constants.Fajr].Status != constants.StatusMissed {
		t.Error("already resolved prayers must keep their status")
	}
	if rec.CompletedCount() != 4 {
		t.Errorf("completed = %d, want 4", rec.CompletedCount())
	}
	if !strings.Contains(env.Output(), "Marked 4 prayers") {
		t.Errorf("unexpected output: %s", env.Output())
	}

	if err := (&PrayerAllCmd{Status: "pending", Date: "today"}).Run(env.Ctx); err == nil {
		t.Error("marking all pending should fail")
	}
}

func TestPrayerTodayCmd(t *testing.T) {
	env, cleanup := clitest.New(t)
	defer cleanup()

	if err := (&PrayerTodayCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("today failed: %v", err)
	}
	out := env.Output()
	for _, name := range constants.Prayers {
		if !strings.Contains(out, string(name)) {
			t.Errorf("output missing %s", name)
		}
	}
	if _, ok := env.Ctx.App.Prayers.Day("2024-03-15"); !ok {
		t.Error("showing today should create its record")
	}

	if err := (&PrayerTodayCmd{Date: "2024-01-01"}).Run(env.Ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok := env.Ctx.App.Prayers.Day("2024-01-01"); ok {
		t.Error("showing a past day must not create a record")
	}
}

func TestPrayerStatsCmdJSON(t *testing.T) {
	env, cleanup := clitest.New(t)
	defer cleanup()

	env.Ctx.App.Prayers.MarkAll("2024-03-14", constants.StatusOnTime)
	env.Ctx.App.Prayers.MarkAll("2024-03-15", constants.StatusLate)

	if err := (&PrayerStatsCmd{JSON: true}).Run(env.Ctx); err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	var got stats.PrayerSummary
	if err := json.Unmarshal(env.Out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.CurrentStreak != 2 || got.OnTimeRate != 0.5 {
		t.Errorf("summary = %+v", got)
	}
}

func TestCalendarCmd(t *testing.T) {
	env, cleanup := clitest.New(t)
	defer cleanup()

	env.Ctx.App.Prayers.MarkAll("2024-02-10", constants.StatusOnTime)
	if err := (&CalendarCmd{Month: "2024-02"}).Run(env.Ctx); err != nil {
		t.Fatalf("calendar failed: %v", err)
	}
	out := env.Output()
	if !strings.Contains(out, "February 2024") || !strings.Contains(out, "29") {
		t.Errorf("unexpected calendar:\n%s", out)
	}
	if !strings.Contains(out, "1 complete days") {
		t.Errorf("legend should count the complete day:\n%s", out)
	}

	if err := (&CalendarCmd{Month: "Feb"}).Run(env.Ctx); err == nil {
		t.Error("expected error for malformed month")
	}
}

func TestRenderMonthLayout(t *testing.T) {
	days := stats.Month(nil, 2024, time.September, "2024-03-15")
	lines := strings.Split(RenderMonth(2024, time.September, days), "\n")
	// September 2024 starts on a Sunday and spans five weeks.
	if !strings.HasPrefix(lines[2], "  1") {
		t.Errorf("first week = %q, want the 1st in the Sunday column", lines[2])
	}
	if !strings.Contains(lines[6], "29") || !strings.Contains(lines[6], "30") {
		t.Errorf("last week = %q", lines[6])
	}
}

func TestTimesCmd(t *testing.T) {
	env, cleanup := clitest.New(t)
	defer cleanup()

	if err := (&TimesCmd{}).Run(env.Ctx); err != nil {
		t.Fatalf("times failed: %v", err)
	}
	out := env.Output()
	for _, want := range []string{"ISNA", "Fajr", "Isha", "Next:", "Qibla:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if err := (&TimesCmd{Method: "Hanafi"}).Run(env.Ctx); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestFormatBearing(t *testing.T) {
	tests := map[float64]string{
		0:     "0.0° N",
		123.5: "123.5° SE",
		200:   "200.0° S",
		350:   "350.0° N",
	}
	for deg, want := range tests {
		if got := formatBearing(deg); got != want {
			t.Errorf("formatBearing(%v) = %q, want %q", deg, got, want)
		}
	}
}
