package stats

import (
	"math"
	"testing"
	"time"

	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/models"
)

func day(statuses ...constants.PrayerStatus) models.DayRecord {
	rec := models.NewDayRecord()
	for i, s := range statuses {
		rec[constants.Prayers[i]] = models.Prayer{Status: s}
	}
	return rec
}

func completeDay() models.DayRecord {
	return day(constants.StatusOnTime, constants.StatusOnTime, constants.StatusLate, constants.StatusOnTime, constants.StatusOnTime)
}

func incompleteDay() models.DayRecord {
	return day(constants.StatusOnTime, constants.StatusMissed)
}

func TestEmptyCollectionsAreZero(t *testing.T) {
	today := "2024-01-10"

	p := Prayers(models.PrayerLog{}, today)
	if p.CurrentStreak != 0 || p.BestStreak != 0 || p.OnTimeRate != 0 {
		t.Errorf("prayer summary not zeroed: %+v", p)
	}
	if len(p.PerPrayer) != constants.PrayersPerDay {
		t.Errorf("expected %d per-prayer entries, got %d", constants.PrayersPerDay, len(p.PerPrayer))
	}

	r := Reflections(nil, today, time.UTC)
	if r.CurrentStreak != 0 || r.BestStreak != 0 || r.CompletionRate != 0 {
		t.Errorf("reflection summary not zeroed: %+v", r)
	}

	d := Dhikr(nil, today)
	if d.CurrentStreak != 0 || d.BestStreak != 0 || d.TotalSessions != 0 {
		t.Errorf("dhikr summary not zeroed: %+v", d)
	}

	for name, weekly := range map[string][]DayBucket{"prayers": p.Weekly, "reflections": r.Weekly, "dhikr": d.Weekly} {
		if len(weekly) != WeekDays {
			t.Fatalf("%s: weekly has %d buckets, want %d", name, len(weekly), WeekDays)
		}
		for _, b := range weekly {
			if b.Completed != 0 || b.Percentage != 0 {
				t.Errorf("%s: bucket %s not zero: %+v", name, b.Date, b)
			}
		}
	}
}

func TestCurrentStreakContiguity(t *testing.T) {
	today := "2024-01-10"
	log := models.PrayerLog{
		"2024-01-06": completeDay(), // D-4, separated by the gap at D-3
		"2024-01-08": completeDay(),
		"2024-01-09": completeDay(),
		"2024-01-10": completeDay(),
	}

	if got := Prayers(log, today).CurrentStreak; got != 3 {
		t.Errorf("CurrentStreak = %d, want 3", got)
	}

	log["2024-01-09"] = incompleteDay()
	if got := Prayers(log, today).CurrentStreak; got != 1 {
		t.Errorf("CurrentStreak after breaking D-1 = %d, want 1", got)
	}
}

func TestBestStreakNonContiguous(t *testing.T) {
	log := models.PrayerLog{
		"2024-01-01": completeDay(), // D-10
		"2024-01-02": completeDay(), // D-9
		"2024-01-06": completeDay(), // D-5
		"2024-01-07": completeDay(), // D-4
		"2024-01-08": completeDay(), // D-3
	}

	if got := Prayers(log, "2024-01-11").BestStreak; got != 3 {
		t.Errorf("BestStreak = %d, want 3", got)
	}
}

func TestTodayIncompleteScenario(t *testing.T) {
	log := models.PrayerLog{
		"2024-01-01": completeDay(),
		"2024-01-02": completeDay(),
		"2024-01-03": incompleteDay(),
	}

	s := Prayers(log, "2024-01-03")
	if s.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", s.CurrentStreak)
	}
	if s.BestStreak != 2 {
		t.Errorf("BestStreak = %d, want 2", s.BestStreak)
	}
}

func TestBestStreakResets(t *testing.T) {
	yes := map[string]bool{
		"2024-01-01": true, "2024-01-02": true, "2024-01-03": false,
		"2024-01-04": true, "2024-01-05": true, "2024-01-06": true,
		"2024-01-08": true,
	}
	dates := make([]string, 0, len(yes))
	for d := range yes {
		dates = append(dates, d)
	}

	if got := BestStreak(dates, func(d string) bool { return yes[d] }); got != 3 {
		t.Errorf("BestStreak = %d, want 3", got)
	}
}

func TestPrayerRates(t *testing.T) {
	log := models.PrayerLog{
		"2024-01-01": day(constants.StatusOnTime, constants.StatusOnTime, constants.StatusOnTime, constants.StatusOnTime, constants.StatusOnTime),
		"2024-01-02": day(constants.StatusLate, constants.StatusOnTime, constants.StatusMissed),
	}

	s := Prayers(log, "2024-01-02")
	if s.TotalPrayers != 10 {
		t.Errorf("TotalPrayers = %d, want 10", s.TotalPrayers)
	}
	if s.CompletedPrayers != 7 {
		t.Errorf("CompletedPrayers = %d, want 7", s.CompletedPrayers)
	}
	if math.Abs(s.OnTimeRate-0.6) > 1e-9 {
		t.Errorf("OnTimeRate = %v, want 0.6", s.OnTimeRate)
	}
	if s.PerPrayer[constants.Fajr] != 0.5 {
		t.Errorf("Fajr rate = %v, want 0.5", s.PerPrayer[constants.Fajr])
	}
	if s.PerPrayer[constants.Dhuhr] != 1 {
		t.Errorf("Dhuhr rate = %v, want 1", s.PerPrayer[constants.Dhuhr])
	}

	last := s.Weekly[len(s.Weekly)-1]
	if last.Date != "2024-01-02" || last.Completed != 2 || last.Total != 5 || last.Percentage != 40 {
		t.Errorf("today's bucket = %+v", last)
	}
	if s.Weekly[0].Date != "2023-12-27" {
		t.Errorf("first bucket = %s, want 2023-12-27", s.Weekly[0].Date)
	}
}

func TestRate(t *testing.T) {
	if Rate(3, 0) != 0 {
		t.Error("Rate(x, 0) should be 0")
	}
	if Rate(1, 4) != 0.25 {
		t.Error("Rate(1, 4) should be 0.25")
	}
}

func TestReflectionsThreeConsecutiveDays(t *testing.T) {
	at := func(date string, hour int) time.Time {
		d, _ := time.Parse(constants.DateFormat, date)
		return d.Add(time.Duration(hour) * time.Hour)
	}
	list := []models.Reflection{
		{ID: "3", CreatedAt: at("2024-01-10", 21)},
		{ID: "2", CreatedAt: at("2024-01-09", 20)},
		{ID: "1b", CreatedAt: at("2024-01-08", 22)},
		{ID: "1a", CreatedAt: at("2024-01-08", 7)},
	}

	s := Reflections(list, "2024-01-10", time.UTC)

	nonZero := 0
	for _, b := range s.Weekly {
		if b.Completed > 0 {
			nonZero++
		}
		if b.Total != 1 {
			t.Errorf("bucket total = %d, want 1", b.Total)
		}
	}
	if nonZero != 3 {
		t.Errorf("weekly non-zero days = %d, want 3", nonZero)
	}
	if s.ThisWeekReflections != 4 {
		t.Errorf("ThisWeekReflections = %d, want 4", s.ThisWeekReflections)
	}
	if s.CompletionRate != 1 {
		t.Errorf("CompletionRate = %v, want 1 (3 days / 3 days)", s.CompletionRate)
	}
	if s.CurrentStreak != 3 || s.BestStreak != 3 {
		t.Errorf("streaks = %d/%d, want 3/3", s.CurrentStreak, s.BestStreak)
	}

	later := Reflections(list, "2024-01-13", time.UTC)
	if math.Abs(later.CompletionRate-0.5) > 1e-9 {
		t.Errorf("CompletionRate three days later = %v, want 0.5 (3/6)", later.CompletionRate)
	}
	if later.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", later.CurrentStreak)
	}
}

func TestReflectionsUseLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	list := []models.Reflection{{ID: "x", CreatedAt: time.Date(2024, 1, 1, 22, 30, 0, 0, time.UTC)}}

	s := Reflections(list, "2024-01-02", loc)
	if s.CurrentStreak != 1 {
		t.Errorf("entry at 01:30 local should count for 2024-01-02, streak = %d", s.CurrentStreak)
	}
}

func TestDhikr(t *testing.T) {
	sessions := []models.DhikrSession{
		{ID: "a", Date: "2024-01-09", TotalCount: 100, DurationMs: 60000},
		{ID: "b", Date: "2024-01-10", TotalCount: 33, DurationMs: 30000},
		{ID: "c", Date: "2024-01-10", TotalCount: 33, DurationMs: 30000},
	}

	s := Dhikr(sessions, "2024-01-10")
	if s.CurrentStreak != 2 || s.BestStreak != 2 {
		t.Errorf("streaks = %d/%d, want 2/2", s.CurrentStreak, s.BestStreak)
	}
	if s.TodaySessions != 2 || s.TotalSessions != 3 || s.TotalCount != 166 {
		t.Errorf("summary = %+v", s)
	}
	if s.TotalDuration != 2*time.Minute {
		t.Errorf("TotalDuration = %v, want 2m", s.TotalDuration)
	}
}

func TestMonth(t *testing.T) {
	log := models.PrayerLog{
		"2024-02-01": completeDay(),
		"2024-02-02": incompleteDay(),
		"2024-02-03": models.NewDayRecord(),
	}

	days := Month(log, 2024, time.February, "2024-02-03")
	if len(days) != 29 {
		t.Fatalf("len(Month) = %d, want 29 for a leap February", len(days))
	}

	want := []DayLevel{LevelComplete, LevelPartial, LevelNone, LevelEmpty}
	for i, level := range want {
		if days[i].Level != level {
			t.Errorf("day %d level = %q, want %q", i+1, days[i].Level, level)
		}
	}
	if !days[2].Today || days[2].Future {
		t.Errorf("day 3 flags = %+v", days[2])
	}
	if !days[3].Future {
		t.Errorf("day 4 should be in the future")
	}
	if days[0].Weekday != time.Thursday {
		t.Errorf("2024-02-01 weekday = %v, want Thursday", days[0].Weekday)
	}
}
