package stats

import (
	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/models"
)

// PrayerSummary aggregates the prayer log.
type PrayerSummary struct {
	CurrentStreak    int                              `json:"currentStreak"`
	BestStreak       int                              `json:"bestStreak"`
	OnTimeRate       float64                          `json:"onTimeRate"`
	PerPrayer        map[constants.PrayerName]float64 `json:"perPrayerStats"`
	Weekly           []DayBucket                      `json:"weeklyData"`
	TotalPrayers     int                              `json:"totalPrayers"`
	CompletedPrayers int                              `json:"completedPrayers"`
	OnTimePrayers    int                              `json:"onTimePrayers"`
	DaysTracked      int                              `json:"daysTracked"`
}

// Prayers computes the prayer summary as of today. A day qualifies for a
// streak when all five prayers are on-time or late. Rates count pending
// prayers in the denominator.
func Prayers(log models.PrayerLog, today string) PrayerSummary {
	complete := func(date string) bool {
		rec, ok := log[date]
		return ok && rec.IsComplete()
	}

	dates := make([]string, 0, len(log))
	for date := range log {
		dates = append(dates, date)
	}

	type tally struct{ total, onTime int }
	per := make(map[constants.PrayerName]*tally, constants.PrayersPerDay)
	for _, name := range constants.Prayers {
		per[name] = &tally{}
	}

	s := PrayerSummary{DaysTracked: len(log)}
	for _, rec := range log {
		for _, name := range constants.Prayers {
			p, ok := rec[name]
			if !ok {
				continue
			}
			s.TotalPrayers++
			per[name].total++
			if p.Resolved() {
				s.CompletedPrayers++
			}
			if p.Status == constants.StatusOnTime {
				s.OnTimePrayers++
				per[name].onTime++
			}
		}
	}

	s.CurrentStreak = CurrentStreak(today, complete)
	s.BestStreak = BestStreak(dates, complete)
	s.OnTimeRate = Rate(s.OnTimePrayers, s.TotalPrayers)
	s.PerPrayer = make(map[constants.PrayerName]float64, constants.PrayersPerDay)
	for name, t := range per {
		s.PerPrayer[name] = Rate(t.onTime, t.total)
	}
	s.Weekly = Weekly(today, constants.PrayersPerDay, func(date string) int {
		if rec, ok := log[date]; ok {
			return rec.CompletedCount()
		}
		return 0
	})
	return s
}
