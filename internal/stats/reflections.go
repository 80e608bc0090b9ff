package stats

import (
	"time"

	"github.com/julianstephens/ibadah/internal/models"
	"github.com/julianstephens/ibadah/internal/utils"
)

// ReflectionSummary aggregates the journal.
type ReflectionSummary struct {
	CurrentStreak       int         `json:"currentStreak"`
	BestStreak          int         `json:"bestStreak"`
	CompletionRate      float64     `json:"completionRate"`
	Weekly              []DayBucket `json:"weeklyData"`
	ThisWeekReflections int         `json:"thisWeekReflections"`
	DaysWithReflections int         `json:"daysWithReflections"`
	Total               int         `json:"totalReflections"`
}

// Reflections computes the journal summary. Entries are bucketed by their
// creation date in loc. The completion rate is days with at least one entry
// over days since the first entry, both ends inclusive.
func Reflections(list []models.Reflection, today string, loc *time.Location) ReflectionSummary {
	if loc == nil {
		loc = time.Local
	}

	perDay := make(map[string]int)
	first := ""
	for _, r := range list {
		date := utils.DateKey(r.CreatedAt.In(loc))
		perDay[date]++
		if first == "" || date < first {
			first = date
		}
	}

	has := func(date string) bool { return perDay[date] > 0 }
	dates := make([]string, 0, len(perDay))
	for d := range perDay {
		dates = append(dates, d)
	}

	s := ReflectionSummary{
		Total:               len(list),
		DaysWithReflections: len(perDay),
		CurrentStreak:       CurrentStreak(today, has),
		BestStreak:          BestStreak(dates, has),
	}

	if first != "" {
		if span, err := utils.DaysBetween(first, today); err == nil {
			s.CompletionRate = Rate(s.DaysWithReflections, span+1)
		}
	}

	s.Weekly = Weekly(today, 1, func(date string) int {
		s.ThisWeekReflections += perDay[date]
		return perDay[date]
	})
	return s
}
