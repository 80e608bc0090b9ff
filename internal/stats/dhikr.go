package stats

import (
	"time"

	"github.com/julianstephens/ibadah/internal/models"
)

// DhikrSummary aggregates completed dhikr sessions.
type DhikrSummary struct {
	CurrentStreak int           `json:"currentStreak"`
	BestStreak    int           `json:"bestStreak"`
	TotalSessions int           `json:"totalSessions"`
	TodaySessions int           `json:"todaySessions"`
	TotalCount    int           `json:"totalCount"`
	TotalDuration time.Duration `json:"totalDuration"`
	Weekly        []DayBucket   `json:"weeklyData"`
}

// Dhikr computes the session summary. A day qualifies when it has at least
// one completed session.
func Dhikr(sessions []models.DhikrSession, today string) DhikrSummary {
	perDay := make(map[string]int)
	s := DhikrSummary{TotalSessions: len(sessions)}
	for _, sess := range sessions {
		perDay[sess.Date]++
		s.TotalCount += sess.TotalCount
		s.TotalDuration += sess.Duration()
	}

	has := func(date string) bool { return perDay[date] > 0 }
	dates := make([]string, 0, len(perDay))
	for d := range perDay {
		dates = append(dates, d)
	}

	s.CurrentStreak = CurrentStreak(today, has)
	s.BestStreak = BestStreak(dates, has)
	s.TodaySessions = perDay[today]
	s.Weekly = Weekly(today, 1, func(date string) int { return perDay[date] })
	return s
}
