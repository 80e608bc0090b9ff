// Package stats derives streaks, rates and weekly buckets from the raw
// collections. Every function is pure and treats "today" as an input.
package stats

import (
	"sort"

	"github.com/julianstephens/ibadah/internal/utils"
)

// WeekDays is the length of the weekly window, today included.
const WeekDays = 7

// DayBucket is one day of a weekly chart.
type DayBucket struct {
	Date       string  `json:"date"`
	Day        string  `json:"day"` // short weekday label
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Rate divides num by den, defining x/0 as 0.
func Rate(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// CurrentStreak counts consecutive qualifying days walking back from today.
// Today itself must qualify; a missing or incomplete today yields 0.
func CurrentStreak(today string, qualifies func(date string) bool) int {
	if !utils.ValidateDate(today) {
		return 0
	}
	streak := 0
	date := today
	for qualifies(date) {
		streak++
		prev, err := utils.AddDays(date, -1)
		if err != nil {
			break
		}
		date = prev
	}
	return streak
}

// BestStreak returns the longest run of consecutive qualifying calendar days
// among dates. Qualifying days separated by a gap start a new run.
func BestStreak(dates []string, qualifies func(date string) bool) int {
	sorted := make([]string, 0, len(dates))
	seen := make(map[string]bool, len(dates))
	for _, d := range dates {
		if !seen[d] && utils.ValidateDate(d) {
			seen[d] = true
			sorted = append(sorted, d)
		}
	}
	sort.Strings(sorted)

	best, run := 0, 0
	lastQualifying := ""
	for _, date := range sorted {
		if !qualifies(date) {
			run = 0
			continue
		}
		if run > 0 && lastQualifying != "" {
			if next, err := utils.AddDays(lastQualifying, 1); err == nil && next == date {
				run++
			} else {
				run = 1
			}
		} else {
			run = 1
		}
		lastQualifying = date
		if run > best {
			best = run
		}
	}
	return best
}

// Weekly builds the seven buckets ending today, oldest first. Days without
// data are zero-filled.
func Weekly(today string, total int, completed func(date string) int) []DayBucket {
	days, err := utils.LastNDays(today, WeekDays)
	if err != nil {
		days = make([]string, WeekDays)
	}

	buckets := make([]DayBucket, 0, WeekDays)
	for _, date := range days {
		n := 0
		if date != "" {
			n = completed(date)
		}
		if n > total {
			n = total
		}
		buckets = append(buckets, DayBucket{
			Date:       date,
			Day:        utils.Weekday(date),
			Completed:  n,
			Total:      total,
			Percentage: Rate(n, total) * 100,
		})
	}
	return buckets
}
