package stats

import (
	"time"

	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/models"
	"github.com/julianstephens/ibadah/internal/utils"
)

// DayLevel grades a calendar day.
type DayLevel string

const (
	LevelEmpty    DayLevel = "empty"    // no record
	LevelNone     DayLevel = "none"     // record, nothing prayed
	LevelPartial  DayLevel = "partial"  // some prayers prayed
	LevelComplete DayLevel = "complete" // all five prayed
)

// CalendarDay is one cell of the month view.
type CalendarDay struct {
	Date      string
	Day       int
	Weekday   time.Weekday
	Completed int
	OnTime    int
	Level     DayLevel
	Future    bool
	Today     bool
}

// Month returns one entry per day of the given month.
func Month(log models.PrayerLog, year int, month time.Month, today string) []CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()

	days := make([]CalendarDay, 0, last)
	for d := 1; d <= last; d++ {
		t := first.AddDate(0, 0, d-1)
		date := utils.DateKey(t)
		cell := CalendarDay{
			Date:    date,
			Day:     d,
			Weekday: t.Weekday(),
			Level:   LevelEmpty,
			Today:   date == today,
			Future:  date > today,
		}
		if rec, ok := log[date]; ok {
			cell.Completed = rec.CompletedCount()
			for _, name := range constants.Prayers {
				if rec[name].Status == constants.StatusOnTime {
					cell.OnTime++
				}
			}
			switch {
			case cell.Completed == constants.PrayersPerDay:
				cell.Level = LevelComplete
			case cell.Completed > 0:
				cell.Level = LevelPartial
			default:
				cell.Level = LevelNone
			}
		}
		days = append(days, cell)
	}
	return days
}
