package prayertimes

import (
	"time"

	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/logger"
	"github.com/julianstephens/ibadah/internal/models"
)

// Entry is one prayer's formatted time.
type Entry struct {
	Name constants.PrayerName `json:"name"`
	Time string               `json:"time"` // HH:MM
}

// Schedule is the five prayer times of one day as shown to the user.
type Schedule struct {
	Date     string  `json:"date"`
	Entries  []Entry `json:"times"`
	Fallback bool    `json:"fallback"` // seasonal table instead of calculation
}

// Get returns the time for name, or "" if absent.
func (s Schedule) Get(name constants.PrayerName) string {
	for _, e := range s.Entries {
		if e.Name == name {
			return e.Time
		}
	}
	return ""
}

// DefaultLocation is used when no coordinates are configured.
var DefaultLocation = models.Location{
	Latitude:  constants.DefaultLatitude,
	Longitude: constants.DefaultLongitude,
}

// Service resolves settings into a schedule and never fails: calculation
// errors fall back to the seasonal table.
type Service struct {
	calc Calculator
}

// NewService wraps calc. A nil calc uses Solar.
func NewService(calc Calculator) *Service {
	if calc == nil {
		calc = Solar{}
	}
	return &Service{calc: calc}
}

// ForDay computes the schedule for day (its location is the display zone).
func (s *Service) ForDay(settings models.Settings, day time.Time) Schedule {
	coords := DefaultLocation
	if settings.Location != nil {
		coords = *settings.Location
	}
	method := settings.CalculationMethod
	if method == "" {
		method = constants.DefaultCalculationMethod
	}

	date := day.Format(constants.DateFormat)
	times, err := s.calc.Compute(coords, day, method)
	if err != nil {
		logger.Warn("Prayer time calculation failed, using seasonal table",
			"date", date, "method", method, "error", err)
		return Seasonal(day)
	}

	sched := Schedule{Date: date}
	for _, name := range constants.Prayers {
		sched.Entries = append(sched.Entries, Entry{Name: name, Time: times.Of(name).Format(constants.TimeFormat)})
	}
	return sched
}

// Seasonal returns the fixed approximations for the default region.
func Seasonal(day time.Time) Schedule {
	var fajr, asr, maghrib, isha string
	switch m := day.Month(); {
	case m >= time.May && m <= time.September:
		fajr, asr, maghrib, isha = "04:00", "17:45", "21:15", "23:00"
	case m == time.April || m == time.October:
		fajr, asr, maghrib, isha = "05:30", "16:30", "19:00", "20:30"
	default:
		fajr, asr, maghrib, isha = "06:30", "14:45", "17:15", "18:45"
	}
	return Schedule{
		Date: day.Format(constants.DateFormat),
		Entries: []Entry{
			{Name: constants.Fajr, Time: fajr},
			{Name: constants.Dhuhr, Time: "12:45"},
			{Name: constants.Asr, Time: asr},
			{Name: constants.Maghrib, Time: maghrib},
			{Name: constants.Isha, Time: isha},
		},
		Fallback: true,
	}
}

// NextPrayer returns the first prayer strictly after now's clock time. After
// Isha it wraps to Fajr and reports tomorrow.
func NextPrayer(s Schedule, now time.Time) (next Entry, tomorrow bool) {
	current := now.Hour()*60 + now.Minute()
	for _, e := range s.Entries {
		if minutes(e.Time) > current {
			return e, false
		}
	}
	if len(s.Entries) == 0 {
		return Entry{}, false
	}
	return s.Entries[0], true
}

// Within reports whether now is within buffer of the entry's time on now's day.
func Within(e Entry, now time.Time, buffer time.Duration) bool {
	m := minutes(e.Time)
	if m < 0 {
		return false
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), m/60, m%60, 0, 0, now.Location())
	diff := now.Sub(at)
	if diff < 0 {
		diff = -diff
	}
	return diff <= buffer
}

func minutes(hhmm string) int {
	t, err := time.Parse(constants.TimeFormat, hhmm)
	if err != nil {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}
