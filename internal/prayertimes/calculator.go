// Package prayertimes computes the five daily prayer times from coordinates
// using the standard solar-position formulas.
package prayertimes

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/models"
)

var (
	// ErrUndefined is returned when the sun never reaches a required angle,
	// e.g. 18 degree twilight at high latitudes in summer.
	ErrUndefined = errors.New("prayer time undefined for this location and date")
	// ErrUnknownMethod is returned for a calculation method name not in Methods.
	ErrUnknownMethod = errors.New("unknown calculation method")
)

// Method holds the twilight parameters of a calculation convention.
// IshaMinutes, when set, places Isha a fixed interval after Maghrib instead
// of using IshaAngle.
type Method struct {
	Name        string
	FajrAngle   float64
	IshaAngle   float64
	IshaMinutes int
}

// Methods are the supported conventions keyed by settings label.
var Methods = map[string]Method{
	"MWL":     {Name: "Muslim World League", FajrAngle: 18, IshaAngle: 17},
	"ISNA":    {Name: "Islamic Society of North America", FajrAngle: 15, IshaAngle: 15},
	"Egypt":   {Name: "Egyptian General Authority of Survey", FajrAngle: 19.5, IshaAngle: 17.5},
	"Makkah":  {Name: "Umm al-Qura University, Makkah", FajrAngle: 18.5, IshaMinutes: 90},
	"Karachi": {Name: "University of Islamic Sciences, Karachi", FajrAngle: 18, IshaAngle: 18},
}

// LookupMethod resolves a settings label.
func LookupMethod(label string) (Method, error) {
	m, ok := Methods[label]
	if !ok {
		return Method{}, fmt.Errorf("%w: %q", ErrUnknownMethod, label)
	}
	return m, nil
}

// Times are the computed instants for one day.
type Times struct {
	Fajr    time.Time
	Sunrise time.Time
	Dhuhr   time.Time
	Asr     time.Time
	Maghrib time.Time
	Isha    time.Time
}

// Of returns the time of the named prayer.
func (t Times) Of(name constants.PrayerName) time.Time {
	switch name {
	case constants.Fajr:
		return t.Fajr
	case constants.Dhuhr:
		return t.Dhuhr
	case constants.Asr:
		return t.Asr
	case constants.Maghrib:
		return t.Maghrib
	case constants.Isha:
		return t.Isha
	}
	return time.Time{}
}

// Calculator computes prayer times for a day. The output is expressed in
// day's location.
type Calculator interface {
	Compute(coords models.Location, day time.Time, method string) (Times, error)
}

// Solar implements Calculator with the usual astronomical approximations.
// Asr uses the standard (shadow factor 1) juristic method.
type Solar struct{}

const sunriseAngle = 0.833

// Compute implements Calculator.
func (Solar) Compute(coords models.Location, day time.Time, method string) (Times, error) {
	m, err := LookupMethod(method)
	if err != nil {
		return Times{}, err
	}

	loc := day.Location()
	y, mo, d := day.Date()
	c := calc{
		lat: coords.Latitude,
		lng: coords.Longitude,
		jd:  julianDate(y, int(mo), d) - coords.Longitude/(15*24),
	}

	// Hours in local solar time; the day portion seeds each lookup.
	fajr := c.sunAngleTime(m.FajrAngle, 5.0/24, true)
	sunrise := c.sunAngleTime(sunriseAngle, 6.0/24, true)
	dhuhr := c.midDay(12.0 / 24)
	asr := c.asrTime(1, 13.0/24)
	maghrib := c.sunAngleTime(sunriseAngle, 18.0/24, false)
	isha := maghrib + float64(m.IshaMinutes)/60
	if m.IshaMinutes == 0 {
		isha = c.sunAngleTime(m.IshaAngle, 18.0/24, false)
	}

	hours := []float64{fajr, sunrise, dhuhr, asr, maghrib, isha}
	for _, h := range hours {
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return Times{}, fmt.Errorf("%w: %s on %s", ErrUndefined, m.Name, day.Format(constants.DateFormat))
		}
	}

	midnight := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	at := func(h float64) time.Time {
		utc := h - c.lng/15
		return midnight.Add(time.Duration(utc * float64(time.Hour))).Round(time.Minute).In(loc)
	}

	return Times{
		Fajr:    at(fajr),
		Sunrise: at(sunrise),
		Dhuhr:   at(dhuhr),
		Asr:     at(asr),
		Maghrib: at(maghrib),
		Isha:    at(isha),
	}, nil
}

type calc struct {
	lat, lng float64
	jd       float64
}

func (c calc) midDay(t float64) float64 {
	_, eqt := sunPosition(c.jd + t)
	return fixHour(12 - eqt)
}

func (c calc) sunAngleTime(angle, t float64, ccw bool) float64 {
	decl, _ := sunPosition(c.jd + t)
	noon := c.midDay(t)
	cosT := (-dsin(angle) - dsin(decl)*dsin(c.lat)) / (dcos(decl) * dcos(c.lat))
	h := darccos(cosT) / 15
	if ccw {
		return noon - h
	}
	return noon + h
}

func (c calc) asrTime(factor, t float64) float64 {
	decl, _ := sunPosition(c.jd + t)
	angle := -darccot(factor + dtan(math.Abs(c.lat-decl)))
	return c.sunAngleTime(angle, t, false)
}

// sunPosition returns the declination (degrees) and equation of time
// (hours) for a Julian date.
func sunPosition(jd float64) (decl, eqt float64) {
	d := jd - 2451545.0
	g := fixAngle(357.529 + 0.98560028*d)
	q := fixAngle(280.459 + 0.98564736*d)
	l := fixAngle(q + 1.915*dsin(g) + 0.020*dsin(2*g))
	e := 23.439 - 0.00000036*d

	ra := darctan2(dcos(e)*dsin(l), dcos(l)) / 15
	eqt = q/15 - fixHour(ra)
	decl = darcsin(dsin(e) * dsin(l))
	return decl, eqt
}

func julianDate(year, month, day int) float64 {
	if month <= 2 {
		year--
		month += 12
	}
	a := math.Floor(float64(year) / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*float64(year+4716)) + math.Floor(30.6001*float64(month+1)) + float64(day) + b - 1524.5
}

func rad(d float64) float64 { return d * math.Pi / 180 }
func deg(r float64) float64 { return r * 180 / math.Pi }

func dsin(d float64) float64 { return math.Sin(rad(d)) }
func dcos(d float64) float64 { return math.Cos(rad(d)) }
func dtan(d float64) float64 { return math.Tan(rad(d)) }

// darccos is NaN outside [-1, 1], which Compute reports as ErrUndefined.
func darccos(x float64) float64     { return deg(math.Acos(x)) }
func darcsin(x float64) float64     { return deg(math.Asin(x)) }
func darccot(x float64) float64     { return deg(math.Atan(1 / x)) }
func darctan2(y, x float64) float64 { return deg(math.Atan2(y, x)) }

func fixAngle(a float64) float64 { return fix(a, 360) }
func fixHour(a float64) float64  { return fix(a, 24) }

func fix(a, b float64) float64 {
	a = a - b*math.Floor(a/b)
	if a < 0 {
		return a + b
	}
	return a
}

// Qibla returns the initial great-circle bearing from coords to the Kaaba,
// in degrees clockwise from true north.
func Qibla(coords models.Location) float64 {
	phi := rad(coords.Latitude)
	dLng := rad(constants.KaabaLongitude - coords.Longitude)
	kaaba := rad(constants.KaabaLatitude)

	bearing := math.Atan2(math.Sin(dLng), math.Cos(phi)*math.Tan(kaaba)-math.Sin(phi)*math.Cos(dLng))
	return fixAngle(deg(bearing))
}
