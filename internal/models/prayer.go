package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/ibadah/internal/constants"
)

// Prayer is the logged state of one of the five daily prayers.
type Prayer struct {
	Status      constants.PrayerStatus `json:"status"`
	Note        string                 `json:"note,omitempty"`
	CompletedAt *time.Time             `json:"completedAt,omitempty"`
}

// Resolved reports whether the prayer counts toward a complete day.
func (p Prayer) Resolved() bool {
	return p.Status == constants.StatusOnTime || p.Status == constants.StatusLate
}

// SetStatus changes the status and stamps the completion time. Returning to
// pending clears the stamp.
func (p *Prayer) SetStatus(status constants.PrayerStatus, now time.Time) {
	p.Status = status
	if status == constants.StatusPending {
		p.CompletedAt = nil
		return
	}
	stamp := now
	p.CompletedAt = &stamp
}

// StatusIcon is the glyph shown next to a prayer.
func StatusIcon(s constants.PrayerStatus) string {
	switch s {
	case constants.StatusOnTime:
		return "✓"
	case constants.StatusLate:
		return "◐"
	case constants.StatusMissed:
		return "✗"
	}
	return "○"
}

// DayRecord holds exactly one Prayer per daily prayer name.
type DayRecord map[constants.PrayerName]Prayer

// NewDayRecord returns a record with all five prayers pending.
func NewDayRecord() DayRecord {
	rec := make(DayRecord, constants.PrayersPerDay)
	for _, name := range constants.Prayers {
		rec[name] = Prayer{Status: constants.StatusPending}
	}
	return rec
}

// Normalize fills missing prayers with pending, drops unknown names and
// resets unknown statuses to pending.
func (d DayRecord) Normalize() DayRecord {
	out := NewDayRecord()
	for _, name := range constants.Prayers {
		p, ok := d[name]
		if !ok {
			continue
		}
		if !ValidStatus(p.Status) {
			p.Status = constants.StatusPending
			p.CompletedAt = nil
		}
		out[name] = p
	}
	return out
}

// CompletedCount is the number of prayers marked on-time or late.
func (d DayRecord) CompletedCount() int {
	n := 0
	for _, name := range constants.Prayers {
		if p, ok := d[name]; ok && p.Resolved() {
			n++
		}
	}
	return n
}

// IsComplete reports whether all five prayers were prayed.
func (d DayRecord) IsComplete() bool {
	return d.CompletedCount() == constants.PrayersPerDay
}

// Clone returns a copy that shares no state with d.
func (d DayRecord) Clone() DayRecord {
	out := make(DayRecord, len(d))
	for name, p := range d {
		if p.CompletedAt != nil {
			stamp := *p.CompletedAt
			p.CompletedAt = &stamp
		}
		out[name] = p
	}
	return out
}

// PrayerLog maps a date key (YYYY-MM-DD) to that day's record.
type PrayerLog map[string]DayRecord

// Clone returns a deep copy of the log.
func (l PrayerLog) Clone() PrayerLog {
	out := make(PrayerLog, len(l))
	for date, rec := range l {
		out[date] = rec.Clone()
	}
	return out
}

// ValidStatus reports whether s is one of the four prayer statuses.
func ValidStatus(s constants.PrayerStatus) bool {
	switch s {
	case constants.StatusPending, constants.StatusOnTime, constants.StatusLate, constants.StatusMissed:
		return true
	}
	return false
}

// ParseStatus accepts the canonical statuses plus the "prayed" alias.
func ParseStatus(s string) (constants.PrayerStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "":
		return constants.StatusPending, nil
	case "on-time", "ontime", "on_time", "prayed":
		return constants.StatusOnTime, nil
	case "late":
		return constants.StatusLate, nil
	case "missed":
		return constants.StatusMissed, nil
	}
	return "", fmt.Errorf("unknown prayer status %q", s)
}

// ParsePrayerName matches a prayer name case-insensitively.
func ParsePrayerName(s string) (constants.PrayerName, error) {
	for _, name := range constants.Prayers {
		if strings.EqualFold(string(name), strings.TrimSpace(s)) {
			return name, nil
		}
	}
	return "", fmt.Errorf("unknown prayer %q", s)
}

type legacyPrayer struct {
	Name        string     `json:"name"`
	Status      *string    `json:"status"`
	Note        string     `json:"note"`
	Comment     string     `json:"comment"`
	CompletedAt *time.Time `json:"completedAt"`
}

func (lp legacyPrayer) toPrayer() Prayer {
	p := Prayer{Status: constants.StatusPending, Note: lp.Note, CompletedAt: lp.CompletedAt}
	if p.Note == "" {
		p.Note = lp.Comment
	}
	if lp.Status != nil {
		if status, err := ParseStatus(*lp.Status); err == nil {
			p.Status = status
		}
	}
	if p.Status == constants.StatusPending {
		p.CompletedAt = nil
	}
	return p
}

type legacyRecord struct {
	Date    string         `json:"date"`
	Prayers []legacyPrayer `json:"prayers"`
}

// UnmarshalJSON accepts the canonical date-keyed shape, the older array of
// {date, prayers} records, and the dictionary shape keyed by prayer id with
// prayed|late|missed|null statuses. Every record is normalized.
func (l *PrayerLog) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	out := PrayerLog{}

	if bytes.Equal(trimmed, []byte("null")) {
		*l = out
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []legacyRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return fmt.Errorf("decoding prayer records: %w", err)
		}
		for _, r := range records {
			rec := DayRecord{}
			for _, lp := range r.Prayers {
				name, err := ParsePrayerName(lp.Name)
				if err != nil {
					continue
				}
				rec[name] = lp.toPrayer()
			}
			out[r.Date] = rec.Normalize()
		}
		*l = out
		return nil
	}

	var days map[string]map[string]legacyPrayer
	if err := json.Unmarshal(trimmed, &days); err != nil {
		return fmt.Errorf("decoding prayer log: %w", err)
	}
	for date, prayers := range days {
		rec := DayRecord{}
		for key, lp := range prayers {
			name, err := ParsePrayerName(key)
			if err != nil {
				continue
			}
			rec[name] = lp.toPrayer()
		}
		out[date] = rec.Normalize()
	}
	*l = out
	return nil
}
