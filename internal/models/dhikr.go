package models

import (
	"time"

	"github.com/julianstephens/ibadah/internal/constants"
)

// DhikrItem is a catalog entry, or a snapshot of one inside a routine with a
// customized target count.
type DhikrItem struct {
	ID              string `json:"id"`
	Text            string `json:"text"`
	Transliteration string `json:"transliteration"`
	Translation     string `json:"translation"`
	Count           int    `json:"count"`
	Category        string `json:"category"`
}

// DhikrRoutine is a user-defined ordered list of dhikr items.
type DhikrRoutine struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Items          []DhikrItem `json:"dhikrList"`
	CreatedAt      time.Time   `json:"createdAt"`
	CompletedCount int         `json:"completedCount"`
	TotalSessions  int         `json:"totalSessions"`
}

// TotalTarget is the sum of all item targets.
func (r DhikrRoutine) TotalTarget() int {
	total := 0
	for _, item := range r.Items {
		total += item.Count
	}
	return total
}

// Clone returns a copy with its own item slice.
func (r DhikrRoutine) Clone() DhikrRoutine {
	r.Items = append([]DhikrItem(nil), r.Items...)
	return r
}

// DhikrSession is an immutable record of one completed run.
type DhikrSession struct {
	ID             string   `json:"id"`
	RoutineID      string   `json:"routineId"`
	Date           string   `json:"date"`
	CompletedDhikr []string `json:"completedDhikr"`
	TotalCount     int      `json:"totalCount"`
	DurationMs     int64    `json:"duration"` // milliseconds
}

// Duration returns the session length.
func (s DhikrSession) Duration() time.Duration {
	return time.Duration(s.DurationMs) * time.Millisecond
}

// RoutineInput describes a routine to create from catalog items.
type RoutineInput struct {
	Name  string             `validate:"required,max=60"`
	Items []RoutineItemInput `validate:"required,min=1,dive"`
}

// RoutineItemInput selects a catalog item. A zero Count keeps the catalog default.
type RoutineItemInput struct {
	ID    string `validate:"required"`
	Count int    `validate:"gte=0,lte=100000"`
}

// RoutinePatch renames a routine or replaces its counters.
type RoutinePatch struct {
	Name           *string `validate:"omitnil,min=1,max=60"`
	CompletedCount *int    `validate:"omitnil,gte=0"`
	TotalSessions  *int    `validate:"omitnil,gte=0"`
}

// RunState is the in-memory position of the active dhikr run.
type RunState struct {
	RoutineID string
	Index     int
	Count     int
	Status    constants.RunStatus
	StartedAt time.Time
}

// Running reports whether taps currently count.
func (s RunState) Running() bool {
	return s.Status == constants.RunRunning
}
