package models

import "time"

// Badge is an earned achievement. IDs are deterministic so a badge is only
// ever awarded once.
type Badge struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	EarnedAt    time.Time `json:"earnedAt"`
}
