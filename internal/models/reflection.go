package models

import "time"

// Reflection is a journal entry.
type Reflection struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReflectionInput is the user-supplied part of a new reflection.
type ReflectionInput struct {
	Title   string `validate:"required,max=100"`
	Content string `validate:"required"`
}

// ReflectionPatch carries the fields to change on an existing reflection.
// Nil fields are left untouched.
type ReflectionPatch struct {
	Title   *string `validate:"omitnil,min=1,max=100"`
	Content *string `validate:"omitnil,min=1"`
}
