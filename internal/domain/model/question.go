package model

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type QuestionType string

const (
	QuestionTypeCoding    QuestionType = "coding"
	QuestionTypeInterview QuestionType = "interview"

	// AssignedToAll is the only assignment target questions ever carry.
	AssignedToAll = "all"
)

type Question struct {
	ID          int          `json:"id"`
	Type        QuestionType `json:"type"`
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	Description string       `json:"description"`
	Difficulty  string       `json:"difficulty"` // Free text, e.g. Easy/Medium/Hard
	CreatedAt   time.Time    `json:"created_at"`
	AssignedTo  string       `json:"assigned_to"`
}

// Label title-cases the type for display ("coding" -> "Coding").
func (t QuestionType) Label() string {
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Title(language.Und).String(string(t))
}
