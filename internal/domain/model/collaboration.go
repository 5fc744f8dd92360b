package model

import (
	"slices"
	"time"
)

// DefaultPairCode seeds the shared buffer of every new pair session.
const DefaultPairCode = "# Start coding here...\n\n"

type StudyGroup struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Members     []int     `json:"members"`
	CreatedBy   int       `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	Active      bool      `json:"active"`
}

func (g *StudyGroup) HasMember(studentID int) bool {
	return slices.Contains(g.Members, studentID)
}

type GroupMessage struct {
	ID        int       `json:"id"`
	GroupID   int       `json:"group_id"`
	StudentID int       `json:"student_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type PairSession struct {
	ID           int       `json:"id"`
	Student1ID   int       `json:"student1_id"`
	Student2ID   int       `json:"student2_id"`
	ProblemTitle string    `json:"problem_title"`
	Code         string    `json:"code"`
	StartedAt    time.Time `json:"started_at"`
	Active       bool      `json:"active"`
}

func (s *PairSession) Includes(studentID int) bool {
	return s.Student1ID == studentID || s.Student2ID == studentID
}

type CodeShare struct {
	ID          int       `json:"id"`
	StudentID   int       `json:"student_id"`
	Title       string    `json:"title"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	HelpNeeded  bool      `json:"help_needed"`
	CreatedAt   time.Time `json:"created_at"`
	Comments    []Comment `json:"comments"`
}

type Comment struct {
	ID        int       `json:"id"`
	ShareID   int       `json:"share_id"`
	StudentID int       `json:"student_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
