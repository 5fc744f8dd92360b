package model

import "time"

type Submission struct {
	ID          int       `json:"id"`
	StudentID   int       `json:"student_id"`
	QuestionID  int       `json:"question_id"`
	Answer      string    `json:"answer"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Feedback is the professor's score and comment on exactly one submission.
type Feedback struct {
	ID           int       `json:"id"`
	SubmissionID int       `json:"submission_id"`
	StudentID    int       `json:"student_id"`
	QuestionID   int       `json:"question_id"`
	Text         string    `json:"feedback"`
	Score        int       `json:"score"`
	CreatedAt    time.Time `json:"created_at"`
}
