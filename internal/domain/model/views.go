package model

// View shapes assembled by services for templates and the JSON API.

type StudentProgress struct {
	Student          Student `json:"student"`
	SubmissionsCount int     `json:"submissions_count"`
	FeedbackCount    int     `json:"feedback_count"`
	CompletionRate   float64 `json:"completion_rate"`
}

type SubmissionDetail struct {
	Submission
	StudentName   string    `json:"student_name"`
	QuestionTitle string    `json:"question_title,omitempty"`
	QuestionType  string    `json:"question_type,omitempty"`
	Feedback      *Feedback `json:"feedback,omitempty"`
}

type QuestionStatus struct {
	Question
	Submitted bool      `json:"submitted"`
	Feedback  *Feedback `json:"feedback,omitempty"`
}

type CodeShareDetail struct {
	CodeShare
	StudentName string `json:"student_name"`
}

type AnalyticsData struct {
	Labels           []string  `json:"labels"`
	CompletionRates  []float64 `json:"completion_rates"`
	TotalQuestions   int       `json:"total_questions"`
	TotalSubmissions int       `json:"total_submissions"`
}
