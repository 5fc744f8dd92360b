package database

import (
	"edu_hub/internal/domain/repository"
)

// Store bundles the repositories the services are built from. Everything is
// held in process memory and lost on restart.
type Store struct {
	Students    repository.StudentRepository
	Questions   repository.QuestionRepository
	Submissions repository.SubmissionRepository
	Feedback    repository.FeedbackRepository
	Groups      repository.StudyGroupRepository
	Sessions    repository.PairSessionRepository
	Shares      repository.CodeShareRepository
}

func NewMemoryStore() *Store {
	return &Store{
		Students:    repository.NewMemStudentRepository(),
		Questions:   repository.NewMemQuestionRepository(),
		Submissions: repository.NewMemSubmissionRepository(),
		Feedback:    repository.NewMemFeedbackRepository(),
		Groups:      repository.NewMemStudyGroupRepository(),
		Sessions:    repository.NewMemPairSessionRepository(),
		Shares:      repository.NewMemCodeShareRepository(),
	}
}
