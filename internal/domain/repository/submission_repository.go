package repository

import (
	"context"
	"fmt"
	"sync"

	"edu_hub/internal/common"
	"edu_hub/internal/domain/model"
)

type SubmissionRepository interface {
	// Create rejects a second submission for the same (student, question)
	// pair with common.ErrConflict.
	Create(ctx context.Context, sub *model.Submission) error
	FindByID(ctx context.Context, id int) (*model.Submission, error)
	FindByStudentAndQuestion(ctx context.Context, studentID, questionID int) (*model.Submission, error)
	ListByQuestion(ctx context.Context, questionID int) ([]model.Submission, error)
	ListByStudent(ctx context.Context, studentID int) ([]model.Submission, error)
	Count(ctx context.Context) (int, error)
}

type memSubmissionRepository struct {
	mu          sync.RWMutex
	seq         sequence
	submissions []model.Submission
}

func NewMemSubmissionRepository() SubmissionRepository {
	return &memSubmissionRepository{}
}

func (r *memSubmissionRepository) Create(ctx context.Context, sub *model.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.submissions {
		if s.StudentID == sub.StudentID && s.QuestionID == sub.QuestionID {
			return fmt.Errorf("student %d already answered question %d: %w", sub.StudentID, sub.QuestionID, common.ErrConflict)
		}
	}
	sub.ID = r.seq.claim(sub.ID)
	r.submissions = append(r.submissions, *sub)
	return nil
}

func (r *memSubmissionRepository) FindByID(ctx context.Context, id int) (*model.Submission, error) {
	return r.findFirst(func(s model.Submission) bool { return s.ID == id })
}

func (r *memSubmissionRepository) FindByStudentAndQuestion(ctx context.Context, studentID, questionID int) (*model.Submission, error) {
	return r.findFirst(func(s model.Submission) bool {
		return s.StudentID == studentID && s.QuestionID == questionID
	})
}

func (r *memSubmissionRepository) ListByQuestion(ctx context.Context, questionID int) ([]model.Submission, error) {
	return r.filter(func(s model.Submission) bool { return s.QuestionID == questionID }), nil
}

func (r *memSubmissionRepository) ListByStudent(ctx context.Context, studentID int) ([]model.Submission, error) {
	return r.filter(func(s model.Submission) bool { return s.StudentID == studentID }), nil
}

func (r *memSubmissionRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.submissions), nil
}

func (r *memSubmissionRepository) findFirst(match func(model.Submission) bool) (*model.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.submissions {
		if match(s) {
			found := s
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memSubmissionRepository) filter(match func(model.Submission) bool) []model.Submission {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.Submission{}
	for _, s := range r.submissions {
		if match(s) {
			out = append(out, s)
		}
	}
	return out
}
