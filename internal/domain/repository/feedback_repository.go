package repository

import (
	"context"
	"sync"

	"edu_hub/internal/common"
	"edu_hub/internal/domain/model"
)

type FeedbackRepository interface {
	// Replace drops any feedback already attached to fb.SubmissionID and
	// stores fb under a fresh id.
	Replace(ctx context.Context, fb *model.Feedback) error
	FindBySubmission(ctx context.Context, submissionID int) (*model.Feedback, error)
	ListByStudent(ctx context.Context, studentID int) ([]model.Feedback, error)
	Count(ctx context.Context) (int, error)
}

type memFeedbackRepository struct {
	mu       sync.RWMutex
	seq      sequence
	feedback []model.Feedback
}

func NewMemFeedbackRepository() FeedbackRepository {
	return &memFeedbackRepository{}
}

func (r *memFeedbackRepository) Replace(ctx context.Context, fb *model.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.feedback[:0]
	for _, f := range r.feedback {
		if f.SubmissionID != fb.SubmissionID {
			kept = append(kept, f)
		}
	}
	r.feedback = kept
	fb.ID = r.seq.claim(fb.ID)
	r.feedback = append(r.feedback, *fb)
	return nil
}

func (r *memFeedbackRepository) FindBySubmission(ctx context.Context, submissionID int) (*model.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.feedback {
		if f.SubmissionID == submissionID {
			found := f
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memFeedbackRepository) ListByStudent(ctx context.Context, studentID int) ([]model.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.Feedback{}
	for _, f := range r.feedback {
		if f.StudentID == studentID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *memFeedbackRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.feedback), nil
}
