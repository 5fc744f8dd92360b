package repository

import (
	"context"
	"sync"

	"edu_hub/internal/common"
	"edu_hub/internal/domain/model"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id int) (*model.Question, error)
	List(ctx context.Context) ([]model.Question, error)
	Count(ctx context.Context) (int, error)
}

type memQuestionRepository struct {
	mu        sync.RWMutex
	seq       sequence
	questions []model.Question
}

func NewMemQuestionRepository() QuestionRepository {
	return &memQuestionRepository{}
}

func (r *memQuestionRepository) Create(ctx context.Context, q *model.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q.ID = r.seq.claim(q.ID)
	r.questions = append(r.questions, *q)
	return nil
}

func (r *memQuestionRepository) FindByID(ctx context.Context, id int) (*model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.questions {
		if q.ID == id {
			found := q
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memQuestionRepository) List(ctx context.Context) ([]model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Question, len(r.questions))
	copy(out, r.questions)
	return out, nil
}

func (r *memQuestionRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.questions), nil
}
