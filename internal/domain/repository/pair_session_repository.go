package repository

import (
	"context"
	"sync"

	"edu_hub/internal/common"
	"edu_hub/internal/domain/model"
)

type PairSessionRepository interface {
	Create(ctx context.Context, session *model.PairSession) error
	FindByID(ctx context.Context, id int) (*model.PairSession, error)
	ListActiveForStudent(ctx context.Context, studentID int) ([]model.PairSession, error)
	UpdateCode(ctx context.Context, id int, code string) error
}

type memPairSessionRepository struct {
	mu       sync.RWMutex
	seq      sequence
	sessions []model.PairSession
}

func NewMemPairSessionRepository() PairSessionRepository {
	return &memPairSessionRepository{}
}

func (r *memPairSessionRepository) Create(ctx context.Context, session *model.PairSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session.ID = r.seq.claim(session.ID)
	r.sessions = append(r.sessions, *session)
	return nil
}

func (r *memPairSessionRepository) FindByID(ctx context.Context, id int) (*model.PairSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sessions {
		if s.ID == id {
			found := s
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memPairSessionRepository) ListActiveForStudent(ctx context.Context, studentID int) ([]model.PairSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.PairSession{}
	for _, s := range r.sessions {
		if s.Active && s.Includes(studentID) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memPairSessionRepository) UpdateCode(ctx context.Context, id int, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sessions {
		if r.sessions[i].ID == id {
			r.sessions[i].Code = code
			return nil
		}
	}
	return common.ErrNotFound
}
