package repository

import (
	"context"
	"slices"
	"sync"

	"edu_hub/internal/common"
	"edu_hub/internal/domain/model"
)

type CodeShareRepository interface {
	Create(ctx context.Context, share *model.CodeShare) error
	FindByID(ctx context.Context, id int) (*model.CodeShare, error)
	List(ctx context.Context) ([]model.CodeShare, error)
	ListByStudent(ctx context.Context, studentID int) ([]model.CodeShare, error)
	AddComment(ctx context.Context, comment *model.Comment) error
}

type memCodeShareRepository struct {
	mu         sync.RWMutex
	seq        sequence
	commentSeq sequence
	shares     []model.CodeShare
}

func NewMemCodeShareRepository() CodeShareRepository {
	return &memCodeShareRepository{}
}

func cloneShare(s model.CodeShare) model.CodeShare {
	s.Comments = slices.Clone(s.Comments)
	if s.Comments == nil {
		s.Comments = []model.Comment{}
	}
	return s
}

func (r *memCodeShareRepository) Create(ctx context.Context, share *model.CodeShare) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	share.ID = r.seq.claim(share.ID)
	r.shares = append(r.shares, cloneShare(*share))
	return nil
}

func (r *memCodeShareRepository) FindByID(ctx context.Context, id int) (*model.CodeShare, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.shares {
		if s.ID == id {
			found := cloneShare(s)
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memCodeShareRepository) List(ctx context.Context) ([]model.CodeShare, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.CodeShare, 0, len(r.shares))
	for _, s := range r.shares {
		out = append(out, cloneShare(s))
	}
	return out, nil
}

func (r *memCodeShareRepository) ListByStudent(ctx context.Context, studentID int) ([]model.CodeShare, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.CodeShare{}
	for _, s := range r.shares {
		if s.StudentID == studentID {
			out = append(out, cloneShare(s))
		}
	}
	return out, nil
}

func (r *memCodeShareRepository) AddComment(ctx context.Context, comment *model.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.shares {
		if r.shares[i].ID == comment.ShareID {
			comment.ID = r.commentSeq.claim(comment.ID)
			r.shares[i].Comments = append(r.shares[i].Comments, *comment)
			return nil
		}
	}
	return common.ErrNotFound
}
