package repository

import (
	"context"
	"fmt"
	"sync"

	"edu_hub/internal/common"
	"edu_hub/internal/domain/model"
)

type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	FindByID(ctx context.Context, id int) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
}

type memStudentRepository struct {
	mu       sync.RWMutex
	seq      sequence
	students []model.Student
}

func NewMemStudentRepository() StudentRepository {
	return &memStudentRepository{}
}

func (r *memStudentRepository) Create(ctx context.Context, student *model.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.students {
		if student.ID != 0 && s.ID == student.ID {
			return fmt.Errorf("student %d already exists: %w", student.ID, common.ErrConflict)
		}
	}
	student.ID = r.seq.claim(student.ID)
	r.students = append(r.students, *student)
	return nil
}

func (r *memStudentRepository) FindByID(ctx context.Context, id int) (*model.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.students {
		if s.ID == id {
			found := s
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memStudentRepository) List(ctx context.Context) ([]model.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Student, len(r.students))
	copy(out, r.students)
	return out, nil
}
