package service

import (
	"context"

	"edu_hub/internal/domain/model"
	"edu_hub/internal/domain/repository"
)

type StudentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

func (s *StudentService) ListStudents(ctx context.Context) ([]model.Student, error) {
	return s.studentRepo.List(ctx)
}

// studentNames indexes the roster by id for display joins.
func studentNames(ctx context.Context, repo repository.StudentRepository) (map[int]string, error) {
	students, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(students))
	for _, st := range students {
		names[st.ID] = st.Name
	}
	return names, nil
}

func nameOr(names map[int]string, id int) string {
	if n, ok := names[id]; ok {
		return n
	}
	return "Unknown"
}
