package service

import (
	"context"
	"time"

	"edu_hub/internal/common"
	"edu_hub/internal/domain/model"
	"edu_hub/internal/domain/repository"

	"github.com/gosimple/slug"
)

type QuestionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

type AssignQuestionRequest struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
}

// AssignQuestion stores a new question for every student. Type and difficulty
// are taken as given; only presence is checked.
func (s *QuestionService) AssignQuestion(ctx context.Context, req AssignQuestionRequest) (*model.Question, error) {
	if req.Type == "" || req.Title == "" || req.Description == "" || req.Difficulty == "" {
		return nil, common.Errorf("missing required fields for question: %w", common.ErrBadRequest)
	}

	question := &model.Question{
		Type:        model.QuestionType(req.Type),
		Title:       req.Title,
		Slug:        slug.Make(req.Title),
		Description: req.Description,
		Difficulty:  req.Difficulty,
		CreatedAt:   time.Now(),
		AssignedTo:  model.AssignedToAll,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, common.Errorf("failed to create question: %w", err)
	}
	return question, nil
}

func (s *QuestionService) ListQuestions(ctx context.Context) ([]model.Question, error) {
	return s.questionRepo.List(ctx)
}
