package service

import (
	"context"
	"errors"
	"log"
	"time"

	"edu_hub/internal/common"
	"edu_hub/internal/domain/model"
	"edu_hub/internal/domain/repository"
)

type SubmissionService struct {
	submissionRepo repository.SubmissionRepository
	feedbackRepo   repository.FeedbackRepository
	questionRepo   repository.QuestionRepository
	studentRepo    repository.StudentRepository
}

func NewSubmissionService(
	subRepo repository.SubmissionRepository,
	fbRepo repository.FeedbackRepository,
	qRepo repository.QuestionRepository,
	stRepo repository.StudentRepository,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: subRepo,
		feedbackRepo:   fbRepo,
		questionRepo:   qRepo,
		studentRepo:    stRepo,
	}
}

type SubmitAnswerRequest struct {
	StudentID  int    `json:"student_id"`
	QuestionID int    `json:"question_id"`
	Answer     string `json:"answer"`
}

// SubmitAnswer records a student's answer. A second answer to the same
// question fails with common.ErrConflict and leaves the first one untouched.
// Student and question ids are not checked for existence.
func (s *SubmissionService) SubmitAnswer(ctx context.Context, req SubmitAnswerRequest) (*model.Submission, error) {
	if req.StudentID == 0 || req.QuestionID == 0 || req.Answer == "" {
		return nil, common.Errorf("missing required fields for submission: %w", common.ErrBadRequest)
	}

	submission := &model.Submission{
		StudentID:   req.StudentID,
		QuestionID:  req.QuestionID,
		Answer:      req.Answer,
		SubmittedAt: time.Now(),
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, common.Errorf("failed to create submission: %w", err)
	}
	log.Printf("INFO: Submission %d created for student %d, question %d", submission.ID, submission.StudentID, submission.QuestionID)
	return submission, nil
}

type ProvideFeedbackRequest struct {
	SubmissionID int    `json:"submission_id"`
	Feedback     string `json:"feedback"`
	Score        int    `json:"score"`
}

// ProvideFeedback attaches feedback to a submission, replacing any earlier
// feedback for it. The score range is not validated.
func (s *SubmissionService) ProvideFeedback(ctx context.Context, req ProvideFeedbackRequest) (*model.Feedback, error) {
	if req.SubmissionID == 0 || req.Feedback == "" {
		return nil, common.Errorf("missing required fields for feedback: %w", common.ErrBadRequest)
	}

	submission, err := s.submissionRepo.FindByID(ctx, req.SubmissionID)
	if err != nil {
		return nil, common.Errorf("submission %d: %w", req.SubmissionID, err)
	}

	fb := &model.Feedback{
		SubmissionID: submission.ID,
		StudentID:    submission.StudentID,
		QuestionID:   submission.QuestionID,
		Text:         req.Feedback,
		Score:        req.Score,
		CreatedAt:    time.Now(),
	}
	if err := s.feedbackRepo.Replace(ctx, fb); err != nil {
		return nil, common.Errorf("failed to store feedback: %w", err)
	}
	return fb, nil
}

// SubmissionsForQuestion returns a question with its submissions, each joined
// to the student's name and current feedback.
func (s *SubmissionService) SubmissionsForQuestion(ctx context.Context, questionID int) (*model.Question, []model.SubmissionDetail, error) {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, nil, common.Errorf("question %d: %w", questionID, err)
	}
	subs, err := s.submissionRepo.ListByQuestion(ctx, questionID)
	if err != nil {
		return nil, nil, err
	}

	details := make([]model.SubmissionDetail, 0, len(subs))
	for _, sub := range subs {
		detail := model.SubmissionDetail{Submission: sub, StudentName: "Unknown"}
		if st, err := s.studentRepo.FindByID(ctx, sub.StudentID); err == nil {
			detail.StudentName = st.Name
		}
		detail.Feedback = s.feedbackFor(ctx, sub.ID)
		details = append(details, detail)
	}
	return question, details, nil
}

func (s *SubmissionService) feedbackFor(ctx context.Context, submissionID int) *model.Feedback {
	fb, err := s.feedbackRepo.FindBySubmission(ctx, submissionID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			log.Printf("WARN: Failed to fetch feedback for submission %d: %v", submissionID, err)
		}
		return nil
	}
	return fb
}
