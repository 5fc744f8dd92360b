package service

import (
	"context"

	"edu_hub/internal/common"
	"edu_hub/internal/domain/model"
	"edu_hub/internal/domain/repository"
)

// DashboardService computes the read-only professor and student views and
// the analytics summary.
type DashboardService struct {
	studentRepo    repository.StudentRepository
	questionRepo   repository.QuestionRepository
	submissionRepo repository.SubmissionRepository
	feedbackRepo   repository.FeedbackRepository
}

func NewDashboardService(
	stRepo repository.StudentRepository,
	qRepo repository.QuestionRepository,
	subRepo repository.SubmissionRepository,
	fbRepo repository.FeedbackRepository,
) *DashboardService {
	return &DashboardService{
		studentRepo:    stRepo,
		questionRepo:   qRepo,
		submissionRepo: subRepo,
		feedbackRepo:   fbRepo,
	}
}

// CompletionRate is submitted / totalQuestions as a percentage. With no
// questions the denominator is 1.
func CompletionRate(submitted, totalQuestions int) float64 {
	return float64(submitted) / float64(max(totalQuestions, 1)) * 100
}

type ProfessorDashboard struct {
	Questions        []model.Question        `json:"questions"`
	StudentProgress  []model.StudentProgress `json:"student_progress"`
	TotalQuestions   int                     `json:"total_questions"`
	TotalSubmissions int                     `json:"total_submissions"`
	TotalStudents    int                     `json:"total_students"`
}

func (s *DashboardService) ProfessorDashboard(ctx context.Context) (*ProfessorDashboard, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	totalSubmissions, err := s.submissionRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	progress := make([]model.StudentProgress, 0, len(students))
	for _, st := range students {
		subs, err := s.submissionRepo.ListByStudent(ctx, st.ID)
		if err != nil {
			return nil, err
		}
		fbs, err := s.feedbackRepo.ListByStudent(ctx, st.ID)
		if err != nil {
			return nil, err
		}
		progress = append(progress, model.StudentProgress{
			Student:          st,
			SubmissionsCount: len(subs),
			FeedbackCount:    len(fbs),
			CompletionRate:   CompletionRate(len(subs), len(questions)),
		})
	}

	return &ProfessorDashboard{
		Questions:        questions,
		StudentProgress:  progress,
		TotalQuestions:   len(questions),
		TotalSubmissions: totalSubmissions,
		TotalStudents:    len(students),
	}, nil
}

type StudentDashboard struct {
	Student            model.Student            `json:"student"`
	Submissions        []model.SubmissionDetail `json:"submissions"`
	Questions          []model.Question         `json:"questions"`
	TotalQuestions     int                      `json:"total_questions"`
	CompletedQuestions int                      `json:"completed_questions"`
	AverageScore       float64                  `json:"average_score"`
}

func (s *DashboardService) StudentDashboard(ctx context.Context, studentID int) (*StudentDashboard, error) {
	student, err := s.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, common.Errorf("student %d: %w", studentID, err)
	}
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := s.submissionRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	fbs, err := s.feedbackRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	var average float64
	if len(fbs) > 0 {
		total := 0
		for _, f := range fbs {
			total += f.Score
		}
		average = float64(total) / float64(len(fbs))
	}

	byID := make(map[int]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	details := make([]model.SubmissionDetail, 0, len(subs))
	for _, sub := range subs {
		detail := model.SubmissionDetail{
			Submission:    sub,
			StudentName:   student.Name,
			QuestionTitle: "Unknown",
			QuestionType:  "Unknown",
		}
		if q, ok := byID[sub.QuestionID]; ok {
			detail.QuestionTitle = q.Title
			detail.QuestionType = string(q.Type)
		}
		detail.Feedback = findFeedback(fbs, sub.ID)
		details = append(details, detail)
	}

	return &StudentDashboard{
		Student:            *student,
		Submissions:        details,
		Questions:          questions,
		TotalQuestions:     len(questions),
		CompletedQuestions: len(subs),
		AverageScore:       average,
	}, nil
}

// StudentQuestions lists every question with whether the student has
// answered it and the feedback received, if any.
func (s *DashboardService) StudentQuestions(ctx context.Context, studentID int) (*model.Student, []model.QuestionStatus, error) {
	student, err := s.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, nil, common.Errorf("student %d: %w", studentID, err)
	}
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	subs, err := s.submissionRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}
	fbs, err := s.feedbackRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}

	submitted := make(map[int]int, len(subs)) // question id -> submission id
	for _, sub := range subs {
		submitted[sub.QuestionID] = sub.ID
	}

	out := make([]model.QuestionStatus, 0, len(questions))
	for _, q := range questions {
		status := model.QuestionStatus{Question: q}
		if subID, ok := submitted[q.ID]; ok {
			status.Submitted = true
			status.Feedback = findFeedback(fbs, subID)
		}
		out = append(out, status)
	}
	return student, out, nil
}

func (s *DashboardService) Analytics(ctx context.Context) (*model.AnalyticsData, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	totalQuestions, err := s.questionRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalSubmissions, err := s.submissionRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	data := &model.AnalyticsData{
		Labels:           make([]string, 0, len(students)),
		CompletionRates:  make([]float64, 0, len(students)),
		TotalQuestions:   totalQuestions,
		TotalSubmissions: totalSubmissions,
	}
	for _, st := range students {
		subs, err := s.submissionRepo.ListByStudent(ctx, st.ID)
		if err != nil {
			return nil, err
		}
		data.Labels = append(data.Labels, st.Name)
		data.CompletionRates = append(data.CompletionRates, CompletionRate(len(subs), totalQuestions))
	}
	return data, nil
}

func findFeedback(fbs []model.Feedback, submissionID int) *model.Feedback {
	for i := range fbs {
		if fbs[i].SubmissionID == submissionID {
			f := fbs[i]
			return &f
		}
	}
	return nil
}
