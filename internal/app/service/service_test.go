package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"edu_hub/internal/common"
	"edu_hub/internal/domain/model"
	"edu_hub/internal/platform/database"
)

type services struct {
	store         *database.Store
	questions     *QuestionService
	submissions   *SubmissionService
	dashboard     *DashboardService
	collaboration *CollaborationService
}

func newServices(t *testing.T) services {
	t.Helper()
	store := database.NewMemoryStore()
	if err := database.Seed(context.Background(), store); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return services{
		store:         store,
		questions:     NewQuestionService(store.Questions),
		submissions:   NewSubmissionService(store.Submissions, store.Feedback, store.Questions, store.Students),
		dashboard:     NewDashboardService(store.Students, store.Questions, store.Submissions, store.Feedback),
		collaboration: NewCollaborationService(store.Groups, store.Sessions, store.Shares, store.Students),
	}
}

func TestAssignQuestion(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	tests := []struct {
		name    string
		req     AssignQuestionRequest
		wantErr error
	}{
		{"missing title", AssignQuestionRequest{Type: "coding", Description: "d", Difficulty: "Easy"}, common.ErrBadRequest},
		{"missing difficulty", AssignQuestionRequest{Type: "coding", Title: "t", Description: "d"}, common.ErrBadRequest},
		{"valid", AssignQuestionRequest{Type: "interview", Title: "Tell Me About Yourself", Description: "d", Difficulty: "Anything"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := s.questions.AssignQuestion(ctx, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if q.ID != 4 {
				t.Errorf("id = %d, want 4", q.ID)
			}
			if q.Slug != "tell-me-about-yourself" || q.AssignedTo != model.AssignedToAll {
				t.Errorf("question = %+v", q)
			}
		})
	}
}

func TestAssignQuestionIDsIncrease(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	prev := 0
	for i := 0; i < 3; i++ {
		q, err := s.questions.AssignQuestion(ctx, AssignQuestionRequest{Type: "coding", Title: "T", Description: "D", Difficulty: "Hard"})
		if err != nil {
			t.Fatal(err)
		}
		if q.ID <= prev || q.ID <= 3 {
			t.Fatalf("id %d not increasing (prev %d)", q.ID, prev)
		}
		prev = q.ID
	}
}

func TestDuplicateSubmissionRejected(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	first, err := s.submissions.SubmitAnswer(ctx, SubmitAnswerRequest{StudentID: 1, QuestionID: 1, Answer: "hash map"})
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	_, err = s.submissions.SubmitAnswer(ctx, SubmitAnswerRequest{StudentID: 1, QuestionID: 1, Answer: "brute force"})
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("second err = %v, want ErrConflict", err)
	}

	_, subs, err := s.submissions.SubmissionsForQuestion(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 1 || subs[0].ID != first.ID || subs[0].Answer != "hash map" {
		t.Errorf("submissions = %+v", subs)
	}
	if subs[0].StudentName != "Arjun Sharma" {
		t.Errorf("StudentName = %q", subs[0].StudentName)
	}
}

func TestFeedbackReplacement(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	sub, _ := s.submissions.SubmitAnswer(ctx, SubmitAnswerRequest{StudentID: 2, QuestionID: 3, Answer: "lo, hi"})
	if _, err := s.submissions.ProvideFeedback(ctx, ProvideFeedbackRequest{SubmissionID: sub.ID, Feedback: "off by one", Score: 4}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.submissions.ProvideFeedback(ctx, ProvideFeedbackRequest{SubmissionID: sub.ID, Feedback: "fixed", Score: 9}); err != nil {
		t.Fatal(err)
	}

	if n, _ := s.store.Feedback.Count(ctx); n != 1 {
		t.Fatalf("feedback count = %d, want 1", n)
	}
	_, subs, _ := s.submissions.SubmissionsForQuestion(ctx, 3)
	fb := subs[0].Feedback
	if fb == nil || fb.Text != "fixed" || fb.Score != 9 {
		t.Errorf("feedback = %+v", fb)
	}
	if fb.StudentID != 2 || fb.QuestionID != 3 {
		t.Errorf("feedback not linked to submission's student/question: %+v", fb)
	}

	_, err := s.submissions.ProvideFeedback(ctx, ProvideFeedbackRequest{SubmissionID: 999, Feedback: "x"})
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("unknown submission err = %v", err)
	}
}

func TestSubmissionsForUnknownQuestion(t *testing.T) {
	s := newServices(t)
	if _, _, err := s.submissions.SubmissionsForQuestion(context.Background(), 42); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("err = %v", err)
	}
}

func TestAnalyticsCompletionRate(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	_, _ = s.submissions.SubmitAnswer(ctx, SubmitAnswerRequest{StudentID: 1, QuestionID: 1, Answer: "a"})
	_, _ = s.submissions.SubmitAnswer(ctx, SubmitAnswerRequest{StudentID: 1, QuestionID: 2, Answer: "b"})
	_, _ = s.submissions.SubmitAnswer(ctx, SubmitAnswerRequest{StudentID: 4, QuestionID: 3, Answer: "c"})

	data, err := s.dashboard.Analytics(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if data.TotalQuestions != 3 || data.TotalSubmissions != 3 {
		t.Errorf("totals = %d/%d", data.TotalQuestions, data.TotalSubmissions)
	}
	if len(data.Labels) != 8 || len(data.CompletionRates) != 8 {
		t.Fatalf("got %d labels, %d rates", len(data.Labels), len(data.CompletionRates))
	}

	students, _ := s.store.Students.List(ctx)
	for i, st := range students {
		subs, _ := s.store.Submissions.ListByStudent(ctx, st.ID)
		want := float64(len(subs)) / float64(data.TotalQuestions) * 100
		if math.Abs(data.CompletionRates[i]-want) > 1e-9 {
			t.Errorf("%s: rate = %v, want %v", st.Name, data.CompletionRates[i], want)
		}
		if data.Labels[i] != st.Name {
			t.Errorf("label %d = %q, want %q", i, data.Labels[i], st.Name)
		}
	}
}

func TestCompletionRateWithoutQuestions(t *testing.T) {
	if got := CompletionRate(0, 0); got != 0 {
		t.Errorf("CompletionRate(0,0) = %v", got)
	}
	if got := CompletionRate(2, 0); got != 200 {
		t.Errorf("CompletionRate(2,0) = %v", got)
	}
	if got := CompletionRate(1, 4); got != 25 {
		t.Errorf("CompletionRate(1,4) = %v", got)
	}
}

func TestStudentDashboard(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	a, _ := s.submissions.SubmitAnswer(ctx, SubmitAnswerRequest{StudentID: 3, QuestionID: 1, Answer: "a"})
	b, _ := s.submissions.SubmitAnswer(ctx, SubmitAnswerRequest{StudentID: 3, QuestionID: 2, Answer: "b"})
	_, _ = s.submissions.ProvideFeedback(ctx, ProvideFeedbackRequest{SubmissionID: a.ID, Feedback: "good", Score: 7})
	_, _ = s.submissions.ProvideFeedback(ctx, ProvideFeedbackRequest{SubmissionID: b.ID, Feedback: "great", Score: 10})

	dash, err := s.dashboard.StudentDashboard(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if dash.CompletedQuestions != 2 || dash.TotalQuestions != 3 {
		t.Errorf("completed %d of %d", dash.CompletedQuestions, dash.TotalQuestions)
	}
	if dash.AverageScore != 8.5 {
		t.Errorf("AverageScore = %v, want 8.5", dash.AverageScore)
	}
	if dash.Submissions[0].QuestionTitle != "Two Sum Problem" || dash.Submissions[0].QuestionType != "coding" {
		t.Errorf("join = %+v", dash.Submissions[0])
	}

	empty, _ := s.dashboard.StudentDashboard(ctx, 5)
	if empty.AverageScore != 0 {
		t.Errorf("no feedback average = %v", empty.AverageScore)
	}
	if _, err := s.dashboard.StudentDashboard(ctx, 99); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("unknown student err = %v", err)
	}
}

func TestStudentQuestionsMarksSubmitted(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	sub, _ := s.submissions.SubmitAnswer(ctx, SubmitAnswerRequest{StudentID: 6, QuestionID: 2, Answer: "encapsulation..."})
	_, _ = s.submissions.ProvideFeedback(ctx, ProvideFeedbackRequest{SubmissionID: sub.ID, Feedback: "ok", Score: 6})

	_, qs, err := s.dashboard.StudentQuestions(ctx, 6)
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range qs {
		if q.ID == 2 {
			if !q.Submitted || q.Feedback == nil || q.Feedback.Score != 6 {
				t.Errorf("question 2 status = %+v", q)
			}
		} else if q.Submitted || q.Feedback != nil {
			t.Errorf("question %d unexpectedly submitted", q.ID)
		}
	}
}

func TestProfessorDashboard(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	sub, _ := s.submissions.SubmitAnswer(ctx, SubmitAnswerRequest{StudentID: 1, QuestionID: 1, Answer: "x"})
	_, _ = s.submissions.ProvideFeedback(ctx, ProvideFeedbackRequest{SubmissionID: sub.ID, Feedback: "y", Score: 1})

	dash, err := s.dashboard.ProfessorDashboard(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if dash.TotalStudents != 8 || dash.TotalQuestions != 3 || dash.TotalSubmissions != 1 {
		t.Errorf("totals = %+v", dash)
	}
	p := dash.StudentProgress[0]
	if p.Student.ID != 1 || p.SubmissionsCount != 1 || p.FeedbackCount != 1 {
		t.Errorf("progress[0] = %+v", p)
	}
	if math.Abs(p.CompletionRate-100.0/3) > 1e-9 {
		t.Errorf("completion = %v", p.CompletionRate)
	}
}
