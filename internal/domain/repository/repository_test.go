package repository

import (
	"context"
	"errors"
	"testing"

	"edu_hub/internal/common"
	"edu_hub/internal/domain/model"
)

func TestQuestionIDsStrictlyIncrease(t *testing.T) {
	ctx := context.Background()
	repo := NewMemQuestionRepository()

	// Seeded ids advance the counter past them.
	for _, id := range []int{1, 2, 3} {
		if err := repo.Create(ctx, &model.Question{ID: id, Title: "seed"}); err != nil {
			t.Fatalf("seed %d: %v", id, err)
		}
	}

	seen := map[int]bool{1: true, 2: true, 3: true}
	last := 3
	for i := 0; i < 5; i++ {
		q := &model.Question{Title: "new"}
		if err := repo.Create(ctx, q); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if q.ID <= last {
			t.Fatalf("id %d not greater than previous %d", q.ID, last)
		}
		if seen[q.ID] {
			t.Fatalf("id %d reused", q.ID)
		}
		seen[q.ID] = true
		last = q.ID
	}
	if n, _ := repo.Count(ctx); n != 8 {
		t.Errorf("Count = %d, want 8", n)
	}
}

func TestSubmissionUniquePerStudentQuestion(t *testing.T) {
	ctx := context.Background()
	repo := NewMemSubmissionRepository()

	first := &model.Submission{StudentID: 1, QuestionID: 2, Answer: "original"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	dup := &model.Submission{StudentID: 1, QuestionID: 2, Answer: "changed"}
	err := repo.Create(ctx, dup)
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}

	got, err := repo.FindByStudentAndQuestion(ctx, 1, 2)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got.Answer != "original" || got.ID != first.ID {
		t.Errorf("stored submission changed: %+v", got)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}

	// Another student may answer the same question.
	if err := repo.Create(ctx, &model.Submission{StudentID: 2, QuestionID: 2}); err != nil {
		t.Errorf("second student: %v", err)
	}
}

func TestFeedbackReplaceKeepsOnePerSubmission(t *testing.T) {
	ctx := context.Background()
	repo := NewMemFeedbackRepository()

	_ = repo.Replace(ctx, &model.Feedback{SubmissionID: 7, StudentID: 1, Text: "ok", Score: 5})
	_ = repo.Replace(ctx, &model.Feedback{SubmissionID: 8, StudentID: 1, Text: "other", Score: 9})
	latest := &model.Feedback{SubmissionID: 7, StudentID: 1, Text: "much better", Score: 8}
	if err := repo.Replace(ctx, latest); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if n, _ := repo.Count(ctx); n != 2 {
		t.Fatalf("Count = %d, want 2", n)
	}
	got, err := repo.FindBySubmission(ctx, 7)
	if err != nil {
		t.Fatalf("FindBySubmission: %v", err)
	}
	if got.Text != "much better" || got.Score != 8 || got.ID != latest.ID {
		t.Errorf("got %+v, want latest values", got)
	}
	if latest.ID != 3 {
		t.Errorf("replacement id = %d, want fresh id 3", latest.ID)
	}
}

func TestStudyGroupAddMember(t *testing.T) {
	ctx := context.Background()
	repo := NewMemStudyGroupRepository()
	g := &model.StudyGroup{Name: "Algo", Members: []int{1}, CreatedBy: 1, Active: true}
	if err := repo.Create(ctx, g); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := repo.AddMember(ctx, g.ID, 2); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	_, err := repo.AddMember(ctx, g.ID, 2)
	if !errors.Is(err, common.ErrAlreadyMember) {
		t.Fatalf("err = %v, want ErrAlreadyMember", err)
	}
	got, _ := repo.FindByID(ctx, g.ID)
	if len(got.Members) != 2 {
		t.Errorf("members = %v, want [1 2]", got.Members)
	}

	if _, err := repo.AddMember(ctx, 99, 1); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("unknown group err = %v", err)
	}

	// Returned groups do not alias stored membership.
	got.Members[0] = 42
	again, _ := repo.FindByID(ctx, g.ID)
	if again.Members[0] != 1 {
		t.Error("FindByID result aliases stored members")
	}

	mine, _ := repo.ListByMember(ctx, 2)
	if len(mine) != 1 {
		t.Errorf("ListByMember(2) = %d groups", len(mine))
	}
}

func TestGroupMessages(t *testing.T) {
	ctx := context.Background()
	repo := NewMemStudyGroupRepository()
	g := &model.StudyGroup{Name: "A", Members: []int{1}}
	_ = repo.Create(ctx, g)

	if err := repo.PostMessage(ctx, &model.GroupMessage{GroupID: 5, StudentID: 1, Text: "x"}); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("unknown group err = %v", err)
	}
	_ = repo.PostMessage(ctx, &model.GroupMessage{GroupID: g.ID, StudentID: 1, Text: "hello"})
	msgs, _ := repo.ListMessages(ctx, g.ID)
	if len(msgs) != 1 || msgs[0].Text != "hello" || msgs[0].ID != 1 {
		t.Errorf("messages = %+v", msgs)
	}
}

func TestPairSessionUpdateCode(t *testing.T) {
	ctx := context.Background()
	repo := NewMemPairSessionRepository()
	s := &model.PairSession{Student1ID: 1, Student2ID: 2, Code: model.DefaultPairCode, Active: true}
	_ = repo.Create(ctx, s)

	if err := repo.UpdateCode(ctx, s.ID, "print('hi')"); err != nil {
		t.Fatalf("UpdateCode: %v", err)
	}
	got, _ := repo.FindByID(ctx, s.ID)
	if got.Code != "print('hi')" {
		t.Errorf("code = %q", got.Code)
	}
	if err := repo.UpdateCode(ctx, 404, "x"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("unknown session err = %v", err)
	}

	active, _ := repo.ListActiveForStudent(ctx, 2)
	if len(active) != 1 {
		t.Errorf("active sessions for 2 = %d", len(active))
	}
	none, _ := repo.ListActiveForStudent(ctx, 3)
	if len(none) != 0 {
		t.Errorf("active sessions for 3 = %d", len(none))
	}
}

func TestCodeShareComments(t *testing.T) {
	ctx := context.Background()
	repo := NewMemCodeShareRepository()
	share := &model.CodeShare{StudentID: 1, Title: "qs", Code: "..."}
	_ = repo.Create(ctx, share)

	got, _ := repo.FindByID(ctx, share.ID)
	if got.Comments == nil {
		t.Error("Comments should be an empty list, not nil")
	}

	if err := repo.AddComment(ctx, &model.Comment{ShareID: share.ID, StudentID: 2, Text: "use a stack"}); err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if err := repo.AddComment(ctx, &model.Comment{ShareID: 77, StudentID: 2}); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("unknown share err = %v", err)
	}
	got, _ = repo.FindByID(ctx, share.ID)
	if len(got.Comments) != 1 || got.Comments[0].Text != "use a stack" {
		t.Errorf("comments = %+v", got.Comments)
	}
}

func TestStudentRepositoryRejectsDuplicatePresetID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemStudentRepository()
	_ = repo.Create(ctx, &model.Student{ID: 4, Name: "A"})
	if err := repo.Create(ctx, &model.Student{ID: 4, Name: "B"}); !errors.Is(err, common.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
	s := &model.Student{Name: "C"}
	_ = repo.Create(ctx, s)
	if s.ID != 5 {
		t.Errorf("next id = %d, want 5", s.ID)
	}
	if _, err := repo.FindByID(ctx, 1); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("FindByID(1) err = %v", err)
	}
}
