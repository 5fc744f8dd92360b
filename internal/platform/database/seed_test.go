package database

import (
	"context"
	"testing"

	"edu_hub/internal/domain/model"
)

func TestSeedLoadsDemoDataAndAdvancesCounters(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	if err := Seed(ctx, s); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	students, _ := s.Students.List(ctx)
	if len(students) != 8 {
		t.Errorf("students = %d, want 8", len(students))
	}
	if n, _ := s.Questions.Count(ctx); n != 3 {
		t.Errorf("questions = %d, want 3", n)
	}

	q, err := s.Questions.FindByID(ctx, 1)
	if err != nil {
		t.Fatalf("question 1: %v", err)
	}
	if q.Slug != "two-sum-problem" || q.AssignedTo != model.AssignedToAll {
		t.Errorf("question 1 = %+v", q)
	}

	next := &model.Question{Title: "Reverse a Linked List"}
	_ = s.Questions.Create(ctx, next)
	if next.ID != 4 {
		t.Errorf("next question id = %d, want 4", next.ID)
	}
	g := &model.StudyGroup{Name: "New"}
	_ = s.Groups.Create(ctx, g)
	if g.ID != 4 {
		t.Errorf("next group id = %d, want 4", g.ID)
	}
	sh := &model.CodeShare{Title: "x"}
	_ = s.Shares.Create(ctx, sh)
	if sh.ID != 3 {
		t.Errorf("next share id = %d, want 3", sh.ID)
	}
}
