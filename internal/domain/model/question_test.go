package model

import "testing"

func TestQuestionTypeLabel(t *testing.T) {
	tests := map[QuestionType]string{
		QuestionTypeCoding:    "Coding",
		QuestionTypeInterview: "Interview",
		"SYSTEM design":       "System Design",
		"multiple-choice":     "Multiple-Choice",
		"écrit":               "Écrit",
		"":                    "",
	}
	for in, want := range tests {
		if got := in.Label(); got != want {
			t.Errorf("%q.Label() = %q, want %q", in, got, want)
		}
	}
}

func TestStudyGroupHasMember(t *testing.T) {
	g := StudyGroup{Members: []int{1, 3}}
	if !g.HasMember(3) || g.HasMember(2) {
		t.Errorf("HasMember wrong for %v", g.Members)
	}
}

func TestPairSessionIncludes(t *testing.T) {
	s := PairSession{Student1ID: 4, Student2ID: 7}
	if !s.Includes(4) || !s.Includes(7) || s.Includes(5) {
		t.Error("Includes wrong")
	}
}
