package database

import (
	"context"
	"fmt"
	"time"

	"edu_hub/internal/domain/model"

	"github.com/gosimple/slug"
)

func seedTime(hour, minute int) time.Time {
	return time.Date(2025, time.August, 7, hour, minute, 0, 0, time.Local)
}

var seedStudents = []model.Student{
	{ID: 1, Name: "Arjun Sharma", Email: "arjun.sharma@university.edu"},
	{ID: 2, Name: "Priya Patel", Email: "priya.patel@university.edu"},
	{ID: 3, Name: "Rahul Kumar", Email: "rahul.kumar@university.edu"},
	{ID: 4, Name: "Sneha Singh", Email: "sneha.singh@university.edu"},
	{ID: 5, Name: "Vikram Reddy", Email: "vikram.reddy@university.edu"},
	{ID: 6, Name: "Ananya Gupta", Email: "ananya.gupta@university.edu"},
	{ID: 7, Name: "Karthik Nair", Email: "karthik.nair@university.edu"},
	{ID: 8, Name: "Meera Joshi", Email: "meera.joshi@university.edu"},
}

func seedQuestions() []model.Question {
	return []model.Question{
		{
			ID:          1,
			Type:        model.QuestionTypeCoding,
			Title:       "Two Sum Problem",
			Description: "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target. You may assume that each input would have exactly one solution, and you may not use the same element twice.",
			Difficulty:  "Easy",
			CreatedAt:   seedTime(12, 0),
		},
		{
			ID:          2,
			Type:        model.QuestionTypeInterview,
			Title:       "Explain OOP Principles",
			Description: "Explain the four main principles of Object-Oriented Programming (OOP) with examples. Discuss how each principle helps in software development.",
			Difficulty:  "Medium",
			CreatedAt:   seedTime(12, 15),
		},
		{
			ID:          3,
			Type:        model.QuestionTypeCoding,
			Title:       "Binary Search Implementation",
			Description: "Implement binary search algorithm to find a target value in a sorted array. The function should return the index of the target if found, otherwise return -1.",
			Difficulty:  "Medium",
			CreatedAt:   seedTime(12, 30),
		},
	}
}

func seedGroups() []model.StudyGroup {
	return []model.StudyGroup{
		{
			ID:          1,
			Name:        "Delhi Code Warriors",
			Description: "Advanced DSA problem solving and competitive programming practice",
			Members:     []int{1, 2, 3},
			CreatedBy:   1,
			CreatedAt:   seedTime(10, 0),
			Active:      true,
		},
		{
			ID:          2,
			Name:        "Mumbai Tech Circle",
			Description: "System design interviews and tech discussion group",
			Members:     []int{2, 4, 6},
			CreatedBy:   2,
			CreatedAt:   seedTime(11, 30),
			Active:      true,
		},
		{
			ID:          3,
			Name:        "Bangalore AI Study Group",
			Description: "Machine learning, AI concepts, and Python programming",
			Members:     []int{5, 7, 8},
			CreatedBy:   5,
			CreatedAt:   seedTime(12, 0),
			Active:      true,
		},
	}
}

func seedShares() []model.CodeShare {
	return []model.CodeShare{
		{
			ID:          1,
			StudentID:   1,
			Title:       "Binary Tree Inorder Traversal",
			Code:        "def inorderTraversal(root):\n    if not root:\n        return []\n    return inorderTraversal(root.left) + [root.val] + inorderTraversal(root.right)",
			Description: "Simple recursive solution for inorder traversal. Need help optimizing for space complexity.",
			HelpNeeded:  true,
			CreatedAt:   seedTime(11, 0),
		},
		{
			ID:          2,
			StudentID:   3,
			Title:       "Quick Sort Algorithm",
			Code:        "def quicksort(arr):\n    if len(arr) <= 1:\n        return arr\n    pivot = arr[len(arr) // 2]\n    left = [x for x in arr if x < pivot]\n    middle = [x for x in arr if x == pivot]\n    right = [x for x in arr if x > pivot]\n    return quicksort(left) + middle + quicksort(right)",
			Description: "Clean implementation of quicksort with good partition strategy.",
			HelpNeeded:  false,
			CreatedAt:   seedTime(11, 30),
		},
	}
}

// Seed loads the demo roster, questions, study groups and code shares.
// Id counters continue after the seeded ids.
func Seed(ctx context.Context, s *Store) error {
	for _, st := range seedStudents {
		if err := s.Students.Create(ctx, &st); err != nil {
			return fmt.Errorf("seed student %d: %w", st.ID, err)
		}
	}
	for _, q := range seedQuestions() {
		q.Slug = slug.Make(q.Title)
		q.AssignedTo = model.AssignedToAll
		if err := s.Questions.Create(ctx, &q); err != nil {
			return fmt.Errorf("seed question %d: %w", q.ID, err)
		}
	}
	for _, g := range seedGroups() {
		g.Slug = slug.Make(g.Name)
		if err := s.Groups.Create(ctx, &g); err != nil {
			return fmt.Errorf("seed group %d: %w", g.ID, err)
		}
	}
	for _, sh := range seedShares() {
		if err := s.Shares.Create(ctx, &sh); err != nil {
			return fmt.Errorf("seed code share %d: %w", sh.ID, err)
		}
	}
	return nil
}
