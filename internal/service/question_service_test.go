package service

import (
	"context"
	"errors"
	"testing"
	"wellnessa_backend/internal/util"
)

func TestListQuestionsCatalog(t *testing.T) {
	svc := NewQuestionService(newAssessmentStub(healthQuestionnaire()))
	entries, err := svc.ListQuestions(context.Background())
	if err != nil {
		t.Fatalf("ListQuestions returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	e := entries[2]
	if e.AssessmentTitle != "Health Assessment" || e.GroupName != "Mental Health" || e.SubgroupName != "Stress" || e.Position != 2 {
		t.Fatalf("unexpected entry %+v", e)
	}
}

func TestAddQuestion(t *testing.T) {
	store := newAssessmentStub(healthQuestionnaire())
	svc := NewQuestionService(store)

	q, err := svc.AddQuestion(context.Background(), NewQuestionRequest{
		SubgroupID: 101,
		Text:       "Do you meditate?",
		Options:    []NewOption{{Text: "Daily", Score: 3}, {Text: "Sometimes", Score: 1}, {Text: "Never", Score: 0}},
	})
	if err != nil {
		t.Fatalf("AddQuestion returned error: %v", err)
	}
	if q.Options[0].Key != "a" || q.Options[2].Key != "c" || q.Options[2].OrderIndex != 2 {
		t.Fatalf("unexpected options %+v", q.Options)
	}

	_, err = svc.AddQuestion(context.Background(), NewQuestionRequest{SubgroupID: 555, Text: "x", Options: []NewOption{{Text: "y"}}})
	if !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("expected not found for unknown subgroup, got %v", err)
	}

	_, err = svc.AddQuestion(context.Background(), NewQuestionRequest{SubgroupID: 101, Text: "x", Options: []NewOption{{Text: "y", Score: -1}}})
	if !errors.Is(err, util.ErrValidation) {
		t.Fatalf("expected validation error for negative score, got %v", err)
	}

	if err := svc.DeleteQuestion(context.Background(), q.ID); err != nil {
		t.Fatalf("DeleteQuestion returned error: %v", err)
	}
	if err := svc.DeleteQuestion(context.Background(), 4242); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
