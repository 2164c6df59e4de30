package service

import (
	"context"
	"fmt"
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/util"
	"wellnessa_backend/pkg/logger"

	"go.uber.org/zap"
)

// QuestionService manages the question catalog across all assessments.
type QuestionService struct {
	Assessments AssessmentStore
}

func NewQuestionService(assessments AssessmentStore) *QuestionService {
	return &QuestionService{Assessments: assessments}
}

// CatalogEntry is one question listed with its owning assessment.
type CatalogEntry struct {
	model.FlatQuestion
	AssessmentID    uint   `json:"assessmentId"`
	AssessmentTitle string `json:"assessmentTitle"`
}

type NewOption struct {
	Text  string `json:"text" binding:"required"`
	Score int    `json:"score" binding:"min=0"`
}

type NewQuestionRequest struct {
	SubgroupID uint        `json:"subgroupId" binding:"required"`
	Text       string      `json:"question" binding:"required"`
	Options    []NewOption `json:"options" binding:"required,min=1,dive"`
}

// ListQuestions returns every question of every assessment in flatten
// order, assessments by id.
func (s *QuestionService) ListQuestions(ctx context.Context) ([]CatalogEntry, error) {
	assessments, err := s.Assessments.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	entries := []CatalogEntry{}
	for i := range assessments {
		a := &assessments[i]
		for _, fq := range model.Flatten(a) {
			entries = append(entries, CatalogEntry{
				FlatQuestion:    fq,
				AssessmentID:    a.ID,
				AssessmentTitle: a.Title,
			})
		}
	}
	return entries, nil
}

// AddQuestion appends a question to a subgroup. Options get keys a, b, c...
// in the order given.
func (s *QuestionService) AddQuestion(ctx context.Context, req NewQuestionRequest) (*model.Question, error) {
	if _, _, err := s.Assessments.FindSubgroup(ctx, req.SubgroupID); err != nil {
		return nil, err
	}

	q := &model.Question{SubgroupID: req.SubgroupID, Text: req.Text}
	for i, o := range req.Options {
		q.Options = append(q.Options, model.Option{
			Key:        model.OptionKey(i),
			Text:       o.Text,
			Score:      o.Score,
			OrderIndex: i,
		})
	}
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", util.ErrValidation, err)
	}

	if err := s.Assessments.CreateQuestion(ctx, q); err != nil {
		return nil, err
	}
	logger.Log.Info("Question added", zap.Uint("id", q.ID), zap.Uint("subgroupId", q.SubgroupID))
	return q, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) error {
	if err := s.Assessments.DeleteQuestion(ctx, id); err != nil {
		return err
	}
	logger.Log.Info("Question deleted", zap.Uint("id", id))
	return nil
}
