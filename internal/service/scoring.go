package service

import (
	"fmt"
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/util"
)

const (
	FeedbackExcellent = "Excellent! You're maintaining great health habits."
	FeedbackGood      = "Good progress! Focus on areas where you can improve."
	FeedbackFair      = "There's room for improvement. Consider consulting with a healthcare professional."
	FeedbackPoor      = "We recommend speaking with a healthcare provider about your wellness plan."
)

// Feedback tiers, lower bounds inclusive.
const (
	excellentThreshold = 80
	goodThreshold      = 60
	fairThreshold      = 40
)

// ScoreCard is the outcome of scoring one submission.
type ScoreCard struct {
	Responses  []model.ScoredResponse
	TotalScore int
	MaxScore   int
	Percentage int
	Feedback   string
}

// ScoreResponses scores responses against a hydrated assessment.
//
// A response whose question is not part of the assessment is kept with
// score 0 and does not count towards MaxScore. A response naming an unknown
// option scores 0 but its question still contributes its maximum.
func ScoreResponses(a *model.Assessment, responses []model.Response) (*ScoreCard, error) {
	if len(responses) == 0 {
		return nil, fmt.Errorf("%w: %w", util.ErrValidation, util.ErrEmptyResponses)
	}

	card := &ScoreCard{Responses: make([]model.ScoredResponse, 0, len(responses))}
	for _, r := range responses {
		scored := model.ScoredResponse{QuestionID: r.QuestionID, SelectedOptionID: r.SelectedOptionID}

		q := model.FindQuestion(a, r.QuestionID)
		if q != nil {
			if opt := q.FindOption(r.SelectedOptionID); opt != nil {
				scored.Score = opt.Score
			}
			if best, ok := q.MaxScore(); ok {
				card.MaxScore += best
			}
		}

		card.TotalScore += scored.Score
		card.Responses = append(card.Responses, scored)
	}

	pct, err := Percentage(card.TotalScore, card.MaxScore)
	if err != nil {
		return nil, err
	}
	card.Percentage = pct
	card.Feedback = FeedbackFor(pct)
	return card, nil
}

// Percentage returns round(total/max*100) with halves rounded up.
func Percentage(total, maxScore int) (int, error) {
	if maxScore <= 0 {
		return 0, fmt.Errorf("%w: %w", util.ErrValidation, util.ErrDivisionUndefined)
	}
	return (200*total + maxScore) / (2 * maxScore), nil
}

func FeedbackFor(percentage int) string {
	switch {
	case percentage >= excellentThreshold:
		return FeedbackExcellent
	case percentage >= goodThreshold:
		return FeedbackGood
	case percentage >= fairThreshold:
		return FeedbackFair
	}
	return FeedbackPoor
}

// FeedbackTier names the feedback band, used as a metric label.
func FeedbackTier(percentage int) string {
	switch {
	case percentage >= excellentThreshold:
		return "excellent"
	case percentage >= goodThreshold:
		return "good"
	case percentage >= fairThreshold:
		return "fair"
	}
	return "poor"
}
