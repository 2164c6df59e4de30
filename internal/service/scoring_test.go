package service

import (
	"errors"
	"testing"
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/util"
)

func TestPercentageRounding(t *testing.T) {
	cases := []struct {
		total, max, want int
	}{
		{14, 20, 70},
		{0, 7, 0},
		{7, 7, 100},
		{1, 8, 13},  // 12.5 rounds up
		{1, 3, 33},  // 33.3
		{2, 3, 67},  // 66.7
		{5, 40, 13}, // 12.5 rounds up
		{1, 200, 1}, // 0.5 rounds up
		{1, 201, 0},
	}
	for _, c := range cases {
		got, err := Percentage(c.total, c.max)
		if err != nil {
			t.Fatalf("Percentage(%d,%d) returned error: %v", c.total, c.max, err)
		}
		if got != c.want {
			t.Fatalf("Percentage(%d,%d)=%d, want %d", c.total, c.max, got, c.want)
		}
	}
}

func TestPercentageZeroMax(t *testing.T) {
	_, err := Percentage(0, 0)
	if !errors.Is(err, util.ErrValidation) || !errors.Is(err, util.ErrDivisionUndefined) {
		t.Fatalf("expected division undefined validation error, got %v", err)
	}
}

func TestFeedbackThresholds(t *testing.T) {
	cases := []struct {
		pct  int
		want string
		tier string
	}{
		{100, FeedbackExcellent, "excellent"},
		{80, FeedbackExcellent, "excellent"},
		{79, FeedbackGood, "good"},
		{60, FeedbackGood, "good"},
		{59, FeedbackFair, "fair"},
		{40, FeedbackFair, "fair"},
		{39, FeedbackPoor, "poor"},
		{0, FeedbackPoor, "poor"},
	}
	for _, c := range cases {
		if got := FeedbackFor(c.pct); got != c.want {
			t.Fatalf("FeedbackFor(%d)=%q, want %q", c.pct, got, c.want)
		}
		if got := FeedbackTier(c.pct); got != c.tier {
			t.Fatalf("FeedbackTier(%d)=%q, want %q", c.pct, got, c.tier)
		}
	}
}

func TestScoreResponses(t *testing.T) {
	a := healthQuestionnaire()
	card, err := ScoreResponses(a, []model.Response{
		{QuestionID: 1, SelectedOptionID: "b"},
		{QuestionID: 2, SelectedOptionID: "a"},
		{QuestionID: 3, SelectedOptionID: "b"},
	})
	if err != nil {
		t.Fatalf("ScoreResponses returned error: %v", err)
	}
	if card.TotalScore != 6 || card.MaxScore != 12 {
		t.Fatalf("unexpected totals %d/%d", card.TotalScore, card.MaxScore)
	}
	if card.Percentage != 50 || card.Feedback != FeedbackFair {
		t.Fatalf("unexpected percentage %d feedback %q", card.Percentage, card.Feedback)
	}
	wantScores := []int{2, 3, 1}
	for i, r := range card.Responses {
		if r.Score != wantScores[i] {
			t.Fatalf("response %d scored %d, want %d", i, r.Score, wantScores[i])
		}
	}
}

func TestScoreResponsesOnlyAnsweredQuestionsCount(t *testing.T) {
	card, err := ScoreResponses(healthQuestionnaire(), []model.Response{
		{QuestionID: 3, SelectedOptionID: "a"},
	})
	if err != nil {
		t.Fatalf("ScoreResponses returned error: %v", err)
	}
	if card.MaxScore != 5 || card.Percentage != 100 {
		t.Fatalf("expected 5/5 = 100%%, got %d/%d = %d", card.TotalScore, card.MaxScore, card.Percentage)
	}
}

func TestScoreResponsesUnknownIDs(t *testing.T) {
	card, err := ScoreResponses(healthQuestionnaire(), []model.Response{
		{QuestionID: 1, SelectedOptionID: "a"},
		{QuestionID: 1, SelectedOptionID: "zz"},
		{QuestionID: 99, SelectedOptionID: "a"},
	})
	if err != nil {
		t.Fatalf("ScoreResponses returned error: %v", err)
	}
	// unknown option still counts the question's max, unknown question does not
	if card.TotalScore != 4 || card.MaxScore != 8 {
		t.Fatalf("unexpected totals %d/%d", card.TotalScore, card.MaxScore)
	}
	if len(card.Responses) != 3 || card.Responses[2].Score != 0 || card.Responses[2].QuestionID != 99 {
		t.Fatalf("unknown question response not kept as-is: %+v", card.Responses)
	}
}

func TestScoreResponsesRejects(t *testing.T) {
	if _, err := ScoreResponses(healthQuestionnaire(), nil); !errors.Is(err, util.ErrEmptyResponses) {
		t.Fatalf("expected empty responses error, got %v", err)
	}
	_, err := ScoreResponses(healthQuestionnaire(), []model.Response{{QuestionID: 42, SelectedOptionID: "a"}})
	if !errors.Is(err, util.ErrDivisionUndefined) {
		t.Fatalf("expected division undefined error, got %v", err)
	}
}

func TestScoreResponsesBounds(t *testing.T) {
	a := healthQuestionnaire()
	keys := []string{"a", "b", "c", "x"}
	for _, k1 := range keys {
		for _, k2 := range keys {
			for _, k3 := range keys {
				card, err := ScoreResponses(a, []model.Response{
					{QuestionID: 1, SelectedOptionID: k1},
					{QuestionID: 2, SelectedOptionID: k2},
					{QuestionID: 3, SelectedOptionID: k3},
				})
				if err != nil {
					t.Fatalf("ScoreResponses returned error: %v", err)
				}
				if card.TotalScore > card.MaxScore || card.Percentage < 0 || card.Percentage > 100 {
					t.Fatalf("out of bounds for %s%s%s: %+v", k1, k2, k3, card)
				}
			}
		}
	}
}
