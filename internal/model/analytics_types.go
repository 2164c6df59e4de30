package model

import "time"

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
	TrendNoData    Trend = "no-data"
)

// ScorePoint is one (date, percentage) pair of a user's history.
type ScorePoint struct {
	Date  time.Time `json:"date"`
	Score int       `json:"score"`
}

// AnalyticsSummary is the trend report over one user's results. With no
// results only Trend and Message are set.
type AnalyticsSummary struct {
	Trend            Trend        `json:"trend"`
	Message          string       `json:"message,omitempty"`
	LatestScore      *int         `json:"latestScore,omitempty"`
	AverageScore     *int         `json:"averageScore,omitempty"`
	TotalAssessments int          `json:"totalAssessments,omitempty"`
	Scores           []ScorePoint `json:"scores,omitempty"`
}

func (s *AnalyticsSummary) HasData() bool {
	return s.Trend != TrendNoData
}
