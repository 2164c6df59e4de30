package service

import (
	"sort"
	"wellnessa_backend/internal/model"
)

const (
	// trendBand is the difference in percentage points between the two
	// halves of a history that counts as a change.
	trendBand = 5

	noDataMessage = "No assessment data available"
)

// Analyze builds the trend summary of one user's results. The input order
// does not matter: results are ordered by completion time, then id. The returned series is ordered most recent first.
func Analyze(results []model.AssessmentResult) *model.AnalyticsSummary {
	if len(results) == 0 {
		return &model.AnalyticsSummary{Trend: model.TrendNoData, Message: noDataMessage}
	}

	ordered := make([]model.AssessmentResult, len(results))
	copy(ordered, results)
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].CompletedAt.Equal(ordered[j].CompletedAt) {
			return ordered[i].CompletedAt.Before(ordered[j].CompletedAt)
		}
		return ordered[i].ID < ordered[j].ID
	})

	points := make([]model.ScorePoint, len(ordered))
	for i, r := range ordered {
		points[i] = model.ScorePoint{Date: r.CompletedAt, Score: r.Percentage}
	}

	sum := 0
	for _, p := range points {
		sum += p.Score
	}
	n := len(points)
	latest := points[n-1].Score
	average := (2*sum + n) / (2 * n)

	series := make([]model.ScorePoint, n)
	for i, p := range points {
		series[n-1-i] = p
	}

	return &model.AnalyticsSummary{
		Trend:            trendOf(points),
		LatestScore:      &latest,
		AverageScore:     &average,
		TotalAssessments: n,
		Scores:           series,
	}
}

// trendOf compares the mean of the first ceil(n/2) points with the mean of
// the rest. points must be in chronological order.
func trendOf(points []model.ScorePoint) model.Trend {
	split := (len(points) + 1) / 2
	first, second := points[:split], points[split:]
	if len(first) == 0 || len(second) == 0 {
		return model.TrendStable
	}

	firstSum, secondSum := 0, 0
	for _, p := range first {
		firstSum += p.Score
	}
	for _, p := range second {
		secondSum += p.Score
	}

	// Means compared without division: a/na vs b/nb scaled by na*nb.
	nf, ns := len(first), len(second)
	scaledFirst := firstSum * ns
	scaledSecond := secondSum * nf
	band := trendBand * nf * ns

	switch {
	case scaledSecond > scaledFirst+band:
		return model.TrendImproving
	case scaledSecond < scaledFirst-band:
		return model.TrendDeclining
	}
	return model.TrendStable
}
