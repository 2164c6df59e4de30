package model

import (
	"time"

	"gorm.io/datatypes"
)

// Response is one answer as submitted by a client.
type Response struct {
	QuestionID       uint   `json:"questionId" binding:"required"`
	SelectedOptionID string `json:"selectedOptionId" binding:"required"`
}

// ScoredResponse is a Response after scoring. It is stored as a snapshot
// inside the result and never references live questions or options.
type ScoredResponse struct {
	QuestionID       uint   `json:"questionId"`
	SelectedOptionID string `json:"selectedOptionId"`
	Score            int    `json:"score"`
}

// AssessmentResult is written once per submission and never updated.
//
// swagger:model AssessmentResult
type AssessmentResult struct {
	UUIDBase
	UserID       uint                                `gorm:"index;not null" json:"userId"`
	AssessmentID uint                                `gorm:"index;not null" json:"assessmentId"`
	Responses    datatypes.JSONSlice[ScoredResponse] `json:"responses"`
	TotalScore   int                                 `json:"totalScore"`
	MaxScore     int                                 `json:"maxScore"`
	Percentage   int                                 `json:"percentage"`
	Feedback     string                              `gorm:"type:text" json:"feedback"`
	CompletedAt  time.Time                           `gorm:"index" json:"completedAt"`
}

func (AssessmentResult) TableName() string {
	return "assessment_results"
}
