package service

import (
	"context"
	"time"
	"wellnessa_backend/internal/model"
)

// The services depend on these narrow store contracts; the gorm and redis
// implementations live in the repository package.

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	MarkAssessmentCompleted(ctx context.Context, userID uint, next time.Time) error
}

type AssessmentStore interface {
	CreateAssessment(ctx context.Context, a *model.Assessment) error
	FindAssessmentByID(ctx context.Context, id uint) (*model.Assessment, error)
	ListActive(ctx context.Context) ([]model.Assessment, error)
	ListAll(ctx context.Context) ([]model.Assessment, error)
	SetActive(ctx context.Context, id uint, active bool) error
	FindSubgroup(ctx context.Context, id uint) (*model.Subgroup, *model.Group, error)
	CreateQuestion(ctx context.Context, q *model.Question) error
	DeleteQuestion(ctx context.Context, id uint) error
}

// ResultStore has no update operation. Results are immutable.
type ResultStore interface {
	Create(ctx context.Context, result *model.AssessmentResult) error
	FindByID(ctx context.Context, id string) (*model.AssessmentResult, error)
	ListByUser(ctx context.Context, userID uint) ([]model.AssessmentResult, error)
	ListAll(ctx context.Context) ([]model.AssessmentResult, error)
}

type ContentStore interface {
	Get(ctx context.Context, page string) (*model.PageContent, error)
	Put(ctx context.Context, pc *model.PageContent) error
}

type AnalyticsCacher interface {
	Get(ctx context.Context, userID uint) (*model.AnalyticsSummary, bool, error)
	Set(ctx context.Context, userID uint, summary *model.AnalyticsSummary) error
	Invalidate(ctx context.Context, userID uint) error
}

// Clock returns the server time. Tests replace it.
type Clock func() time.Time
