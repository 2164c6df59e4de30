package service

import (
	"context"
	"fmt"
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/util"
)

type ResultService struct {
	Results ResultStore
}

func NewResultService(results ResultStore) *ResultService {
	return &ResultService{Results: results}
}

// ListUserResults returns the user's results, most recent first.
func (s *ResultService) ListUserResults(ctx context.Context, userID uint) ([]model.AssessmentResult, error) {
	return s.Results.ListByUser(ctx, userID)
}

// GetUserResult returns a result only to its owner. Other users' results
// look missing.
func (s *ResultService) GetUserResult(ctx context.Context, userID uint, resultID string) (*model.AssessmentResult, error) {
	r, err := s.Results.FindByID(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if r.UserID != userID {
		return nil, fmt.Errorf("%w: %w", util.ErrNotFound, util.ErrResultNotFound)
	}
	return r, nil
}

func (s *ResultService) ListAllResults(ctx context.Context) ([]model.AssessmentResult, error) {
	return s.Results.ListAll(ctx)
}
