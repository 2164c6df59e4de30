package service

import (
	"context"
	"wellnessa_backend/internal/model"
	"wellnessa_backend/pkg/logger"

	"go.uber.org/zap"
)

// AnalyticsService serves per-user trend summaries, optionally through a
// cache that submissions invalidate.
type AnalyticsService struct {
	Results ResultStore
	Users   UserStore
	Cache   AnalyticsCacher
}

// NewAnalyticsService accepts a nil cache.
func NewAnalyticsService(results ResultStore, users UserStore, cache AnalyticsCacher) *AnalyticsService {
	return &AnalyticsService{Results: results, Users: users, Cache: cache}
}

func (s *AnalyticsService) GetUserAnalytics(ctx context.Context, userID uint) (*model.AnalyticsSummary, error) {
	if s.Cache != nil {
		summary, ok, err := s.Cache.Get(ctx, userID)
		if err != nil {
			logger.Log.Warn("Analytics cache read failed", zap.Uint("userId", userID), zap.Error(err))
		} else if ok {
			return summary, nil
		}
	}

	results, err := s.Results.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := Analyze(results)

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, userID, summary); err != nil {
			logger.Log.Warn("Analytics cache write failed", zap.Uint("userId", userID), zap.Error(err))
		}
	}
	return summary, nil
}

// GetAnalyticsForUser is the admin view of another user's analytics. The
// user must exist.
func (s *AnalyticsService) GetAnalyticsForUser(ctx context.Context, userID uint) (*model.AnalyticsSummary, error) {
	if _, err := s.Users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.GetUserAnalytics(ctx, userID)
}

// Invalidate drops the cached summary of a user.
func (s *AnalyticsService) Invalidate(ctx context.Context, userID uint) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx, userID); err != nil {
		logger.Log.Warn("Analytics cache invalidation failed", zap.Uint("userId", userID), zap.Error(err))
	}
}
