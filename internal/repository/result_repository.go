package repository

import (
	"context"
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/util"

	"gorm.io/gorm"
)

// ResultRepository stores assessment results. There is no update path:
// results are immutable once written.
type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) Create(ctx context.Context, result *model.AssessmentResult) error {
	return translate(r.DB.WithContext(ctx).Create(result).Error, util.ErrResultNotFound)
}

func (r *ResultRepository) FindByID(ctx context.Context, id string) (*model.AssessmentResult, error) {
	var res model.AssessmentResult
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&res).Error; err != nil {
		return nil, translate(err, util.ErrResultNotFound)
	}
	return &res, nil
}

// ListByUser returns the user's results, most recent first.
func (r *ResultRepository) ListByUser(ctx context.Context, userID uint) ([]model.AssessmentResult, error) {
	var rs []model.AssessmentResult
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at desc, id desc").
		Find(&rs).Error
	return rs, translate(err, util.ErrResultNotFound)
}

// ListAll returns every result, most recent first.
func (r *ResultRepository) ListAll(ctx context.Context) ([]model.AssessmentResult, error) {
	var rs []model.AssessmentResult
	err := r.DB.WithContext(ctx).Order("completed_at desc, id desc").Find(&rs).Error
	return rs, translate(err, util.ErrResultNotFound)
}
