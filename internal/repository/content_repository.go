package repository

import (
	"context"
	"errors"
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

// Get returns nil without error when the page was never saved.
func (r *ContentRepository) Get(ctx context.Context, page string) (*model.PageContent, error) {
	var pc model.PageContent
	err := r.DB.WithContext(ctx).Where("page = ?", page).First(&pc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err, util.ErrUnknownPage)
	}
	return &pc, nil
}

func (r *ContentRepository) Put(ctx context.Context, pc *model.PageContent) error {
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "page"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_by_id", "updated_at"}),
		}).
		Create(pc).Error
	return translate(err, util.ErrUnknownPage)
}
