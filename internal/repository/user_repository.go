package repository

import (
	"context"
	"time"
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/util"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return translate(r.DB.WithContext(ctx).Create(user).Error, util.ErrUserNotFound)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err, util.ErrUserNotFound)
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err, util.ErrUserNotFound)
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.DB.WithContext(ctx).Order("created_at DESC, id DESC").Find(&users).Error
	return users, translate(err, util.ErrUserNotFound)
}

// MarkAssessmentCompleted schedules the user's next assessment and clears
// the due flag.
func (r *UserRepository) MarkAssessmentCompleted(ctx context.Context, userID uint, next time.Time) error {
	res := r.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"next_assessment": next,
			"assessments_due": false,
		})
	if res.Error != nil {
		return translate(res.Error, util.ErrUserNotFound)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, util.ErrUserNotFound)
	}
	return nil
}
