package repository

import (
	"context"
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/util"

	"gorm.io/gorm"
)

const questionnaireTree = "Groups.Subgroups.Questions.Options"

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

// CreateAssessment stores the assessment together with its whole tree.
func (r *AssessmentRepository) CreateAssessment(ctx context.Context, a *model.Assessment) error {
	return translate(r.DB.WithContext(ctx).Create(a).Error, util.ErrAssessmentNotFound)
}

// FindAssessmentByID returns the fully hydrated assessment.
func (r *AssessmentRepository) FindAssessmentByID(ctx context.Context, id uint) (*model.Assessment, error) {
	var a model.Assessment
	if err := r.DB.WithContext(ctx).Preload(questionnaireTree).First(&a, id).Error; err != nil {
		return nil, translate(err, util.ErrAssessmentNotFound)
	}
	return &a, nil
}

func (r *AssessmentRepository) ListActive(ctx context.Context) ([]model.Assessment, error) {
	var as []model.Assessment
	err := r.DB.WithContext(ctx).Preload(questionnaireTree).
		Where("active = ?", true).
		Order("id asc").
		Find(&as).Error
	return as, translate(err, util.ErrAssessmentNotFound)
}

func (r *AssessmentRepository) ListAll(ctx context.Context) ([]model.Assessment, error) {
	var as []model.Assessment
	err := r.DB.WithContext(ctx).Preload(questionnaireTree).Order("id asc").Find(&as).Error
	return as, translate(err, util.ErrAssessmentNotFound)
}

func (r *AssessmentRepository) SetActive(ctx context.Context, id uint, active bool) error {
	res := r.DB.WithContext(ctx).Model(&model.Assessment{}).Where("id = ?", id).Update("active", active)
	if res.Error != nil {
		return translate(res.Error, util.ErrAssessmentNotFound)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, util.ErrAssessmentNotFound)
	}
	return nil
}

// FindSubgroup returns the subgroup with its parent group loaded into the
// second return value.
func (r *AssessmentRepository) FindSubgroup(ctx context.Context, id uint) (*model.Subgroup, *model.Group, error) {
	var sg model.Subgroup
	if err := r.DB.WithContext(ctx).First(&sg, id).Error; err != nil {
		return nil, nil, translate(err, util.ErrSubgroupNotFound)
	}
	var g model.Group
	if err := r.DB.WithContext(ctx).First(&g, sg.GroupID).Error; err != nil {
		return nil, nil, translate(err, util.ErrSubgroupNotFound)
	}
	return &sg, &g, nil
}

// CreateQuestion appends q (with its options) to the end of its subgroup.
func (r *AssessmentRepository) CreateQuestion(ctx context.Context, q *model.Question) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		if err := tx.Model(&model.Question{}).
			Where("subgroup_id = ?", q.SubgroupID).
			Select("COALESCE(MAX(order_index), -1)").
			Row().Scan(&maxOrder); err != nil {
			return err
		}
		q.OrderIndex = maxOrder + 1
		return tx.Create(q).Error
	})
	return translate(err, util.ErrQuestionNotFound)
}

func (r *AssessmentRepository) DeleteQuestion(ctx context.Context, id uint) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Question{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("question_id = ?", id).Delete(&model.Option{}).Error
	})
	return translate(err, util.ErrQuestionNotFound)
}
