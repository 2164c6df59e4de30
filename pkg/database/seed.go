package database

import (
	"time"
	"wellnessa_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedUser struct {
	username, password, name, email string
	level                           model.AccessLevel
	due                             bool
}

var defaultUsers = []seedUser{
	{"user1", "user123", "John Doe", "user1@example.com", model.LevelUser, true},
	{"admin1", "admin123", "Jane Smith", "admin1@example.com", model.LevelAdmin, false},
	{"superadmin", "super123", "Super Admin", "superadmin@example.com", model.LevelSuperAdmin, false},
}

func opts(scores ...int) []model.Option {
	out := make([]model.Option, len(scores))
	for i, s := range scores {
		out[i] = model.Option{Key: model.OptionKey(i), Score: s, OrderIndex: i}
	}
	return out
}

func withText(options []model.Option, texts ...string) []model.Option {
	for i := range options {
		options[i].Text = texts[i]
	}
	return options
}

// SampleAssessment is the quarterly wellness questionnaire created by Seed.
func SampleAssessment() *model.Assessment {
	return &model.Assessment{
		Title:       "Health Assessment",
		Description: "Quarterly health and wellness assessment",
		Active:      true,
		Groups: []model.Group{
			{
				Name:       "Physical Health",
				OrderIndex: 0,
				Subgroups: []model.Subgroup{
					{
						Name:       "Exercise & Fitness",
						OrderIndex: 0,
						Questions: []model.Question{
							{Text: "How often do you exercise per week?", OrderIndex: 0,
								Options: withText(opts(0, 2, 4, 5), "Never", "1-2 times", "3-4 times", "5+ times")},
							{Text: "How would you rate your current fitness level?", OrderIndex: 1,
								Options: withText(opts(1, 2, 4, 5), "Poor", "Fair", "Good", "Excellent")},
						},
					},
					{
						Name:       "Nutrition",
						OrderIndex: 1,
						Questions: []model.Question{
							{Text: "How many servings of fruits and vegetables do you eat daily?", OrderIndex: 0,
								Options: withText(opts(1, 2, 4, 5), "0-1", "2-3", "4-5", "6+")},
						},
					},
				},
			},
			{
				Name:       "Mental Health",
				OrderIndex: 1,
				Subgroups: []model.Subgroup{
					{
						Name:       "Stress Management",
						OrderIndex: 0,
						Questions: []model.Question{
							{Text: "How well do you manage stress?", OrderIndex: 0,
								Options: withText(opts(1, 2, 4, 5), "Very poorly", "Poorly", "Well", "Very well")},
						},
					},
				},
			},
		},
	}
}

// Seed inserts the demo users and questionnaire into an empty database.
// Existing rows are left untouched.
func Seed(db *gorm.DB, now time.Time) error {
	var superAdminID uint
	for _, su := range defaultUsers {
		var existing model.User
		err := db.Where("username = ?", su.username).First(&existing).Error
		if err == nil {
			if su.level == model.LevelSuperAdmin {
				superAdminID = existing.ID
			}
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		next := now.Add(7 * 24 * time.Hour)
		u := &model.User{
			Username:       su.username,
			Name:           su.name,
			Email:          su.email,
			Password:       string(hashed),
			AccessLevel:    su.level,
			NextAssessment: &next,
			AssessmentsDue: su.due,
		}
		if err := db.Create(u).Error; err != nil {
			return err
		}
		if su.level == model.LevelSuperAdmin {
			superAdminID = u.ID
		}
	}

	var count int64
	if err := db.Model(&model.Assessment{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		a := SampleAssessment()
		a.CreatedByID = superAdminID
		if err := db.Create(a).Error; err != nil {
			return err
		}
	}
	return nil
}
