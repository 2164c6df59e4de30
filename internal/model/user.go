package model

import (
	"time"
)

// swagger:model User
type User struct {
	BaseModel
	Username       string      `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Name           string      `gorm:"size:100;not null" json:"name"`
	Email          string      `gorm:"size:100" json:"email"`
	Password       string      `gorm:"size:100;not null" json:"-"`
	AccessLevel    AccessLevel `gorm:"not null;default:1" json:"accessLevel"`
	NextAssessment *time.Time  `json:"nextAssessment"`
	AssessmentsDue bool        `gorm:"not null" json:"assessmentsDue"`
}

func (User) TableName() string {
	return "users"
}

// IsDue reports whether the user should see active assessments. The flag is
// cleared on submission; a passed NextAssessment makes the user due again
// without rewriting the record.
func (u *User) IsDue(now time.Time) bool {
	if u.AssessmentsDue {
		return true
	}
	return u.NextAssessment != nil && !now.Before(*u.NextAssessment)
}
