package model

// Assessment is a questionnaire: groups → subgroups → questions → options.
// Groups and subgroups only organise questions; scoring looks at options.
//
// Option scores double as the per-question maximum (the highest option
// score of a question). Editing the option set of a question that has
// already been answered therefore changes the weight of that question for
// future submissions. Stored results keep the totals computed at submission
// time and are not affected.
//
// swagger:model Assessment
type Assessment struct {
	BaseModel
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Active      bool    `gorm:"not null;index" json:"active"`
	CreatedByID uint    `gorm:"index" json:"createdById,omitempty"`
	Groups      []Group `gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE" json:"groups"`
}

func (Assessment) TableName() string {
	return "assessments"
}

// swagger:model Group
type Group struct {
	BaseModel
	AssessmentID uint       `gorm:"index;not null" json:"assessmentId"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	OrderIndex   int        `gorm:"default:0" json:"orderIndex"`
	Subgroups    []Subgroup `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"subgroups"`
}

func (Group) TableName() string {
	return "assessment_groups"
}

// swagger:model Subgroup
type Subgroup struct {
	BaseModel
	GroupID    uint       `gorm:"index;not null" json:"groupId"`
	Name       string     `gorm:"size:255;not null" json:"name"`
	OrderIndex int        `gorm:"default:0" json:"orderIndex"`
	Questions  []Question `gorm:"foreignKey:SubgroupID;constraint:OnDelete:CASCADE" json:"questions"`
}

func (Subgroup) TableName() string {
	return "assessment_subgroups"
}

// swagger:model Question
type Question struct {
	BaseModel
	SubgroupID uint     `gorm:"index;not null" json:"subgroupId"`
	Text       string   `gorm:"type:text;not null" json:"question"`
	OrderIndex int      `gorm:"default:0" json:"orderIndex"`
	Options    []Option `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options"`
}

func (Question) TableName() string {
	return "assessment_questions"
}

// Option.Key is the short code clients submit ("a", "b", ...), unique
// within its question.
//
// swagger:model Option
type Option struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"questionId"`
	Key        string `gorm:"size:16;not null" json:"key"`
	Text       string `gorm:"size:255;not null" json:"text"`
	Score      int    `gorm:"not null;default:0" json:"score"`
	OrderIndex int    `gorm:"default:0" json:"orderIndex"`
}

func (Option) TableName() string {
	return "question_options"
}
