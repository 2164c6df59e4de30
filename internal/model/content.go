package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	PageHome  = "home"
	PageAbout = "about"
)

// PageContent is a free-form JSON document edited by super admins and
// rendered by the client. The server does not interpret it.
type PageContent struct {
	Page        string         `gorm:"primaryKey;size:32" json:"page"`
	Content     datatypes.JSON `json:"content"`
	UpdatedByID uint           `json:"updatedById,omitempty"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (PageContent) TableName() string {
	return "page_contents"
}

func IsKnownPage(page string) bool {
	return page == PageHome || page == PageAbout
}
