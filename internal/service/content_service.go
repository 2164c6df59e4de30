package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/util"

	"gorm.io/datatypes"
)

// Built-in page bodies served until a super admin saves one.
var defaultPages = map[string]map[string]interface{}{
	model.PageHome: {
		"hero": map[string]string{
			"title":    "Take Charge of Your Wellness",
			"subtitle": "Regular health assessments with personalised feedback.",
		},
		"features": []map[string]string{
			{"title": "Comprehensive Assessments", "description": "Questionnaires covering physical and mental health."},
			{"title": "Track Your Progress", "description": "See how your scores change over time."},
			{"title": "Professional Guidance", "description": "Feedback that tells you when to talk to a professional."},
		},
	},
	model.PageAbout: {
		"mission": "We help people understand and improve their health through simple, regular check-ins.",
		"values": []string{
			"Privacy first",
			"Evidence based questions",
			"Actionable feedback",
		},
	},
}

type ContentService struct {
	Pages ContentStore
	Now   Clock
}

func NewContentService(pages ContentStore) *ContentService {
	return &ContentService{Pages: pages, Now: time.Now}
}

// GetPage returns the saved page body, or its default.
func (s *ContentService) GetPage(ctx context.Context, page string) (datatypes.JSON, error) {
	if !model.IsKnownPage(page) {
		return nil, fmt.Errorf("%w: %w", util.ErrNotFound, util.ErrUnknownPage)
	}
	pc, err := s.Pages.Get(ctx, page)
	if err != nil {
		return nil, err
	}
	if pc != nil {
		return pc.Content, nil
	}
	raw, err := json.Marshal(defaultPages[page])
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// UpdatePage replaces the page body. The body must be a JSON object.
func (s *ContentService) UpdatePage(ctx context.Context, editorID uint, page string, body json.RawMessage) (*model.PageContent, error) {
	if !model.IsKnownPage(page) {
		return nil, fmt.Errorf("%w: %w", util.ErrNotFound, util.ErrUnknownPage)
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
		return nil, fmt.Errorf("%w: page content must be a JSON object", util.ErrValidation)
	}

	pc := &model.PageContent{
		Page:        page,
		Content:     datatypes.JSON(body),
		UpdatedByID: editorID,
		UpdatedAt:   s.Now(),
	}
	if err := s.Pages.Put(ctx, pc); err != nil {
		return nil, err
	}
	return pc, nil
}
