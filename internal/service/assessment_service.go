package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wellnessa_backend/internal/config"
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/util"
	"wellnessa_backend/pkg/logger"
	"wellnessa_backend/pkg/monitoring"
	"wellnessa_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

type AssessmentService struct {
	Assessments AssessmentStore
	Results     ResultStore
	Users       UserStore
	Analytics   *AnalyticsService
	Schedule    config.ScheduleConfig
	Now         Clock
}

func NewAssessmentService(assessments AssessmentStore, results ResultStore, users UserStore, analytics *AnalyticsService, schedule config.ScheduleConfig) *AssessmentService {
	return &AssessmentService{
		Assessments: assessments,
		Results:     results,
		Users:       users,
		Analytics:   analytics,
		Schedule:    schedule,
		Now:         time.Now,
	}
}

// AssessmentView is an active assessment as served to users, with the
// questions in presentation order.
type AssessmentView struct {
	*model.Assessment
	Questions []model.FlatQuestion `json:"flatQuestions"`
}

func (s *AssessmentService) GetAssessment(ctx context.Context, id uint) (*model.Assessment, error) {
	return s.Assessments.FindAssessmentByID(ctx, id)
}

// GetActiveAssessment hides inactive assessments behind a not-found error.
func (s *AssessmentService) GetActiveAssessment(ctx context.Context, id uint) (*AssessmentView, error) {
	a, err := s.Assessments.FindAssessmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.Active {
		return nil, fmt.Errorf("%w: %w", util.ErrNotFound, util.ErrAssessmentInactive)
	}
	return &AssessmentView{Assessment: a, Questions: model.Flatten(a)}, nil
}

func (s *AssessmentService) ListActive(ctx context.Context) ([]model.Assessment, error) {
	return s.Assessments.ListActive(ctx)
}

// ListDue returns the active assessments when the user is due, otherwise
// an empty list.
func (s *AssessmentService) ListDue(ctx context.Context, userID uint) ([]model.Assessment, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsDue(s.Now()) {
		return []model.Assessment{}, nil
	}
	return s.Assessments.ListActive(ctx)
}

// Submit scores responses and stores the result. On success the user's
// next assessment is scheduled. If that update fails the stored result is
// still returned.
func (s *AssessmentService) Submit(ctx context.Context, userID, assessmentID uint, responses []model.Response) (*model.AssessmentResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "AssessmentService.Submit")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("user.id", int64(userID)),
		attribute.Int64("assessment.id", int64(assessmentID)),
		attribute.Int("responses.count", len(responses)),
	)

	result, err := s.submit(ctx, userID, assessmentID, responses)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		monitoring.SubmissionRejections.WithLabelValues(rejectionReason(err)).Inc()
		return nil, err
	}
	return result, nil
}

func (s *AssessmentService) submit(ctx context.Context, userID, assessmentID uint, responses []model.Response) (*model.AssessmentResult, error) {
	if err := validateResponses(responses); err != nil {
		logger.Log.Debug("Submission rejected", zap.Uint("userId", userID), zap.Error(err))
		return nil, err
	}

	a, err := s.Assessments.FindAssessmentByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if !a.Active {
		return nil, fmt.Errorf("%w: %w", util.ErrNotFound, util.ErrAssessmentInactive)
	}

	card, err := ScoreResponses(a, responses)
	if err != nil {
		logger.Log.Debug("Submission rejected", zap.Uint("userId", userID), zap.Uint("assessmentId", assessmentID), zap.Error(err))
		return nil, err
	}

	now := s.Now()
	result := &model.AssessmentResult{
		UserID:       userID,
		AssessmentID: assessmentID,
		Responses:    card.Responses,
		TotalScore:   card.TotalScore,
		MaxScore:     card.MaxScore,
		Percentage:   card.Percentage,
		Feedback:     card.Feedback,
		CompletedAt:  now,
	}
	if err := s.Results.Create(ctx, result); err != nil {
		logger.Log.Error("Failed to persist assessment result",
			zap.Uint("userId", userID), zap.Uint("assessmentId", assessmentID), zap.Error(err))
		return nil, err
	}

	monitoring.AssessmentSubmissions.WithLabelValues(FeedbackTier(card.Percentage)).Inc()
	monitoring.AssessmentPercentage.Observe(float64(card.Percentage))

	if err := s.Users.MarkAssessmentCompleted(ctx, userID, now.Add(s.Schedule.NextAssessment())); err != nil {
		monitoring.ScheduleUpdateFailures.Inc()
		logger.Log.Error("assessment result persisted but user schedule update failed",
			zap.Uint("userId", userID),
			zap.String("resultId", result.ID),
			zap.Error(err),
		)
	}

	if s.Analytics != nil {
		s.Analytics.Invalidate(ctx, userID)
	}
	return result, nil
}

func validateResponses(responses []model.Response) error {
	if len(responses) == 0 {
		return fmt.Errorf("%w: %w", util.ErrValidation, util.ErrEmptyResponses)
	}
	for i, r := range responses {
		if r.QuestionID == 0 || r.SelectedOptionID == "" {
			return fmt.Errorf("%w: %w at index %d", util.ErrValidation, util.ErrInvalidResponse, i)
		}
	}
	return nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, util.ErrEmptyResponses):
		return "empty"
	case errors.Is(err, util.ErrInvalidResponse):
		return "malformed"
	case errors.Is(err, util.ErrDivisionUndefined):
		return "unscorable"
	case errors.Is(err, util.ErrAssessmentInactive):
		return "inactive"
	case errors.Is(err, util.ErrNotFound):
		return "not_found"
	}
	return "error"
}

// CreateAssessment stores a new questionnaire after checking its structure.
// Ids, timestamps and parent links sent by the client are discarded so the
// whole tree is inserted fresh. Option keys left blank are assigned a, b,
// c... in order, skipping keys already taken.
func (s *AssessmentService) CreateAssessment(ctx context.Context, creatorID uint, a *model.Assessment) error {
	a.BaseModel = model.BaseModel{}
	a.CreatedByID = creatorID
	for gi := range a.Groups {
		g := &a.Groups[gi]
		g.BaseModel, g.AssessmentID = model.BaseModel{}, 0
		for si := range g.Subgroups {
			sg := &g.Subgroups[si]
			sg.BaseModel, sg.GroupID = model.BaseModel{}, 0
			for qi := range sg.Questions {
				q := &sg.Questions[qi]
				q.BaseModel, q.SubgroupID = model.BaseModel{}, 0
				for oi := range q.Options {
					q.Options[oi].BaseModel, q.Options[oi].QuestionID = model.BaseModel{}, 0
				}
				assignOptionKeys(q.Options)
			}
		}
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("%w: %w", util.ErrValidation, err)
	}
	if err := s.Assessments.CreateAssessment(ctx, a); err != nil {
		return err
	}
	logger.Log.Info("Assessment created", zap.Uint("id", a.ID), zap.String("title", a.Title), zap.Int("questions", a.QuestionCount()))
	return nil
}

func (s *AssessmentService) ListAll(ctx context.Context) ([]model.Assessment, error) {
	return s.Assessments.ListAll(ctx)
}

func (s *AssessmentService) SetActive(ctx context.Context, id uint, active bool) error {
	if err := s.Assessments.SetActive(ctx, id, active); err != nil {
		return err
	}
	logger.Log.Info("Assessment visibility changed", zap.Uint("id", id), zap.Bool("active", active))
	return nil
}

func assignOptionKeys(options []model.Option) {
	used := make(map[string]bool, len(options))
	for _, o := range options {
		if o.Key != "" {
			used[o.Key] = true
		}
	}
	next := 0
	for i := range options {
		if options[i].Key == "" {
			for used[model.OptionKey(next)] {
				next++
			}
			options[i].Key = model.OptionKey(next)
			used[options[i].Key] = true
		}
		if options[i].OrderIndex == 0 {
			options[i].OrderIndex = i
		}
	}
}
