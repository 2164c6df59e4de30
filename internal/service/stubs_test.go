package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/util"
)

func notFound(specific error) error {
	return fmt.Errorf("%w: %w", util.ErrNotFound, specific)
}

type userStub struct {
	users      map[uint]*model.User
	nextID     uint
	markErr    error
	markCalls  int
	lastMarked time.Time
}

func newUserStub(users ...model.User) *userStub {
	s := &userStub{users: map[uint]*model.User{}, nextID: 1}
	for _, u := range users {
		u := u
		s.users[u.ID] = &u
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
	}
	return s
}

func (s *userStub) Create(ctx context.Context, user *model.User) error {
	for _, u := range s.users {
		if u.Username == user.Username {
			return fmt.Errorf("%w: duplicate", util.ErrConflict)
		}
	}
	user.ID = s.nextID
	s.nextID++
	copy := *user
	s.users[user.ID] = &copy
	return nil
}

func (s *userStub) FindByID(ctx context.Context, id uint) (*model.User, error) {
	if u, ok := s.users[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, notFound(util.ErrUserNotFound)
}

func (s *userStub) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			copy := *u
			return &copy, nil
		}
	}
	return nil, notFound(util.ErrUserNotFound)
}

func (s *userStub) List(ctx context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range s.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *userStub) MarkAssessmentCompleted(ctx context.Context, userID uint, next time.Time) error {
	s.markCalls++
	if s.markErr != nil {
		return s.markErr
	}
	u, ok := s.users[userID]
	if !ok {
		return notFound(util.ErrUserNotFound)
	}
	u.NextAssessment = &next
	u.AssessmentsDue = false
	s.lastMarked = next
	return nil
}

type assessmentStub struct {
	assessments map[uint]*model.Assessment
	questions   []model.Question
	deleted     []uint
}

func newAssessmentStub(as ...*model.Assessment) *assessmentStub {
	s := &assessmentStub{assessments: map[uint]*model.Assessment{}}
	for _, a := range as {
		s.assessments[a.ID] = a
	}
	return s
}

func (s *assessmentStub) CreateAssessment(ctx context.Context, a *model.Assessment) error {
	a.ID = uint(len(s.assessments) + 1)
	s.assessments[a.ID] = a
	return nil
}

func (s *assessmentStub) FindAssessmentByID(ctx context.Context, id uint) (*model.Assessment, error) {
	if a, ok := s.assessments[id]; ok {
		return a, nil
	}
	return nil, notFound(util.ErrAssessmentNotFound)
}

func (s *assessmentStub) ListActive(ctx context.Context) ([]model.Assessment, error) {
	out := []model.Assessment{}
	for _, a := range s.sorted() {
		if a.Active {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *assessmentStub) ListAll(ctx context.Context) ([]model.Assessment, error) {
	return s.sorted(), nil
}

func (s *assessmentStub) sorted() []model.Assessment {
	out := []model.Assessment{}
	for _, a := range s.assessments {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *assessmentStub) SetActive(ctx context.Context, id uint, active bool) error {
	a, ok := s.assessments[id]
	if !ok {
		return notFound(util.ErrAssessmentNotFound)
	}
	a.Active = active
	return nil
}

func (s *assessmentStub) FindSubgroup(ctx context.Context, id uint) (*model.Subgroup, *model.Group, error) {
	for _, a := range s.assessments {
		for gi := range a.Groups {
			for si := range a.Groups[gi].Subgroups {
				if a.Groups[gi].Subgroups[si].ID == id {
					return &a.Groups[gi].Subgroups[si], &a.Groups[gi], nil
				}
			}
		}
	}
	return nil, nil, notFound(util.ErrSubgroupNotFound)
}

func (s *assessmentStub) CreateQuestion(ctx context.Context, q *model.Question) error {
	q.ID = uint(1000 + len(s.questions))
	s.questions = append(s.questions, *q)
	return nil
}

func (s *assessmentStub) DeleteQuestion(ctx context.Context, id uint) error {
	for _, q := range s.questions {
		if q.ID == id {
			s.deleted = append(s.deleted, id)
			return nil
		}
	}
	return notFound(util.ErrQuestionNotFound)
}

type resultStub struct {
	results   []model.AssessmentResult
	createErr error
}

func (s *resultStub) Create(ctx context.Context, r *model.AssessmentResult) error {
	if s.createErr != nil {
		return s.createErr
	}
	if r.ID == "" {
		r.ID = fmt.Sprintf("result-%d", len(s.results)+1)
	}
	s.results = append(s.results, *r)
	return nil
}

func (s *resultStub) FindByID(ctx context.Context, id string) (*model.AssessmentResult, error) {
	for _, r := range s.results {
		if r.ID == id {
			copy := r
			return &copy, nil
		}
	}
	return nil, notFound(util.ErrResultNotFound)
}

func (s *resultStub) ListByUser(ctx context.Context, userID uint) ([]model.AssessmentResult, error) {
	var out []model.AssessmentResult
	for _, r := range s.results {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sortDesc(out)
	return out, nil
}

func (s *resultStub) ListAll(ctx context.Context) ([]model.AssessmentResult, error) {
	out := append([]model.AssessmentResult(nil), s.results...)
	sortDesc(out)
	return out, nil
}

func sortDesc(rs []model.AssessmentResult) {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].CompletedAt.After(rs[j].CompletedAt) })
}

type cacheStub struct {
	entries     map[uint]*model.AnalyticsSummary
	invalidated []uint
	getErr      error
}

func newCacheStub() *cacheStub {
	return &cacheStub{entries: map[uint]*model.AnalyticsSummary{}}
}

func (c *cacheStub) Get(ctx context.Context, userID uint) (*model.AnalyticsSummary, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	s, ok := c.entries[userID]
	return s, ok, nil
}

func (c *cacheStub) Set(ctx context.Context, userID uint, s *model.AnalyticsSummary) error {
	c.entries[userID] = s
	return nil
}

func (c *cacheStub) Invalidate(ctx context.Context, userID uint) error {
	delete(c.entries, userID)
	c.invalidated = append(c.invalidated, userID)
	return nil
}

type contentStub struct {
	pages map[string]*model.PageContent
}

func (s *contentStub) Get(ctx context.Context, page string) (*model.PageContent, error) {
	return s.pages[page], nil
}

func (s *contentStub) Put(ctx context.Context, pc *model.PageContent) error {
	copy := *pc
	s.pages[pc.Page] = &copy
	return nil
}

var errStoreDown = errors.New("store down")

// healthQuestionnaire has two questions worth 4 and 3 points, plus a
// third question worth 5 in a second group.
func healthQuestionnaire() *model.Assessment {
	return &model.Assessment{
		BaseModel: model.BaseModel{ID: 1},
		Title:     "Health Assessment",
		Active:    true,
		Groups: []model.Group{
			{
				BaseModel: model.BaseModel{ID: 10},
				Name:      "Physical Health",
				Subgroups: []model.Subgroup{{
					BaseModel: model.BaseModel{ID: 100},
					Name:      "Exercise",
					Questions: []model.Question{
						{
							BaseModel: model.BaseModel{ID: 1},
							Text:      "How often do you exercise?",
							Options: []model.Option{
								{Key: "a", Text: "Daily", Score: 4},
								{Key: "b", Text: "Weekly", Score: 2},
								{Key: "c", Text: "Never", Score: 0},
							},
						},
						{
							BaseModel:  model.BaseModel{ID: 2},
							Text:       "How many hours do you sleep?",
							OrderIndex: 1,
							Options: []model.Option{
								{Key: "a", Text: "8+", Score: 3},
								{Key: "b", Text: "6-8", Score: 2},
								{Key: "c", Text: "<6", Score: 1},
							},
						},
					},
				}},
			},
			{
				BaseModel:  model.BaseModel{ID: 11},
				Name:       "Mental Health",
				OrderIndex: 1,
				Subgroups: []model.Subgroup{{
					BaseModel: model.BaseModel{ID: 101},
					Name:      "Stress",
					Questions: []model.Question{{
						BaseModel: model.BaseModel{ID: 3},
						Text:      "How stressed do you feel?",
						Options: []model.Option{
							{Key: "a", Text: "Rarely", Score: 5},
							{Key: "b", Text: "Often", Score: 1},
						},
					}},
				}},
			},
		},
	}
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
