package service

import (
	"context"
	"errors"
	"testing"
	"time"
	"wellnessa_backend/internal/config"
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/util"
)

var submitTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type submitFixture struct {
	svc     *AssessmentService
	users   *userStub
	results *resultStub
	cache   *cacheStub
	store   *assessmentStub
}

func newSubmitFixture() *submitFixture {
	users := newUserStub(model.User{BaseModel: model.BaseModel{ID: 1}, Username: "user1", AccessLevel: model.LevelUser, AssessmentsDue: true})
	results := &resultStub{}
	cache := newCacheStub()
	store := newAssessmentStub(healthQuestionnaire())
	analytics := NewAnalyticsService(results, users, cache)
	svc := NewAssessmentService(store, results, users, analytics, config.ScheduleConfig{NextAssessmentDays: 90, NewUserDueDays: 7})
	svc.Now = fixedClock(submitTime)
	return &submitFixture{svc: svc, users: users, results: results, cache: cache, store: store}
}

func TestSubmitPersistsResultAndSchedulesNext(t *testing.T) {
	f := newSubmitFixture()
	f.cache.entries[1] = &model.AnalyticsSummary{Trend: model.TrendNoData}

	res, err := f.svc.Submit(context.Background(), 1, 1, []model.Response{
		{QuestionID: 1, SelectedOptionID: "a"},
		{QuestionID: 2, SelectedOptionID: "b"},
		{QuestionID: 3, SelectedOptionID: "a"},
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if res.TotalScore != 11 || res.MaxScore != 12 || res.Percentage != 92 || res.Feedback != FeedbackExcellent {
		t.Fatalf("unexpected result %+v", res)
	}
	if !res.CompletedAt.Equal(submitTime) || res.UserID != 1 || res.AssessmentID != 1 {
		t.Fatalf("unexpected result metadata %+v", res)
	}
	if len(f.results.results) != 1 {
		t.Fatalf("expected one stored result, got %d", len(f.results.results))
	}

	u := f.users.users[1]
	if u.AssessmentsDue {
		t.Fatal("user still marked due")
	}
	if want := submitTime.Add(90 * 24 * time.Hour); u.NextAssessment == nil || !u.NextAssessment.Equal(want) {
		t.Fatalf("next assessment %v, want %v", u.NextAssessment, want)
	}
	if _, ok := f.cache.entries[1]; ok {
		t.Fatal("analytics cache not invalidated")
	}
}

func TestSubmitRejectsBeforePersisting(t *testing.T) {
	f := newSubmitFixture()
	f.store.assessments[2] = &model.Assessment{BaseModel: model.BaseModel{ID: 2}, Title: "Old", Active: false}

	cases := []struct {
		name         string
		assessmentID uint
		responses    []model.Response
		class, cause error
	}{
		{"empty", 1, nil, util.ErrValidation, util.ErrEmptyResponses},
		{"malformed", 1, []model.Response{{QuestionID: 1}}, util.ErrValidation, util.ErrInvalidResponse},
		{"unscorable", 1, []model.Response{{QuestionID: 77, SelectedOptionID: "a"}}, util.ErrValidation, util.ErrDivisionUndefined},
		{"missing assessment", 9, []model.Response{{QuestionID: 1, SelectedOptionID: "a"}}, util.ErrNotFound, util.ErrAssessmentNotFound},
		{"inactive assessment", 2, []model.Response{{QuestionID: 1, SelectedOptionID: "a"}}, util.ErrNotFound, util.ErrAssessmentInactive},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := f.svc.Submit(context.Background(), 1, c.assessmentID, c.responses)
			if !errors.Is(err, c.class) || !errors.Is(err, c.cause) {
				t.Fatalf("expected %v/%v, got %v", c.class, c.cause, err)
			}
		})
	}
	if len(f.results.results) != 0 || f.users.markCalls != 0 {
		t.Fatalf("rejected submissions had side effects: %d results, %d user updates", len(f.results.results), f.users.markCalls)
	}
}

func TestSubmitKeepsResultWhenScheduleUpdateFails(t *testing.T) {
	f := newSubmitFixture()
	f.users.markErr = errStoreDown

	res, err := f.svc.Submit(context.Background(), 1, 1, []model.Response{{QuestionID: 1, SelectedOptionID: "a"}})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if res == nil || len(f.results.results) != 1 {
		t.Fatal("expected the stored result to be returned")
	}
	if !f.users.users[1].AssessmentsDue {
		t.Fatal("user should still be due after the failed update")
	}
}

func TestSubmitResultStoreFailure(t *testing.T) {
	f := newSubmitFixture()
	f.results.createErr = errStoreDown
	if _, err := f.svc.Submit(context.Background(), 1, 1, []model.Response{{QuestionID: 1, SelectedOptionID: "a"}}); err == nil {
		t.Fatal("expected error")
	}
	if f.users.markCalls != 0 {
		t.Fatal("user updated although no result was stored")
	}
}

func TestListDue(t *testing.T) {
	f := newSubmitFixture()
	past := submitTime.Add(-time.Hour)
	future := submitTime.Add(time.Hour)
	f.users.users[2] = &model.User{BaseModel: model.BaseModel{ID: 2}, NextAssessment: &past}
	f.users.users[3] = &model.User{BaseModel: model.BaseModel{ID: 3}, NextAssessment: &future}
	f.users.users[4] = &model.User{BaseModel: model.BaseModel{ID: 4}}

	cases := []struct {
		userID uint
		want   int
	}{
		{1, 1}, // flagged due
		{2, 1}, // schedule passed
		{3, 0},
		{4, 0},
	}
	for _, c := range cases {
		got, err := f.svc.ListDue(context.Background(), c.userID)
		if err != nil {
			t.Fatalf("ListDue(%d) returned error: %v", c.userID, err)
		}
		if len(got) != c.want {
			t.Fatalf("ListDue(%d) returned %d assessments, want %d", c.userID, len(got), c.want)
		}
	}
}

func TestGetActiveAssessment(t *testing.T) {
	f := newSubmitFixture()
	view, err := f.svc.GetActiveAssessment(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetActiveAssessment returned error: %v", err)
	}
	if len(view.Questions) != 3 || view.Questions[2].GroupName != "Mental Health" {
		t.Fatalf("unexpected flattened questions %+v", view.Questions)
	}

	if err := f.svc.SetActive(context.Background(), 1, false); err != nil {
		t.Fatalf("SetActive returned error: %v", err)
	}
	if _, err := f.svc.GetActiveAssessment(context.Background(), 1); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("expected inactive assessment to be hidden, got %v", err)
	}
}

func TestCreateAssessment(t *testing.T) {
	f := newSubmitFixture()
	a := &model.Assessment{
		Title: "Sleep",
		Groups: []model.Group{{Name: "Sleep", Subgroups: []model.Subgroup{{Name: "Habits", Questions: []model.Question{{
			Text:    "Do you nap?",
			Options: []model.Option{{Text: "Yes", Score: 1}, {Text: "No", Score: 2}},
		}}}}}},
	}
	if err := f.svc.CreateAssessment(context.Background(), 3, a); err != nil {
		t.Fatalf("CreateAssessment returned error: %v", err)
	}
	opts := a.Groups[0].Subgroups[0].Questions[0].Options
	if opts[0].Key != "a" || opts[1].Key != "b" || a.CreatedByID != 3 {
		t.Fatalf("unexpected keys or creator: %+v", a)
	}

	bad := &model.Assessment{Title: "Empty"}
	if err := f.svc.CreateAssessment(context.Background(), 3, bad); !errors.Is(err, util.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateAssessmentDropsClientIdentity(t *testing.T) {
	f := newSubmitFixture()
	stamp := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	base := func(id uint) model.BaseModel { return model.BaseModel{ID: id, CreatedAt: stamp, UpdatedAt: stamp} }
	a := &model.Assessment{
		BaseModel: base(9),
		Title:     "Reuse",
		Groups: []model.Group{{BaseModel: base(8), AssessmentID: 1, Name: "G", Subgroups: []model.Subgroup{{
			BaseModel: base(7), GroupID: 1, Name: "S", Questions: []model.Question{{
				BaseModel: base(1), SubgroupID: 1, Text: "Q",
				Options: []model.Option{{BaseModel: base(2), QuestionID: 1, Key: "a", Text: "Yes", Score: 50}},
			}},
		}}}},
	}
	if err := f.svc.CreateAssessment(context.Background(), 3, a); err != nil {
		t.Fatalf("CreateAssessment returned error: %v", err)
	}
	g := a.Groups[0]
	sg := g.Subgroups[0]
	q := sg.Questions[0]
	o := q.Options[0]
	if a.ID == 9 || !a.CreatedAt.IsZero() || g.ID != 0 || g.AssessmentID != 0 || sg.ID != 0 || sg.GroupID != 0 {
		t.Fatalf("container identity kept: %+v", a)
	}
	if q.ID != 0 || q.SubgroupID != 0 || !q.UpdatedAt.IsZero() || o.ID != 0 || o.QuestionID != 0 {
		t.Fatalf("question identity kept: %+v", q)
	}
}

func TestAssignOptionKeysSkipsTakenKeys(t *testing.T) {
	cases := []struct {
		in   []string
		want []string
	}{
		{[]string{"", ""}, []string{"a", "b"}},
		{[]string{"b", ""}, []string{"b", "a"}},
		{[]string{"", "a", ""}, []string{"b", "a", "c"}},
		{[]string{"x", "y"}, []string{"x", "y"}},
	}
	for _, c := range cases {
		opts := make([]model.Option, len(c.in))
		for i, k := range c.in {
			opts[i] = model.Option{Key: k, Text: k}
		}
		assignOptionKeys(opts)
		for i := range opts {
			if opts[i].Key != c.want[i] {
				t.Fatalf("assignOptionKeys(%v) key %d = %q, want %q", c.in, i, opts[i].Key, c.want[i])
			}
		}
	}

	f := newSubmitFixture()
	a := &model.Assessment{Title: "Keys", Groups: []model.Group{{Name: "G", Subgroups: []model.Subgroup{{Name: "S", Questions: []model.Question{{
		Text: "Q", Options: []model.Option{{Key: "b", Text: "B", Score: 1}, {Text: "Blank", Score: 2}},
	}}}}}}}
	if err := f.svc.CreateAssessment(context.Background(), 3, a); err != nil {
		t.Fatalf("mixed supplied and blank keys rejected: %v", err)
	}
}
