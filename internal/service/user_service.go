package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"wellnessa_backend/internal/config"
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/util"
	"wellnessa_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles user management for admins.
type UserService struct {
	Users    UserStore
	Schedule config.ScheduleConfig
	Now      Clock
}

func NewUserService(users UserStore, schedule config.ScheduleConfig) *UserService {
	return &UserService{Users: users, Schedule: schedule, Now: time.Now}
}

// CreateUserRequest is the admin form for a new account. AccessLevel 0
// means a plain user.
type CreateUserRequest struct {
	Username    string            `json:"username" binding:"required,min=3,max=64"`
	Password    string            `json:"password" binding:"required,min=6"`
	Name        string            `json:"name" binding:"required"`
	Email       string            `json:"email" binding:"required,email"`
	AccessLevel model.AccessLevel `json:"accessLevel" binding:"omitempty,accesslevel"`
}

// CreateUser creates an account at most one level below the creator. A
// higher request is lowered silently. New users are due for an assessment
// right away and scheduled a week out.
func (s *UserService) CreateUser(ctx context.Context, creatorLevel model.AccessLevel, req CreateUserRequest) (*model.User, error) {
	level, err := model.CreatableLevel(creatorLevel, req.AccessLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", util.ErrForbidden, err)
	}

	username := strings.TrimSpace(req.Username)
	if _, err := s.Users.FindByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("%w: %w", util.ErrConflict, util.ErrUsernameTaken)
	} else if !errors.Is(err, util.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	next := s.Now().Add(s.Schedule.NewUserDue())
	user := &model.User{
		Username:       username,
		Name:           req.Name,
		Email:          req.Email,
		Password:       string(hashed),
		AccessLevel:    level,
		NextAssessment: &next,
		AssessmentsDue: true,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		// lost a race on the unique index
		if errors.Is(err, util.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", util.ErrConflict, util.ErrUsernameTaken)
		}
		return nil, err
	}

	if level != req.AccessLevel && req.AccessLevel != 0 {
		logger.Log.Info("Requested access level lowered",
			zap.String("username", username),
			zap.Stringer("requested", req.AccessLevel),
			zap.Stringer("granted", level),
		)
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	return s.Users.FindByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.Users.List(ctx)
}
