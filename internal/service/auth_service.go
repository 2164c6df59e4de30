package service

import (
	"context"
	"errors"
	"time"
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Users  UserStore
	Secret string
	Now    Clock
}

func NewAuthService(users UserStore, secret string) *AuthService {
	return &AuthService{Users: users, Secret: secret, Now: time.Now}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Login checks the password and issues a bearer token valid for 24 hours.
// Unknown users and wrong passwords fail the same way.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.Users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Secret, s.Now())
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: token, User: user}, nil
}

// Profile reloads the caller from the store so stale token claims are not
// served.
func (s *AuthService) Profile(ctx context.Context, userID uint) (*model.User, error) {
	return s.Users.FindByID(ctx, userID)
}
