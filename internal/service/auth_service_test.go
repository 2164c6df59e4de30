package service

import (
	"context"
	"errors"
	"testing"
	"time"
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.MinCost)
	users := newUserStub(model.User{
		BaseModel:   model.BaseModel{ID: 4},
		Username:    "user1",
		Name:        "Test User",
		Email:       "user1@example.com",
		Password:    string(hashed),
		AccessLevel: model.LevelUser,
	})
	secret := "test-secret-test-secret-test-secret"
	svc := NewAuthService(users, secret)
	svc.Now = time.Now

	res, err := svc.Login(context.Background(), LoginRequest{Username: "user1", Password: "user123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	claims, err := util.ParseJWT(res.Token, secret)
	if err != nil {
		t.Fatalf("ParseJWT returned error: %v", err)
	}
	if claims.UserID != 4 || claims.Username != "user1" || claims.AccessLevel != model.LevelUser || claims.Email != "user1@example.com" {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time); ttl != 24*time.Hour {
		t.Fatalf("token ttl %v, want 24h", ttl)
	}

	for _, req := range []LoginRequest{
		{Username: "user1", Password: "wrong"},
		{Username: "ghost", Password: "user123"},
	} {
		if _, err := svc.Login(context.Background(), req); !errors.Is(err, util.ErrInvalidCredentials) {
			t.Fatalf("Login(%q) expected invalid credentials, got %v", req.Username, err)
		}
	}
}
