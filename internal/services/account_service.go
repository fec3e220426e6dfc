package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Abpa007/Expense-Tracker/internal/auth"
	"github.com/Abpa007/Expense-Tracker/internal/core"
	"github.com/Abpa007/Expense-Tracker/internal/store"
)

// AccountService registers and authenticates users and issues their bearer
// credentials.
type AccountService struct {
	store     store.UserStore
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAccountService(st store.UserStore, jwtSecret string, tokenTTL time.Duration) *AccountService {
	return &AccountService{store: st, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a user and returns it with a fresh token.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (core.User, string, error) {
	u := core.User{
		Name:  strings.TrimSpace(name),
		Email: strings.ToLower(strings.TrimSpace(email)),
	}
	if err := u.Validate(); err != nil {
		return core.User{}, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return core.User{}, "", err
	}
	u.PasswordHash = hash

	created, err := s.store.InsertUser(ctx, u)
	if err != nil {
		return core.User{}, "", err
	}

	token, err := auth.GenerateToken(s.jwtSecret, created.ID, s.tokenTTL)
	if err != nil {
		return core.User{}, "", fmt.Errorf("sign token: %w", err)
	}

	slog.InfoContext(ctx, "User registered",
		"user_id", created.ID,
		"component", "account_service",
		"operation", "register")

	return created, token, nil
}

// Login checks the credentials and returns the user with a fresh token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (core.User, string, error) {
	u, err := s.store.UserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return core.User{}, "", core.ErrInvalidCredentials
	}
	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		return core.User{}, "", core.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(s.jwtSecret, u.ID, s.tokenTTL)
	if err != nil {
		return core.User{}, "", fmt.Errorf("sign token: %w", err)
	}

	slog.InfoContext(ctx, "User logged in",
		"user_id", u.ID,
		"component", "account_service",
		"operation", "login")

	return u, token, nil
}

// Verify parses a bearer token and loads the user it names. Every failure
// maps to core.ErrUnauthorized.
func (s *AccountService) Verify(ctx context.Context, tokenStr string) (core.User, error) {
	claims, err := auth.ParseToken(s.jwtSecret, tokenStr)
	if err != nil {
		return core.User{}, core.ErrUnauthorized
	}
	u, err := s.store.UserByID(ctx, claims.UserID)
	if err != nil {
		return core.User{}, core.ErrUnauthorized
	}
	return u, nil
}
