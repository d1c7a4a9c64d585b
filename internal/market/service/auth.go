package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/agrioasis/market/internal/market/domain"
	"github.com/agrioasis/market/internal/market/store"
	"github.com/agrioasis/market/pkg/cryptox"
	"github.com/agrioasis/market/pkg/idx"
	"github.com/agrioasis/market/pkg/jwtx"
	"github.com/agrioasis/market/pkg/slogx"
)

var (
	ErrDuplicateEmail = errors.New("duplicate_email")
	ErrUserNotFound   = errors.New("user_not_found")
	ErrBadCredential  = errors.New("bad_credential")
	ErrRoleMismatch   = errors.New("role_mismatch")
	ErrInvalidRole    = errors.New("invalid_role")
)

type AuthService struct {
	Store  store.Store
	Tokens *TokenService
}

// Signup registers a new account and returns it together with a fresh
// session token. The role tag is lower-cased before persisting; new
// accounts start active with zeroed business counters.
func (s *AuthService) Signup(ctx context.Context, name, email, password, role string) (domain.User, string, error) {
	l := slogx.FromContext(ctx)

	role = jwtx.NormalizeRole(role)
	if !domain.ValidRole(role) {
		return domain.User{}, "", ErrInvalidRole
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, "", err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       domain.UserStatusActive,
		JoinDate:     time.Now().UTC().Format("2006-01-02"),
	}

	// The duplicate check rides on the email UNIQUE constraint rather
	// than a prior read, so two concurrent signups for the same address
	// cannot both succeed.
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, "", ErrDuplicateEmail
		}
		return domain.User{}, "", err
	}

	token, err := s.Tokens.Issue(user.Email, user.Role)
	if err != nil {
		return domain.User{}, "", err
	}

	l.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role),
	)
	return user, token, nil
}

// Login authenticates an account. Checks run in a fixed order with a
// distinct failure kind each: account lookup (ErrUserNotFound), role
// cross-check, case-insensitive (ErrRoleMismatch), then password
// (ErrBadCredential). The session token is minted from the STORED
// role, never the caller's claimed string.
func (s *AuthService) Login(ctx context.Context, email, password, role string) (domain.User, string, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrUserNotFound
		}
		return domain.User{}, "", err
	}

	if !strings.EqualFold(user.Role, role) {
		l.Info("login role mismatch", slog.String("user_id", user.ID))
		return domain.User{}, "", ErrRoleMismatch
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login password mismatch", slog.String("user_id", user.ID))
		return domain.User{}, "", ErrBadCredential
	}

	token, err := s.Tokens.Issue(user.Email, user.Role)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}
