package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ilyamazurenko/Dance-partner-app/internal/model"
	"github.com/ilyamazurenko/Dance-partner-app/pkg/security"
)

type AuthService struct {
	users     *UserService
	passwords *security.Passwords
	tokens    *security.TokenService
}

func NewAuthService(users *UserService, passwords *security.Passwords, tokens *security.TokenService) *AuthService {
	return &AuthService{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
	}
}

// Authenticate checks an email/password pair. An unknown email, a wrong
// password and an inactive account all return ErrInvalidCredentials, and all
// run one full hash verification.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		s.passwords.VerifyDummy(password)
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, err
	}

	ok, err := s.passwords.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password, %w", err)
	}

	if !ok || !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) IssueToken(email string) (string, error) {
	token, err := s.tokens.Issue(email)
	if err != nil {
		return "", fmt.Errorf("failed to sign token, %w", err)
	}

	return token, nil
}

// ResolveCurrentUser maps a bearer token to an existing, active user. Bad
// tokens, deleted users and inactive users all yield ErrInvalidCredentials.
func (s *AuthService) ResolveCurrentUser(ctx context.Context, token string) (*model.User, error) {
	email, err := s.tokens.Decode(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
