package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/logitrack/logitrack/internal/shared"
)

// Service wraps authentication business rules.
//
// LogiTrack ships with a single operator credential taken from the
// environment. When no password hash is configured the API runs open
// and Authenticate always fails.
type Service struct {
	username     string
	passwordHash string
}

// NewService constructs a new Service.
func NewService(username, passwordHash string) *Service {
	return &Service{username: username, passwordHash: passwordHash}
}

// Enabled reports whether a credential is configured.
func (s *Service) Enabled() bool {
	return s.passwordHash != ""
}

// Authenticate validates username/password credentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) error {
	if !s.Enabled() {
		return shared.ErrInvalidCredentials
	}
	if username != s.username {
		// Burn a comparison anyway to keep timing uniform.
		_ = bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password))
		return shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return shared.ErrInvalidCredentials
	}
	return nil
}
