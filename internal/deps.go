package internal

import (
	"fmt"

	"github.com/ilyamazurenko/Dance-partner-app/config"
	"github.com/ilyamazurenko/Dance-partner-app/internal/service"
	"github.com/ilyamazurenko/Dance-partner-app/pkg/security"

	"gorm.io/gorm"
)

// Deps is everything a handler can reach. It is built once at startup.
type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Users    *service.UserService
	Auth     *service.AuthService
	Profiles *service.ProfileService
	Styles   *service.StyleService
	Matching *service.MatchingService
}

func NewDeps(c *config.Config, db *gorm.DB) (*Deps, error) {
	passwords, err := security.NewPasswordsFor(c.Security.PasswordHasher, c.Security.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to set up password hashing, %w", err)
	}

	tokens, err := security.NewTokenService(c.JWT.Secret, c.JWT.Algorithm, c.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("failed to set up token service, %w", err)
	}

	return NewDepsWith(c, db, passwords, tokens), nil
}

// NewDepsWith wires the services around already built security primitives
func NewDepsWith(c *config.Config, db *gorm.DB, passwords *security.Passwords, tokens *security.TokenService) *Deps {
	users := service.NewUserService(db, passwords)

	return &Deps{
		Config:   c,
		DB:       db,
		Users:    users,
		Auth:     service.NewAuthService(users, passwords, tokens),
		Profiles: service.NewProfileService(db),
		Styles:   service.NewStyleService(db),
		Matching: service.NewMatchingService(db),
	}
}
