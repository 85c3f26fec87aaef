package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ilyamazurenko/Dance-partner-app/internal/model"
	"github.com/ilyamazurenko/Dance-partner-app/pkg/security"

	"gorm.io/gorm"
)

const msgEmailTaken = "Email already registered"

type UserService struct {
	db        *gorm.DB
	passwords *security.Passwords
}

func NewUserService(db *gorm.DB, passwords *security.Passwords) *UserService {
	return &UserService{db: db, passwords: passwords}
}

// Register stores a new active user. Input is expected to be validated
// already; a taken email is reported as ErrConflict whether it is caught by
// the lookup or by the unique index at commit.
func (s *UserService) Register(ctx context.Context, email, password string) (*model.User, error) {
	var found int64

	err := s.db.WithContext(ctx).
		Model(model.User{}).
		Where("email = ?", email).
		Count(&found).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to check if user is registered, %w", err)
	}

	if found > 0 {
		return nil, conflict(msgEmailTaken)
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password, %w", err)
	}

	user := model.User{
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := s.db.WithContext(ctx).Omit("Profile").Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, conflict(msgEmailTaken)
		}

		return nil, fmt.Errorf("failed to create user, %w", err)
	}

	return &user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.first(ctx, "email = ?", email)
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*model.User, error) {
	return s.first(ctx, "id = ?", id)
}

func (s *UserService) first(ctx context.Context, query string, arg any) (*model.User, error) {
	var user model.User

	err := s.db.WithContext(ctx).Where(query, arg).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("User not found")
	}

	if err != nil {
		return nil, fmt.Errorf("failed to fetch user, %w", err)
	}

	return &user, nil
}

// Delete removes a user together with their profile and its style links.
// The rows are removed explicitly so the cascade holds even where foreign
// keys aren't enforced.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profileIDs := tx.
			Model(model.Profile{}).
			Select("id").
			Where("user_id = ?", id)

		err := tx.
			Where("profile_id IN (?)", profileIDs).
			Delete(&model.ProfileDanceStyle{}).
			Error
		if err != nil {
			return fmt.Errorf("failed to delete profile styles, %w", err)
		}

		if err := tx.Where("user_id = ?", id).Delete(&model.Profile{}).Error; err != nil {
			return fmt.Errorf("failed to delete profile, %w", err)
		}

		r := tx.Where("id = ?", id).Delete(&model.User{})
		if r.Error != nil {
			return fmt.Errorf("failed to delete user, %w", r.Error)
		}

		if r.RowsAffected == 0 {
			return notFound("User not found")
		}

		return nil
	})
}
