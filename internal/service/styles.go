package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ilyamazurenko/Dance-partner-app/internal/model"

	"gorm.io/gorm"
)

const (
	DefaultStyleLimit = 100
	MaxStyleLimit     = 500

	msgStyleNotFound = "Dance style not found"
)

type StyleService struct {
	db *gorm.DB
}

func NewStyleService(db *gorm.DB) *StyleService {
	return &StyleService{db: db}
}

// Create adds a style to the catalog. Names are unique; a duplicate is an
// ErrConflict naming the style.
func (s *StyleService) Create(ctx context.Context, name string, description *string) (*model.DanceStyle, error) {
	_, err := s.GetByName(ctx, name)
	if err == nil {
		return nil, styleExists(name)
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	style := model.DanceStyle{
		Name:        name,
		Description: description,
	}

	if err := s.db.WithContext(ctx).Create(&style).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, styleExists(name)
		}

		return nil, fmt.Errorf("failed to create dance style, %w", err)
	}

	return &style, nil
}

func (s *StyleService) Get(ctx context.Context, id uint) (*model.DanceStyle, error) {
	return s.first(ctx, "id = ?", id)
}

func (s *StyleService) GetByName(ctx context.Context, name string) (*model.DanceStyle, error) {
	return s.first(ctx, "name = ?", name)
}

// List returns a page of the catalog ordered by id
func (s *StyleService) List(ctx context.Context, offset, limit int) ([]model.DanceStyle, error) {
	if offset < 0 {
		return nil, invalid("skip can't be negative")
	}

	if limit < 1 || limit > MaxStyleLimit {
		return nil, invalid("limit must be between 1 and %d", MaxStyleLimit)
	}

	styles := []model.DanceStyle{}

	err := s.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&styles).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to list dance styles, %w", err)
	}

	return styles, nil
}

func (s *StyleService) first(ctx context.Context, query string, arg any) (*model.DanceStyle, error) {
	var style model.DanceStyle

	err := s.db.WithContext(ctx).Where(query, arg).First(&style).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound(msgStyleNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to fetch dance style, %w", err)
	}

	return &style, nil
}

func styleExists(name string) error {
	return conflict("Dance style with name '%s' already exists.", name)
}
