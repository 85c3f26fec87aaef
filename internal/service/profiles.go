package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyamazurenko/Dance-partner-app/internal/model"
	"github.com/ilyamazurenko/Dance-partner-app/pkg/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	msgProfileExists   = "User already has a profile"
	msgProfileNotFound = "Profile not found"

	maxNameLength    = 100
	maxContactLength = 255
	maxBioLength     = 2000
	maxStylesPerUser = 100
)

var validate = validator.New()

// ProfilePatch is a partial profile update. Absent fields are left alone,
// a null string field clears it. A present dance_style_ids list replaces the
// style set, an empty list clears it; null is treated as absent.
type ProfilePatch struct {
	FirstName        util.Optional[string] `json:"first_name"`
	LastName         util.Optional[string] `json:"last_name"`
	City             util.Optional[string] `json:"city"`
	Bio              util.Optional[string] `json:"bio"`
	PreferredContact util.Optional[string] `json:"preferred_contact"`
	DanceStyleIDs    util.Optional[[]uint] `json:"dance_style_ids"`
}

func (p *ProfilePatch) Validate() error {
	fields := []struct {
		name  string
		value util.Optional[string]
		max   int
	}{
		{"first_name", p.FirstName, maxNameLength},
		{"last_name", p.LastName, maxNameLength},
		{"city", p.City, maxNameLength},
		{"bio", p.Bio, maxBioLength},
		{"preferred_contact", p.PreferredContact, maxContactLength},
	}

	for _, f := range fields {
		if f.value.Value == nil {
			continue
		}

		if err := validate.Var(*f.value.Value, fmt.Sprintf("max=%d", f.max)); err != nil {
			return invalid("%s must be at most %d characters", f.name, f.max)
		}
	}

	if ids := p.DanceStyleIDs.Value; ids != nil {
		if err := validate.Var(*ids, fmt.Sprintf("max=%d,dive,gt=0", maxStylesPerUser)); err != nil {
			return invalid("dance_style_ids must hold at most %d positive ids", maxStylesPerUser)
		}
	}

	return nil
}

// columns returns the profile columns the patch touches
func (p *ProfilePatch) columns() map[string]any {
	cols := map[string]any{}

	set := func(name string, o util.Optional[string]) {
		if !o.Set {
			return
		}

		if o.Value == nil {
			cols[name] = nil
			return
		}

		cols[name] = *o.Value
	}

	set("first_name", p.FirstName)
	set("last_name", p.LastName)
	set("city", p.City)
	set("bio", p.Bio)
	set("preferred_contact", p.PreferredContact)

	return cols
}

func (p *ProfilePatch) styleIDs() ([]uint, bool) {
	if !p.DanceStyleIDs.Set || p.DanceStyleIDs.Value == nil {
		return nil, false
	}

	return *p.DanceStyleIDs.Value, true
}

type ProfileService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db, now: time.Now}
}

// WithClock replaces the time source used for creation timestamps
func (s *ProfileService) WithClock(now func() time.Time) *ProfileService {
	s.now = now
	return s
}

func (s *ProfileService) GetByUser(ctx context.Context, userID uint) (*model.Profile, error) {
	return firstProfile(s.db.WithContext(ctx), "profiles.user_id = ?", userID)
}

func (s *ProfileService) GetByID(ctx context.Context, id uint) (*model.Profile, error) {
	return firstProfile(s.db.WithContext(ctx), "profiles.id = ?", id)
}

// Create makes the profile of userID. Owning a profile already is an
// ErrConflict, including when a concurrent request wins the unique index.
func (s *ProfileService) Create(ctx context.Context, userID uint, patch *ProfilePatch) (*model.Profile, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var created *model.Profile

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64

		err := tx.
			Model(model.Profile{}).
			Where("user_id = ?", userID).
			Count(&exists).
			Error
		if err != nil {
			return fmt.Errorf("failed to check for existing profile, %w", err)
		}

		if exists > 0 {
			return conflict(msgProfileExists)
		}

		p := model.Profile{
			UserID:    userID,
			CreatedAt: s.now().UTC(),
		}

		if err := tx.Omit(clause.Associations).Create(&p).Error; err != nil {
			if isUniqueViolation(err) {
				return conflict(msgProfileExists)
			}

			return fmt.Errorf("failed to create profile, %w", err)
		}

		if err := applyPatch(tx, p.ID, patch); err != nil {
			return err
		}

		created, err = firstProfile(tx, "profiles.id = ?", p.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Update applies patch to profile and returns it reloaded with its styles.
// Unknown style ids are dropped rather than rejected.
func (s *ProfileService) Update(ctx context.Context, profile *model.Profile, patch *ProfilePatch) (*model.Profile, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var updated *model.Profile

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := applyPatch(tx, profile.ID, patch); err != nil {
			return err
		}

		var err error
		updated, err = firstProfile(tx, "profiles.id = ?", profile.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Upsert creates the profile of userID or updates the existing one
func (s *ProfileService) Upsert(ctx context.Context, userID uint, patch *ProfilePatch) (*model.Profile, error) {
	profile, err := s.GetByUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return s.Create(ctx, userID, patch)
	}

	if err != nil {
		return nil, err
	}

	return s.Update(ctx, profile, patch)
}

func applyPatch(tx *gorm.DB, profileID uint, patch *ProfilePatch) error {
	if cols := patch.columns(); len(cols) > 0 {
		err := tx.
			Model(model.Profile{}).
			Where("id = ?", profileID).
			Updates(cols).
			Error
		if err != nil {
			return fmt.Errorf("failed to update profile, %w", err)
		}
	}

	if ids, ok := patch.styleIDs(); ok {
		return replaceStyles(tx, profileID, ids)
	}

	return nil
}

// replaceStyles swaps the style set of a profile for the styles in ids that
// exist. Styles that stay linked keep their skill level.
func replaceStyles(tx *gorm.DB, profileID uint, ids []uint) error {
	var current []model.ProfileDanceStyle

	err := tx.
		Where("profile_id = ?", profileID).
		Find(&current).
		Error
	if err != nil {
		return fmt.Errorf("failed to load profile styles, %w", err)
	}

	levels := make(map[uint]string, len(current))
	for _, l := range current {
		levels[l.DanceStyleID] = l.SkillLevel
	}

	err = tx.
		Where("profile_id = ?", profileID).
		Delete(&model.ProfileDanceStyle{}).
		Error
	if err != nil {
		return fmt.Errorf("failed to clear profile styles, %w", err)
	}

	if len(ids) == 0 {
		return nil
	}

	var found []uint

	err = tx.
		Model(model.DanceStyle{}).
		Where("id IN ?", ids).
		Order("id").
		Pluck("id", &found).
		Error
	if err != nil {
		return fmt.Errorf("failed to resolve dance styles, %w", err)
	}

	if len(found) < len(ids) {
		zap.L().Debug("Dropping unknown dance style ids",
			zap.Uint("profileID", profileID),
			zap.Uints("requested", ids),
			zap.Uints("found", found),
		)
	}

	if len(found) == 0 {
		return nil
	}

	links := make([]model.ProfileDanceStyle, 0, len(found))
	for _, id := range found {
		level, ok := levels[id]
		if !ok {
			level = model.DefaultSkillLevel
		}

		links = append(links, model.ProfileDanceStyle{
			ProfileID:    profileID,
			DanceStyleID: id,
			SkillLevel:   level,
		})
	}

	if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
		return fmt.Errorf("failed to link dance styles, %w", err)
	}

	return nil
}

// firstProfile loads a single profile with its full style set
func firstProfile(db *gorm.DB, query string, args ...any) (*model.Profile, error) {
	var p model.Profile

	err := withStyles(db).
		Where(query, args...).
		First(&p).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound(msgProfileNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile, %w", err)
	}

	return &p, nil
}

func withStyles(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Styles", func(db *gorm.DB) *gorm.DB {
			return db.Order("dance_style_id")
		}).
		Preload("Styles.DanceStyle")
}
