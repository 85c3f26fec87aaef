package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ilyamazurenko/Dance-partner-app/internal/model"

	"gorm.io/gorm"
)

// PartnerCriteria filters a partner search. Empty fields don't filter.
// MinSkillLevel is accepted but not applied.
type PartnerCriteria struct {
	City          *string `json:"city"`
	DanceStyleIDs []uint  `json:"dance_style_ids" binding:"omitempty,max=100,dive,gt=0"`
	MinSkillLevel *string `json:"min_skill_level" binding:"omitempty,max=50"`
}

type MatchingService struct {
	db *gorm.DB
}

func NewMatchingService(db *gorm.DB) *MatchingService {
	return &MatchingService{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FindPartners returns every profile other than the requester's that matches
// criteria, newest first. A profile linked to several of the wanted styles
// is still returned once.
func (s *MatchingService) FindPartners(ctx context.Context, requesterID uint, criteria PartnerCriteria) ([]model.Profile, error) {
	q := withStyles(s.db.WithContext(ctx)).
		Model(model.Profile{}).
		Where("profiles.user_id <> ?", requesterID)

	if criteria.City != nil && *criteria.City != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(*criteria.City)) + "%"
		q = q.Where(`LOWER(profiles.city) LIKE ? ESCAPE '\'`, pattern)
	}

	if len(criteria.DanceStyleIDs) > 0 {
		linked := s.db.
			Model(model.ProfileDanceStyle{}).
			Select("profile_id").
			Where("dance_style_id IN ?", criteria.DanceStyleIDs)

		q = q.Where("profiles.id IN (?)", linked)
	}

	profiles := []model.Profile{}

	if err := q.Order("profiles.created_at DESC").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to search profiles, %w", err)
	}

	return profiles, nil
}
