package model

import "time"

// ProfileView is the JSON representation of a profile with its styles flattened
type ProfileView struct {
	ID               uint             `json:"id"`
	UserID           uint             `json:"user_id"`
	FirstName        *string          `json:"first_name"`
	LastName         *string          `json:"last_name"`
	City             *string          `json:"city"`
	Bio              *string          `json:"bio"`
	PreferredContact *string          `json:"preferred_contact"`
	CreatedAt        time.Time        `json:"created_at"`
	DanceStyles      []DanceStyleView `json:"dance_styles"`
}

type DanceStyleView struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	SkillLevel  string  `json:"skill_level"`
}

func NewProfileView(p *Profile) ProfileView {
	styles := make([]DanceStyleView, 0, len(p.Styles))
	for _, s := range p.Styles {
		styles = append(styles, DanceStyleView{
			ID:          s.DanceStyle.ID,
			Name:        s.DanceStyle.Name,
			Description: s.DanceStyle.Description,
			SkillLevel:  s.SkillLevel,
		})
	}

	return ProfileView{
		ID:               p.ID,
		UserID:           p.UserID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		City:             p.City,
		Bio:              p.Bio,
		PreferredContact: p.PreferredContact,
		CreatedAt:        p.CreatedAt.UTC(),
		DanceStyles:      styles,
	}
}

func NewProfileViews(profiles []Profile) []ProfileView {
	views := make([]ProfileView, 0, len(profiles))
	for i := range profiles {
		views = append(views, NewProfileView(&profiles[i]))
	}

	return views
}
