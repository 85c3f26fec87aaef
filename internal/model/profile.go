package model

import "time"

// DefaultSkillLevel is stored on a profile/style link when none is given
const DefaultSkillLevel = "Beginner"

type Profile struct {
	ID               uint      `gorm:"primaryKey;autoIncrement"`
	UserID           uint      `gorm:"uniqueIndex;not null"`
	FirstName        *string   `gorm:"index"`
	LastName         *string   `gorm:"index"`
	City             *string   `gorm:"index"`
	Bio              *string   `gorm:"type:text"`
	PreferredContact *string
	CreatedAt        time.Time `gorm:"not null;index"`

	Styles []ProfileDanceStyle `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

// ProfileDanceStyle is the association between a profile and a dance style.
// The composite primary key keeps a style from being linked twice.
type ProfileDanceStyle struct {
	ProfileID    uint   `gorm:"primaryKey"`
	DanceStyleID uint   `gorm:"primaryKey;index"`
	SkillLevel   string `gorm:"not null;default:Beginner"`

	DanceStyle DanceStyle `gorm:"foreignKey:DanceStyleID;constraint:OnDelete:CASCADE"`
}
