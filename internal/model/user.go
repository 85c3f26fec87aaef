// Package model defines database models
package model

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	IsActive     bool   `gorm:"default:true;not null" json:"is_active"`

	// Only declared so the migrator emits the cascading foreign key.
	// Profiles are always looked up by user ID, never through this field.
	Profile *Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
