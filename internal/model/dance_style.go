package model

type DanceStyle struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"uniqueIndex;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
}
