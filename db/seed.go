package db

import (
	"github.com/ilyamazurenko/Dance-partner-app/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seedStylesMigration = "seed_dance_styles"

func strPtr(s string) *string { return &s }

var starterStyles = []model.DanceStyle{
	{Name: "Salsa", Description: strPtr("Cuban and Puerto Rican partner dance danced on1 or on2")},
	{Name: "Bachata", Description: strPtr("Dominican partner dance with a hip accent on the fourth beat")},
	{Name: "Kizomba", Description: strPtr("Smooth Angolan close-embrace dance")},
	{Name: "Argentine Tango", Description: strPtr("Improvised close-embrace dance from Buenos Aires")},
	{Name: "West Coast Swing", Description: strPtr("Slotted swing dance to contemporary music")},
	{Name: "Lindy Hop", Description: strPtr("Energetic swing dance born in 1920s Harlem")},
	{Name: "Zouk", Description: strPtr("Brazilian partner dance with flowing head movements")},
	{Name: "Waltz", Description: strPtr("Ballroom dance in triple time")},
}

// SeedStyles fills the catalog with a starter set of styles. It runs once per
// database; styles that already exist by name are left untouched.
func SeedStyles(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var applied int64

		err := tx.
			Model(model.Migration{}).
			Where("name = ?", seedStylesMigration).
			Count(&applied).
			Error
		if err != nil {
			return err
		}

		if applied > 0 {
			return nil
		}

		for _, s := range starterStyles {
			style := s
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&style).Error; err != nil {
				return err
			}
		}

		zap.L().Info("Seeded dance style catalog", zap.Int("styles", len(starterStyles)))

		return tx.Create(&model.Migration{Name: seedStylesMigration}).Error
	})
}
