// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"fmt"

	"mineeast-server/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "001_create_signups",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(models.AllModels...); err != nil {
					return fmt.Errorf("failed to create tables: %w", err)
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&models.Signup{})
			},
		},
		{
			ID: "002_signups_country_index",
			Migrate: func(tx *gorm.DB) error {
				if tx.Migrator().HasIndex(&models.Signup{}, "idx_signups_country") {
					return nil
				}
				if err := tx.Exec("CREATE INDEX idx_signups_country ON signups(country)").Error; err != nil {
					return fmt.Errorf("failed to create country index: %w", err)
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropIndex(&models.Signup{}, "idx_signups_country")
			},
		},
	}
}
