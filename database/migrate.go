package database

import (
	"inkwell/internal/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Tag{},
		&models.Article{},
		&models.Admin{},
	)
}
