package repo

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"manara/models"
)

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.AutoMigrate(
		&models.User{},
		&models.Activity{},
		&models.BlogPost{},
		&models.GalleryItem{},
		&models.Registration{},
		&models.ContactMessage{},
	)
	return db
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
