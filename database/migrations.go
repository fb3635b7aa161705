package database

import (
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"manara/models"
)

func RunMigrations(db *gorm.DB, log *logrus.Logger) error {
	log.Info("running database migrations")

	err := db.AutoMigrate(
		&models.User{},
		&models.Activity{},
		&models.BlogPost{},
		&models.GalleryItem{},
		&models.Registration{},
		&models.ContactMessage{},
	)
	if err != nil {
		log.WithError(err).Error("error running migrations")
		return err
	}

	log.Info("migrations completed")
	return nil
}

// SeedAdminUser creates the initial admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD when the users table is empty. A no-op otherwise, so a
// changed env var never overwrites an existing account.
func SeedAdminUser(db *gorm.DB, log *logrus.Logger) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{Email: email, PasswordHash: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	log.WithField("email", email).Info("seeded admin user")
	return nil
}
