package common

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// LoadEnv loads a .env file if one exists. Missing files are fine; real
// deployments set variables directly.
func LoadEnv() {
	_ = godotenv.Load()
}

// Getenv returns the value of key or fallback when unset or empty.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func ConnectDb(log *logrus.Logger) *gorm.DB {
	dbFile := os.Getenv("SQLITE_DB")
	if dbFile == "" {
		log.Error("SQLITE_DB not set")
		return nil
	}

	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.WithError(err).Error("error opening sqlite db")
		return nil
	}
	log.WithField("db", dbFile).Info("opened sqlite db")
	return db
}
