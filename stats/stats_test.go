package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
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
		&models.Activity{},
		&models.BlogPost{},
		&models.GalleryItem{},
		&models.Registration{},
	)
	return db
}

func TestOverview(t *testing.T) {
	db := setupTestDB()
	statsModule := NewStatsModule(db)

	db.Create(&models.Activity{Title: "قادم", Status: models.StatusUpcoming})
	db.Create(&models.Activity{Title: "منجز", Status: models.StatusCompleted})
	db.Create(&models.BlogPost{Title: "مقال"})
	db.Create(&models.GalleryItem{URL: "/x.jpg"})
	db.Create(&models.Registration{FullName: "زائر", ActivityTitle: "قادم"})

	o := statsModule.Overview()

	assert.Equal(t, int64(2), o.Activities)
	assert.Equal(t, int64(1), o.Upcoming)
	assert.Equal(t, int64(1), o.Completed)
	assert.Equal(t, int64(1), o.BlogPosts)
	assert.Equal(t, int64(1), o.GalleryItems)
	assert.Equal(t, int64(1), o.Registrations)
}

func TestRecentRegistrations_Limit(t *testing.T) {
	db := setupTestDB()
	statsModule := NewStatsModule(db)

	for i := 0; i < 7; i++ {
		db.Create(&models.Registration{FullName: "زائر", ActivityTitle: "نشاط"})
	}

	recent := statsModule.RecentRegistrations(5)
	assert.Len(t, recent, 5)
}

func TestRegistrationsPerActivity(t *testing.T) {
	db := setupTestDB()
	statsModule := NewStatsModule(db)

	db.Create(&models.Registration{FullName: "أ", ActivityTitle: "قافلة"})
	db.Create(&models.Registration{FullName: "ب", ActivityTitle: "قافلة"})
	db.Create(&models.Registration{FullName: "ج", ActivityTitle: "ورشة"})

	counts := statsModule.RegistrationsPerActivity()

	assert.Equal(t, int64(2), counts["قافلة"])
	assert.Equal(t, int64(1), counts["ورشة"])
}
