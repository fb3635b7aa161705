package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"manara/models"
)

func TestGalleryCreate_TypeDefault(t *testing.T) {
	db := setupTestDB()
	repo := NewGallery(db)

	item := models.GalleryItem{URL: "/photo.jpg", Title: "صورة"}
	err := repo.Create(&item)

	assert.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, models.MediaImage, item.Type)
}

func TestGalleryList_ResolvesActivityTitle(t *testing.T) {
	db := setupTestDB()
	gallery := NewGallery(db)
	activities := NewActivities(db)

	activity := models.Activity{Title: "قافلة طبية"}
	activities.Create(&activity)

	linked := models.GalleryItem{URL: "/1.jpg", ActivityID: activity.ID}
	gallery.Create(&linked)

	general := models.GalleryItem{URL: "/2.jpg"}
	gallery.Create(&general)

	items, err := gallery.List()
	assert.NoError(t, err)
	assert.Len(t, items, 2)

	byID := map[string]models.GalleryItem{}
	for _, item := range items {
		byID[item.ID] = item
	}

	assert.Equal(t, "قافلة طبية", byID[linked.ID].ActivityTitle)
	assert.Empty(t, byID[general.ID].ActivityTitle)
	assert.True(t, byID[general.ID].General())
}

func TestGalleryList_DeletedActivityLeavesEmptyTitle(t *testing.T) {
	db := setupTestDB()
	gallery := NewGallery(db)
	activities := NewActivities(db)

	activity := models.Activity{Title: "سيُحذف"}
	activities.Create(&activity)

	item := models.GalleryItem{URL: "/1.jpg", ActivityID: activity.ID}
	gallery.Create(&item)

	activities.Delete(activity.ID)

	items, err := gallery.List()
	assert.NoError(t, err)
	assert.Len(t, items, 1)

	// The reference stays, the title no longer resolves.
	assert.Equal(t, activity.ID, items[0].ActivityID)
	assert.Empty(t, items[0].ActivityTitle)
}

func TestGalleryDelete(t *testing.T) {
	db := setupTestDB()
	repo := NewGallery(db)

	item := models.GalleryItem{URL: "/x.jpg"}
	repo.Create(&item)

	assert.NoError(t, repo.Delete(item.ID))

	_, err := repo.Get(item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
