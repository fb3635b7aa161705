package site

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"manara/models"
)

func TestBuildAlbums(t *testing.T) {
	activities := []models.Activity{
		{ID: "a1", Title: "قافلة"},
		{ID: "a2", Title: "ورشة بلا صور"},
	}
	items := []models.GalleryItem{
		{ID: "g1", ActivityID: "a1"},
		{ID: "g2", ActivityID: "a1"},
		{ID: "g3"},
	}

	albums := buildAlbums(items, activities)

	assert.Len(t, albums, 2)
	assert.Equal(t, "a1", albums[0].ID)
	assert.Equal(t, 2, albums[0].Count)

	// The general album collects unlinked items and comes last.
	assert.Equal(t, GeneralAlbum, albums[1].ID)
	assert.Equal(t, 1, albums[1].Count)
}

func TestBuildAlbums_NoGeneralWhenAllLinked(t *testing.T) {
	activities := []models.Activity{{ID: "a1", Title: "قافلة"}}
	items := []models.GalleryItem{{ID: "g1", ActivityID: "a1"}}

	albums := buildAlbums(items, activities)

	assert.Len(t, albums, 1)
	assert.Equal(t, "a1", albums[0].ID)
}

func TestGalleryPage_GeneralAlbum(t *testing.T) {
	db := setupTestDB()
	siteModule := NewSiteModule(db, testLogger())
	router := setupTestRouter(siteModule)

	activity := models.Activity{Title: "قافلة"}
	db.Create(&activity)

	db.Create(&models.GalleryItem{URL: "/linked.jpg", Title: "مرتبط", ActivityID: activity.ID, Type: models.MediaImage})
	db.Create(&models.GalleryItem{URL: "/general.jpg", Title: "عام", Type: models.MediaImage})

	req, _ := http.NewRequest("GET", "/gallery?album=general", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/general.jpg")
	assert.NotContains(t, w.Body.String(), "/linked.jpg")
}

func TestGalleryPage_ActivityAlbum(t *testing.T) {
	db := setupTestDB()
	siteModule := NewSiteModule(db, testLogger())
	router := setupTestRouter(siteModule)

	activity := models.Activity{Title: "قافلة طبية"}
	db.Create(&activity)

	db.Create(&models.GalleryItem{URL: "/linked.jpg", ActivityID: activity.ID, Type: models.MediaImage})
	db.Create(&models.GalleryItem{URL: "/general.jpg", Type: models.MediaImage})

	req, _ := http.NewRequest("GET", "/gallery?album="+activity.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "قافلة طبية")
	assert.Contains(t, w.Body.String(), "/linked.jpg")
	assert.NotContains(t, w.Body.String(), "/general.jpg")
}
