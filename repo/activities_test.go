package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"manara/models"
)

func TestActivityCreate_Defaults(t *testing.T) {
	db := setupTestDB()
	repo := NewActivities(db)

	activity := models.Activity{Title: "ورشة تدريبية"}
	err := repo.Create(&activity)

	assert.NoError(t, err)
	assert.NotEmpty(t, activity.ID)
	assert.Equal(t, models.StatusUpcoming, activity.Status)
	assert.Equal(t, 5.0, activity.Rating)
}

func TestActivityCreate_KeepsExplicitValues(t *testing.T) {
	db := setupTestDB()
	repo := NewActivities(db)

	activity := models.Activity{
		Title:  "نشاط منجز",
		Status: models.StatusCompleted,
		Rating: 4.2,
	}
	err := repo.Create(&activity)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, activity.Status)
	assert.Equal(t, 4.2, activity.Rating)
}

func TestActivityList_HiddenFilter(t *testing.T) {
	db := setupTestDB()
	repo := NewActivities(db)

	visible := models.Activity{Title: "ظاهر"}
	repo.Create(&visible)

	flaggedVisible := models.Activity{Title: "ظاهر بعلم", IsHidden: boolPtr(false)}
	repo.Create(&flaggedVisible)

	hidden := models.Activity{Title: "مخفي", IsHidden: boolPtr(true)}
	repo.Create(&hidden)

	public, err := repo.List(false)
	assert.NoError(t, err)
	assert.Len(t, public, 2)
	for _, a := range public {
		assert.False(t, a.Hidden())
	}

	all, err := repo.List(true)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestActivityGet_NotFound(t *testing.T) {
	db := setupTestDB()
	repo := NewActivities(db)

	_, err := repo.Get("missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityUpdate_PartialPatch(t *testing.T) {
	db := setupTestDB()
	repo := NewActivities(db)

	activity := models.Activity{
		Title:       "العنوان الأصلي",
		Description: "الوصف الأصلي",
		Category:    "تكوين",
	}
	repo.Create(&activity)

	updated, err := repo.Update(activity.ID, ActivityPatch{
		Title: strPtr("العنوان الجديد"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "العنوان الجديد", updated.Title)
	assert.Equal(t, "الوصف الأصلي", updated.Description)
	assert.Equal(t, "تكوين", updated.Category)
}

func TestActivityUpdate_ExplicitClear(t *testing.T) {
	db := setupTestDB()
	repo := NewActivities(db)

	activity := models.Activity{Title: "نشاط", Duration: "3 أيام"}
	repo.Create(&activity)

	updated, err := repo.Update(activity.ID, ActivityPatch{
		Duration: strPtr(""),
	})

	assert.NoError(t, err)
	assert.Empty(t, updated.Duration)
	assert.Equal(t, "نشاط", updated.Title)
}

func TestActivityUpdate_NotFound(t *testing.T) {
	db := setupTestDB()
	repo := NewActivities(db)

	_, err := repo.Update("missing-id", ActivityPatch{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityUpdate_EmptyPatchKeepsRecord(t *testing.T) {
	db := setupTestDB()
	repo := NewActivities(db)

	activity := models.Activity{Title: "كما هو"}
	repo.Create(&activity)

	updated, err := repo.Update(activity.ID, ActivityPatch{})
	assert.NoError(t, err)
	assert.Equal(t, "كما هو", updated.Title)
}

func TestActivityVisibilityToggle(t *testing.T) {
	db := setupTestDB()
	repo := NewActivities(db)

	activity := models.Activity{Title: "نشاط"}
	repo.Create(&activity)
	assert.False(t, activity.Hidden())

	updated, err := repo.Update(activity.ID, ActivityPatch{IsHidden: boolPtr(true)})
	assert.NoError(t, err)
	assert.True(t, updated.Hidden())

	public, _ := repo.List(false)
	assert.Empty(t, public)

	updated, err = repo.Update(activity.ID, ActivityPatch{IsHidden: boolPtr(false)})
	assert.NoError(t, err)
	assert.False(t, updated.Hidden())

	public, _ = repo.List(false)
	assert.Len(t, public, 1)
}

func TestActivityDelete_Idempotent(t *testing.T) {
	db := setupTestDB()
	repo := NewActivities(db)

	activity := models.Activity{Title: "سيُحذف"}
	repo.Create(&activity)

	assert.NoError(t, repo.Delete(activity.ID))

	_, err := repo.Get(activity.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is still a success.
	assert.NoError(t, repo.Delete(activity.ID))
}

func TestActivityGalleryRoundtrip(t *testing.T) {
	db := setupTestDB()
	repo := NewActivities(db)

	activity := models.Activity{
		Title:      "نشاط بصور",
		Gallery:    models.StringList{"/a.jpg", "/b.jpg"},
		Highlights: models.StringList{"نقطة أولى", "نقطة ثانية"},
	}
	repo.Create(&activity)

	got, err := repo.Get(activity.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StringList{"/a.jpg", "/b.jpg"}, got.Gallery)
	assert.Equal(t, models.StringList{"نقطة أولى", "نقطة ثانية"}, got.Highlights)
}
