package repo

import (
	"gorm.io/gorm"

	"manara/models"
)

type Gallery struct {
	db *gorm.DB
}

func NewGallery(db *gorm.DB) *Gallery {
	return &Gallery{db: db}
}

// List returns gallery items newest-created first with ActivityTitle
// resolved from the referenced activity. The join is best-effort and
// recomputed on every read, never persisted: an item whose activity was
// deleted (or which never had one) comes back with an empty title.
func (r *Gallery) List() ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	if err := r.db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}

	titles, err := r.activityTitles()
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ActivityTitle = titles[items[i].ActivityID]
	}
	return items, nil
}

func (r *Gallery) Get(id string) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &item, nil
}

// Create stores one item. Items are created singly or one-per-file in bulk
// uploads; they are never updated in place.
func (r *Gallery) Create(item *models.GalleryItem) error {
	if item.Type == "" {
		item.Type = models.MediaImage
	}
	return r.db.Create(item).Error
}

func (r *Gallery) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.GalleryItem{}).Error
}

func (r *Gallery) activityTitles() (map[string]string, error) {
	var activities []models.Activity
	if err := r.db.Select("id", "title").Find(&activities).Error; err != nil {
		return nil, err
	}

	titles := make(map[string]string, len(activities))
	for _, a := range activities {
		titles[a.ID] = a.Title
	}
	return titles, nil
}
