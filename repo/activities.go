package repo

import (
	"gorm.io/gorm"

	"manara/models"
)

type Activities struct {
	db *gorm.DB
}

func NewActivities(db *gorm.DB) *Activities {
	return &Activities{db: db}
}

// ActivityPatch is a partial update. Nil fields keep their prior value;
// non-nil fields are written, including explicit empties. Clearing a field
// therefore requires sending its zero value, never omitting it.
type ActivityPatch struct {
	Title        *string
	Date         *string
	Description  *string
	Category     *string
	Image        *string
	Status       *string
	IsHidden     *bool
	Gallery      *models.StringList
	Participants *int
	Rating       *float64
	Duration     *string
	Highlights   *models.StringList
}

// List returns activities newest-created first. With includeHidden false,
// records flagged hidden are excluded; an absent flag counts as visible.
func (r *Activities) List(includeHidden bool) ([]models.Activity, error) {
	q := r.db.Model(&models.Activity{})
	if !includeHidden {
		q = q.Where("is_hidden IS NULL OR is_hidden = ?", false)
	}

	var activities []models.Activity
	if err := q.Order("created_at DESC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *Activities) Get(id string) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.Where("id = ?", id).First(&activity).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &activity, nil
}

// Create assigns an id and fills the editorial defaults: a new activity is
// upcoming with a 5.0 rating unless the caller says otherwise.
func (r *Activities) Create(activity *models.Activity) error {
	if activity.Status == "" {
		activity.Status = models.StatusUpcoming
	}
	if activity.Rating == 0 {
		activity.Rating = 5.0
	}
	return r.db.Create(activity).Error
}

func (r *Activities) Update(id string, patch ActivityPatch) (*models.Activity, error) {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Image != nil {
		updates["image"] = *patch.Image
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.IsHidden != nil {
		updates["is_hidden"] = *patch.IsHidden
	}
	if patch.Gallery != nil {
		updates["gallery"] = *patch.Gallery
	}
	if patch.Participants != nil {
		updates["participants"] = *patch.Participants
	}
	if patch.Rating != nil {
		updates["rating"] = *patch.Rating
	}
	if patch.Duration != nil {
		updates["duration"] = *patch.Duration
	}
	if patch.Highlights != nil {
		updates["highlights"] = *patch.Highlights
	}

	if len(updates) > 0 {
		result := r.db.Model(&models.Activity{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return r.Get(id)
}

// Delete removes the activity. Deleting an id that no longer exists is not
// an error.
func (r *Activities) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Activity{}).Error
}
