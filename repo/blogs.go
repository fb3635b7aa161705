package repo

import (
	"gorm.io/gorm"

	"manara/models"
)

type Blogs struct {
	db *gorm.DB
}

func NewBlogs(db *gorm.DB) *Blogs {
	return &Blogs{db: db}
}

// BlogPatch follows the same nil-keeps / non-nil-writes rule as
// ActivityPatch. Clearing ExternalURL means sending an empty string; an
// omitted field persists indefinitely.
type BlogPatch struct {
	Title       *string
	Excerpt     *string
	Content     *string
	Date        *string
	Author      *string
	Image       *string
	ExternalURL *string
}

func (r *Blogs) List() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := r.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *Blogs) Get(id string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.Where("id = ?", id).First(&post).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &post, nil
}

func (r *Blogs) Create(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

func (r *Blogs) Update(id string, patch BlogPatch) (*models.BlogPost, error) {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Excerpt != nil {
		updates["excerpt"] = *patch.Excerpt
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}
	if patch.Author != nil {
		updates["author"] = *patch.Author
	}
	if patch.Image != nil {
		updates["image"] = *patch.Image
	}
	if patch.ExternalURL != nil {
		updates["external_url"] = *patch.ExternalURL
	}

	if len(updates) > 0 {
		result := r.db.Model(&models.BlogPost{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return r.Get(id)
}

func (r *Blogs) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.BlogPost{}).Error
}
