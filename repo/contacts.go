package repo

import (
	"gorm.io/gorm"

	"manara/models"
)

// Contacts is write-only from the application's point of view.
type Contacts struct {
	db *gorm.DB
}

func NewContacts(db *gorm.DB) *Contacts {
	return &Contacts{db: db}
}

func (r *Contacts) Create(msg *models.ContactMessage) error {
	if msg.Status == "" {
		msg.Status = "new"
	}
	return r.db.Create(msg).Error
}
