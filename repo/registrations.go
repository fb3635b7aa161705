package repo

import (
	"gorm.io/gorm"

	"manara/models"
)

// Registrations is write-once storage: a visitor creates a row, the admin
// reads the list. There is deliberately no update or delete.
type Registrations struct {
	db *gorm.DB
}

func NewRegistrations(db *gorm.DB) *Registrations {
	return &Registrations{db: db}
}

func (r *Registrations) List() ([]models.Registration, error) {
	var registrations []models.Registration
	if err := r.db.Order("created_at DESC").Find(&registrations).Error; err != nil {
		return nil, err
	}
	return registrations, nil
}

func (r *Registrations) Create(registration *models.Registration) error {
	return r.db.Create(registration).Error
}
