package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
)

const (
	MediaImage = "image"
	MediaVideo = "video"
)

// StringList is an ordered list of short text values stored as a JSON text
// column (sqlite has no array type).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		if len(v) == 0 {
			*l = nil
			return nil
		}
		return json.Unmarshal(v, l)
	case string:
		if v == "" {
			*l = nil
			return nil
		}
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// User is an admin console account. There are no roles: any user passes the
// admin gate.
type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Activity is a program event, upcoming or completed. Date is display text,
// not an ordered date. Participants, rating, duration and highlights are
// only meaningful for completed activities but the store does not enforce
// that; either status may carry any subset.
type Activity struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	Title        string     `gorm:"not null" json:"title"`
	Date         string     `json:"date"`
	Description  string     `gorm:"type:text" json:"description"`
	Category     string     `json:"category"`
	Image        string     `json:"image"`
	Status       string     `gorm:"index" json:"status"`
	IsHidden     *bool      `json:"is_hidden,omitempty"`
	Gallery      StringList `gorm:"type:text" json:"gallery"`
	Participants int        `json:"participants"`
	Rating       float64    `json:"rating"`
	Duration     string     `json:"duration"`
	Highlights   StringList `gorm:"type:text" json:"highlights"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Hidden treats an absent flag as visible.
func (a Activity) Hidden() bool {
	return a.IsHidden != nil && *a.IsHidden
}

func (a Activity) Completed() bool {
	return a.Status == StatusCompleted
}

// BlogPost is a press/blog entry. Author is repurposed as a source/outlet
// label. When ExternalURL is set the public "read more" opens that link and
// the in-site view is skipped.
type BlogPost struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `gorm:"not null" json:"title"`
	Excerpt     string    `gorm:"type:text" json:"excerpt"`
	Content     string    `gorm:"type:text" json:"content"`
	Date        string    `json:"date"`
	Author      string    `json:"author"`
	Image       string    `json:"image"`
	ExternalURL string    `json:"external_url,omitempty"`
}

func (BlogPost) TableName() string { return "blogs" }

func (b *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// GalleryItem is one photo or video. An empty ActivityID means the item
// belongs to the implicit "general" album. ActivityTitle is joined at read
// time and never stored; it stays empty when the activity has been deleted.
type GalleryItem struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	URL        string    `gorm:"not null" json:"url"`
	Title      string    `json:"title"`
	Type       string    `json:"type"`
	Category   string    `json:"category"`
	ActivityID string    `gorm:"index" json:"activity_id,omitempty"`

	ActivityTitle string `gorm:"-" json:"activity_title,omitempty"`
}

func (g *GalleryItem) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// General reports whether the item belongs to the unlinked album.
func (g GalleryItem) General() bool { return g.ActivityID == "" }

// Registration records a public visitor signing up for an activity.
// ActivityTitle is a deliberate snapshot taken at registration time so the
// row stays readable after the activity is renamed or deleted. Rows are
// write-once: there is no update or delete path.
type Registration struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	ActivityID    string    `gorm:"index" json:"activity_id"`
	ActivityTitle string    `json:"activity_title"`
	FullName      string    `gorm:"not null" json:"full_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ContactMessage is written by the public contact form. Nothing in the app
// reads it back; it is reviewed directly in the store.
type ContactMessage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `gorm:"type:text" json:"message"`
	Status    string    `json:"status"`
}

func (ContactMessage) TableName() string { return "contacts" }

func (c *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
