// Package stats feeds the admin dashboard counters. Everything is computed
// against the live store on each request; nothing is cached or persisted.
package stats

import (
	"gorm.io/gorm"

	"manara/models"
)

type StatsModule struct {
	db *gorm.DB
}

func NewStatsModule(db *gorm.DB) *StatsModule {
	return &StatsModule{db: db}
}

type Overview struct {
	Activities    int64
	Upcoming      int64
	Completed     int64
	BlogPosts     int64
	GalleryItems  int64
	Registrations int64
}

func (s *StatsModule) Overview() Overview {
	var o Overview
	s.db.Model(&models.Activity{}).Count(&o.Activities)
	s.db.Model(&models.Activity{}).Where("status = ?", models.StatusUpcoming).Count(&o.Upcoming)
	s.db.Model(&models.Activity{}).Where("status = ?", models.StatusCompleted).Count(&o.Completed)
	s.db.Model(&models.BlogPost{}).Count(&o.BlogPosts)
	s.db.Model(&models.GalleryItem{}).Count(&o.GalleryItems)
	s.db.Model(&models.Registration{}).Count(&o.Registrations)
	return o
}

// RecentRegistrations returns the newest sign-ups for the dashboard feed.
func (s *StatsModule) RecentRegistrations(limit int) []models.Registration {
	var registrations []models.Registration
	s.db.Order("created_at DESC").Limit(limit).Find(&registrations)
	return registrations
}

// RegistrationsPerActivity counts sign-ups grouped by the snapshot title, so
// renamed or deleted activities keep their historical rows.
func (s *StatsModule) RegistrationsPerActivity() map[string]int64 {
	type row struct {
		ActivityTitle string
		Count         int64
	}

	var rows []row
	s.db.Model(&models.Registration{}).
		Select("activity_title, COUNT(*) as count").
		Group("activity_title").
		Scan(&rows)

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.ActivityTitle] = r.Count
	}
	return counts
}
