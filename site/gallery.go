package site

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"manara/models"
)

// GeneralAlbum is the query value selecting the unlinked items. Internally
// the same partition is just "empty activity_id"; the sentinel exists only
// in the URL.
const GeneralAlbum = "general"

type album struct {
	ID    string
	Title string
	Count int
}

// galleryPage renders the albums overview, or one album's items when the
// album query parameter is set. Items without an activity reference all
// land in the general album; the admin manager partitions them the same
// way.
func (s *SiteModule) galleryPage(c *gin.Context) {
	items, err := s.gallery.List()
	if err != nil {
		s.renderError(c, "تعذر تحميل المعرض")
		return
	}

	activities, err := s.activities.List(false)
	if err != nil {
		s.renderError(c, "تعذر تحميل المعرض")
		return
	}

	selected := c.Query("album")
	if selected != "" {
		var albumItems []models.GalleryItem
		for _, item := range items {
			if selected == GeneralAlbum && item.General() {
				albumItems = append(albumItems, item)
			} else if item.ActivityID == selected {
				albumItems = append(albumItems, item)
			}
		}

		title := "ألبوم عام"
		if selected != GeneralAlbum {
			for _, a := range activities {
				if a.ID == selected {
					title = a.Title
				}
			}
		}

		c.HTML(http.StatusOK, "site_gallery.html", gin.H{
			"albumTitle": title,
			"items":      albumItems,
		})
		return
	}

	albums := buildAlbums(items, activities)
	c.HTML(http.StatusOK, "site_gallery.html", gin.H{
		"albums": albums,
	})
}

// buildAlbums lists only activities that actually have items, plus the
// general album when unlinked items exist.
func buildAlbums(items []models.GalleryItem, activities []models.Activity) []album {
	counts := map[string]int{}
	for _, item := range items {
		counts[item.ActivityID]++
	}

	var albums []album
	for _, a := range activities {
		if counts[a.ID] > 0 {
			albums = append(albums, album{ID: a.ID, Title: a.Title, Count: counts[a.ID]})
		}
	}
	if counts[""] > 0 {
		albums = append(albums, album{ID: GeneralAlbum, Title: "ألبوم عام", Count: counts[""]})
	}
	return albums
}
