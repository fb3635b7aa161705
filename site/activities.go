package site

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"manara/models"
)

// listActivities renders the public catalogue. Status filter and search run
// in memory over the fetched slice; the result sets are small.
func (s *SiteModule) listActivities(c *gin.Context) {
	activities, err := s.activities.List(false)
	if err != nil {
		s.renderError(c, "تعذر تحميل الأنشطة")
		return
	}

	statusFilter := c.Query("status")
	search := strings.ToLower(strings.TrimSpace(c.Query("q")))

	var filtered []models.Activity
	for _, a := range activities {
		if statusFilter != "" && a.Status != statusFilter {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Title), search) &&
			!strings.Contains(strings.ToLower(a.Category), search) {
			continue
		}
		filtered = append(filtered, a)
	}

	c.HTML(http.StatusOK, "site_activities.html", gin.H{
		"activities": filtered,
		"status":     statusFilter,
		"search":     c.Query("q"),
	})
}

func (s *SiteModule) activityDetail(c *gin.Context) {
	activity, err := s.visibleActivity(c.Param("id"))
	if err != nil {
		s.renderNotFound(c)
		return
	}

	c.HTML(http.StatusOK, "site_activity.html", gin.H{
		"activity": activity,
	})
}

// register creates a Registration for the activity. The stored
// activity_title is a snapshot of the title at submit time; it is never
// refreshed afterwards. Nothing prevents the same visitor from registering
// twice.
func (s *SiteModule) register(c *gin.Context) {
	activity, err := s.visibleActivity(c.Param("id"))
	if err != nil {
		s.renderNotFound(c)
		return
	}

	registration := models.Registration{
		ActivityID:    activity.ID,
		ActivityTitle: activity.Title,
		FullName:      c.PostForm("full_name"),
		Email:         c.PostForm("email"),
		Phone:         c.PostForm("phone"),
	}

	if err := s.registrations.Create(&registration); err != nil {
		s.log.WithError(err).WithField("activity_id", activity.ID).Error("registration failed")
		c.HTML(http.StatusInternalServerError, "site_activity.html", gin.H{
			"activity":  activity,
			"regError":  "حدث خطأ أثناء التسجيل. يرجى المحاولة مرة أخرى.",
			"fullName":  registration.FullName,
			"regEmail":  registration.Email,
			"regPhone":  registration.Phone,
		})
		return
	}

	s.log.WithFields(map[string]interface{}{
		"activity_id": activity.ID,
		"email":       registration.Email,
	}).Info("new registration")

	c.HTML(http.StatusOK, "site_activity.html", gin.H{
		"activity":   activity,
		"regSuccess": true,
	})
}
