package admin

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"manara/models"
	"manara/repo"
	"manara/storage"
)

func (a *AdminModule) listActivities(c *gin.Context) {
	activities, err := a.activities.List(true)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "تعذر تحميل الأنشطة",
		})
		return
	}

	c.HTML(http.StatusOK, "admin_activities.html", gin.H{
		"activities": activities,
	})
}

func (a *AdminModule) newActivity(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_activity_form.html", gin.H{
		"activity": &models.Activity{Status: models.StatusUpcoming, Rating: 5.0},
	})
}

func (a *AdminModule) createActivity(c *gin.Context) {
	activity := models.Activity{
		Title:        c.PostForm("title"),
		Date:         c.PostForm("date"),
		Description:  c.PostForm("description"),
		Category:     c.PostForm("category"),
		Image:        c.PostForm("image"),
		Status:       c.PostForm("status"),
		Participants: atoiOrZero(c.PostForm("participants")),
		Rating:       parseFloatOrZero(c.PostForm("rating")),
		Duration:     c.PostForm("duration"),
		Highlights:   splitLines(c.PostForm("highlights")),
		Gallery:      splitLines(c.PostForm("gallery")),
	}

	if err := a.applyUploads(c, &activity); err != nil {
		c.HTML(http.StatusInternalServerError, "admin_activity_form.html", gin.H{
			"activity": &activity,
			"error":    uploadErrorMessage(err),
		})
		return
	}

	if err := a.activities.Create(&activity); err != nil {
		a.log.WithError(err).Error("create activity failed")
		c.HTML(http.StatusInternalServerError, "admin_activity_form.html", gin.H{
			"activity": &activity,
			"error":    "تعذر حفظ النشاط. يرجى المحاولة مرة أخرى.",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/activities")
}

func (a *AdminModule) editActivity(c *gin.Context) {
	activity, err := a.activities.Get(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "admin_error.html", gin.H{
			"error": "النشاط غير موجود",
		})
		return
	}

	c.HTML(http.StatusOK, "admin_activity_form.html", gin.H{
		"activity": activity,
		"isEdit":   true,
	})
}

func (a *AdminModule) updateActivity(c *gin.Context) {
	id := c.Param("id")

	// The edit form posts the full field set, so every patch field is
	// present; an emptied input clears the stored value.
	draft := models.Activity{
		ID:           id,
		Title:        c.PostForm("title"),
		Date:         c.PostForm("date"),
		Description:  c.PostForm("description"),
		Category:     c.PostForm("category"),
		Image:        c.PostForm("image"),
		Status:       c.PostForm("status"),
		Participants: atoiOrZero(c.PostForm("participants")),
		Rating:       parseFloatOrZero(c.PostForm("rating")),
		Duration:     c.PostForm("duration"),
		Highlights:   splitLines(c.PostForm("highlights")),
		Gallery:      splitLines(c.PostForm("gallery")),
	}

	if err := a.applyUploads(c, &draft); err != nil {
		c.HTML(http.StatusInternalServerError, "admin_activity_form.html", gin.H{
			"activity": &draft,
			"isEdit":   true,
			"error":    uploadErrorMessage(err),
		})
		return
	}

	patch := repo.ActivityPatch{
		Title:        &draft.Title,
		Date:         &draft.Date,
		Description:  &draft.Description,
		Category:     &draft.Category,
		Image:        &draft.Image,
		Status:       &draft.Status,
		Participants: &draft.Participants,
		Rating:       &draft.Rating,
		Duration:     &draft.Duration,
		Highlights:   &draft.Highlights,
		Gallery:      &draft.Gallery,
	}

	if _, err := a.activities.Update(id, patch); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.HTML(http.StatusNotFound, "admin_error.html", gin.H{
				"error": "النشاط غير موجود",
			})
			return
		}
		a.log.WithError(err).WithField("id", id).Error("update activity failed")
		c.HTML(http.StatusInternalServerError, "admin_activity_form.html", gin.H{
			"activity": &draft,
			"isEdit":   true,
			"error":    "تعذر حفظ التعديلات. يرجى المحاولة مرة أخرى.",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/activities")
}

// toggleActivityVisibility flips is_hidden. A hidden activity disappears
// from every public list but stays on the admin list.
func (a *AdminModule) toggleActivityVisibility(c *gin.Context) {
	id := c.Param("id")

	activity, err := a.activities.Get(id)
	if err != nil {
		c.HTML(http.StatusNotFound, "admin_error.html", gin.H{
			"error": "النشاط غير موجود",
		})
		return
	}

	hidden := !activity.Hidden()
	if _, err := a.activities.Update(id, repo.ActivityPatch{IsHidden: &hidden}); err != nil {
		a.log.WithError(err).WithField("id", id).Error("toggle visibility failed")
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "تعذر تغيير حالة الإظهار",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/activities")
}

func (a *AdminModule) deleteActivity(c *gin.Context) {
	id := c.Param("id")

	if err := a.activities.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "تعذر حذف النشاط"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "تم حذف النشاط"})
}

// applyUploads replaces the image when a file was attached and appends any
// uploaded gallery files to the activity's gallery list.
func (a *AdminModule) applyUploads(c *gin.Context, activity *models.Activity) error {
	if fh, err := c.FormFile("image_file"); err == nil && fh != nil {
		url, err := a.uploadFile(c, fh)
		if err != nil {
			return err
		}
		activity.Image = url
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	for _, fh := range form.File["gallery_files"] {
		url, err := a.uploadFile(c, fh)
		if err != nil {
			return err
		}
		activity.Gallery = append(activity.Gallery, url)
	}
	return nil
}

func (a *AdminModule) uploadFile(c *gin.Context, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	return a.store.Upload(c.Request.Context(), fh.Filename, src)
}

func uploadErrorMessage(err error) string {
	if errors.Is(err, storage.ErrBucketNotFound) {
		return "حاوية التخزين \"activities\" غير موجودة. افتح صفحة /debug للتحقق من إعدادات التخزين."
	}
	return "فشل رفع الملف. يرجى المحاولة مرة أخرى."
}

func splitLines(s string) models.StringList {
	var out models.StringList
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func parseFloatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
