package admin

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"manara/models"
)

func (a *AdminModule) galleryManager(c *gin.Context) {
	a.renderGalleryManager(c, http.StatusOK, gin.H{})
}

// createGalleryItems handles both modes of the gallery form: a direct URL
// creates one item, attached files run as a bulk upload creating one item
// per file. Bulk mode is sequential and keeps going past individual
// failures, reporting how many of the files made it.
func (a *AdminModule) createGalleryItems(c *gin.Context) {
	base := models.GalleryItem{
		Title:      c.PostForm("title"),
		Category:   c.PostForm("category"),
		Type:       c.PostForm("type"),
		ActivityID: c.PostForm("activity_id"),
		URL:        c.PostForm("url"),
	}
	if base.Category == "" {
		base.Category = "عام"
	}

	var files []*multipart.FileHeader
	if form, _ := c.MultipartForm(); form != nil {
		files = form.File["files"]
	}

	if len(files) == 0 && base.URL == "" {
		a.renderGalleryManager(c, http.StatusBadRequest, gin.H{
			"error": "يرجى اختيار ملفات أو إضافة رابط",
		})
		return
	}

	// URL mode: a single record, no upload.
	if len(files) == 0 {
		if err := a.gallery.Create(&base); err != nil {
			a.log.WithError(err).Error("create gallery item failed")
			a.renderGalleryManager(c, http.StatusInternalServerError, gin.H{
				"error": "تعذر إضافة العنصر. يرجى المحاولة مرة أخرى.",
			})
			return
		}
		c.Redirect(http.StatusFound, "/admin/gallery")
		return
	}

	successCount := 0
	var lastErr error
	for i, fh := range files {
		url, err := a.uploadFile(c, fh)
		if err != nil {
			a.log.WithError(err).WithField("file", fh.Filename).Warn("gallery upload failed")
			lastErr = err
			continue
		}

		item := base
		item.URL = url
		if len(files) > 1 {
			item.Title = fmt.Sprintf("%s (%d)", base.Title, i+1)
		}
		if err := a.gallery.Create(&item); err != nil {
			a.log.WithError(err).WithField("file", fh.Filename).Warn("gallery insert failed")
			lastErr = err
			continue
		}
		successCount++
	}

	data := gin.H{
		"message": fmt.Sprintf("تم رفع %d من %d بنجاح", successCount, len(files)),
	}
	if successCount < len(files) && lastErr != nil {
		data["error"] = uploadErrorMessage(lastErr)
	}
	a.renderGalleryManager(c, http.StatusOK, data)
}

func (a *AdminModule) deleteGalleryItem(c *gin.Context) {
	if err := a.gallery.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "تعذر حذف العنصر"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "تم حذف العنصر"})
}

func (a *AdminModule) renderGalleryManager(c *gin.Context, status int, extra gin.H) {
	items, err := a.gallery.List()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "تعذر تحميل المعرض",
		})
		return
	}

	activities, err := a.activities.List(true)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "تعذر تحميل الأنشطة",
		})
		return
	}

	data := gin.H{
		"items":      items,
		"activities": activities,
	}
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(status, "admin_gallery.html", data)
}
