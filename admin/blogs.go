package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"manara/models"
	"manara/repo"
)

func (a *AdminModule) listBlogs(c *gin.Context) {
	posts, err := a.blogs.List()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "تعذر تحميل المقالات",
		})
		return
	}

	c.HTML(http.StatusOK, "admin_blogs.html", gin.H{
		"posts": posts,
	})
}

func (a *AdminModule) newBlog(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_blog_form.html", gin.H{
		"post": &models.BlogPost{},
	})
}

func (a *AdminModule) createBlog(c *gin.Context) {
	post := models.BlogPost{
		Title:       c.PostForm("title"),
		Excerpt:     c.PostForm("excerpt"),
		Content:     c.PostForm("content"),
		Date:        c.PostForm("date"),
		Author:      c.PostForm("author"),
		Image:       c.PostForm("image"),
		ExternalURL: c.PostForm("external_url"),
	}

	if fh, err := c.FormFile("image_file"); err == nil && fh != nil {
		url, err := a.uploadFile(c, fh)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "admin_blog_form.html", gin.H{
				"post":  &post,
				"error": uploadErrorMessage(err),
			})
			return
		}
		post.Image = url
	}

	if err := a.blogs.Create(&post); err != nil {
		a.log.WithError(err).Error("create blog post failed")
		c.HTML(http.StatusInternalServerError, "admin_blog_form.html", gin.H{
			"post":  &post,
			"error": "تعذر حفظ المقال. يرجى المحاولة مرة أخرى.",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/blogs")
}

func (a *AdminModule) editBlog(c *gin.Context) {
	post, err := a.blogs.Get(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "admin_error.html", gin.H{
			"error": "المقال غير موجود",
		})
		return
	}

	c.HTML(http.StatusOK, "admin_blog_form.html", gin.H{
		"post":   post,
		"isEdit": true,
	})
}

func (a *AdminModule) updateBlog(c *gin.Context) {
	id := c.Param("id")

	draft := models.BlogPost{
		ID:          id,
		Title:       c.PostForm("title"),
		Excerpt:     c.PostForm("excerpt"),
		Content:     c.PostForm("content"),
		Date:        c.PostForm("date"),
		Author:      c.PostForm("author"),
		Image:       c.PostForm("image"),
		ExternalURL: c.PostForm("external_url"),
	}

	if fh, err := c.FormFile("image_file"); err == nil && fh != nil {
		url, err := a.uploadFile(c, fh)
		if err != nil {
			c.HTML(http.StatusInternalServerError, "admin_blog_form.html", gin.H{
				"post":   &draft,
				"isEdit": true,
				"error":  uploadErrorMessage(err),
			})
			return
		}
		draft.Image = url
	}

	// Full field set posted: an emptied external_url clears the link and
	// turns the post back into an in-site article.
	patch := repo.BlogPatch{
		Title:       &draft.Title,
		Excerpt:     &draft.Excerpt,
		Content:     &draft.Content,
		Date:        &draft.Date,
		Author:      &draft.Author,
		Image:       &draft.Image,
		ExternalURL: &draft.ExternalURL,
	}

	if _, err := a.blogs.Update(id, patch); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.HTML(http.StatusNotFound, "admin_error.html", gin.H{
				"error": "المقال غير موجود",
			})
			return
		}
		a.log.WithError(err).WithField("id", id).Error("update blog post failed")
		c.HTML(http.StatusInternalServerError, "admin_blog_form.html", gin.H{
			"post":   &draft,
			"isEdit": true,
			"error":  "تعذر حفظ التعديلات. يرجى المحاولة مرة أخرى.",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/blogs")
}

func (a *AdminModule) deleteBlog(c *gin.Context) {
	if err := a.blogs.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "تعذر حذف المقال"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "تم حذف المقال"})
}
