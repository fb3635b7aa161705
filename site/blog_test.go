package site

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"manara/models"
)

func TestRenderMarkdown(t *testing.T) {
	html := renderMarkdown("# عنوان\n\nفقرة مع **تشديد**.")

	assert.Contains(t, html, "<h1>")
	assert.Contains(t, html, "<strong>تشديد</strong>")
}

func TestBlogPost_InSiteView(t *testing.T) {
	db := setupTestDB()
	siteModule := NewSiteModule(db, testLogger())
	router := setupTestRouter(siteModule)

	post := models.BlogPost{
		Title:   "مقال داخلي",
		Content: "محتوى **مهم**.",
	}
	db.Create(&post)

	req, _ := http.NewRequest("GET", "/blog/"+post.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "مقال داخلي")
	assert.Contains(t, w.Body.String(), "<strong>مهم</strong>")
}

func TestBlogPost_ExternalRedirect(t *testing.T) {
	db := setupTestDB()
	siteModule := NewSiteModule(db, testLogger())
	router := setupTestRouter(siteModule)

	post := models.BlogPost{
		Title:       "تغطية خارجية",
		ExternalURL: "https://example.com/article",
	}
	db.Create(&post)

	req, _ := http.NewRequest("GET", "/blog/"+post.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://example.com/article", w.Header().Get("Location"))
}

func TestBlogPost_NotFound(t *testing.T) {
	db := setupTestDB()
	siteModule := NewSiteModule(db, testLogger())
	router := setupTestRouter(siteModule)

	req, _ := http.NewRequest("GET", "/blog/missing-id", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlogList_ExternalLinksOut(t *testing.T) {
	db := setupTestDB()
	siteModule := NewSiteModule(db, testLogger())
	router := setupTestRouter(siteModule)

	db.Create(&models.BlogPost{Title: "خارجي", ExternalURL: "https://example.com/a"})
	db.Create(&models.BlogPost{Title: "داخلي"})

	req, _ := http.NewRequest("GET", "/blog", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://example.com/a")
	assert.Contains(t, w.Body.String(), "/blog/")
}
