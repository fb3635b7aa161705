// Package diag serves the /debug page: a connectivity self-check for the
// store and the storage bucket. It is an operator tool, not part of the
// public site.
package diag

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"manara/models"
	"manara/repo"
	"manara/storage"
)

type DiagModule struct {
	db      *gorm.DB
	log     *logrus.Logger
	store   storage.Store
	gallery *repo.Gallery
}

func NewDiagModule(db *gorm.DB, log *logrus.Logger, store storage.Store) *DiagModule {
	return &DiagModule{
		db:      db,
		log:     log,
		store:   store,
		gallery: repo.NewGallery(db),
	}
}

func (d *DiagModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/debug", d.debugPage)
	router.POST("/debug/upload", d.testUpload)
}

type check struct {
	Name   string
	OK     bool
	Detail string
}

// debugPage runs every check on each load. Missing configuration is
// reported separately from a working connection with a missing table or
// bucket.
func (d *DiagModule) debugPage(c *gin.Context) {
	checks := []check{
		d.checkEnv(),
		d.checkDatabase(),
		d.checkBucket(c),
		d.checkGalleryJoin(),
	}

	c.HTML(http.StatusOK, "debug.html", gin.H{
		"checks": checks,
	})
}

func (d *DiagModule) checkEnv() check {
	var missing []string
	for _, key := range []string{"SQLITE_DB", "SESSION_SECRET"} {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return check{
			Name:   "Environment",
			Detail: "missing required variables: " + strings.Join(missing, ", ") + " (set them and restart)",
		}
	}
	return check{Name: "Environment", OK: true, Detail: "required variables present"}
}

func (d *DiagModule) checkDatabase() check {
	var count int64
	err := d.db.Model(&models.Activity{}).Count(&count).Error
	if err != nil {
		if strings.Contains(err.Error(), "no such table") {
			return check{
				Name:   "Database",
				Detail: `connection OK, but table "activities" does not exist — run migrations`,
			}
		}
		return check{Name: "Database", Detail: "connection failed: " + err.Error()}
	}

	return check{Name: "Database", OK: true, Detail: "connected, activities table reachable"}
}

func (d *DiagModule) checkBucket(c *gin.Context) check {
	ctx := c.Request.Context()

	keys, err := d.store.List(ctx)
	if err != nil {
		if err == storage.ErrBucketNotFound {
			return check{
				Name:   "Storage",
				Detail: `bucket "` + storage.BucketName + `" is missing or not public — create it in the store`,
			}
		}
		return check{Name: "Storage", Detail: "listing objects failed: " + err.Error()}
	}

	buckets, err := d.store.Buckets(ctx)
	if err != nil {
		return check{Name: "Storage", Detail: "listing buckets failed: " + err.Error()}
	}

	return check{
		Name: "Storage",
		OK:   true,
		Detail: `bucket "` + storage.BucketName + `" reachable, ` +
			strconv.Itoa(len(keys)) + " objects, buckets: " + strings.Join(buckets, ", "),
	}
}

func (d *DiagModule) checkGalleryJoin() check {
	items, err := d.gallery.List()
	if err != nil {
		return check{Name: "Gallery join", Detail: "join query failed: " + err.Error()}
	}
	return check{Name: "Gallery join", OK: true, Detail: strconv.Itoa(len(items)) + " items resolved"}
}

// testUpload writes a tiny throwaway object to prove the bucket accepts
// writes.
func (d *DiagModule) testUpload(c *gin.Context) {
	url, err := d.store.Upload(c.Request.Context(), "debug_test.txt", strings.NewReader("test"))

	result := check{Name: "Test upload"}
	if err != nil {
		if err == storage.ErrBucketNotFound {
			result.Detail = `bucket "` + storage.BucketName + `" not found`
		} else {
			result.Detail = "upload failed: " + err.Error()
		}
	} else {
		result.OK = true
		result.Detail = "uploaded to " + url
	}

	checks := []check{
		d.checkEnv(),
		d.checkDatabase(),
		d.checkBucket(c),
		d.checkGalleryJoin(),
		result,
	}
	c.HTML(http.StatusOK, "debug.html", gin.H{
		"checks": checks,
	})
}
