package site

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"manara/email"
	"manara/models"
	"manara/repo"
)

type SiteModule struct {
	db            *gorm.DB
	log           *logrus.Logger
	activities    *repo.Activities
	blogs         *repo.Blogs
	gallery       *repo.Gallery
	registrations *repo.Registrations
	contacts      *repo.Contacts
	mail          *email.EmailService
}

func NewSiteModule(db *gorm.DB, log *logrus.Logger) *SiteModule {
	return &SiteModule{
		db:            db,
		log:           log,
		activities:    repo.NewActivities(db),
		blogs:         repo.NewBlogs(db),
		gallery:       repo.NewGallery(db),
		registrations: repo.NewRegistrations(db),
		contacts:      repo.NewContacts(db),
		mail:          email.NewEmailService(),
	}
}

func (s *SiteModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/", s.home)
	router.GET("/activities", s.listActivities)
	router.GET("/activities/:id", s.activityDetail)
	router.POST("/activities/:id/register", s.register)
	router.GET("/gallery", s.galleryPage)
	router.GET("/blog", s.blogList)
	router.GET("/blog/:id", s.blogPost)
	router.GET("/about", s.about)
	router.GET("/contact", s.contactPage)
	router.POST("/contact", s.contactPost)
}

// home shows the latest visible activities and blog posts. Hidden
// activities never reach a public page.
func (s *SiteModule) home(c *gin.Context) {
	activities, err := s.activities.List(false)
	if err != nil {
		s.renderError(c, "تعذر تحميل الصفحة")
		return
	}
	if len(activities) > 3 {
		activities = activities[:3]
	}

	posts, err := s.blogs.List()
	if err != nil {
		s.renderError(c, "تعذر تحميل الصفحة")
		return
	}
	if len(posts) > 3 {
		posts = posts[:3]
	}

	c.HTML(http.StatusOK, "site_home.html", gin.H{
		"activities": activities,
		"posts":      posts,
	})
}

func (s *SiteModule) about(c *gin.Context) {
	c.HTML(http.StatusOK, "site_about.html", gin.H{})
}

func (s *SiteModule) renderError(c *gin.Context, msg string) {
	c.HTML(http.StatusInternalServerError, "site_error.html", gin.H{
		"error": msg,
	})
}

func (s *SiteModule) renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "site_error.html", gin.H{
		"error": "الصفحة المطلوبة غير موجودة",
	})
}

// visibleActivity loads an activity for public consumption. Hidden records
// are treated exactly like absent ones.
func (s *SiteModule) visibleActivity(id string) (*models.Activity, error) {
	activity, err := s.activities.Get(id)
	if err != nil {
		return nil, err
	}
	if activity.Hidden() {
		return nil, repo.ErrNotFound
	}
	return activity, nil
}
