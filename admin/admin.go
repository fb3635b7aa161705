package admin

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"manara/models"
	"manara/repo"
	"manara/stats"
	"manara/storage"
)

type AdminModule struct {
	db            *gorm.DB
	log           *logrus.Logger
	store         storage.Store
	activities    *repo.Activities
	blogs         *repo.Blogs
	gallery       *repo.Gallery
	registrations *repo.Registrations
	stats         *stats.StatsModule
}

func NewAdminModule(db *gorm.DB, log *logrus.Logger, store storage.Store) *AdminModule {
	return &AdminModule{
		db:            db,
		log:           log,
		store:         store,
		activities:    repo.NewActivities(db),
		blogs:         repo.NewBlogs(db),
		gallery:       repo.NewGallery(db),
		registrations: repo.NewRegistrations(db),
		stats:         stats.NewStatsModule(db),
	}
}

func (a *AdminModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/login", a.loginPage)
	router.POST("/login", a.loginPost)

	adminGroup := router.Group("/admin")
	adminGroup.Use(a.requireAuth)
	{
		adminGroup.GET("/", a.dashboard)
		adminGroup.GET("/activities", a.listActivities)
		adminGroup.GET("/activities/new", a.newActivity)
		adminGroup.POST("/activities/new", a.createActivity)
		adminGroup.GET("/activities/edit/:id", a.editActivity)
		adminGroup.POST("/activities/edit/:id", a.updateActivity)
		adminGroup.POST("/activities/:id/visibility", a.toggleActivityVisibility)
		adminGroup.DELETE("/activities/:id", a.deleteActivity)
		adminGroup.GET("/blogs", a.listBlogs)
		adminGroup.GET("/blogs/new", a.newBlog)
		adminGroup.POST("/blogs/new", a.createBlog)
		adminGroup.GET("/blogs/edit/:id", a.editBlog)
		adminGroup.POST("/blogs/edit/:id", a.updateBlog)
		adminGroup.DELETE("/blogs/:id", a.deleteBlog)
		adminGroup.GET("/gallery", a.galleryManager)
		adminGroup.POST("/gallery", a.createGalleryItems)
		adminGroup.DELETE("/gallery/:id", a.deleteGalleryItem)
		adminGroup.GET("/registrations", a.listRegistrations)
		adminGroup.GET("/registrations/export", a.exportRegistrationsCSV)
	}

	router.GET("/admin/logout", a.logout)
}

// requireAuth is the whole gate: a session with a user id passes, anything
// else is sent to the login form.
func (a *AdminModule) requireAuth(c *gin.Context) {
	session := sessions.Default(c)
	userID := session.Get("user_id")

	if userID == nil {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}

func (a *AdminModule) loginPage(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get("user_id") != nil {
		c.Redirect(http.StatusFound, "/admin/")
		return
	}

	c.HTML(http.StatusOK, "admin_login.html", gin.H{})
}

func (a *AdminModule) loginPost(c *gin.Context) {
	emailAddr := c.PostForm("email")
	password := c.PostForm("password")

	var user models.User
	if err := a.db.Where("email = ?", emailAddr).First(&user).Error; err != nil {
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"error": "البريد الإلكتروني أو كلمة المرور غير صحيحة",
			"email": emailAddr,
		})
		return
	}

	if !checkPasswordHash(password, user.PasswordHash) {
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"error": "البريد الإلكتروني أو كلمة المرور غير صحيحة",
			"email": emailAddr,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	a.log.WithField("user", user.Email).Info("admin signed in")
	c.Redirect(http.StatusFound, "/admin/")
}

func (a *AdminModule) logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()

	c.Redirect(http.StatusFound, "/login")
}

func (a *AdminModule) dashboard(c *gin.Context) {
	overview := a.stats.Overview()
	recent := a.stats.RecentRegistrations(5)

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"stats":  overview,
		"recent": recent,
	})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
