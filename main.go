package main

import (
	"context"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"manara/admin"
	"manara/common"
	"manara/database"
	"manara/diag"
	"manara/site"
	"manara/storage"
)

func main() {
	common.LoadEnv()
	log := common.NewLogger()

	db := common.ConnectDb(log)
	if db == nil {
		log.Fatal("failed to connect to database")
	}

	if err := database.RunMigrations(db, log); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}
	if err := database.SeedAdminUser(db, log); err != nil {
		log.WithError(err).Fatal("failed to seed admin user")
	}

	store, err := storage.FromEnv(context.Background(), log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize object storage")
	}

	router := gin.Default()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET environment variable not set")
	}

	sessionStore := cookie.NewStore([]byte(sessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
	})
	router.Use(sessions.Sessions("manara-session", sessionStore))

	router.LoadHTMLGlob("*/views/*.html")
	router.Static("/public", "./public")

	adminModule := admin.NewAdminModule(db, log, store)
	adminModule.RegisterRoutes(router)

	siteModule := site.NewSiteModule(db, log)
	siteModule.RegisterRoutes(router)

	diagModule := diag.NewDiagModule(db, log, store)
	diagModule.RegisterRoutes(router)

	port := common.Getenv("PORT", "8080")
	log.WithField("port", port).Info("starting server")
	if err := router.Run(":" + port); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
