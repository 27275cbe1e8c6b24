package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"kindkart/internal/config"
	"kindkart/internal/database"
	"kindkart/internal/middleware"
	"kindkart/internal/modules/admin"
	"kindkart/internal/modules/auth"
	"kindkart/internal/modules/donation"
	"kindkart/internal/modules/notification"
	jwtsvc "kindkart/internal/pkg/jwt"
	"kindkart/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	notificationService := notification.NewService(notificationRepo)
	notificationHandler := notification.NewHandler(notificationService)

	donationService := donation.NewService(donationRepo, userRepo, notificationService, donation.Mode(cfg.TransitionMode))
	donationHandler := donation.NewHandler(donationService)

	adminService := admin.NewService(donationRepo, userRepo)
	adminHandler := admin.NewHandler(adminService)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "KindKart API running"})
	})

	api := r.Group("/api")
	{
		authHandler.RegisterRoutes(api)
		donationHandler.RegisterRoutes(api)
		notificationHandler.RegisterRoutes(api)

		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(protected)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	addr := ":" + cfg.Port
	log.Println("KindKart API listening on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
