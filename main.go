package main

import (
	"log"
	"os"

	"github.com/CollegeSite/College-Backend/src/db"
	"github.com/CollegeSite/College-Backend/src/mailer"
	"github.com/CollegeSite/College-Backend/src/media"
	"github.com/CollegeSite/College-Backend/src/middleware"
	"github.com/CollegeSite/College-Backend/src/models"
	"github.com/CollegeSite/College-Backend/src/repository"
	"github.com/CollegeSite/College-Backend/src/routes"
	"github.com/CollegeSite/College-Backend/src/seed"
	"github.com/CollegeSite/College-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.EventGalleryModel{},
		&models.ProfessorModel{},
		&models.PositionHolderModel{},
		&models.NoticeModel{},
		&models.UpcomingEventModel{},
		&models.MagazineModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// JWT secret setup
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be configured")
	}
	middleware.SetSecretKey(secret)

	// Default admin credential
	seed.Seed(db, os.Getenv("COLLEGE_EMAIL"), os.Getenv("COLLEGE_PASSWORD"))

	// External collaborators
	mediaStore, err := media.NewCloudinaryStore()
	if err != nil {
		log.Fatalf("Error setting up Cloudinary: %v\n", err)
	}
	smtpMailer, err := mailer.NewSMTPMailer()
	if err != nil {
		log.Fatalf("Error setting up mailer: %v\n", err)
	}

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8000"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	authService := services.NewAuthService(repository.NewUserRepository(db), smtpMailer)
	galleryService := services.NewGalleryService(repository.NewGalleryRepository(db), mediaStore)
	professorService := services.NewProfessorService(repository.NewProfessorRepository(db), mediaStore)
	positionService := services.NewPositionService(repository.NewPositionRepository(db), mediaStore)
	noticeService := services.NewNoticeService(repository.NewNoticeRepository(db))
	upcomingEventService := services.NewUpcomingEventService(repository.NewUpcomingEventRepository(db))
	magazineService := services.NewMagazineService(repository.NewMagazineRepository(db))

	// Routes setup
	routes.SetupAuthRoutes(router, authService)
	routes.SetupGalleryRoutes(router, galleryService)
	routes.SetupProfessorRoutes(router, professorService)
	routes.SetupPositionRoutes(router, positionService)
	routes.SetupNoticeRoutes(router, noticeService)
	routes.SetupUpcomingEventRoutes(router, upcomingEventService)
	routes.SetupMagazineRoutes(router, magazineService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "College backend is running")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}

}
