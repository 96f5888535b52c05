package main

import (
	"log"
	"os"

	"github.com/CollegeSite/College-Backend/src/models"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Creates an admin credential without booting the whole server. Usage:
//
//	create_user <email> <password>
func main() {
	_ = godotenv.Load()

	if len(os.Args) != 3 {
		log.Fatalf("usage: %s <email> <password>", os.Args[0])
	}
	email, password := os.Args[1], os.Args[2]

	dsn := os.Getenv("DB_DSN")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&models.UserModel{}); err != nil {
		log.Fatalf("failed to migrate user model: %v", err)
	}

	var user models.UserModel
	result := db.Where("email = ?", email).First(&user)
	if result.Error == nil {
		log.Printf("User %q already exists", email)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	newUser := models.UserModel{
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := db.Create(&newUser).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	log.Printf("User %q created", email)
}
