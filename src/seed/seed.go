package seed

import (
	"log"

	"github.com/CollegeSite/College-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed ensures the default admin credential exists. Find-or-create, invoked
// once from main during startup; safe to run on every boot.
func Seed(db *gorm.DB, email, password string) {
	if email == "" {
		log.Println("COLLEGE_EMAIL not set, skipping default user seeding")
		return
	}

	var user models.UserModel
	result := db.Where("email = ?", email).First(&user)
	if result.Error == nil {
		log.Printf("Default user %q already exists\n", email)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash default password: %v\n", err)
		return
	}

	newUser := models.UserModel{
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Failed to create default user: %v\n", err)
	} else {
		log.Printf("Default user %q created\n", email)
	}
}
