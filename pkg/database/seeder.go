package database

import (
	"log"
	"os"

	"storefront-app/internal/models"
	"storefront-app/internal/utils"

	"gorm.io/gorm"
)

// SeedAdmin ensures an admin account exists. Credentials come from the
// environment so no default password ships in code.
func SeedAdmin() {
	phone := os.Getenv("ADMIN_PHONE")
	password := os.Getenv("ADMIN_PASSWORD")
	if phone == "" || password == "" {
		log.Println("ADMIN_PHONE/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var admin models.User
	err := DB.Where("phone = ?", phone).First(&admin).Error
	if err == nil {
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("Failed to check admin user: %v", err)
		return
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	user := models.User{
		Name:         "Store Admin",
		Phone:        phone,
		PasswordHash: hashedPassword,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := DB.Create(&user).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Println("Admin user seeded successfully.")
}
