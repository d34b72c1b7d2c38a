package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	config "github.com/gorimarket/talent-api/configs"
	"github.com/gorimarket/talent-api/models"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	log.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Tutor{},
		&models.Talent{},
		&models.Location{},
		&models.Registration{},
		&models.WishList{},
		&models.Review{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	log.Println("✅ Database migration successful")
}

// SeedStaff makes sure the staff account from the environment exists so
// the verification endpoints are usable on a fresh database.
func SeedStaff() {
	staffEmail := config.Config("STAFF_EMAIL")
	staffPassword := config.Config("STAFF_PASSWORD")
	if staffEmail == "" || staffPassword == "" {
		log.Println("⚠️ STAFF_EMAIL/STAFF_PASSWORD not set, skipping staff seed")
		return
	}

	var count int64
	if err := DB.Model(&models.User{}).Where("email = ?", staffEmail).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for staff user: %v", err)
	}
	if count > 0 {
		log.Println("Staff user already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(staffPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash staff password: %v", err)
	}

	staff := models.User{
		Name:     config.ConfigOr("STAFF_NAME", "Staff"),
		Email:    staffEmail,
		Password: string(hashed),
		IsStaff:  true,
	}
	if err := DB.Create(&staff).Error; err != nil {
		log.Fatalf("🔥 Failed to seed staff user: %v", err)
	}

	log.Println("✅ Staff user seeded successfully")
}
