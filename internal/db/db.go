package db

import (
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/everest-cuisine/booking-api/internal/config"
	"github.com/everest-cuisine/booking-api/internal/models"
	"github.com/everest-cuisine/booking-api/internal/validators"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Booking{},
		&models.AuditLog{},
		&models.AdminUser{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	return db
}

// SeedAdmin creates the back-office account once. Existing accounts are
// left untouched so password changes made later survive restarts.
func SeedAdmin(db *gorm.DB, email, password string) error {
	email = validators.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}

	var existing models.AdminUser
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin, err := newAdmin(email, password, bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(admin).Error
}

// newAdmin builds the seed account with a normalised email and a bcrypt
// hash of password.
func newAdmin(email, password string, cost int) (*models.AdminUser, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, err
	}

	return &models.AdminUser{
		Name:         "Administrator",
		Email:        validators.NormalizeEmail(email),
		PasswordHash: string(hashed),
		Role:         "admin",
	}, nil
}
