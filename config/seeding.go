package config

import (
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"p9e.in/agrimon/models"
)

// SeedAdminUser creates the initial admin account when the users table is
// empty. It reads ADMIN_EMAIL and ADMIN_PASSWORD; without both set the
// seed is skipped. Safe to run on every startup.
func SeedAdminUser() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logrus.Info("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:           "System Administrator",
		Email:          email,
		HashedPassword: string(hash),
		Role:           models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}
	logrus.WithField("email", email).Info("Seeded default admin user")
	return nil
}
