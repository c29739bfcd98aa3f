package db

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/envutil"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

// SeedDefaults makes a fresh database usable: one admin account and one
// active certificate template. Both are idempotent, so running it on every
// boot is safe.
func (s *PostgresService) SeedDefaults(log *logger.Logger) error {
	if err := s.seedAdmin(log); err != nil {
		return err
	}
	return s.seedCertificateTemplate()
}

func (s *PostgresService) seedAdmin(log *logger.Logger) error {
	email := envutil.GetEnv("ADMIN_EMAIL", "admin@aiotchain.local", log)
	password := envutil.GetEnv("ADMIN_PASSWORD", "", log)
	if password == "" {
		s.log.Warn("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing domain.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := domain.User{
		ID:       uuid.New(),
		Username: "admin",
		Email:    email,
		Password: string(hash),
		Role:     domain.RoleAdmin,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	s.log.Info("Seeded admin user", "email", email)
	return nil
}

func (s *PostgresService) seedCertificateTemplate() error {
	var count int64
	if err := s.db.Model(&domain.CertificateTemplate{}).Where("active = ?", true).Count(&count).Error; err != nil {
		return fmt.Errorf("count certificate templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	tpl := domain.CertificateTemplate{
		ID:           uuid.New(),
		Active:       true,
		PrimaryColor: "#2563eb",
		CertFontSize: 30,
	}
	if err := s.db.Create(&tpl).Error; err != nil {
		return fmt.Errorf("create default certificate template: %w", err)
	}
	s.log.Info("Seeded default certificate template")
	return nil
}
