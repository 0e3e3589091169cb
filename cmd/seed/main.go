package main

import (
	"context"
	"errors"
	"log"
	"strings"

	"restromart/internal/auth"
	"restromart/internal/config"
	"restromart/internal/db"
	apperrors "restromart/internal/errors"
	"restromart/internal/model"
	"restromart/internal/repository"
)

// Seeds the bootstrap super-admin account. Idempotent: an existing account
// with the configured email is promoted to admin and gets its password
// reset to the configured value.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()
	email := strings.ToLower(cfg.AdminEmail)

	existing, err := userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		existing.Role = model.RoleAdmin
		existing.PasswordHash = hash
		if err := userRepo.Update(ctx, existing); err != nil {
			log.Fatalf("Failed to update admin account: %v", err)
		}
		log.Printf("Updated existing admin account %s", email)
	case errors.Is(err, apperrors.ErrNotFound):
		admin := &model.User{
			Name:         "Super Admin",
			Email:        email,
			PasswordHash: hash,
			Role:         model.RoleAdmin,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin account: %v", err)
		}
		log.Printf("Created admin account %s", email)
	default:
		log.Fatalf("Failed to look up admin account: %v", err)
	}

	log.Println("Seed completed successfully!")
}
