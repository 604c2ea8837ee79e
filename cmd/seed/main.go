package main

import (
	"context"
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"prismtasks/internal/auth"
	"prismtasks/internal/config"
	"prismtasks/internal/db"
	"prismtasks/internal/model"
	"prismtasks/internal/repository"
)

// Seeds an admin account plus a handful of demo todos. Registration over the
// API always yields the user role, so this is the supported path to the
// first admin.
func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Todo{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Fatal("SEED_ADMIN_PASSWORD environment variable is required")
	}
	if err := auth.ValidatePasswordPolicy(adminPassword); err != nil {
		log.Fatalf("SEED_ADMIN_PASSWORD rejected: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	todoRepo := repository.NewTodoRepository(gormDB)
	ctx := context.Background()

	admin, created, err := seedAdmin(ctx, userRepo, adminPassword)
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	if !created {
		log.Printf("Admin %q already present, nothing to do", admin.Username)
		return
	}

	demo := []model.Todo{
		{Title: "Review open signups", Description: "Check recent registrations for anomalies", Priority: 2, OwnerID: admin.ID},
		{Title: "Rotate signing secret", Description: "Rotate JWT_SECRET and redeploy", Priority: 1, OwnerID: admin.ID},
	}
	for i := range demo {
		if err := todoRepo.Create(ctx, &demo[i]); err != nil {
			log.Fatalf("Failed to seed todo %q: %v", demo[i].Title, err)
		}
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Admin user: %s (id=%d)", admin.Username, admin.ID)
	log.Printf("  - Demo todos created: %d", len(demo))
}

// seedAdmin creates the admin user if it does not already exist.
func seedAdmin(ctx context.Context, repo repository.UserRepository, password string) (*model.User, bool, error) {
	username := getEnv("SEED_ADMIN_USERNAME", "admin")

	existing, err := repo.FindByUsername(ctx, username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, false, err
	}

	admin := &model.User{
		Username:     username,
		Email:        getEnv("SEED_ADMIN_EMAIL", "admin@prismtasks.local"),
		FirstName:    "Site",
		LastName:     "Admin",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return nil, false, err
	}
	return admin, true, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
