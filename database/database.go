package database

import (
	"fmt"
	"log"
	"os"

	"membership-app/internal/domain/billing"
	"membership-app/internal/domain/duo"
	"membership-app/internal/domain/entitlements"
	"membership-app/internal/domain/forum"
	"membership-app/internal/domain/learn"
	"membership-app/internal/domain/membership"
	"membership-app/internal/domain/orders"
	"membership-app/internal/domain/plans"
	"membership-app/internal/domain/sprint"
	"membership-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&users.VerificationToken{},
		&plans.Plan{},
		&billing.Payment{},
		&orders.Order{},
		&membership.Record{},
		&entitlements.Record{},

		// duo passes
		&duo.Pass{},

		// content
		&learn.Course{},
		&forum.Board{},
		&forum.Post{},
		&sprint.Sprint{},
		&sprint.Submission{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
