package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/tmori/task-manager-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts a test user and a few sample tasks for local development.
// Running it twice is a no-op.
func Seed(db *gorm.DB) error {
	var user models.User
	err := db.Where("email = ?", "test@example.com").First(&user).Error
	if err == nil {
		log.Println("Seed data already present, skipping")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check seed user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	user = models.User{
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create seed user: %w", err)
	}

	now := time.Now()
	inTwoDays := now.AddDate(0, 0, 2)
	inThreeDays := now.AddDate(0, 0, 3)
	yesterday := now.AddDate(0, 0, -1)

	tasks := []models.Task{
		{
			UserID:      user.ID,
			Title:       "Buy groceries",
			Description: "Milk, Bread, Eggs",
			Status:      models.TaskStatusPending,
			DueDate:     &inTwoDays,
		},
		{
			UserID:      user.ID,
			Title:       "Submit project",
			Description: "Submit API assignment",
			Status:      models.TaskStatusInProgress,
			DueDate:     &inThreeDays,
		},
		{
			UserID:      user.ID,
			Title:       "Call client",
			Description: "Discuss requirements",
			Status:      models.TaskStatusCompleted,
			DueDate:     &yesterday,
		},
	}
	if err := db.Create(&tasks).Error; err != nil {
		return fmt.Errorf("failed to create seed tasks: %w", err)
	}

	log.Println("Seed data created")
	return nil
}
