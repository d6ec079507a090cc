package repository

import (
	"github.com/tmori/task-manager-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user. Returns ErrEmailTaken when the email
	// unique index rejects the row.
	Create(user *models.User) error

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// TokenRepository defines the interface for access-token data access
type TokenRepository interface {
	// Create persists a new access token
	Create(token *models.AccessToken) error

	// FindUserByHash resolves a token digest to its owning user
	FindUserByHash(hash string) (*models.User, error)

	// DeleteByUser deletes every token belonging to a user; deleting for a
	// user with no tokens is not an error
	DeleteByUser(userID uint64) error
}

// TaskRepository defines the interface for task data access.
// Every lookup and mutation is scoped to the owning user in a single query,
// so a task owned by someone else behaves exactly like a missing task.
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// ListByUser returns the user's tasks in insertion order
	ListByUser(userID uint64) ([]models.Task, error)

	// FindByIDAndUser finds a task by ID owned by the user
	FindByIDAndUser(id, userID uint64) (*models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// DeleteByIDAndUser deletes a task by ID owned by the user. Returns
	// gorm.ErrRecordNotFound when no such row exists.
	DeleteByIDAndUser(id, userID uint64) error
}
