package repository

import (
	"github.com/tmori/task-manager-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// ListByUser returns the user's tasks in insertion order
func (r *GormTaskRepository) ListByUser(userID uint64) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.db.Where("user_id = ?", userID).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByIDAndUser finds a task by ID owned by the user. Both predicates go
// into one query; ownership is never checked in application code.
func (r *GormTaskRepository) FindByIDAndUser(id, userID uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// DeleteByIDAndUser deletes a task by ID owned by the user
func (r *GormTaskRepository) DeleteByIDAndUser(id, userID uint64) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
