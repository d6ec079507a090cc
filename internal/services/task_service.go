package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tmori/task-manager-api/internal/models"
	"github.com/tmori/task-manager-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrTitleRequired  = errors.New("title is required")
	ErrTitleEmpty     = errors.New("title cannot be empty")
	ErrInvalidStatus   = errors.New("status must be one of pending, in_progress, completed")
	ErrDueDateRequired = errors.New("due_date is required")
	ErrInvalidDueDate  = errors.New("due_date must be a date in YYYY-MM-DD format")
)

// TaskService handles task business logic. Every operation is scoped to the
// acting user; tasks owned by other users behave as if they do not exist.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	UserID      uint64
	Title       string
	Description string
	Status      string
	DueDate     string
}

// UpdateTaskInput represents a partial update; nil fields are left alone.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	DueDate     *string
}

// ListTasks returns the user's tasks in insertion order.
func (s *TaskService) ListTasks(userID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a task owned by the user.
func (s *TaskService) GetTask(taskID, userID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByIDAndUser(taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// CreateTask validates input and creates a task owned by the user.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	status := models.TaskStatus(input.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	if input.DueDate == "" {
		return nil, ErrDueDateRequired
	}
	dueDate, err := parseDueDate(input.DueDate)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		DueDate:     dueDate,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask applies the supplied fields to a task owned by the user.
// Omitted fields keep their previous values.
func (s *TaskService) UpdateTask(taskID, userID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByIDAndUser(taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleEmpty
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		status := models.TaskStatus(*input.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		task.Status = status
	}
	if input.DueDate != nil {
		dueDate, err := parseDueDate(*input.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = dueDate
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask deletes a task owned by the user.
func (s *TaskService) DeleteTask(taskID, userID uint64) error {
	if err := s.taskRepo.DeleteByIDAndUser(taskID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func parseDueDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, ErrInvalidDueDate
	}
	return &parsed, nil
}
