package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/taskmate-api/internal/constants"
	"github.com/yukikurage/taskmate-api/internal/models"
	"github.com/yukikurage/taskmate-api/internal/repository"
	"github.com/yukikurage/taskmate-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrCreatorNotFound   = errors.New("creator not found")
	ErrAssigneeNotFound  = errors.New("assignee not found")
	ErrTitleRequired     = errors.New("title is required")
	ErrTitleEmpty        = errors.New("title cannot be empty")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// Associations returned with a single task.
var taskPreloads = []string{"Creator", "Assignee", "Completions"}

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// ListTasksInput represents filters for listing tasks
type ListTasksInput struct {
	// UserID restricts the list to tasks the user created or is assigned to
	UserID *uint64
	Page   utils.PaginationParams
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description *string
	Status      models.TaskStatus
	Deadline    *time.Time
	Points      *int
	CreatorID   uint64
	AssigneeID  *uint64
}

// UpdateTaskInput represents input for updating a task. Nil fields are left
// untouched; the Clear flags set the column to NULL.
type UpdateTaskInput struct {
	Title            *string
	Description      *string
	ClearDescription bool
	Status           *models.TaskStatus
	Deadline         *time.Time
	ClearDeadline    bool
	Points           *int
	AssigneeID       *uint64
	ClearAssignee    bool
}

// ListTasks returns tasks newest-first with creator, assignee and completions
func (s *TaskService) ListTasks(ctx context.Context, input ListTasksInput) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(ctx, repository.TaskFilter{
		InvolvedUserID: input.UserID,
		Page:           input.Page,
		Preload:        taskPreloads,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a task with related data
func (s *TaskService) GetTask(ctx context.Context, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID, "Creator", "Assignee", "Completions", "Completions.User")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// CreateTask creates a new task after checking its creator and assignee exist
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	if input.Status == "" {
		input.Status = models.TaskStatusPending
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidTaskStatus
	}

	if err := s.ensureUser(ctx, input.CreatorID, ErrCreatorNotFound); err != nil {
		return nil, err
	}
	if input.AssigneeID != nil {
		if err := s.ensureUser(ctx, *input.AssigneeID, ErrAssigneeNotFound); err != nil {
			return nil, err
		}
	}

	points := constants.DefaultTaskPoints
	if input.Points != nil && *input.Points != 0 {
		points = *input.Points
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Deadline:    input.Deadline,
		Points:      points,
		CreatorID:   input.CreatorID,
		AssigneeID:  input.AssigneeID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.taskRepo.FindByID(ctx, task.ID, taskPreloads...)
}

// UpdateTask applies a partial update to an existing task
func (s *TaskService) UpdateTask(ctx context.Context, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	fields := make(map[string]interface{})

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleEmpty
		}
		fields["title"] = *input.Title
	}
	if input.ClearDescription {
		fields["description"] = nil
	} else if input.Description != nil {
		fields["description"] = *input.Description
	}
	// An empty status is ignored.
	if input.Status != nil && *input.Status != "" {
		if !input.Status.Valid() {
			return nil, ErrInvalidTaskStatus
		}
		fields["status"] = *input.Status
	}
	if input.ClearDeadline {
		fields["deadline"] = nil
	} else if input.Deadline != nil {
		fields["deadline"] = *input.Deadline
	}
	if input.Points != nil {
		fields["points"] = *input.Points
	}
	if input.ClearAssignee {
		fields["assignee_id"] = nil
	} else if input.AssigneeID != nil {
		if err := s.ensureUser(ctx, *input.AssigneeID, ErrAssigneeNotFound); err != nil {
			return nil, err
		}
		fields["assignee_id"] = *input.AssigneeID
	}

	if err := s.taskRepo.Update(ctx, taskID, fields); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.taskRepo.FindByID(ctx, taskID, taskPreloads...)
}

// DeleteTask deletes a task and its completions
func (s *TaskService) DeleteTask(ctx context.Context, taskID uint64) error {
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// ensureUser returns notFound when no user has the given ID
func (s *TaskService) ensureUser(ctx context.Context, userID uint64, notFound error) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}
	return nil
}
