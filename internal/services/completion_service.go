package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/taskmate-api/internal/models"
	"github.com/yukikurage/taskmate-api/internal/repository"
	"gorm.io/gorm"
)

var ErrCompletionNotFound = errors.New("completion not found")

// CompletionService records which users completed which tasks
type CompletionService struct {
	completionRepo repository.CompletionRepository
	taskRepo       repository.TaskRepository
	userRepo       repository.UserRepository
}

// NewCompletionService creates a new CompletionService
func NewCompletionService(
	completionRepo repository.CompletionRepository,
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
) *CompletionService {
	return &CompletionService{
		completionRepo: completionRepo,
		taskRepo:       taskRepo,
		userRepo:       userRepo,
	}
}

// CreateCompletionInput represents input for recording a completion
type CreateCompletionInput struct {
	TaskID    uint64
	UserID    uint64
	Completed *bool
}

// CreateCompletion upserts the completion for a (task, user) pair. created reports
// whether a new row was inserted. A nil flag stores false on a new row and keeps the
// flag of an existing one. A stored true flag marks the task COMPLETED.
func (s *CompletionService) CreateCompletion(ctx context.Context, input CreateCompletionInput) (completion *models.Completion, created bool, err error) {
	if _, err := s.taskRepo.FindByID(ctx, input.TaskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrTaskNotFound
		}
		return nil, false, fmt.Errorf("failed to find task: %w", err)
	}
	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrUserNotFound
		}
		return nil, false, fmt.Errorf("failed to find user: %w", err)
	}

	_, err = s.completionRepo.FindByPair(ctx, input.TaskID, input.UserID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		created = true
	case err != nil:
		return nil, false, fmt.Errorf("failed to find completion: %w", err)
	}

	completion = &models.Completion{
		TaskID:    input.TaskID,
		UserID:    input.UserID,
		Completed: input.Completed != nil && *input.Completed,
	}
	if err := s.completionRepo.Upsert(ctx, completion, input.Completed != nil); err != nil {
		return nil, false, fmt.Errorf("failed to save completion: %w", err)
	}

	if completion.Completed {
		if err := s.markTaskCompleted(ctx, completion.TaskID); err != nil {
			return nil, false, err
		}
	}

	completion, err = s.completionRepo.FindByID(ctx, completion.ID, "Task", "User")
	if err != nil {
		return nil, false, fmt.Errorf("failed to reload completion: %w", err)
	}
	return completion, created, nil
}

// ListCompletions returns completions newest-first, optionally by task or user
func (s *CompletionService) ListCompletions(ctx context.Context, filter repository.CompletionFilter) ([]models.Completion, error) {
	completions, err := s.completionRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}
	return completions, nil
}

// UpdateCompletion sets the completed flag. Clearing it leaves the task status as is.
func (s *CompletionService) UpdateCompletion(ctx context.Context, id uint64, completed bool) (*models.Completion, error) {
	completion, err := s.completionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompletionNotFound
		}
		return nil, fmt.Errorf("failed to find completion: %w", err)
	}

	if err := s.completionRepo.SetCompleted(ctx, id, completed); err != nil {
		return nil, fmt.Errorf("failed to update completion: %w", err)
	}

	if completed {
		if err := s.markTaskCompleted(ctx, completion.TaskID); err != nil {
			return nil, err
		}
	}

	updated, err := s.completionRepo.FindByID(ctx, id, "Task", "User")
	if err != nil {
		return nil, fmt.Errorf("failed to reload completion: %w", err)
	}
	return updated, nil
}

// DeleteCompletion removes a completion without touching the task
func (s *CompletionService) DeleteCompletion(ctx context.Context, id uint64) error {
	if err := s.completionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompletionNotFound
		}
		return fmt.Errorf("failed to delete completion: %w", err)
	}
	return nil
}

// markTaskCompleted is a separate write from the completion itself; a failure here
// leaves the completion stored.
func (s *CompletionService) markTaskCompleted(ctx context.Context, taskID uint64) error {
	if err := s.taskRepo.SetStatus(ctx, taskID, models.TaskStatusCompleted); err != nil {
		return fmt.Errorf("failed to mark task completed: %w", err)
	}
	return nil
}
