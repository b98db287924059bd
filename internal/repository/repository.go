package repository

import (
	"context"

	"github.com/yukikurage/taskmate-api/internal/models"
	"github.com/yukikurage/taskmate-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID with optional preloading
	FindByID(ctx context.Context, id uint64, preload ...string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// List returns users ordered by ID
	List(ctx context.Context, page utils.PaginationParams) ([]models.User, error)

	// CountsByUser returns task and completion counts keyed by user ID
	CountsByUser(ctx context.Context, userIDs []uint64) (map[uint64]UserCounts, error)

	// Update applies the given column values to a user
	Update(ctx context.Context, id uint64, fields map[string]interface{}) error

	// Delete removes a user, their completions, and their task assignments atomically
	Delete(ctx context.Context, id uint64) error

	// Count returns the number of users
	Count(ctx context.Context) (int64, error)
}

// UserCounts holds the denormalized per-user counts shown in user listings
type UserCounts struct {
	CreatedTasks  int64
	AssignedTasks int64
	Completions   int64
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(ctx context.Context, id uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks newest-first with filtering and pagination
	List(ctx context.Context, filter TaskFilter) ([]models.Task, error)

	// Update applies the given column values to a task
	Update(ctx context.Context, id uint64, fields map[string]interface{}) error

	// SetStatus updates the status column only
	SetStatus(ctx context.Context, id uint64, status models.TaskStatus) error

	// Delete removes a task and its completions atomically
	Delete(ctx context.Context, id uint64) error

	// Count returns the number of tasks, optionally restricted to one status
	Count(ctx context.Context, status *models.TaskStatus) (int64, error)
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	// InvolvedUserID restricts the list to tasks created by or assigned to the user
	InvolvedUserID *uint64
	Page           utils.PaginationParams
	Preload        []string
}

// CompletionRepository defines the interface for completion data access
type CompletionRepository interface {
	// FindByID finds a completion by ID with optional preloading
	FindByID(ctx context.Context, id uint64, preload ...string) (*models.Completion, error)

	// FindByPair finds the completion of a task by a user
	FindByPair(ctx context.Context, taskID, userID uint64) (*models.Completion, error)

	// Upsert inserts a completion or touches the existing row for the same
	// (task, user) pair, replacing its completed flag when overwrite is set
	Upsert(ctx context.Context, completion *models.Completion, overwrite bool) error

	// SetCompleted updates the completed flag
	SetCompleted(ctx context.Context, id uint64, completed bool) error

	// List retrieves completions newest-first
	List(ctx context.Context, filter CompletionFilter) ([]models.Completion, error)

	// Delete removes a completion
	Delete(ctx context.Context, id uint64) error
}

// CompletionFilter holds filtering options for listing completions
type CompletionFilter struct {
	TaskID *uint64
	UserID *uint64
	Page   utils.PaginationParams
}
