package repository

import (
	"context"

	"github.com/yukikurage/taskmate-api/internal/database"
	"github.com/yukikurage/taskmate-api/internal/models"
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
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Omit("Creator", "Assignee", "Completions").Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(ctx context.Context, id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db.WithContext(ctx)

	// Apply preloading if specified
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// List retrieves tasks newest-first with filtering and pagination
func (r *GormTaskRepository) List(ctx context.Context, filter TaskFilter) ([]models.Task, error) {
	var tasks []models.Task

	query := r.db.WithContext(ctx).Model(&models.Task{})

	if filter.InvolvedUserID != nil {
		query = query.Where("tasks.creator_id = ? OR tasks.assignee_id = ?", *filter.InvolvedUserID, *filter.InvolvedUserID)
	}

	for _, p := range filter.Preload {
		query = query.Preload(p)
	}

	if err := query.
		Scopes(database.NewestFirst("tasks"), database.Paginate(filter.Page)).
		Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// Update applies the given column values to a task
func (r *GormTaskRepository) Update(ctx context.Context, id uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).Updates(fields).Error
}

// SetStatus updates the status column only
func (r *GormTaskRepository) SetStatus(ctx context.Context, id uint64, status models.TaskStatus) error {
	return r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).Update("status", status).Error
}

// Delete removes a task and its completions in one transaction
func (r *GormTaskRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.Completion{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Task{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

// Count returns the number of tasks, optionally restricted to one status
func (r *GormTaskRepository) Count(ctx context.Context, status *models.TaskStatus) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Task{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Count(&count).Error
	return count, err
}
