package repository

import (
	"context"
	"time"

	"github.com/yukikurage/taskmate-api/internal/database"
	"github.com/yukikurage/taskmate-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCompletionRepository is a GORM implementation of CompletionRepository
type GormCompletionRepository struct {
	db *gorm.DB
}

// NewCompletionRepository creates a new CompletionRepository
func NewCompletionRepository(db *gorm.DB) CompletionRepository {
	return &GormCompletionRepository{db: db}
}

// FindByID finds a completion by ID with optional preloading
func (r *GormCompletionRepository) FindByID(ctx context.Context, id uint64, preload ...string) (*models.Completion, error) {
	var completion models.Completion
	query := r.db.WithContext(ctx)

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&completion, id).Error; err != nil {
		return nil, err
	}
	return &completion, nil
}

// FindByPair finds the completion of a task by a user
func (r *GormCompletionRepository) FindByPair(ctx context.Context, taskID, userID uint64) (*models.Completion, error) {
	var completion models.Completion
	if err := r.db.WithContext(ctx).
		Where("task_id = ? AND user_id = ?", taskID, userID).
		First(&completion).Error; err != nil {
		return nil, err
	}
	return &completion, nil
}

// Upsert inserts the completion. When a row for the same (task, user) pair already
// exists, its completed flag is replaced only if overwrite is set. The stored row is
// read back into completion.
func (r *GormCompletionRepository) Upsert(ctx context.Context, completion *models.Completion, overwrite bool) error {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if overwrite {
		updates["completed"] = completion.Completed
	}

	err := r.db.WithContext(ctx).
		Omit("Task", "User").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "task_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(updates),
		}).
		Create(completion).Error
	if err != nil {
		return err
	}

	stored, err := r.FindByPair(ctx, completion.TaskID, completion.UserID)
	if err != nil {
		return err
	}
	*completion = *stored
	return nil
}

// SetCompleted updates the completed flag
func (r *GormCompletionRepository) SetCompleted(ctx context.Context, id uint64, completed bool) error {
	return r.db.WithContext(ctx).Model(&models.Completion{}).Where("id = ?", id).Update("completed", completed).Error
}

// List retrieves completions newest-first with the task and user preloaded
func (r *GormCompletionRepository) List(ctx context.Context, filter CompletionFilter) ([]models.Completion, error) {
	var completions []models.Completion

	query := r.db.WithContext(ctx).Model(&models.Completion{})

	if filter.TaskID != nil {
		query = query.Where("completions.task_id = ?", *filter.TaskID)
	}
	if filter.UserID != nil {
		query = query.Where("completions.user_id = ?", *filter.UserID)
	}

	if err := query.
		Preload("Task").
		Preload("User").
		Scopes(database.NewestFirst("completions"), database.Paginate(filter.Page)).
		Find(&completions).Error; err != nil {
		return nil, err
	}

	return completions, nil
}

// Delete removes a completion
func (r *GormCompletionRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&models.Completion{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
