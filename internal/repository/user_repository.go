package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/taskmate-api/internal/database"
	"github.com/yukikurage/taskmate-api/internal/models"
	"github.com/yukikurage/taskmate-api/internal/utils"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// ErrUserOwnsTasks is returned when deleting a user who is still the creator of tasks.
var ErrUserOwnsTasks = errors.New("user repository: user still owns tasks")

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID finds a user by ID with optional preloading
func (r *GormUserRepository) FindByID(ctx context.Context, id uint64, preload ...string) (*models.User, error) {
	var user models.User
	query := r.db.WithContext(ctx)

	for _, p := range preload {
		query = query.Preload(p, database.NewestFirst(""))
	}

	if err := query.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns users ordered by ID
func (r *GormUserRepository) List(ctx context.Context, page utils.PaginationParams) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Scopes(database.Paginate(page)).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CountsByUser returns task and completion counts keyed by user ID
func (r *GormUserRepository) CountsByUser(ctx context.Context, userIDs []uint64) (map[uint64]UserCounts, error) {
	counts := make(map[uint64]UserCounts, len(userIDs))
	if len(userIDs) == 0 {
		return counts, nil
	}

	type countRow struct {
		UserID uint64
		Total  int64
	}

	groupCount := func(model interface{}, column string) ([]countRow, error) {
		var rows []countRow
		err := r.db.WithContext(ctx).Model(model).
			Select(column+" AS user_id, COUNT(*) AS total").
			Where(column+" IN ?", userIDs).
			Group(column).
			Scan(&rows).Error
		return rows, err
	}

	created, err := groupCount(&models.Task{}, "creator_id")
	if err != nil {
		return nil, err
	}
	assigned, err := groupCount(&models.Task{}, "assignee_id")
	if err != nil {
		return nil, err
	}
	completions, err := groupCount(&models.Completion{}, "user_id")
	if err != nil {
		return nil, err
	}

	for _, id := range userIDs {
		counts[id] = UserCounts{}
	}
	for _, row := range created {
		c := counts[row.UserID]
		c.CreatedTasks = row.Total
		counts[row.UserID] = c
	}
	for _, row := range assigned {
		c := counts[row.UserID]
		c.AssignedTasks = row.Total
		counts[row.UserID] = c
	}
	for _, row := range completions {
		c := counts[row.UserID]
		c.Completions = row.Total
		counts[row.UserID] = c
	}

	return counts, nil
}

// Update applies the given column values to a user
func (r *GormUserRepository) Update(ctx context.Context, id uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes the user's completions, clears their task assignments and deletes
// the user in one transaction.
func (r *GormUserRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned int64
		if err := tx.Model(&models.Task{}).Where("creator_id = ?", id).Count(&owned).Error; err != nil {
			return err
		}
		if owned > 0 {
			return ErrUserOwnsTasks
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Completion{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Task{}).
			Where("assignee_id = ?", id).
			Update("assignee_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

// Count returns the number of users
func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}
