// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskmate-api/internal/database"
	"github.com/yukikurage/taskmate-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated in-memory SQLite database that is closed when the test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:"), logger.Silent)
	require.NoError(t, err)

	// Every connection to ":memory:" gets its own database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

// CreateUser inserts a MEMBER with the password "password123".
func CreateUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		UserName:     name,
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: string(hash),
		Role:         models.RoleMember,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTask inserts a PENDING task worth 10 points.
func CreateTask(t *testing.T, db *gorm.DB, title string, creatorID uint64, assigneeID *uint64) *models.Task {
	t.Helper()

	task := &models.Task{
		Title:      title,
		Status:     models.TaskStatusPending,
		Points:     10,
		CreatorID:  creatorID,
		AssigneeID: assigneeID,
	}
	require.NoError(t, db.Omit("Creator", "Assignee", "Completions").Create(task).Error)
	return task
}

// CreateCompletion inserts a completion for the pair.
func CreateCompletion(t *testing.T, db *gorm.DB, taskID, userID uint64, completed bool) *models.Completion {
	t.Helper()

	completion := &models.Completion{
		TaskID:    taskID,
		UserID:    userID,
		Completed: completed,
	}
	require.NoError(t, db.Omit("Task", "User").Create(completion).Error)
	return completion
}
