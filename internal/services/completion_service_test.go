package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskmate-api/internal/models"
	"github.com/yukikurage/taskmate-api/internal/repository"
	"github.com/yukikurage/taskmate-api/internal/testutil"
	"gorm.io/gorm"
)

func setupCompletionService(t *testing.T) (*CompletionService, *gorm.DB) {
	db := testutil.NewDB(t)
	service := NewCompletionService(
		repository.NewCompletionRepository(db),
		repository.NewTaskRepository(db),
		repository.NewUserRepository(db),
	)
	return service, db
}

func taskStatus(t *testing.T, db *gorm.DB, id uint64) models.TaskStatus {
	t.Helper()
	var task models.Task
	require.NoError(t, db.First(&task, id).Error)
	return task.Status
}

func TestCompletionService_CreateCompletion_Upserts(t *testing.T) {
	service, db := setupCompletionService(t)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	task := testutil.CreateTask(t, db, "chore", alice.ID, nil)

	first, created, err := service.CreateCompletion(ctx, CreateCompletionInput{TaskID: task.ID, UserID: alice.ID})
	require.NoError(t, err)
	assert.True(t, created)
	assert.False(t, first.Completed)
	assert.Equal(t, models.TaskStatusPending, taskStatus(t, db, task.ID))

	done := true
	second, created, err := service.CreateCompletion(ctx, CreateCompletionInput{TaskID: task.ID, UserID: alice.ID, Completed: &done})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Completed)
	assert.Equal(t, models.TaskStatusCompleted, second.Task.Status)
	assert.Equal(t, alice.Email, second.User.Email)

	var count int64
	require.NoError(t, db.Model(&models.Completion{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, models.TaskStatusCompleted, taskStatus(t, db, task.ID))
}

func TestCompletionService_CreateCompletion_OmittedFlagKeepsExisting(t *testing.T) {
	service, db := setupCompletionService(t)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	task := testutil.CreateTask(t, db, "chore", alice.ID, nil)
	existing := testutil.CreateCompletion(t, db, task.ID, alice.ID, true)

	completion, created, err := service.CreateCompletion(ctx, CreateCompletionInput{TaskID: task.ID, UserID: alice.ID})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, completion.ID)
	assert.True(t, completion.Completed)

	var stored models.Completion
	require.NoError(t, db.First(&stored, existing.ID).Error)
	assert.True(t, stored.Completed)

	undone := false
	completion, created, err = service.CreateCompletion(ctx, CreateCompletionInput{TaskID: task.ID, UserID: alice.ID, Completed: &undone})
	require.NoError(t, err)
	assert.False(t, created)
	assert.False(t, completion.Completed)
}

func TestCompletionService_CreateCompletion_NotFound(t *testing.T) {
	service, db := setupCompletionService(t)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	task := testutil.CreateTask(t, db, "chore", alice.ID, nil)

	_, _, err := service.CreateCompletion(ctx, CreateCompletionInput{TaskID: 999, UserID: alice.ID})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, _, err = service.CreateCompletion(ctx, CreateCompletionInput{TaskID: task.ID, UserID: 999})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCompletionService_UpdateCompletion_DoesNotRevertStatus(t *testing.T) {
	service, db := setupCompletionService(t)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	task := testutil.CreateTask(t, db, "chore", alice.ID, nil)
	completion := testutil.CreateCompletion(t, db, task.ID, alice.ID, false)

	updated, err := service.UpdateCompletion(ctx, completion.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, models.TaskStatusCompleted, taskStatus(t, db, task.ID))

	updated, err = service.UpdateCompletion(ctx, completion.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Completed)
	assert.Equal(t, models.TaskStatusCompleted, taskStatus(t, db, task.ID))

	_, err = service.UpdateCompletion(ctx, 999, true)
	assert.ErrorIs(t, err, ErrCompletionNotFound)
}

func TestCompletionService_DeleteCompletion(t *testing.T) {
	service, db := setupCompletionService(t)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	task := testutil.CreateTask(t, db, "chore", alice.ID, nil)
	completion := testutil.CreateCompletion(t, db, task.ID, alice.ID, true)

	require.NoError(t, service.DeleteCompletion(ctx, completion.ID))
	assert.ErrorIs(t, service.DeleteCompletion(ctx, completion.ID), ErrCompletionNotFound)

	// The task survives its completions.
	var tasks int64
	require.NoError(t, db.Model(&models.Task{}).Count(&tasks).Error)
	assert.Equal(t, int64(1), tasks)
}
