package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskmate-api/internal/models"
	"github.com/yukikurage/taskmate-api/internal/testutil"
	"gorm.io/gorm"
)

func TestTaskRepository_List_InvolvedUser(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTaskRepository(db)

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	carol := testutil.CreateUser(t, db, "carol")

	created := testutil.CreateTask(t, db, "created by bob", bob.ID, nil)
	assigned := testutil.CreateTask(t, db, "assigned to bob", alice.ID, &bob.ID)
	testutil.CreateTask(t, db, "unrelated", alice.ID, &carol.ID)

	tasks, err := repo.List(context.Background(), TaskFilter{InvolvedUserID: &bob.ID})
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	// Newest first; IDs break ties between rows created in the same instant.
	assert.Equal(t, assigned.ID, tasks[0].ID)
	assert.Equal(t, created.ID, tasks[1].ID)
}

func TestTaskRepository_Delete_RemovesCompletions(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTaskRepository(db)

	alice := testutil.CreateUser(t, db, "alice")
	task := testutil.CreateTask(t, db, "chore", alice.ID, nil)
	testutil.CreateCompletion(t, db, task.ID, alice.ID, true)

	require.NoError(t, repo.Delete(context.Background(), task.ID))

	var completions int64
	require.NoError(t, db.Model(&models.Completion{}).Where("task_id = ?", task.ID).Count(&completions).Error)
	assert.Zero(t, completions)

	_, err := repo.FindByID(context.Background(), task.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), task.ID), gorm.ErrRecordNotFound)
}

func TestTaskRepository_Count(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	done := testutil.CreateTask(t, db, "done", alice.ID, nil)
	testutil.CreateTask(t, db, "open", alice.ID, nil)
	require.NoError(t, repo.SetStatus(ctx, done.ID, models.TaskStatusCompleted))

	total, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	completed := models.TaskStatusCompleted
	n, err := repo.Count(ctx, &completed)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestTaskRepository_Update_ClearsColumns(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	task := testutil.CreateTask(t, db, "chore", alice.ID, &alice.ID)

	require.NoError(t, repo.Update(ctx, task.ID, map[string]interface{}{"assignee_id": nil}))

	reloaded, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.AssigneeID)
	assert.Equal(t, "chore", reloaded.Title)
}
