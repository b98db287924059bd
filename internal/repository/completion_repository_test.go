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

func TestCompletionRepository_Upsert_OneRowPerPair(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewCompletionRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	task := testutil.CreateTask(t, db, "chore", alice.ID, nil)

	first := &models.Completion{TaskID: task.ID, UserID: alice.ID, Completed: false}
	require.NoError(t, repo.Upsert(ctx, first, true))
	require.NotZero(t, first.ID)

	second := &models.Completion{TaskID: task.ID, UserID: alice.ID, Completed: true}
	require.NoError(t, repo.Upsert(ctx, second, true))
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Completed)

	third := &models.Completion{TaskID: task.ID, UserID: alice.ID}
	require.NoError(t, repo.Upsert(ctx, third, false))
	assert.Equal(t, first.ID, third.ID)
	assert.True(t, third.Completed)

	var count int64
	require.NoError(t, db.Model(&models.Completion{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCompletionRepository_List_Filters(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewCompletionRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	task := testutil.CreateTask(t, db, "chore", alice.ID, nil)
	other := testutil.CreateTask(t, db, "errand", alice.ID, nil)

	testutil.CreateCompletion(t, db, task.ID, alice.ID, true)
	testutil.CreateCompletion(t, db, task.ID, bob.ID, false)
	testutil.CreateCompletion(t, db, other.ID, bob.ID, true)

	all, err := repo.List(ctx, CompletionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byTask, err := repo.List(ctx, CompletionFilter{TaskID: &task.ID})
	require.NoError(t, err)
	require.Len(t, byTask, 2)
	assert.Equal(t, "chore", byTask[0].Task.Title)
	assert.NotEmpty(t, byTask[0].User.Email)

	byUser, err := repo.List(ctx, CompletionFilter{UserID: &bob.ID})
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	assert.Equal(t, other.ID, byUser[0].TaskID)
}

func TestCompletionRepository_Delete(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewCompletionRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	task := testutil.CreateTask(t, db, "chore", alice.ID, nil)
	completion := testutil.CreateCompletion(t, db, task.ID, alice.ID, true)

	require.NoError(t, repo.Delete(ctx, completion.ID))
	assert.ErrorIs(t, repo.Delete(ctx, completion.ID), gorm.ErrRecordNotFound)

	_, err := repo.FindByID(ctx, completion.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
