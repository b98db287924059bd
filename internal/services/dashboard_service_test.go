package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskmate-api/internal/models"
	"github.com/yukikurage/taskmate-api/internal/repository"
	"github.com/yukikurage/taskmate-api/internal/testutil"
)

func TestDashboardService_Stats(t *testing.T) {
	db := testutil.NewDB(t)
	service := NewDashboardService(repository.NewUserRepository(db), repository.NewTaskRepository(db))

	alice := testutil.CreateUser(t, db, "alice")
	testutil.CreateUser(t, db, "bob")
	for i := 0; i < 10; i++ {
		task := testutil.CreateTask(t, db, fmt.Sprintf("task %d", i), alice.ID, nil)
		if i < 4 {
			require.NoError(t, db.Model(task).Update("status", models.TaskStatusCompleted).Error)
		}
	}

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &DashboardStats{
		TotalUsers:     2,
		TotalTasks:     10,
		CompletedTasks: 4,
		PendingTasks:   6,
		CompletionRate: 40,
	}, stats)
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 0, CompletionRate(0, 0))
	assert.Equal(t, 33, CompletionRate(1, 3))
	assert.Equal(t, 67, CompletionRate(2, 3))
	assert.Equal(t, 100, CompletionRate(5, 5))
}
