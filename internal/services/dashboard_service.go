package services

import (
	"context"
	"fmt"
	"math"

	"github.com/yukikurage/taskmate-api/internal/models"
	"github.com/yukikurage/taskmate-api/internal/repository"
	"golang.org/x/sync/errgroup"
)

// DashboardStats summarizes users and task progress
type DashboardStats struct {
	TotalUsers     int64
	TotalTasks     int64
	CompletedTasks int64
	PendingTasks   int64
	CompletionRate int
}

// DashboardService computes aggregate statistics
type DashboardService struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(userRepo repository.UserRepository, taskRepo repository.TaskRepository) *DashboardService {
	return &DashboardService{
		userRepo: userRepo,
		taskRepo: taskRepo,
	}
}

// Stats runs the four counts concurrently
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	completed := models.TaskStatusCompleted
	pending := models.TaskStatusPending

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalUsers, err = s.userRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalTasks, err = s.taskRepo.Count(ctx, nil)
		return err
	})
	g.Go(func() (err error) {
		stats.CompletedTasks, err = s.taskRepo.Count(ctx, &completed)
		return err
	})
	g.Go(func() (err error) {
		stats.PendingTasks, err = s.taskRepo.Count(ctx, &pending)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}

	stats.CompletionRate = CompletionRate(stats.CompletedTasks, stats.TotalTasks)
	return &stats, nil
}

// CompletionRate returns completed/total as a whole percentage, or 0 with no tasks.
func CompletionRate(completed, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
