package dto

import (
	"time"

	"github.com/yukikurage/taskmate-api/internal/models"
)

// TaskListItemDTO represents a task without its relations
type TaskListItemDTO struct {
	ID          uint64            `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Status      models.TaskStatus `json:"status"`
	Deadline    *time.Time        `json:"deadline"`
	Points      int               `json:"points"`
	CreatorID   uint64            `json:"creatorId"`
	AssigneeID  *uint64           `json:"assigneeId"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// TaskDTO represents a task with its creator, assignee and completions
type TaskDTO struct {
	TaskListItemDTO
	Creator     *UserSummaryDTO `json:"creator"`
	Assignee    *UserSummaryDTO `json:"assignee"`
	Completions []CompletionDTO `json:"completions"`
}

// ToTaskListItemDTO converts a Task model to TaskListItemDTO
func ToTaskListItemDTO(task models.Task) TaskListItemDTO {
	return TaskListItemDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Deadline:    task.Deadline,
		Points:      task.Points,
		CreatorID:   task.CreatorID,
		AssigneeID:  task.AssigneeID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskListItemDTOs converts a slice of tasks, never returning nil
func ToTaskListItemDTOs(tasks []models.Task) []TaskListItemDTO {
	items := make([]TaskListItemDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskListItemDTO(task)
	}
	return items
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		TaskListItemDTO: ToTaskListItemDTO(task),
		Completions:     make([]CompletionDTO, len(task.Completions)),
	}

	// Include creator if preloaded
	if task.Creator.ID != 0 {
		creator := ToUserSummaryDTO(task.Creator)
		dto.Creator = &creator
	}

	if task.Assignee != nil && task.Assignee.ID != 0 {
		assignee := ToUserSummaryDTO(*task.Assignee)
		dto.Assignee = &assignee
	}

	for i, completion := range task.Completions {
		dto.Completions[i] = ToCompletionDTO(completion)
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks, never returning nil
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}
