package dto

import (
	"time"

	"github.com/yukikurage/taskmate-api/internal/models"
)

// CompletionDTO represents a completion record, with its task and user when loaded
type CompletionDTO struct {
	ID        uint64           `json:"id"`
	Completed bool             `json:"completed"`
	TaskID    uint64           `json:"taskId"`
	UserID    uint64           `json:"userId"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	Task      *TaskListItemDTO `json:"task,omitempty"`
	User      *UserSummaryDTO  `json:"user,omitempty"`
}

// ToCompletionDTO converts a Completion model to CompletionDTO
func ToCompletionDTO(completion models.Completion) CompletionDTO {
	dto := CompletionDTO{
		ID:        completion.ID,
		Completed: completion.Completed,
		TaskID:    completion.TaskID,
		UserID:    completion.UserID,
		CreatedAt: completion.CreatedAt,
		UpdatedAt: completion.UpdatedAt,
	}

	if completion.Task.ID != 0 {
		task := ToTaskListItemDTO(completion.Task)
		dto.Task = &task
	}
	if completion.User.ID != 0 {
		user := ToUserSummaryDTO(completion.User)
		dto.User = &user
	}

	return dto
}

// ToCompletionDTOs converts a slice of completions, never returning nil
func ToCompletionDTOs(completions []models.Completion) []CompletionDTO {
	items := make([]CompletionDTO, len(completions))
	for i, completion := range completions {
		items[i] = ToCompletionDTO(completion)
	}
	return items
}
