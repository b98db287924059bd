package models

import "time"

// Completion records one user's completion state for one task.
// (TaskID, UserID) is unique.
type Completion struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	TaskID    uint64    `gorm:"not null;uniqueIndex:idx_completions_task_user" json:"taskId"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_completions_task_user;index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
