package dto

import (
	"time"

	"github.com/yukikurage/taskmate-api/internal/models"
	"github.com/yukikurage/taskmate-api/internal/repository"
)

// UserSummaryDTO is the reduced identity embedded in other resources and returned by login
type UserSummaryDTO struct {
	ID       uint64      `json:"id"`
	UserName string      `json:"userName"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

// UserCountsDTO holds denormalized per-user counts
type UserCountsDTO struct {
	CreatedTasks  int64 `json:"createdTasks"`
	AssignedTasks int64 `json:"assignedTasks"`
	Completions   int64 `json:"completions"`
}

// UserDTO represents a user in API responses. It never carries the password hash.
type UserDTO struct {
	ID        uint64         `json:"id"`
	UserName  string         `json:"userName"`
	Email     string         `json:"email"`
	Role      models.Role    `json:"role"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Counts    *UserCountsDTO `json:"_count,omitempty"`
}

// UserDetailDTO is a user with the tasks they created and the tasks assigned to them
type UserDetailDTO struct {
	UserDTO
	CreatedTasks  []TaskListItemDTO `json:"createdTasks"`
	AssignedTasks []TaskListItemDTO `json:"assignedTasks"`
}

// LoginResponse is returned by a successful credential check
type LoginResponse struct {
	Message string         `json:"message"`
	User    UserSummaryDTO `json:"user"`
}

// ToUserSummaryDTO converts a User model to UserSummaryDTO
func ToUserSummaryDTO(user models.User) UserSummaryDTO {
	return UserSummaryDTO{
		ID:       user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		UserName:  user.UserName,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserDTOs converts users, attaching counts when a count map is given
func ToUserDTOs(users []models.User, counts map[uint64]repository.UserCounts) []UserDTO {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
		if counts == nil {
			continue
		}
		c := counts[user.ID]
		items[i].Counts = &UserCountsDTO{
			CreatedTasks:  c.CreatedTasks,
			AssignedTasks: c.AssignedTasks,
			Completions:   c.Completions,
		}
	}
	return items
}

// ToUserDetailDTO converts a User with preloaded task relations
func ToUserDetailDTO(user models.User) UserDetailDTO {
	return UserDetailDTO{
		UserDTO:       ToUserDTO(user),
		CreatedTasks:  ToTaskListItemDTOs(user.CreatedTasks),
		AssignedTasks: ToTaskListItemDTOs(user.AssignedTasks),
	}
}
