package dto

// CreateUserRequest is the body of POST /users/create
type CreateUserRequest struct {
	UserName string `json:"userName" validate:"notblank"`
	Email    string `json:"email" validate:"contains=@"`
	Password string `json:"password" validate:"min=6,bcryptlen"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN MEMBER"`
}

// UpdateUserRequest is the body of PATCH /users/:id. Nil fields are left untouched.
type UpdateUserRequest struct {
	UserName *string `json:"userName" validate:"omitnil,notblank"`
	Email    *string `json:"email" validate:"omitnil,contains=@"`
	Password *string `json:"password" validate:"omitnil,min=6,bcryptlen"`
	Role     *string `json:"role" validate:"omitnil,oneof=ADMIN MEMBER"`
}

// CreateTaskRequest is the body of POST /tasks/create
type CreateTaskRequest struct {
	Title       string         `json:"title" validate:"notblank"`
	Description NullableString `json:"description"`
	Status      string         `json:"status"`
	Deadline    NullableTime   `json:"deadline"`
	Points      NullableInt    `json:"points"`
	CreatorID   NullableInt    `json:"creatorId"`
	AssigneeID  NullableInt    `json:"assigneeId"`
}

// UpdateTaskRequest is the body of PATCH /tasks/:id
type UpdateTaskRequest struct {
	Title       *string        `json:"title" validate:"omitnil,notblank"`
	Description NullableString `json:"description"`
	Status      *string        `json:"status"`
	Deadline    NullableTime   `json:"deadline"`
	Points      NullableInt    `json:"points"`
	AssigneeID  NullableInt    `json:"assigneeId"`
}

// CreateCompletionRequest is the body of POST /completeTasks/create
type CreateCompletionRequest struct {
	Completed *bool       `json:"completed"`
	TaskID    NullableInt `json:"taskId"`
	UserID    NullableInt `json:"userId"`
}

// UpdateCompletionRequest is the body of PATCH /completeTasks/:id
type UpdateCompletionRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// LoginRequest is the body of POST /login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
