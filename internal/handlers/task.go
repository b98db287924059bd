package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/yukikurage/taskmate-api/internal/dto"
	apierrors "github.com/yukikurage/taskmate-api/internal/errors"
	"github.com/yukikurage/taskmate-api/internal/models"
	"github.com/yukikurage/taskmate-api/internal/services"
	"github.com/yukikurage/taskmate-api/internal/utils"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a task for an existing creator
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		apierrors.RespondWithError(c, http.StatusBadRequest, apierrors.ErrInvalidInput)
		return
	}

	creatorID, _ := req.CreatorID.ID()
	input := services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description.Ptr(),
		Status:      models.TaskStatus(req.Status),
		Deadline:    req.Deadline.Ptr(),
		CreatorID:   creatorID,
	}
	if req.Points.IsSet() {
		points := int(req.Points.Value)
		input.Points = &points
	}
	if req.AssigneeID.IsSet() && !req.AssigneeID.Cleared() {
		assigneeID, ok := req.AssigneeID.ID()
		if !ok {
			apierrors.NotFound(c, "Assignee not found")
			return
		}
		input.AssigneeID = &assigneeID
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// ListTasks returns all tasks newest-first
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context(), services.ListTasksInput{
		Page: utils.GetPaginationParams(c),
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// ListUserTasks returns tasks a user created or is assigned to
func (h *TaskHandler) ListUserTasks(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", "user")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), services.ListTasksInput{
		UserID: &userID,
		Page:   utils.GetPaginationParams(c),
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns a single task with its completions
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "task")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// UpdateTask applies a partial update. Explicit nulls clear
// description, deadline and assignee.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "task")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		apierrors.RespondWithError(c, http.StatusBadRequest, apierrors.ErrInvalidInput)
		return
	}

	input := services.UpdateTaskInput{
		Title:            req.Title,
		Description:      req.Description.Ptr(),
		ClearDescription: req.Description.Present && req.Description.Null,
		Deadline:         req.Deadline.Ptr(),
		ClearDeadline:    req.Deadline.Present && req.Deadline.Null,
		ClearAssignee:    req.AssigneeID.Cleared(),
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.Points.IsSet() {
		points := int(req.Points.Value)
		input.Points = &points
	}
	if req.AssigneeID.IsSet() && !req.AssigneeID.Cleared() {
		assigneeID, ok := req.AssigneeID.ID()
		if !ok {
			apierrors.NotFound(c, "Assignee not found")
			return
		}
		input.AssigneeID = &assigneeID
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), id, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task and its completions
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "task")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), id); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrCreatorNotFound):
		apierrors.NotFound(c, "Creator not found")
	case errors.Is(err, services.ErrAssigneeNotFound):
		apierrors.NotFound(c, "Assignee not found")
	case errors.Is(err, services.ErrTitleRequired):
		apierrors.BadRequest(c, "Title is required")
	case errors.Is(err, services.ErrTitleEmpty):
		apierrors.BadRequest(c, "Title cannot be empty")
	case errors.Is(err, services.ErrInvalidTaskStatus):
		apierrors.BadRequest(c, "Invalid task status")
	default:
		_ = c.Error(err)
	}
}
