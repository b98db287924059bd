package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/yukikurage/taskmate-api/internal/dto"
	apierrors "github.com/yukikurage/taskmate-api/internal/errors"
	"github.com/yukikurage/taskmate-api/internal/repository"
	"github.com/yukikurage/taskmate-api/internal/services"
	"github.com/yukikurage/taskmate-api/internal/utils"
)

// CompletionHandler serves the /completeTasks routes.
type CompletionHandler struct {
	completionService *services.CompletionService
}

func NewCompletionHandler(completionService *services.CompletionService) *CompletionHandler {
	return &CompletionHandler{
		completionService: completionService,
	}
}

// CreateCompletion records that a user completed a task. It answers 201 for a new
// record and 200 when the existing record of the pair was updated.
func (h *CompletionHandler) CreateCompletion(c *gin.Context) {
	var req dto.CreateCompletionRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		apierrors.RespondWithError(c, http.StatusBadRequest, apierrors.ErrInvalidInput)
		return
	}

	taskID, _ := req.TaskID.ID()
	userID, _ := req.UserID.ID()
	completion, created, err := h.completionService.CreateCompletion(c.Request.Context(), services.CreateCompletionInput{
		TaskID:    taskID,
		UserID:    userID,
		Completed: req.Completed,
	})
	if err != nil {
		respondCompletionError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToCompletionDTO(*completion))
}

// ListCompletions returns every completion
func (h *CompletionHandler) ListCompletions(c *gin.Context) {
	h.list(c, repository.CompletionFilter{Page: utils.GetPaginationParams(c)})
}

// ListTaskCompletions returns the completions of one task
func (h *CompletionHandler) ListTaskCompletions(c *gin.Context) {
	taskID, ok := parseIDParam(c, "taskId", "task")
	if !ok {
		return
	}
	h.list(c, repository.CompletionFilter{TaskID: &taskID, Page: utils.GetPaginationParams(c)})
}

// ListUserCompletions returns the completions of one user
func (h *CompletionHandler) ListUserCompletions(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", "user")
	if !ok {
		return
	}
	h.list(c, repository.CompletionFilter{UserID: &userID, Page: utils.GetPaginationParams(c)})
}

func (h *CompletionHandler) list(c *gin.Context, filter repository.CompletionFilter) {
	completions, err := h.completionService.ListCompletions(c.Request.Context(), filter)
	if err != nil {
		respondCompletionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompletionDTOs(completions))
}

// UpdateCompletion sets the completed flag
func (h *CompletionHandler) UpdateCompletion(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "completion")
	if !ok {
		return
	}

	var req dto.UpdateCompletionRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil || req.Completed == nil {
		apierrors.RespondWithError(c, http.StatusBadRequest, apierrors.ErrInvalidInput)
		return
	}

	completion, err := h.completionService.UpdateCompletion(c.Request.Context(), id, *req.Completed)
	if err != nil {
		respondCompletionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompletionDTO(*completion))
}

// DeleteCompletion removes a completion record
func (h *CompletionHandler) DeleteCompletion(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "completion")
	if !ok {
		return
	}

	if err := h.completionService.DeleteCompletion(c.Request.Context(), id); err != nil {
		respondCompletionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Complete task deleted successfully"})
}

func respondCompletionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCompletionNotFound):
		apierrors.NotFound(c, "Completion not found")
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	default:
		_ = c.Error(err)
	}
}
