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

// UserHandler serves the /users routes.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser registers a new user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		apierrors.RespondWithError(c, http.StatusBadRequest, apierrors.ErrInvalidInput)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// ListUsers returns every user; ?withCounts=true adds per-user counts
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, counts, err := h.userService.ListUsers(c.Request.Context(), services.ListUsersInput{
		WithCounts: c.Query("withCounts") == "true",
		Page:       utils.GetPaginationParams(c),
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users, counts))
}

// GetUser returns a user with their created and assigned tasks
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDetailDTO(*user))
}

// UpdateUser applies a partial update
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		apierrors.RespondWithError(c, http.StatusBadRequest, apierrors.ErrInvalidInput)
		return
	}

	input := services.UpdateUserInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, input)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// DeleteUser removes a user, their completions and their assignments
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "user")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.BadRequest(c, "User with this email already exists")
	case errors.Is(err, services.ErrEmailInUse):
		apierrors.BadRequest(c, "Email already in use")
	case errors.Is(err, services.ErrInvalidRole):
		apierrors.BadRequest(c, "Role must be one of ADMIN, MEMBER")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrUserOwnsTasks):
		apierrors.Conflict(c, "User still owns tasks")
	case errors.Is(err, services.ErrPasswordTooLong):
		apierrors.BadRequest(c, "Password must be at most 72 bytes")
	default:
		_ = c.Error(err)
	}
}
