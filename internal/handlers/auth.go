package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskmate-api/internal/dto"
	apierrors "github.com/yukikurage/taskmate-api/internal/errors"
	"github.com/yukikurage/taskmate-api/internal/services"
)

// AuthHandler serves credential checks.
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// Login verifies an email and password. No session or token is issued.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithError(c, http.StatusBadRequest, apierrors.ErrInvalidInput)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		User:    dto.ToUserSummaryDTO(*user),
	})
}

// CheckEmail reports whether an account uses the given email.
func (h *AuthHandler) CheckEmail(c *gin.Context) {
	exists, err := h.userService.EmailExists(c.Request.Context(), c.Param("email"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingCredentials):
		apierrors.BadRequest(c, "Email and password are required")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, "Invalid email or password")
	default:
		_ = c.Error(err)
	}
}
