package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/taskmate-api/internal/models"
	"github.com/yukikurage/taskmate-api/internal/repository"
	"github.com/yukikurage/taskmate-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("user with this email already exists")
	ErrEmailInUse           = errors.New("email already in use")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidRole          = errors.New("role must be one of ADMIN, MEMBER")
	ErrUserOwnsTasks        = errors.New("user still owns tasks")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrPasswordTooLong      = errors.New("password must be at most 72 bytes")
)

// UserService handles user accounts.
type UserService struct {
	userRepo   repository.UserRepository
	bcryptCost int
}

// NewUserService creates a new UserService. Passwords are hashed with bcryptCost,
// falling back to bcrypt.DefaultCost when it is out of range.
func NewUserService(userRepo repository.UserRepository, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
	}
}

// CreateUserInput represents the required information to create a new user.
type CreateUserInput struct {
	UserName string
	Email    string
	Password string
	Role     models.Role
}

// CreateUser registers a new user with a hashed password.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	if input.Role == "" {
		input.Role = models.RoleMember
	}
	if !input.Role.Valid() {
		return nil, ErrInvalidRole
	}

	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := s.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UserName:     input.UserName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         input.Role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// ListUsersInput represents options for listing users
type ListUsersInput struct {
	WithCounts bool
	Page       utils.PaginationParams
}

// ListUsers returns users and, when requested, their task and completion counts.
// The count map is nil unless WithCounts is set.
func (s *UserService) ListUsers(ctx context.Context, input ListUsersInput) ([]models.User, map[uint64]repository.UserCounts, error) {
	users, err := s.userRepo.List(ctx, input.Page)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list users: %w", err)
	}

	if !input.WithCounts {
		return users, nil, nil
	}

	ids := make([]uint64, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	counts, err := s.userRepo.CountsByUser(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count user tasks: %w", err)
	}

	return users, counts, nil
}

// GetUser returns a user with the tasks they created and the tasks assigned to them
func (s *UserService) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id, "CreatedTasks", "AssignedTasks")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateUserInput represents a partial profile update. Nil fields are left untouched.
type UpdateUserInput struct {
	UserName *string
	Email    *string
	Password *string
	Role     *models.Role
}

// UpdateUser applies a partial update to a user
func (s *UserService) UpdateUser(ctx context.Context, id uint64, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	fields := make(map[string]interface{})

	if input.UserName != nil {
		fields["user_name"] = *input.UserName
	}
	if input.Email != nil && *input.Email != user.Email {
		other, err := s.userRepo.FindByEmail(ctx, *input.Email)
		switch {
		case err == nil && other.ID != user.ID:
			return nil, ErrEmailInUse
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		fields["email"] = *input.Email
	}
	// An absent or empty password keeps the stored hash.
	if input.Password != nil && *input.Password != "" {
		hashedPassword, err := s.hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hashedPassword
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, ErrInvalidRole
		}
		fields["role"] = *input.Role
	}

	if err := s.userRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	updated, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	return updated, nil
}

// DeleteUser deletes a user together with their completions and clears every task
// assignment pointing at them
func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserOwnsTasks):
			return ErrUserOwnsTasks
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrUserNotFound
		default:
			return fmt.Errorf("failed to delete user: %w", err)
		}
	}

	return nil
}

// EmailExists reports whether an account is registered with email
func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("failed to check email: %w", err)
	}
}

func (s *UserService) hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("%w: %v", ErrFailedToHashPassword, err)
	}
	return string(hashed), nil
}
