package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskmate-api/internal/repository"
	"github.com/yukikurage/taskmate-api/internal/testutil"
)

func TestAuthService_Login(t *testing.T) {
	db := testutil.NewDB(t)
	service := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "alice")

	t.Run("success", func(t *testing.T) {
		got, err := service.Login(ctx, LoginInput{Email: "alice@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		_, wrongPassword := service.Login(ctx, LoginInput{Email: "alice@example.com", Password: "nope"})
		_, unknownEmail := service.Login(ctx, LoginInput{Email: "bob@example.com", Password: "password123"})
		assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
		assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := service.Login(ctx, LoginInput{Email: "alice@example.com"})
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})
}
