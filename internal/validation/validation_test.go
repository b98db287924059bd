package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskmate-api/internal/dto"
)

func TestUser(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateUserRequest
		expected []string
	}{
		{
			name: "valid",
			req:  dto.CreateUserRequest{UserName: "alice", Email: "alice@example.com", Password: "secret1"},
		},
		{
			name: "every field wrong reports in order",
			req:  dto.CreateUserRequest{UserName: " ", Email: "nope", Password: "abc"},
			expected: []string{
				"Username is required",
				"Valid email is required",
				"Password must be at least 6 characters",
			},
		},
		{
			name:     "unknown role",
			req:      dto.CreateUserRequest{UserName: "bob", Email: "bob@example.com", Password: "secret1", Role: "OWNER"},
			expected: []string{"Role must be one of ADMIN, MEMBER"},
		},
		{
			name:     "password counted in characters",
			req:      dto.CreateUserRequest{UserName: "bob", Email: "bob@example.com", Password: "äöü"},
			expected: []string{"Password must be at least 6 characters"},
		},
		{
			name: "six multibyte characters",
			req:  dto.CreateUserRequest{UserName: "bob", Email: "bob@example.com", Password: "äöüäöü"},
		},
		{
			name:     "password longer than 72 bytes",
			req:      dto.CreateUserRequest{UserName: "bob", Email: "bob@example.com", Password: strings.Repeat("a", 80)},
			expected: []string{"Password must be at most 72 bytes"},
		},
		{
			name:     "short rune count but too many bytes",
			req:      dto.CreateUserRequest{UserName: "bob", Email: "bob@example.com", Password: strings.Repeat("ä", 40)},
			expected: []string{"Password must be at most 72 bytes"},
		},
		{
			name: "admin role",
			req:  dto.CreateUserRequest{UserName: "bob", Email: "bob@example.com", Password: "secret1", Role: "ADMIN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, User(tt.req))
		})
	}
}

func TestUserUpdate_ChecksOnlyPresentFields(t *testing.T) {
	var req dto.UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"email":"bad"}`), &req))
	assert.Equal(t, []string{"Valid email is required"}, UserUpdate(req))

	// An empty password means "keep the current one".
	require.NoError(t, json.Unmarshal([]byte(`{"password":""}`), &req))
	req.Email = nil
	assert.Empty(t, UserUpdate(req))

	assert.Empty(t, UserUpdate(dto.UpdateUserRequest{}))

	long := strings.Repeat("a", 80)
	assert.Equal(t, []string{"Password must be at most 72 bytes"}, UserUpdate(dto.UpdateUserRequest{Password: &long}))

	short := "äöü"
	assert.Equal(t, []string{"Password must be at least 6 characters"}, UserUpdate(dto.UpdateUserRequest{Password: &short}))

	role := "OWNER"
	assert.Equal(t, []string{"Role must be one of ADMIN, MEMBER"}, UserUpdate(dto.UpdateUserRequest{Role: &role}))
}

func TestTask(t *testing.T) {
	var req dto.CreateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Write report","creatorId":"3"}`), &req))
	assert.Empty(t, Task(req))

	req = dto.CreateTaskRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"title":"","creatorId":0}`), &req))
	assert.Equal(t, []string{"Title is required", "Creator ID is required"}, Task(req))
}

func TestTaskUpdate(t *testing.T) {
	var req dto.UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"   ","points":null}`), &req))
	assert.Equal(t, []string{"Title cannot be empty", "Points must be an integer"}, TaskUpdate(req))

	req = dto.UpdateTaskRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"status":"IN_PROGRESS"}`), &req))
	assert.Empty(t, TaskUpdate(req))
}

func TestCompletion(t *testing.T) {
	var req dto.CreateCompletionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"completed":true}`), &req))
	assert.Equal(t, []string{"Task ID is required", "User ID is required"}, Completion(req))

	req = dto.CreateCompletionRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"taskId":1,"userId":"2"}`), &req))
	assert.Empty(t, Completion(req))
}

func TestCompletionUpdate(t *testing.T) {
	assert.Equal(t, []string{"Completed flag is required"}, CompletionUpdate(dto.UpdateCompletionRequest{}))

	done := false
	assert.Empty(t, CompletionUpdate(dto.UpdateCompletionRequest{Completed: &done}))
}
