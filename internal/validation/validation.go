// Package validation checks request bodies before they reach the services.
// Every check runs; failures are reported in the order the checks were made.
package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/yukikurage/taskmate-api/internal/constants"
	"github.com/yukikurage/taskmate-api/internal/dto"
)

// messages maps "<Struct>.<Field>.<tag>" to the message returned to clients.
var messages = map[string]string{
	"CreateUserRequest.UserName.notblank":  "Username is required",
	"CreateUserRequest.Email.contains":     "Valid email is required",
	"CreateUserRequest.Password.min":       "Password must be at least 6 characters",
	"CreateUserRequest.Password.bcryptlen": "Password must be at most 72 bytes",
	"CreateUserRequest.Role.oneof":         "Role must be one of ADMIN, MEMBER",

	"UpdateUserRequest.UserName.notblank":  "Username is required",
	"UpdateUserRequest.Email.contains":     "Valid email is required",
	"UpdateUserRequest.Password.min":       "Password must be at least 6 characters",
	"UpdateUserRequest.Password.bcryptlen": "Password must be at most 72 bytes",
	"UpdateUserRequest.Role.oneof":         "Role must be one of ADMIN, MEMBER",

	"CreateTaskRequest.Title.notblank": "Title is required",
	"UpdateTaskRequest.Title.notblank": "Title cannot be empty",

	"UpdateCompletionRequest.Completed.required": "Completed flag is required",
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	// bcrypt rejects passwords longer than 72 bytes, whatever their rune count.
	if err := v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= constants.MaxPasswordBytes
	}); err != nil {
		panic(err)
	}
	return v
}

// Validator collects failed checks.
type Validator struct {
	errors []string
}

// New creates an empty Validator
func New() *Validator {
	return &Validator{}
}

// Check records message when cond does not hold
func (v *Validator) Check(cond bool, message string) {
	if !cond {
		v.errors = append(v.errors, message)
	}
}

// Struct runs the validate tags of s, recording one message per failing field
func (v *Validator) Struct(s interface{}) {
	err := validate.Struct(s)
	if err == nil {
		return
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		v.errors = append(v.errors, err.Error())
		return
	}
	for _, fe := range fieldErrors {
		message, ok := messages[fe.Namespace()+"."+fe.Tag()]
		if !ok {
			message = fe.Error()
		}
		v.errors = append(v.errors, message)
	}
}

// Valid reports whether every check passed
func (v *Validator) Valid() bool {
	return len(v.errors) == 0
}

// Errors returns the failed checks in order, or nil
func (v *Validator) Errors() []string {
	return v.errors
}

// User validates a registration body
func User(req dto.CreateUserRequest) []string {
	v := New()
	v.Struct(req)
	return v.Errors()
}

// UserUpdate validates a profile update, checking only the fields present.
// An empty password means the current one is kept.
func UserUpdate(req dto.UpdateUserRequest) []string {
	if req.Password != nil && *req.Password == "" {
		req.Password = nil
	}
	v := New()
	v.Struct(req)
	return v.Errors()
}

// Task validates a task creation body
func Task(req dto.CreateTaskRequest) []string {
	v := New()
	v.Struct(req)
	_, hasCreator := req.CreatorID.ID()
	v.Check(hasCreator, "Creator ID is required")
	return v.Errors()
}

// TaskUpdate validates a partial task update
func TaskUpdate(req dto.UpdateTaskRequest) []string {
	v := New()
	v.Struct(req)
	if req.Points.Present {
		v.Check(!req.Points.Null, "Points must be an integer")
	}
	return v.Errors()
}

// Completion validates a completion creation body
func Completion(req dto.CreateCompletionRequest) []string {
	v := New()
	_, hasTask := req.TaskID.ID()
	v.Check(hasTask, "Task ID is required")
	_, hasUser := req.UserID.ID()
	v.Check(hasUser, "User ID is required")
	return v.Errors()
}

// CompletionUpdate validates a completion update body
func CompletionUpdate(req dto.UpdateCompletionRequest) []string {
	v := New()
	v.Struct(req)
	return v.Errors()
}
