package constants

const (
	// MinPasswordLength is the shortest password accepted on registration and update.
	MinPasswordLength = 6

	// MaxPasswordBytes is the longest password bcrypt accepts.
	MaxPasswordBytes = 72

	// DefaultTaskPoints is assigned to tasks created without points.
	DefaultTaskPoints = 10

	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	ContextKeyRequestID = "request_id"
	HeaderRequestID     = "X-Request-ID"

	APIVersion = "1.0.0"
)
