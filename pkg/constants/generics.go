package constants

// RFC 3339 date-time format string.
// Use this format for all date-time serialization and communication with external systems.
const RFC3339DateTimeFormat = "2006-01-02T15:04:05Z07:00"

// AdminKeyHeader is the request header carrying the shared admin secret.
const AdminKeyHeader = "X-Admin-Key"

// DefaultSignupSource is stored when a submission does not name its source.
const DefaultSignupSource = "website"

// MinThoughtMessageLength is the minimum accepted message length after trimming.
const MinThoughtMessageLength = 10

// Default storage connection retry configuration
const (
	// DefaultStorageConnectAttempts is the number of startup connection attempts
	DefaultStorageConnectAttempts = 5
	// DefaultStorageConnectDelaySeconds is the fixed delay between attempts
	DefaultStorageConnectDelaySeconds = 2
)
