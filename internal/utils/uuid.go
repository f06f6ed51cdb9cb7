package utils

import "github.com/google/uuid"

// NewRequestID returns a value for the X-Request-ID header. Version 7 UUIDs
// sort by creation time, so log lines of one session stay in order; when
// the clock source fails a random v4 is used instead.
func NewRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
