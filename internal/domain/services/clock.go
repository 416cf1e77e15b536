package services

import (
	"time"

	"github.com/google/uuid"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// newID returns a new UUID string for notes, broadcasts and sessions.
func newID() string {
	return uuid.New().String()
}
