package id

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID creates a unique 16-character alphanumeric ID.
func GenerateID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}
