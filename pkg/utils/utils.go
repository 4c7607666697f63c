package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateShortUUID generates a short UUID (8 characters) for file names
func GenerateShortUUID() string {
	fullUUID := uuid.New().String()
	// Take first 8 characters for a short but still unique identifier
	return strings.ReplaceAll(fullUUID[:8], "-", "")
}
