package pkg

import "github.com/google/uuid"

// GenerateBoardID - generates a new unique board ID.
func GenerateBoardID() string {
	return uuid.NewString()
}
