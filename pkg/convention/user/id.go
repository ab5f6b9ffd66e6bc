package user

import (
	"github.com/google/uuid"
)

// IDGenerator produces a fresh user_id on every call.
type IDGenerator func() (string, error)

// NewID returns a random (version 4) UUID.
func NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
