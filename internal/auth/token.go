package auth

import (
	"strings"

	"github.com/google/uuid"
)

// NewTokenKey returns the opaque key material for a bearer token.
func NewTokenKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
