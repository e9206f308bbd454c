package id

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	apperrors "github.com/ilyde-platform/ilyde-datasets/internal/pkg/errors"
)

// New generates a new identifier for a stored document
func New() uuid.UUID {
	return uuid.New()
}

// Parse converts an opaque identifier string into the store-native form.
// A malformed identifier is reported as InvalidArgument.
func Parse(s string) (uuid.UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, apperrors.InvalidArgument(fmt.Sprintf("'%s' is not a valid identifier", s)).WithError(err)
	}
	return u, nil
}

// Format renders a store-native identifier as its opaque string form
func Format(u uuid.UUID) string {
	return u.String()
}

// Validate reports whether s can be converted by Parse
func Validate(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// NewBucketName generates an object-storage bucket name: the 32 lowercase
// hex characters of a fresh UUID, with no separators.
func NewBucketName() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
