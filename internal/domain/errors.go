package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrInterestNotFound     = errors.New("interest not found")
	ErrCannotSendToSelf     = errors.New("cannot send interest to yourself")
	ErrEntitlementRequired  = errors.New("premium subscription required")
)

// IncompleteProfileError blocks match results until the viewer fills
// the named fields. It is recoverable and never fatal.
type IncompleteProfileError struct {
	Missing []string
}

func (e *IncompleteProfileError) Error() string {
	return fmt.Sprintf("profile incomplete, missing: %s", strings.Join(e.Missing, ", "))
}
