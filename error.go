package sentinel

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNameRequired is returned by New when no name is supplied. Sentinels
// must carry an explicit display name; there is no inference from the call
// site.
var ErrNameRequired = errors.New("sentinel: name is required")

// ErrNotOrdered is returned by Compare when a sentinel has no ordered
// payload, or when its payload cannot be ordered against the given operand.
var ErrNotOrdered = errors.New("sentinel: value is not ordered")

// ErrUnknownToken is a sentinel error matched by UnknownTokenError, useful
// with errors.Is when the specific token doesn't matter.
var ErrUnknownToken = errors.New("sentinel: unknown token")

// UnknownTokenError is returned when decoding an envelope whose token
// doesn't belong to any sentinel minted by this process. It should not be
// initialized directly, but can be used for test assertions.
type UnknownTokenError struct {
	// Token is the unrecognized token from the envelope.
	Token uuid.UUID
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("sentinel: unknown token %q; sentinel identity does not cross process boundaries", e.Token)
}

func (e *UnknownTokenError) Is(target error) bool {
	return target == ErrUnknownToken
}
