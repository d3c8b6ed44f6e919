package application

import "errors"

// Sentinel errors returned by the review ledger. Handlers translate them to
// HTTP statuses; messages below are developer-facing, not response bodies.
var (
	// ErrNotAuthenticated is returned when a write is attempted without a principal.
	ErrNotAuthenticated = errors.New("no authenticated principal")
	// ErrDuplicateReview is returned when the identity already has a stored review.
	ErrDuplicateReview = errors.New("review already exists for this identity")
	// ErrNotFound is returned when the target review does not resolve.
	ErrNotFound = errors.New("review not found")
	// ErrNotOwner is returned when the principal does not own the target review.
	ErrNotOwner = errors.New("review belongs to a different identity")
)

// ValidationError marks rejected user input. The reason is safe to surface.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
