package article

import "errors"

// ErrNotFound indicates the id does not resolve to a stored article.
// Malformed ids get the same treatment as well-formed missing ones.
var ErrNotFound = errors.New("article not found")

// ValidationError reports why an article payload was rejected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
