package services

import "errors"

// ValidationError marks a domain-rule violation (missing required field,
// out-of-range value). Controllers surface the message verbatim as a 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// ErrGenreMissing is returned when a book names a genre that does not
// exist. Genres are never created implicitly by a book write; the failure
// is surfaced the way a store constraint would be.
var ErrGenreMissing = errors.New("referenced genre does not exist")
