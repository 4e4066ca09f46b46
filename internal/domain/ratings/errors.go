package ratings

import "errors"

var (
	ErrValueOutOfRange = errors.New("rating must be between 1 and 5")
	// ErrKittenNotFound is worded differently from kittens.ErrKittenNotFound
	// and maps to its own response code.
	ErrKittenNotFound  = errors.New("no such kitten")
	ErrRatingNotFound  = errors.New("rating not found")
	ErrDuplicateRating = errors.New("rating already exists for kitten and user")
	ErrRatingConflict  = errors.New("concurrent rating update, retry")
)
