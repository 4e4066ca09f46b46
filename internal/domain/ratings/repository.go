package ratings

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	KittenExists(ctx context.Context, kittenID int64) (bool, error)
	// GetForUpdate returns ErrRatingNotFound when the pair has no rating.
	GetForUpdate(ctx context.Context, kittenID, userID int64) (*Rating, error)
	// Create returns ErrDuplicateRating when the pair already has a rating.
	Create(ctx context.Context, rating *Rating) error
	UpdateValue(ctx context.Context, ratingID int64, value int) error
}
