package ratings

import (
	"context"
	"errors"
	"fmt"
)

const maxRateAttempts = 2

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func ValidateValue(value int) error {
	if value < MinValue || value > MaxValue {
		return ErrValueOutOfRange
	}
	return nil
}

// Rate adds the user's rating for a kitten or overwrites the existing one.
// A create that loses a race against a concurrent first rating is retried
// once and then reports OutcomeUpdated.
func (s *Service) Rate(ctx context.Context, userID, kittenID int64, value int) (Result, error) {
	if err := ValidateValue(value); err != nil {
		return Result{}, err
	}
	if userID <= 0 {
		return Result{}, fmt.Errorf("user id is required")
	}

	for attempt := 1; ; attempt++ {
		result, err := s.rateOnce(ctx, userID, kittenID, value)
		if !errors.Is(err, ErrDuplicateRating) {
			return result, err
		}
		if attempt >= maxRateAttempts {
			return Result{}, fmt.Errorf("%w: %w", ErrRatingConflict, err)
		}
	}
}

func (s *Service) rateOnce(ctx context.Context, userID, kittenID int64, value int) (Result, error) {
	var result Result
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		exists, err := tx.KittenExists(ctx, kittenID)
		if err != nil {
			return fmt.Errorf("check kitten: %w", err)
		}
		if !exists {
			return ErrKittenNotFound
		}

		existing, err := tx.GetForUpdate(ctx, kittenID, userID)
		switch {
		case err == nil:
			if err := tx.UpdateValue(ctx, existing.ID, value); err != nil {
				return fmt.Errorf("update rating: %w", err)
			}
			existing.Value = value
			result = Result{Outcome: OutcomeUpdated, Rating: *existing}
			return nil
		case errors.Is(err, ErrRatingNotFound):
		default:
			return fmt.Errorf("get rating: %w", err)
		}

		rating := Rating{KittenID: kittenID, UserID: userID, Value: value}
		if err := tx.Create(ctx, &rating); err != nil {
			return err
		}
		result = Result{Outcome: OutcomeCreated, Rating: rating}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return result, nil
}
