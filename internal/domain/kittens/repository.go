package kittens

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	List(ctx context.Context) ([]Kitten, error)
	ListByBreed(ctx context.Context, breedID int64) ([]Kitten, error)
	GetByID(ctx context.Context, id int64) (*Kitten, error)
	// GetOwned returns ErrKittenNotFound both for a missing kitten and for
	// one owned by someone else.
	GetOwned(ctx context.Context, id, ownerID int64) (*Kitten, error)
	BreedExists(ctx context.Context, breedID int64) (bool, error)
	Create(ctx context.Context, kitten *Kitten) error
	Update(ctx context.Context, kitten *Kitten) error
	DeleteOwned(ctx context.Context, id, ownerID int64) error
}
