package breeds

import "context"

type Repository interface {
	List(ctx context.Context) ([]Breed, error)
	ListNames(ctx context.Context) ([]string, error)
	Create(ctx context.Context, breed *Breed) error
}
