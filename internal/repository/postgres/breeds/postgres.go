package breeds

import (
	"context"

	domain "kittens-api/internal/domain/breeds"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.Breed, error) {
	var items []domain.Breed
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&domain.Breed{}).Order("id asc").Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (r *PostgresRepository) Create(ctx context.Context, breed *domain.Breed) error {
	return r.db.WithContext(ctx).Create(breed).Error
}
