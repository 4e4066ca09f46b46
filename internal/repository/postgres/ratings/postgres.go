package ratings

import (
	"context"
	"errors"

	"kittens-api/internal/db"
	kittensdomain "kittens-api/internal/domain/kittens"
	domain "kittens-api/internal/domain/ratings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(domain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) KittenExists(ctx context.Context, kittenID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&kittensdomain.Kitten{}).Where("id = ?", kittenID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, kittenID, userID int64) (*domain.Rating, error) {
	var rating domain.Rating
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("kitten_id = ? AND user_id = ?", kittenID, userID).
		First(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *PostgresRepository) Create(ctx context.Context, rating *domain.Rating) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(rating).Error; err != nil {
		switch {
		case db.IsUniqueViolation(err):
			return domain.ErrDuplicateRating
		case db.IsForeignKeyViolation(err):
			// the kitten was deleted after KittenExists saw it
			return domain.ErrKittenNotFound
		}
		return err
	}
	return nil
}

func (r *PostgresRepository) UpdateValue(ctx context.Context, ratingID int64, value int) error {
	result := r.db.WithContext(ctx).Model(&domain.Rating{}).Where("id = ?", ratingID).Update("rating", value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRatingNotFound
	}
	return nil
}
