package kittens

import (
	"context"
	"errors"

	"kittens-api/internal/db"
	breedsdomain "kittens-api/internal/domain/breeds"
	domain "kittens-api/internal/domain/kittens"

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

func (r *PostgresRepository) List(ctx context.Context) ([]domain.Kitten, error) {
	var items []domain.Kitten
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) ListByBreed(ctx context.Context, breedID int64) ([]domain.Kitten, error) {
	var items []domain.Kitten
	if err := r.db.WithContext(ctx).
		Where("breed_id = ?", breedID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Kitten, error) {
	var kitten domain.Kitten
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&kitten).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrKittenNotFound
		}
		return nil, err
	}
	return &kitten, nil
}

func (r *PostgresRepository) GetOwned(ctx context.Context, id, ownerID int64) (*domain.Kitten, error) {
	var kitten domain.Kitten
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&kitten).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrKittenNotFound
		}
		return nil, err
	}
	return &kitten, nil
}

func (r *PostgresRepository) BreedExists(ctx context.Context, breedID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&breedsdomain.Breed{}).Where("id = ?", breedID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) Create(ctx context.Context, kitten *domain.Kitten) error {
	return translateWriteError(r.db.WithContext(ctx).Omit(clause.Associations).Create(kitten).Error)
}

func (r *PostgresRepository) Update(ctx context.Context, kitten *domain.Kitten) error {
	return translateWriteError(r.db.WithContext(ctx).
		Model(&domain.Kitten{}).
		Where("id = ? AND owner_id = ?", kitten.ID, kitten.OwnerID).
		Updates(map[string]interface{}{
			"name":          kitten.Name,
			"color":         kitten.Color,
			"age_in_months": kitten.AgeInMonths,
			"description":   kitten.Description,
			"breed_id":      kitten.BreedID,
		}).Error)
}

// translateWriteError maps a foreign key failure to ErrBreedNotFound. The
// owner is always the authenticated caller, so the breed is the reference
// that can disappear underneath a write.
func translateWriteError(err error) error {
	if db.IsForeignKeyViolation(err) {
		return domain.ErrBreedNotFound
	}
	return err
}

func (r *PostgresRepository) DeleteOwned(ctx context.Context, id, ownerID int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Kitten{}, "id = ? AND owner_id = ?", id, ownerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrKittenNotFound
	}
	return nil
}
