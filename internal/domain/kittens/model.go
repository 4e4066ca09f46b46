package kittens

import (
	"kittens-api/internal/domain/breeds"
	"kittens-api/internal/domain/user"
)

const (
	maxNameLength  = 100
	maxColorLength = 100
)

// Kitten is owned by exactly one user. Deleting the breed or the owner
// deletes the kitten.
type Kitten struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Color       string `gorm:"size:100;not null"`
	AgeInMonths int    `gorm:"not null;check:age_in_months >= 0"`
	Description string `gorm:"type:text;not null"`
	BreedID     int64  `gorm:"not null;index"`
	OwnerID     int64  `gorm:"not null;index"`

	Breed *breeds.Breed `gorm:"foreignKey:BreedID;constraint:OnDelete:CASCADE"`
	Owner *user.User    `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// Fields carries kitten attributes supplied by a caller. A nil field was
// not supplied. The owner is deliberately absent.
type Fields struct {
	Name        *string
	Color       *string
	AgeInMonths *int
	Description *string
	BreedID     *int64
}
