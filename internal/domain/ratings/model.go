package ratings

import (
	"kittens-api/internal/domain/kittens"
	"kittens-api/internal/domain/user"
)

const (
	MinValue = 1
	MaxValue = 5
)

type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
)

// Rating is unique per (KittenID, UserID) at the store level.
type Rating struct {
	ID       int64 `gorm:"primaryKey"`
	KittenID int64 `gorm:"not null;uniqueIndex:idx_ratings_kitten_user"`
	UserID   int64 `gorm:"not null;uniqueIndex:idx_ratings_kitten_user"`
	Value    int   `gorm:"column:rating;not null;check:rating_range,rating >= 1 AND rating <= 5"`

	Kitten *kittens.Kitten `gorm:"foreignKey:KittenID;constraint:OnDelete:CASCADE"`
	User   *user.User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type Result struct {
	Outcome Outcome
	Rating  Rating
}
