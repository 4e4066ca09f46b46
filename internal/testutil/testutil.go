package testutil

import (
	"context"
	"testing"

	"kittens-api/internal/auth"
	"kittens-api/internal/db"
	"kittens-api/internal/domain/breeds"
	"kittens-api/internal/domain/kittens"
	"kittens-api/internal/domain/ratings"
	"kittens-api/internal/domain/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenInMemoryDB opens a private in-memory SQLite database with foreign
// keys enforced and the full schema created. A single connection is kept
// so the database lives as long as the handle.
func OpenInMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), db.Options())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("test db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := gormDB.AutoMigrate(&user.User{}, &breeds.Breed{}, &kittens.Kitten{}, &ratings.Rating{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return gormDB
}

// CreateUser stores a user with a placeholder hash and returns it.
func CreateUser(t *testing.T, gormDB *gorm.DB, username string) *user.User {
	t.Helper()
	created := user.User{Username: username, PasswordHash: "x"}
	if err := gormDB.WithContext(context.Background()).Create(&created).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return &created
}

func CreateBreed(t *testing.T, gormDB *gorm.DB, name string) *breeds.Breed {
	t.Helper()
	created := breeds.Breed{Name: name}
	if err := gormDB.WithContext(context.Background()).Create(&created).Error; err != nil {
		t.Fatalf("create breed %s: %v", name, err)
	}
	return &created
}

func CreateKitten(t *testing.T, gormDB *gorm.DB, name string, breedID, ownerID int64) *kittens.Kitten {
	t.Helper()
	created := kittens.Kitten{
		Name:        name,
		Color:       "grey",
		AgeInMonths: 2,
		Description: "test kitten",
		BreedID:     breedID,
		OwnerID:     ownerID,
	}
	if err := gormDB.WithContext(context.Background()).Omit("Breed", "Owner").Create(&created).Error; err != nil {
		t.Fatalf("create kitten %s: %v", name, err)
	}
	return &created
}

// AccessToken issues a bearer token for u using tokens.
func AccessToken(t *testing.T, tokens *auth.Tokens, u *user.User) string {
	t.Helper()
	pair, err := tokens.IssuePair(auth.Identity{UserID: u.ID, Username: u.Username})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return pair.Access
}
