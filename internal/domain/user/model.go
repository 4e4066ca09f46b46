package user

import "time"

const (
	MaxUsernameLength = 150
	// bcrypt only hashes the first 72 bytes and rejects anything longer.
	MaxPasswordBytes = 72
)

type User struct {
	ID           int64     `gorm:"primaryKey"`
	Username     string    `gorm:"size:150;not null;uniqueIndex:users_username_key"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}
