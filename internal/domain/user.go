package domain

import (
	"context"
	"time"
)

// DefaultAvatar is used when an account is created without an image.
const DefaultAvatar = "https://static.productionready.io/images/smiley-cyrus.jpg"

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:32;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Role         Role      `gorm:"size:16;not null;default:user" json:"role"`
	Image        string    `gorm:"size:255" json:"image"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	// Create fails with ErrDuplicate when username or email is already taken.
	Create(ctx context.Context, u *User) error
	// FindByIdentifier looks a user up by username or email, case-insensitively.
	FindByIdentifier(ctx context.Context, identifier string) (*User, error)
}
