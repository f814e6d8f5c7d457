package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"portfolio-api/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if err != nil && isDupKey(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *UserRepo) FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	id := strings.ToLower(strings.TrimSpace(identifier))
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", id, id).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// isDupKey avoids depending on gorm.ErrDuplicatedKey, which varies per driver.
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
