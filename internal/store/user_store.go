package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shortlink-manager/internal/model"

	"gorm.io/gorm"
)

// UserStore 账户表的读写
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create 创建账户，用户名重复时返回 ErrUsernameTaken
func (s *UserStore) Create(ctx context.Context, user *model.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFoundOr(err, "find user by username")
	}
	return &user, nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFoundOr(err, "find user by id")
	}
	return &user, nil
}

// TouchLastLogin 更新最后登录时间
func (s *UserStore) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	err := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("last_login", at.UTC()).Error
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}
