// Package store 持久化层，基于 gorm 的链接与账户存储
package store

import (
	"errors"

	"shortlink-manager/internal/model"

	"gorm.io/gorm"
)

var (
	// ErrNotFound 记录不存在，或不属于指定用户
	ErrNotFound = errors.New("record not found")
	// ErrShortCodeTaken 违反 short_code 唯一约束
	ErrShortCodeTaken = errors.New("short code already exists")
	// ErrUsernameTaken 违反 username 唯一约束
	ErrUsernameTaken = errors.New("username already exists")
)

// Migrate 自动迁移所有表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.User{}, &model.Link{})
}
