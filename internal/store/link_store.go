package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shortlink-manager/internal/model"

	"gorm.io/gorm"
)

// LinkFields 可修改的链接字段
type LinkFields struct {
	URL       string
	ShortCode string
}

// LinkStore 链接表的读写
// 唯一性由 short_code 唯一索引保证，归属校验与写入在同一条语句中完成
type LinkStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewLinkStore 创建 LinkStore
func NewLinkStore(db *gorm.DB) *LinkStore {
	return &LinkStore{db: db, now: time.Now}
}

// WithClock 替换时间来源
func (s *LinkStore) WithClock(now func() time.Time) *LinkStore {
	s.now = now
	return s
}

// Insert 写入新链接，created_at 与 updated_at 取同一时刻
func (s *LinkStore) Insert(ctx context.Context, link *model.Link) error {
	now := s.now().UTC()
	link.CreatedAt = now
	link.UpdatedAt = now

	if err := s.db.WithContext(ctx).Create(link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrShortCodeTaken
		}
		return fmt.Errorf("insert link: %w", err)
	}
	return nil
}

// FindByShortCode 按短码查找，不做归属校验
func (s *LinkStore) FindByShortCode(ctx context.Context, code string) (*model.Link, error) {
	var link model.Link
	if err := s.db.WithContext(ctx).Where("short_code = ?", code).First(&link).Error; err != nil {
		return nil, notFoundOr(err, "find link by short code")
	}
	return &link, nil
}

// FindByIDAndUser 仅当链接存在且属于 userID 时返回
func (s *LinkStore) FindByIDAndUser(ctx context.Context, id uint, userID string) (*model.Link, error) {
	var link model.Link
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&link).Error; err != nil {
		return nil, notFoundOr(err, "find link by id")
	}
	return &link, nil
}

// Update 修改 id 与 user_id 同时匹配的行并刷新 updated_at
func (s *LinkStore) Update(ctx context.Context, id uint, userID string, fields LinkFields) (*model.Link, error) {
	var updated model.Link
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Link{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(map[string]any{
				"url":        fields.URL,
				"short_code": fields.ShortCode,
				"updated_at": s.now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("id = ? AND user_id = ?", id, userID).First(&updated).Error
	})

	switch {
	case err == nil:
		return &updated, nil
	case errors.Is(err, ErrNotFound):
		return nil, ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return nil, ErrShortCodeTaken
	default:
		return nil, fmt.Errorf("update link: %w", err)
	}
}

// Delete 删除 id 与 user_id 同时匹配的行，返回是否删除了记录
func (s *LinkStore) Delete(ctx context.Context, id uint, userID string) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Link{})
	if res.Error != nil {
		return false, fmt.Errorf("delete link: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ListByUser 按 updated_at 倒序返回用户的全部链接，没有链接时返回空切片
func (s *LinkStore) ListByUser(ctx context.Context, userID string) ([]model.Link, error) {
	links := make([]model.Link, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Order("id DESC").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	return links, nil
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
