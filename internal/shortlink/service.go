// Package shortlink 短链接的创建、编辑、删除、解析与列表
package shortlink

import (
	"context"
	"errors"
	"strings"

	"shortlink-manager/internal/auth"
	"shortlink-manager/internal/model"
	"shortlink-manager/internal/store"

	"go.uber.org/zap"
)

// LinkWriter 变更链接所需的存储操作
type LinkWriter interface {
	Insert(ctx context.Context, link *model.Link) error
	Update(ctx context.Context, id uint, userID string, fields store.LinkFields) (*model.Link, error)
	Delete(ctx context.Context, id uint, userID string) (bool, error)
}

// CreateInput 创建请求
type CreateInput struct {
	URL       string `json:"url" example:"https://example.com"`
	ShortCode string `json:"shortCode" example:"abc123"`
}

// EditInput 编辑请求，ID 为 0 表示缺失或无效
type EditInput struct {
	ID        uint   `json:"id"`
	URL       string `json:"url"`
	ShortCode string `json:"shortCode"`
}

// Service 链接变更的唯一入口
// 顺序：认证 -> 校验 -> 带归属条件的写入；返回的错误总是 *Error
type Service struct {
	links  LinkWriter
	logger *zap.SugaredLogger
}

func NewService(links LinkWriter, logger *zap.SugaredLogger) *Service {
	return &Service{links: links, logger: logger.Named("shortlink")}
}

// Create 为当前用户创建链接
func (s *Service) Create(ctx context.Context, in CreateInput) (*model.Link, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil, unauthorized()
	}

	input := normalize(in.URL, in.ShortCode)
	if verr := validateLink(input); verr != nil {
		return nil, verr
	}

	link := &model.Link{UserID: userID, ShortCode: input.ShortCode, URL: input.URL}
	if err := s.links.Insert(ctx, link); err != nil {
		return nil, s.storeError("create", userID, err)
	}

	s.logger.Infow("链接已创建", "user_id", userID, "link_id", link.ID, "short_code", link.ShortCode)
	return link, nil
}

// Edit 修改当前用户拥有的链接
func (s *Service) Edit(ctx context.Context, in EditInput) (*model.Link, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil, unauthorized()
	}

	input := normalize(in.URL, in.ShortCode)
	if verr := validateLink(input); verr != nil {
		return nil, verr
	}
	if in.ID == 0 {
		return nil, invalidID()
	}

	link, err := s.links.Update(ctx, in.ID, userID, store.LinkFields{URL: input.URL, ShortCode: input.ShortCode})
	if err != nil {
		return nil, s.storeError("edit", userID, err)
	}

	s.logger.Infow("链接已更新", "user_id", userID, "link_id", link.ID, "short_code", link.ShortCode)
	return link, nil
}

// Delete 删除当前用户拥有的链接
func (s *Service) Delete(ctx context.Context, id uint) error {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return unauthorized()
	}
	if id == 0 {
		return invalidID()
	}

	removed, err := s.links.Delete(ctx, id, userID)
	if err != nil {
		return s.storeError("delete", userID, err)
	}
	if !removed {
		return s.storeError("delete", userID, store.ErrNotFound)
	}

	s.logger.Infow("链接已删除", "user_id", userID, "link_id", id)
	return nil
}

// storeError 存储层错误转换为 *Error
// 不存在与不属于当前用户不做区分，日志中也只记录类型
func (s *Service) storeError(op, userID string, err error) *Error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.logger.Debugw("链接操作被拒绝", "op", op, "user_id", userID, "kind", KindNotFoundOrNotOwned)
		return notFoundOrNotOwned()
	case errors.Is(err, store.ErrShortCodeTaken):
		s.logger.Debugw("短码已被占用", "op", op, "user_id", userID)
		return shortCodeTaken(err)
	default:
		s.logger.Errorw("链接存储失败", "op", op, "user_id", userID, "error", err)
		return internal(err)
	}
}

func normalize(url, shortCode string) linkInput {
	return linkInput{URL: strings.TrimSpace(url), ShortCode: strings.TrimSpace(shortCode)}
}
