// Package auth 请求级身份：认证器、context 传递与令牌吊销
package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"shortlink-manager/pkg/jwt"

	"go.uber.org/zap"
)

// Identity 已认证的调用方
type Identity struct {
	UserID    string
	Username  string
	TokenID   string
	ExpiresAt time.Time
}

// Authenticator 从请求中解析调用方身份，无身份时返回 false
type Authenticator interface {
	Authenticate(r *http.Request) (Identity, bool)
}

type ctxKey struct{}

// WithIdentity 将身份写入 context
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// WithUserID 仅携带用户 ID 的身份
func WithUserID(ctx context.Context, userID string) context.Context {
	return WithIdentity(ctx, Identity{UserID: userID})
}

// IdentityFromContext 读取身份
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	if !ok || id.UserID == "" {
		return Identity{}, false
	}
	return id, true
}

// UserIDFromContext 读取用户 ID
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := IdentityFromContext(ctx)
	return id.UserID, ok
}

// BearerAuthenticator 校验 Authorization: Bearer 令牌
type BearerAuthenticator struct {
	tokens   *jwt.TokenManager
	denylist Denylist
	logger   *zap.SugaredLogger
}

func NewBearerAuthenticator(tokens *jwt.TokenManager, denylist Denylist, logger *zap.SugaredLogger) *BearerAuthenticator {
	return &BearerAuthenticator{tokens: tokens, denylist: denylist, logger: logger.Named("auth")}
}

func (a *BearerAuthenticator) Authenticate(r *http.Request) (Identity, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || scheme != "Bearer" || token == "" {
		return Identity{}, false
	}

	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		a.logger.Debugf("令牌校验失败: %v", err)
		return Identity{}, false
	}

	revoked, err := a.denylist.IsRevoked(r.Context(), claims.ID)
	if err != nil {
		// 吊销列表不可用时拒绝请求
		a.logger.Errorf("查询令牌吊销状态失败: %v", err)
		return Identity{}, false
	}
	if revoked {
		return Identity{}, false
	}

	id := Identity{UserID: claims.UserID, Username: claims.Username, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id, true
}
