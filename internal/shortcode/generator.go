// Package shortcode 生成尚未被占用的随机短码，供表单预填
package shortcode

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"shortlink-manager/internal/model"
	"shortlink-manager/internal/shortlink"
	"shortlink-manager/internal/store"
)

const (
	// Charset 包含用于生成短码的所有字符
	Charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// CodeLength 是生成的短码的长度
	CodeLength = 7
	// MaxAttempts 单次建议的最大尝试次数
	MaxAttempts = 10
)

var ErrExhausted = errors.New("no available short code found")

// Finder 按短码查找链接
type Finder interface {
	FindByShortCode(ctx context.Context, code string) (*model.Link, error)
}

// Generator 负责生成当前未被占用的短码
// 建议结果不做预留，最终唯一性仍由创建时的唯一约束保证
type Generator struct {
	links  Finder
	length int
}

// NewGenerator 创建一个新的短码生成器实例
func NewGenerator(links Finder) *Generator {
	return &Generator{links: links, length: CodeLength}
}

// Suggest 返回一个当前未被占用的短码
func (g *Generator) Suggest(ctx context.Context) (string, error) {
	for i := 0; i < MaxAttempts; i++ {
		code, err := randomString(g.length)
		if err != nil {
			return "", err
		}
		if !shortlink.ValidShortCode(code) {
			continue
		}

		_, err = g.links.FindByShortCode(ctx, code)
		switch {
		case errors.Is(err, store.ErrNotFound):
			return code, nil
		case err != nil:
			return "", fmt.Errorf("check short code: %w", err)
		}
	}
	return "", ErrExhausted
}

// randomString 使用加密安全的随机数生成器生成一个给定长度的字符串
func randomString(length int) (string, error) {
	b := make([]byte, length)
	for i := range b {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(Charset))))
		if err != nil {
			return "", err
		}
		b[i] = Charset[num.Int64()]
	}
	return string(b), nil
}
