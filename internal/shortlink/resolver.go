package shortlink

import (
	"context"
	"errors"

	"shortlink-manager/internal/model"
	"shortlink-manager/internal/store"
)

// LinkFinder 按短码查找链接
type LinkFinder interface {
	FindByShortCode(ctx context.Context, code string) (*model.Link, error)
}

// Resolution 解析结果，Found 为 false 时表示短码不存在
type Resolution struct {
	Found bool
	URL   string
}

// Resolver 公开的短码解析，不做归属校验
type Resolver struct {
	links LinkFinder
}

func NewResolver(links LinkFinder) *Resolver {
	return &Resolver{links: links}
}

// Resolve 查找短码；不存在是正常结果，只有存储故障才返回错误
func (r *Resolver) Resolve(ctx context.Context, code string) (Resolution, error) {
	if !ValidShortCode(code) {
		return Resolution{}, nil
	}

	link, err := r.links.FindByShortCode(ctx, code)
	switch {
	case err == nil:
		return Resolution{Found: true, URL: link.URL}, nil
	case errors.Is(err, store.ErrNotFound):
		return Resolution{}, nil
	default:
		return Resolution{}, internal(err)
	}
}
