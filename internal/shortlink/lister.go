package shortlink

import (
	"context"

	"shortlink-manager/internal/model"
)

// LinkLister 按用户列出链接
type LinkLister interface {
	ListByUser(ctx context.Context, userID string) ([]model.Link, error)
}

type Lister struct {
	links LinkLister
}

func NewLister(links LinkLister) *Lister {
	return &Lister{links: links}
}

// List 返回用户的链接，最近修改的在前；没有链接时返回空切片
func (l *Lister) List(ctx context.Context, userID string) ([]model.Link, error) {
	if userID == "" {
		return nil, unauthorized()
	}
	links, err := l.links.ListByUser(ctx, userID)
	if err != nil {
		return nil, internal(err)
	}
	if links == nil {
		links = []model.Link{}
	}
	return links, nil
}
