package model

import (
	"time"
)

// Link 短链接模型，short_code 全局唯一
type Link struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    string    `gorm:"size:36;not null;index:idx_links_user_updated,priority:1" json:"userId"`
	ShortCode string    `gorm:"size:20;uniqueIndex;not null" json:"shortCode"`
	URL       string    `gorm:"column:url;type:text;not null" json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `gorm:"index:idx_links_user_updated,priority:2" json:"updatedAt"`
}

// TableName 指定表名
func (Link) TableName() string {
	return "links"
}
