// Package testutils 测试共用的数据库与身份辅助函数
package testutils

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"shortlink-manager/internal/auth"
	"shortlink-manager/internal/store"
	"shortlink-manager/pkg/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewSQLite 创建独立的内存 SQLite 数据库并完成迁移，测试结束时自动关闭
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(database.Options{
		Driver:       "sqlite",
		Path:         fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns: 1,
		LogLevel:     gormlogger.Silent,
	})
	if err != nil {
		t.Fatalf("无法连接到内存数据库: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

// Clock 每次调用前进一步的确定性时钟
type Clock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

func NewClock(start time.Time, step time.Duration) *Clock {
	return &Clock{current: start, step: step}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.current
	c.current = c.current.Add(c.step)
	return now
}

// AsUser 返回携带用户身份的 context
func AsUser(userID string) context.Context {
	return auth.WithUserID(context.Background(), userID)
}
