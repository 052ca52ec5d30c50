package main

import (
	"fmt"

	"shortlink-manager/internal/store"
	"shortlink-manager/pkg/database"
	"shortlink-manager/pkg/logger"

	"github.com/spf13/cobra"
)

func runMigrate(*cobra.Command, []string) error {
	_, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() {
		_ = database.Close(db)
		_ = logger.Logger.Sync()
	}()

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}
	logger.Sugar.Info("✅ 数据库迁移成功")
	return nil
}
