package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "shortlink-manager/docs"
	"shortlink-manager/internal/auth"
	"shortlink-manager/internal/handler"
	"shortlink-manager/internal/middleware"
	"shortlink-manager/internal/shortcode"
	"shortlink-manager/internal/shortlink"
	"shortlink-manager/internal/store"
	"shortlink-manager/pkg/database"
	"shortlink-manager/pkg/jwt"
	"shortlink-manager/pkg/logger"
	"shortlink-manager/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func runServe(*cobra.Command, []string) error {
	cfg, db, err := bootstrap()
	if err != nil {
		return err
	}
	sugaredLogger := logger.Sugar
	defer func() {
		if err := logger.Logger.Sync(); err != nil {
			fmt.Println("日志同步失败:", err)
		}
	}()
	defer func() {
		if err := database.Close(db); err != nil {
			sugaredLogger.Errorf("关闭数据库连接失败: %v", err)
		}
	}()
	sugaredLogger.Infof("✅ 数据库连接成功 (%s)", cfg.Database.Driver)

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}
	sugaredLogger.Info("✅ 数据库迁移成功")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redis.NewClient(ctx, &redis.Config{
		Host: cfg.Cache.Host, Port: cfg.Cache.Port, Password: cfg.Cache.Password, DB: cfg.Cache.DB,
	})
	if err != nil {
		// 没有 Redis 时注销只在客户端生效
		sugaredLogger.Warnf("缓存连接失败，令牌吊销不可用: %v", err)
	} else if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				sugaredLogger.Errorf("关闭 Redis 连接失败: %v", err)
			}
		}()
		sugaredLogger.Info("✅ 缓存连接成功")
	}
	denylist := auth.NewDenylist(rdb)

	tokenManager := jwt.NewManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.ExpirationHours)
	authenticator := auth.NewBearerAuthenticator(tokenManager, denylist, sugaredLogger)
	sugaredLogger.Info("✅ 认证管理器初始化成功")

	links := store.NewLinkStore(db)
	users := store.NewUserStore(db)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.GinZapLogger(logger.Logger))
	router.Use(middleware.GinZapRecovery(logger.Logger, true))
	router.Use(middleware.CORS(cfg.CORS.AllowOrigins))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handler.RegisterRoutes(router, handler.Handlers{
		Links: handler.NewLinkHandler(
			shortlink.NewService(links, sugaredLogger),
			shortlink.NewResolver(links),
			shortlink.NewLister(links),
			shortcode.NewGenerator(links),
			sugaredLogger,
		),
		Auth:   handler.NewAuthHandler(users, tokenManager, denylist, sugaredLogger),
		Health: handler.HealthCheck(func() error { return database.Ping(db) }),
	}, middleware.Authenticate(authenticator))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		sugaredLogger.Infof("🚀 服务启动成功, 访问 http://localhost:%d", cfg.Server.Port)
		sugaredLogger.Infof("📚 Swagger 文档地址: http://localhost:%d/swagger/index.html", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("服务启动失败: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	sugaredLogger.Info("收到退出信号，正在关闭服务...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("服务关闭失败: %w", err)
	}
	sugaredLogger.Info("服务已关闭")
	return nil
}
