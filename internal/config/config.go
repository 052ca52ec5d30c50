package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// 主配置结构
type Config struct {
	App      App    `yaml:"app"`
	Server   Server `yaml:"server"`
	Database DB     `yaml:"database"`
	Cache    Cache  `yaml:"cache"`
	Auth     Auth   `yaml:"auth"`
	Log      Log    `yaml:"log"`
	CORS     CORS   `yaml:"cors"`
}

// 应用配置
type App struct {
	Name    string `yaml:"name" env:"SHORTLINK_APP_NAME"`
	Mode    string `yaml:"mode" env:"SHORTLINK_APP_MODE"`
	Version string `yaml:"version"`
}

// 服务器配置
type Server struct {
	Port            int `yaml:"port" env:"SHORTLINK_SERVER_PORT"`
	ReadTimeout     int `yaml:"read_timeout"`
	WriteTimeout    int `yaml:"write_timeout"`
	ShutdownTimeout int `yaml:"shutdown_timeout"`
}

// 数据库配置，Driver 取值 mysql / postgres / sqlite
type DB struct {
	Driver   string `yaml:"driver" env:"SHORTLINK_DB_DRIVER"`
	Host     string `yaml:"host" env:"SHORTLINK_DB_HOST"`
	Port     int    `yaml:"port" env:"SHORTLINK_DB_PORT"`
	User     string `yaml:"user" env:"SHORTLINK_DB_USER"`
	Password string `yaml:"password" env:"SHORTLINK_DB_PASSWORD"`
	Name     string `yaml:"name" env:"SHORTLINK_DB_NAME"`
	Charset  string `yaml:"charset"`
	SSLMode  string `yaml:"ssl_mode" env:"SHORTLINK_DB_SSLMODE"`
	// sqlite 使用的文件路径
	Path         string `yaml:"path" env:"SHORTLINK_DB_PATH"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

// 缓存配置（Redis），仅用于令牌吊销
type Cache struct {
	Host     string `yaml:"host" env:"SHORTLINK_REDIS_HOST"`
	Port     int    `yaml:"port" env:"SHORTLINK_REDIS_PORT"`
	Password string `yaml:"password" env:"SHORTLINK_REDIS_PASSWORD"`
	DB       int    `yaml:"db"`
}

// 认证配置
type Auth struct {
	Secret          string `yaml:"secret" env:"SHORTLINK_AUTH_SECRET"`
	Issuer          string `yaml:"issuer"`
	ExpirationHours int    `yaml:"expiration_hours"`
}

// 日志配置
type Log struct {
	Level      string `yaml:"level" env:"SHORTLINK_LOG_LEVEL"`
	File       string `yaml:"file" env:"SHORTLINK_LOG_FILE"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// 跨域配置
type CORS struct {
	AllowOrigins []string `yaml:"allow_origins" env:"SHORTLINK_CORS_ORIGINS" envSeparator:","`
}

const devSecret = "change-me-in-production"

// Default 返回带有默认值的配置
func Default() *Config {
	return &Config{
		App:    App{Name: "shortlink-manager", Mode: "development", Version: "1.0.0"},
		Server: Server{Port: 8080, ReadTimeout: 10, WriteTimeout: 10, ShutdownTimeout: 5},
		Database: DB{
			Driver:       "sqlite",
			Port:         3306,
			Charset:      "utf8mb4",
			SSLMode:      "disable",
			Path:         "shortlink.db",
			MaxOpenConns: 20,
			MaxIdleConns: 5,
		},
		Cache: Cache{Port: 6379},
		Auth:  Auth{Secret: devSecret, Issuer: "shortlink-manager", ExpirationHours: 24},
		Log:   Log{Level: "info", File: "./logs/app.log", MaxSize: 10, MaxBackups: 5, MaxAge: 30},
	}
}

// Load 加载配置：默认值 -> yaml 文件 -> .env -> 环境变量
// 配置文件不存在时仅使用默认值和环境变量
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("加载 .env 失败: %w", err)
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("解析环境变量失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("不支持的数据库驱动: %q", c.Database.Driver)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("无效的端口: %d", c.Server.Port)
	}
	if c.Auth.Secret == "" {
		return errors.New("auth.secret 不能为空")
	}
	if c.IsProduction() && c.Auth.Secret == devSecret {
		return errors.New("生产环境必须设置 auth.secret")
	}
	if c.Auth.ExpirationHours <= 0 {
		return fmt.Errorf("无效的令牌有效期: %d", c.Auth.ExpirationHours)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Mode == "production"
}
