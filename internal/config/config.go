package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	JWT     JWTConfig
	SMTP    SMTPConfig
	MinIO   MinIOConfig
	Voucher VoucherConfig
	Worker  WorkerConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret             string
	AccessTokenExpiry  int // minutes
	RefreshTokenExpiry int // hours
}

// SMTPConfig dùng cho gửi email voucher (worker)
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// =====================================================
// VOUCHER / PROMOTION CONFIGURATION
// =====================================================

const (
	PriorityOrderAsc  = "asc"  // priority nhỏ thắng
	PriorityOrderDesc = "desc" // priority lớn thắng
)

type VoucherConfig struct {
	PromotionPriorityOrder string
	Timezone               string
	ExpireCron             string
	RankingValidateCron    string
	RankingCacheTTL        time.Duration
	ExportPrefix           string
}

// Location trả về timezone dùng để xác định "hôm nay"
func (v VoucherConfig) Location() *time.Location {
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type WorkerConfig struct {
	Concurrency int
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Ecommerce API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:             getEnv("JWT_SECRET", defaultJWTSecret),
			AccessTokenExpiry:  getEnvInt("JWT_ACCESS_EXPIRY", 60),
			RefreshTokenExpiry: getEnvInt("JWT_REFRESH_EXPIRY", 72),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     getEnvInt("SMTP_PORT", 1025),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "noreply@ecommerce.local"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "ecommerce"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Voucher: VoucherConfig{
			PromotionPriorityOrder: strings.ToLower(getEnv("PROMOTION_PRIORITY_ORDER", PriorityOrderAsc)),
			Timezone:               getEnv("APP_TIMEZONE", "Asia/Ho_Chi_Minh"),
			ExpireCron:             getEnv("VOUCHER_EXPIRE_CRON", "5 0 * * *"),
			RankingValidateCron:    getEnv("RANKING_VALIDATE_CRON", "0 * * * *"),
			RankingCacheTTL:        time.Duration(getEnvInt("RANKING_CACHE_TTL_MINUTES", 30)) * time.Minute,
			ExportPrefix:           getEnv("VOUCHER_EXPORT_PREFIX", "exports/vouchers"),
		},
		Worker: WorkerConfig{
			Concurrency: getEnvInt("WORKER_CONCURRENCY", 10),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

const defaultJWTSecret = "your-secret-key-change-in-production"

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.Voucher.PromotionPriorityOrder != PriorityOrderAsc && c.Voucher.PromotionPriorityOrder != PriorityOrderDesc {
		return fmt.Errorf("PROMOTION_PRIORITY_ORDER must be %q or %q, got %q",
			PriorityOrderAsc, PriorityOrderDesc, c.Voucher.PromotionPriorityOrder)
	}

	if _, err := time.LoadLocation(c.Voucher.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.Voucher.Timezone, err)
	}

	// Production environment phải có JWT secret
	if c.App.Environment == "production" {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if os.Getenv("DB_PASSWORD") == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
