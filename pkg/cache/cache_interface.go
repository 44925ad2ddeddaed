package cache

import (
	"context"
	"time"
)

// Cache định nghĩa contract cho cache layer (Redis hoặc in-memory khi test)
type Cache interface {
	// Get lấy data và unmarshal vào dest.
	// found = false: cache miss, dest không bị thay đổi
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set lưu data với TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
	Ping(ctx context.Context) error
}
