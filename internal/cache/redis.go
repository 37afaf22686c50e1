package cache

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/art-exhibition/internal/config"
	"github.com/art-exhibition/internal/constants"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 3 * time.Second

// client 为 nil 表示未启用，此时读写均为空操作
var (
	client *redis.Client
	prefix = constants.RedisPrefixDefault
)

// ErrDisabled Ping 在未启用 Redis 时返回
var ErrDisabled = errors.New("redis disabled")

// InitRedis 连接并探活；cfg 未启用时保持禁用状态
func InitRedis(ctx context.Context, cfg *config.RedisConfig) error {
	if cfg == nil || !cfg.Enabled {
		client = nil
		return nil
	}
	if p := strings.TrimSpace(cfg.Prefix); p != "" {
		prefix = p
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}

	candidate := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := candidate.Ping(pingCtx).Err(); err != nil {
		_ = candidate.Close()
		return errors.Join(errors.New("redis ping failed"), err)
	}
	client = candidate
	return nil
}

// Close 断开连接并回到禁用状态
func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}

func Enabled() bool { return client != nil }

// Client 未启用时返回 nil
func Client() *redis.Client { return client }

// Ping 健康检查用
func Ping(ctx context.Context) error {
	if client == nil {
		return ErrDisabled
	}
	return client.Ping(ctx).Err()
}

// GetJSON 命中时反序列化到 dest 并返回 true
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if client == nil {
		return false, nil
	}
	raw, err := client.Get(ctx, BuildKey(key)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON ttl 为 0 表示不过期
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, BuildKey(key), payload, ttl).Err()
}

func Del(ctx context.Context, key string) error {
	if client == nil {
		return nil
	}
	return client.Del(ctx, BuildKey(key)).Err()
}

// BuildKey 拼接全局前缀，直接使用 Client 的调用方也应经由此处取 key
func BuildKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return prefix
	}
	return prefix + ":" + key
}
