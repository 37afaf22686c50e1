package repository

import (
	"context"
	"sync"
	"time"

	"github.com/art-exhibition/internal/cache"
	"github.com/art-exhibition/internal/models"
)

// CartRepository 会话购物车存储接口
type CartRepository interface {
	Get(ctx context.Context, cartID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, cartID string) error
}

// NewCartRepository 根据 Redis 是否可用选择存储实现
func NewCartRepository(ttl time.Duration) CartRepository {
	if cache.Enabled() {
		return NewRedisCartRepository(ttl)
	}
	return NewMemoryCartRepository(ttl)
}

// RedisCartRepository Redis 实现
type RedisCartRepository struct {
	ttl time.Duration
}

// NewRedisCartRepository 创建 Redis 购物车仓库
func NewRedisCartRepository(ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{ttl: ttl}
}

// Get 获取购物车，不存在返回 nil
func (r *RedisCartRepository) Get(ctx context.Context, cartID string) (*models.Cart, error) {
	var cart models.Cart
	hit, err := cache.GetJSON(ctx, cache.CartKey(cartID), &cart)
	if err != nil {
		return nil, err
	}
	if !hit {
		return nil, nil
	}
	return &cart, nil
}

// Save 保存购物车并刷新过期时间
func (r *RedisCartRepository) Save(ctx context.Context, cart *models.Cart) error {
	if cart == nil || cart.ID == "" {
		return nil
	}
	return cache.SetJSON(ctx, cache.CartKey(cart.ID), cart, r.ttl)
}

// Delete 删除购物车
func (r *RedisCartRepository) Delete(ctx context.Context, cartID string) error {
	return cache.Del(ctx, cache.CartKey(cartID))
}

type memoryCartEntry struct {
	cart      models.Cart
	expiresAt time.Time
}

// MemoryCartRepository 进程内实现，Redis 未启用时使用
type MemoryCartRepository struct {
	mu    sync.Mutex
	ttl   time.Duration
	carts map[string]memoryCartEntry
	now   func() time.Time
}

// NewMemoryCartRepository 创建内存购物车仓库
func NewMemoryCartRepository(ttl time.Duration) *MemoryCartRepository {
	return &MemoryCartRepository{
		ttl:   ttl,
		carts: make(map[string]memoryCartEntry),
		now:   time.Now,
	}
}

// Get 获取购物车副本
func (r *MemoryCartRepository) Get(_ context.Context, cartID string) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.carts[cartID]
	if !ok {
		return nil, nil
	}
	if r.ttl > 0 && r.now().After(entry.expiresAt) {
		delete(r.carts, cartID)
		return nil, nil
	}
	cart := cloneCart(entry.cart)
	return &cart, nil
}

// Save 保存购物车副本
func (r *MemoryCartRepository) Save(_ context.Context, cart *models.Cart) error {
	if cart == nil || cart.ID == "" {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.ID] = memoryCartEntry{
		cart:      cloneCart(*cart),
		expiresAt: r.now().Add(r.ttl),
	}
	return nil
}

// Delete 删除购物车
func (r *MemoryCartRepository) Delete(_ context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, cartID)
	return nil
}

func cloneCart(src models.Cart) models.Cart {
	dst := src
	dst.Items = make([]models.CartItem, len(src.Items))
	for i, item := range src.Items {
		item.SelectedColors = append([]string(nil), item.SelectedColors...)
		if item.Customization != nil {
			custom := *item.Customization
			custom.SelectedScents = append([]string(nil), custom.SelectedScents...)
			item.Customization = &custom
		}
		dst.Items[i] = item
	}
	return dst
}
