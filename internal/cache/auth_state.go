package cache

import (
	"context"
	"time"

	"github.com/art-exhibition/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// AdminAuthState 管理员令牌校验所需的最小快照，避免每次请求查库
type AdminAuthState struct {
	AdminID      uint   `json:"admin_id"`
	TokenVersion uint64 `json:"token_version"`
	// InvalidBefore Unix 秒，早于该时间签发的令牌失效，0 表示不限制
	InvalidBefore int64 `json:"invalid_before"`
	IsSuper       bool  `json:"is_super"`
}

// Accepts 令牌版本一致且签发时间不早于失效线
func (s *AdminAuthState) Accepts(tokenVersion uint64, issuedAt time.Time) bool {
	if s == nil || s.TokenVersion != tokenVersion {
		return false
	}
	if s.InvalidBefore <= 0 {
		return true
	}
	return !issuedAt.IsZero() && issuedAt.Unix() >= s.InvalidBefore
}

// BuildAdminAuthState 从管理员模型构建快照
func BuildAdminAuthState(admin *models.Admin) *AdminAuthState {
	if admin == nil {
		return nil
	}
	state := &AdminAuthState{
		AdminID:      admin.ID,
		TokenVersion: admin.TokenVersion,
		IsSuper:      admin.IsSuper,
	}
	if admin.TokenInvalidBefore != nil {
		state.InvalidBefore = admin.TokenInvalidBefore.Unix()
	}
	return state
}

// GetAdminAuthState 读取快照，未命中或 Redis 未启用时 hit=false
func GetAdminAuthState(ctx context.Context, adminID uint) (*AdminAuthState, bool, error) {
	if adminID == 0 {
		return nil, false, nil
	}
	var state AdminAuthState
	hit, err := GetJSON(ctx, AdminAuthStateKey(adminID), &state)
	if err != nil || !hit {
		return nil, false, err
	}
	return &state, true, nil
}

// SetAdminAuthState 写入快照
func SetAdminAuthState(ctx context.Context, state *AdminAuthState) error {
	if state == nil || state.AdminID == 0 {
		return nil
	}
	return SetJSON(ctx, AdminAuthStateKey(state.AdminID), state, authStateCacheTTL)
}
