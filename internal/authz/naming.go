package authz

import (
	"fmt"
	"strings"
)

const (
	apiPrefix  = "/api"
	rolePrefix = "role:"
	// roleRegistry 所有角色都挂在该虚拟节点下，用于列出没有策略的空角色
	roleRegistry = "role:__registry__"
)

// SubjectForAdmin 管理员主体标识
func SubjectForAdmin(adminID uint) string {
	return fmt.Sprintf("admin:%d", adminID)
}

// NormalizeRole 角色名统一为 role:<name>，空白替换为下划线
func NormalizeRole(role string) (string, error) {
	name := strings.TrimPrefix(strings.TrimSpace(role), rolePrefix)
	name = strings.Join(strings.Fields(name), "_")
	if name == "" {
		return "", fmt.Errorf("%w: role is required", ErrRoleInvalid)
	}
	normalized := rolePrefix + name
	if normalized == roleRegistry {
		return "", fmt.Errorf("%w: reserved role", ErrRoleInvalid)
	}
	return normalized, nil
}

func isRoleName(value string) bool {
	return strings.HasPrefix(value, rolePrefix) && value != roleRegistry
}

// NormalizeObject 资源路径去掉 /api 前缀，保证以 / 开头
func NormalizeObject(object string) string {
	normalized := strings.TrimSpace(object)
	if !strings.HasPrefix(normalized, "/") {
		normalized = "/" + normalized
	}
	switch {
	case normalized == apiPrefix:
		return "/"
	case strings.HasPrefix(normalized, apiPrefix+"/"):
		return strings.TrimPrefix(normalized, apiPrefix)
	}
	return normalized
}

// NormalizeAction HTTP 方法大写，* 表示全部
func NormalizeAction(action string) string {
	return strings.ToUpper(strings.TrimSpace(action))
}
