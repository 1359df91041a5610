package shared

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ContextKeyUserID 登录中间件写入的用户 ID 键
const ContextKeyUserID = "auth_user_id"

// CurrentUserID 从上下文取登录用户 ID
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok && userID > 0
}

// ParamUint 解析路径参数为 uint，非法返回 0
func ParamUint(c *gin.Context, name string) uint {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(value)
}

// QueryInt 解析查询参数为 int，缺省或非法返回 fallback
func QueryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
