package shared

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/lumie-registry/internal/http/response"
	"github.com/lumie-registry/internal/logger"
)

// MappedError 哨兵错误到响应码的映射规则
type MappedError struct {
	Target error
	Code   int
	Msg    string
}

// RespondError 按映射表解析错误并输出响应；未命中规则按服务器错误处理
func RespondError(c *gin.Context, err error, rules []MappedError) {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		response.Fail(c, appErr.Code, appErr.Msg)
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.Target) {
			response.Fail(c, rule.Code, rule.Msg)
			return
		}
	}
	logger.Errorw("unhandled request error", "path", c.FullPath(), "error", err)
	response.Fail(c, response.CodeServerError, "internal error")
}
