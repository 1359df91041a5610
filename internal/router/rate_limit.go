package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/lumie-registry/internal/cache"
	"github.com/lumie-registry/internal/config"
	"github.com/lumie-registry/internal/http/response"
	"github.com/lumie-registry/internal/logger"
)

// 固定窗口计数，首次自增时设过期
var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimit 按客户端 IP 对某个场景做固定窗口限流；无 Redis 时直接放行
func RateLimit(scope string, cfg config.RateLimitConfig, redisCache *cache.Cache) gin.HandlerFunc {
	if !cfg.Enable || redisCache == nil {
		return func(c *gin.Context) { c.Next() }
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	window := time.Duration(cfg.WindowMinutes) * time.Minute
	if window <= 0 {
		window = 10 * time.Minute
	}

	return func(c *gin.Context) {
		key := redisCache.Key("ratelimit", scope, c.ClientIP())
		count, err := rateLimitScript.Run(c.Request.Context(), redisCache.Client(),
			[]string{key}, window.Milliseconds()).Int64()
		if err != nil {
			// 限流不可用时放行，避免误伤正常请求
			logger.Warnw("rate limit check failed", "scope", scope, "error", err)
			c.Next()
			return
		}
		if count > int64(maxAttempts) {
			response.Fail(c, response.CodeRateLimited, "too many attempts, try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
