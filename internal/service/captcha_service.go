package service

import (
	"context"
	"time"

	"github.com/mojocn/base64Captcha"

	"github.com/lumie-registry/internal/cache"
	"github.com/lumie-registry/internal/config"
	"github.com/lumie-registry/internal/logger"
)

// CaptchaService 图形验证码
type CaptchaService struct {
	enabled bool
	captcha *base64Captcha.Captcha
}

// NewCaptchaService 创建验证码服务；有 Redis 时答案存 Redis，否则内存
func NewCaptchaService(cfg config.CaptchaConfig, redisCache *cache.Cache) *CaptchaService {
	width := cfg.Width
	if width <= 0 {
		width = 240
	}
	height := cfg.Height
	if height <= 0 {
		height = 80
	}
	length := cfg.Length
	if length <= 0 {
		length = 4
	}
	expire := time.Duration(cfg.ExpireSeconds) * time.Second
	if expire <= 0 {
		expire = 5 * time.Minute
	}

	driver := base64Captcha.NewDriverDigit(height, width, length, 0.7, 80)
	var store base64Captcha.Store
	if redisCache != nil {
		store = &redisCaptchaStore{cache: redisCache, ttl: expire}
	} else {
		store = base64Captcha.DefaultMemStore
	}
	return &CaptchaService{
		enabled: cfg.Enable,
		captcha: base64Captcha.NewCaptcha(driver, store),
	}
}

// Enabled 验证码是否开启
func (s *CaptchaService) Enabled() bool {
	return s.enabled
}

// Generate 生成验证码，返回 ID 与 base64 图片
func (s *CaptchaService) Generate() (string, string, error) {
	id, b64, _, err := s.captcha.Generate()
	return id, b64, err
}

// Verify 校验答案（一次性，校验后即失效）
func (s *CaptchaService) Verify(id, answer string) bool {
	if !s.enabled {
		return true
	}
	if id == "" || answer == "" {
		return false
	}
	return s.captcha.Verify(id, answer, true)
}

type redisCaptchaStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

func (s *redisCaptchaStore) Set(id string, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.cache.Set(ctx, s.cache.Key("captcha", id), value, s.ttl)
}

func (s *redisCaptchaStore) Get(id string, clear bool) string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	key := s.cache.Key("captcha", id)
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Warnw("read captcha from redis failed", "error", err)
		return ""
	}
	if clear && value != "" {
		if err := s.cache.Del(ctx, key); err != nil {
			logger.Warnw("clear captcha from redis failed", "error", err)
		}
	}
	return value
}

func (s *redisCaptchaStore) Verify(id, answer string, clear bool) bool {
	value := s.Get(id, clear)
	return value != "" && value == answer
}
