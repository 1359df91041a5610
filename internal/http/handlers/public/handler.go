package public

import (
	"github.com/lumie-registry/internal/config"
	"github.com/lumie-registry/internal/service"
)

// Handler 公开接口处理器
type Handler struct {
	pages      *service.PageService
	lists      *service.GiftListService
	gifts      *service.GiftService
	orders     *service.OrderService
	auth       *service.AuthService
	captcha    *service.CaptchaService
	paymentCfg config.PaymentConfig
}

// New 创建公开接口处理器
func New(
	pages *service.PageService,
	lists *service.GiftListService,
	gifts *service.GiftService,
	orders *service.OrderService,
	auth *service.AuthService,
	captcha *service.CaptchaService,
	paymentCfg config.PaymentConfig,
) *Handler {
	return &Handler{
		pages:      pages,
		lists:      lists,
		gifts:      gifts,
		orders:     orders,
		auth:       auth,
		captcha:    captcha,
		paymentCfg: paymentCfg,
	}
}
