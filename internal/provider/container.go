package provider

import (
	"gorm.io/gorm"

	"github.com/lumie-registry/internal/cache"
	"github.com/lumie-registry/internal/config"
	"github.com/lumie-registry/internal/http/handlers/dashboard"
	"github.com/lumie-registry/internal/http/handlers/public"
	"github.com/lumie-registry/internal/logger"
	"github.com/lumie-registry/internal/models"
	"github.com/lumie-registry/internal/payment"
	"github.com/lumie-registry/internal/queue"
	"github.com/lumie-registry/internal/relay"
	"github.com/lumie-registry/internal/repository"
	"github.com/lumie-registry/internal/service"
)

// Container 依赖装配容器
type Container struct {
	Config      *config.Config
	DB          *gorm.DB
	Cache       *cache.Cache
	QueueClient *queue.Client
	Hub         *relay.Hub
	Gateway     payment.Gateway

	Users    *repository.GormUserRepository
	Lists    *repository.GormGiftListRepository
	Layouts  *repository.GormPageLayoutRepository
	Gifts    *repository.GormGiftItemRepository
	Orders   *repository.GormOrderRepository
	Messages *repository.GormMessageRepository

	AuthService     *service.AuthService
	CaptchaService  *service.CaptchaService
	GiftListService *service.GiftListService
	LayoutService   *service.LayoutService
	GiftService     *service.GiftService
	OrderService    *service.OrderService
	MessageService  *service.MessageService
	PageService     *service.PageService

	PublicHandler    *public.Handler
	DashboardHandler *dashboard.Handler
}

// New 构建容器：连库、迁移、装配仓储/服务/处理器
func New(cfg *config.Config) (*Container, error) {
	db, err := models.InitDB(cfg.Database, cfg.Server.Mode == "debug")
	if err != nil {
		return nil, err
	}
	if err := models.AutoMigrate(db); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, DB: db, Hub: relay.NewHub()}

	if cfg.Redis.Enable {
		redisCache, err := cache.New(cfg.Redis)
		if err != nil {
			logger.Warnw("redis unavailable, running without cache", "error", err)
		} else {
			c.Cache = redisCache
		}
	}
	if cfg.Queue.Enable && c.Cache != nil {
		c.QueueClient = queue.NewClient(cfg.Redis)
	}

	c.Users = repository.NewGormUserRepository(db)
	c.Lists = repository.NewGormGiftListRepository(db)
	c.Layouts = repository.NewGormPageLayoutRepository(db)
	c.Gifts = repository.NewGormGiftItemRepository(db)
	c.Orders = repository.NewGormOrderRepository(db)
	c.Messages = repository.NewGormMessageRepository(db)

	c.Gateway = buildGateway(cfg.Payment)
	c.AuthService = service.NewAuthService(db, c.Users, c.Lists, cfg.JWT, cfg.Security)
	c.CaptchaService = service.NewCaptchaService(cfg.Captcha, c.Cache)
	c.GiftListService = service.NewGiftListService(c.Lists)
	c.LayoutService = service.NewLayoutService(c.Layouts)
	c.GiftService = service.NewGiftService(c.Gifts, c.Orders)
	c.MessageService = service.NewMessageService(c.Messages)
	c.OrderService, err = service.NewOrderService(db, c.Orders, c.Gifts, c.Lists, c.Messages,
		c.Gateway, c.QueueClient, cfg.Order)
	if err != nil {
		return nil, err
	}
	c.PageService = service.NewPageService(c.GiftListService, c.LayoutService, c.GiftService, c.MessageService, c.Cache)

	c.PublicHandler = public.New(c.PageService, c.GiftListService, c.GiftService,
		c.OrderService, c.AuthService, c.CaptchaService, cfg.Payment)
	c.DashboardHandler = dashboard.New(c.GiftListService, c.LayoutService, c.GiftService,
		c.OrderService, c.MessageService, c.AuthService, c.PageService, c.Hub)
	return c, nil
}

// Close 释放容器持有的连接
func (c *Container) Close() {
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("close queue client failed", "error", err)
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Warnw("close redis failed", "error", err)
		}
	}
	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

func buildGateway(cfg config.PaymentConfig) payment.Gateway {
	switch cfg.Gateway {
	case "", "instant":
		return payment.NewInstantGateway()
	}
	logger.Warnw("unknown payment gateway, falling back to instant", "gateway", cfg.Gateway)
	return payment.NewInstantGateway()
}
