package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lumie-registry/internal/cache"
	"github.com/lumie-registry/internal/config"
	"github.com/lumie-registry/internal/http/handlers/dashboard"
	"github.com/lumie-registry/internal/http/handlers/public"
	"github.com/lumie-registry/internal/http/response"
	"github.com/lumie-registry/internal/service"
)

// Options 路由装配参数
type Options struct {
	Config    *config.Config
	Cache     *cache.Cache
	Auth      *service.AuthService
	Public    *public.Handler
	Dashboard *dashboard.Handler
}

// New 装配全部路由
func New(opts Options) *gin.Engine {
	gin.SetMode(ginMode(opts.Config.Server.Mode))
	engine := gin.New()
	engine.Use(Recovery(), RequestID(), RequestLogger(), CORS(opts.Config.CORS))

	engine.NoRoute(func(c *gin.Context) {
		response.Fail(c, response.CodeNotFound, "not found")
	})
	engine.GET("/healthz", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	{
		api.GET("/lists/:slug", opts.Public.GetPage)
		api.GET("/lists/:slug/gifts", opts.Public.ListGifts)
		api.POST("/orders",
			RateLimit("checkout", opts.Config.Security.CheckoutRateLimit, opts.Cache),
			opts.Public.PlaceOrder)
		api.POST("/orders/quote", opts.Public.QuoteOrder)
		api.GET("/orders/:orderNo", opts.Public.GetOrder)
		api.GET("/captcha/image", opts.Public.GetCaptcha)
		api.POST("/webhooks/payment", opts.Public.PaymentWebhook)

		auth := api.Group("/auth")
		auth.Use(RateLimit("login", opts.Config.Security.LoginRateLimit, opts.Cache))
		{
			auth.POST("/register", opts.Public.Register)
			auth.POST("/login", opts.Public.Login)
		}

		panel := api.Group("/dashboard")
		panel.Use(JWTAuth(opts.Auth))
		{
			panel.GET("/me", opts.Dashboard.Me)
			panel.GET("/settings", opts.Dashboard.GetSettings)
			panel.PUT("/settings", opts.Dashboard.UpdateSettings)

			panel.GET("/layout", opts.Dashboard.GetLayout)
			panel.PUT("/layout", opts.Dashboard.SaveLayout)
			panel.PUT("/layout/theme", opts.Dashboard.UpdateTheme)
			panel.POST("/layout/blocks", opts.Dashboard.AddBlock)
			panel.PUT("/layout/blocks/order", opts.Dashboard.ReorderBlocks)
			panel.PATCH("/layout/blocks/:blockId", opts.Dashboard.UpdateBlockConfig)
			panel.PATCH("/layout/blocks/:blockId/enabled", opts.Dashboard.SetBlockEnabled)
			panel.DELETE("/layout/blocks/:blockId", opts.Dashboard.RemoveBlock)

			panel.GET("/gifts", opts.Dashboard.ListGifts)
			panel.POST("/gifts", opts.Dashboard.CreateGift)
			panel.PUT("/gifts/:id", opts.Dashboard.UpdateGift)
			panel.POST("/gifts/:id/duplicate", opts.Dashboard.DuplicateGift)
			panel.DELETE("/gifts/:id", opts.Dashboard.DeleteGift)

			panel.GET("/messages", opts.Dashboard.ListMessages)
			panel.PATCH("/messages/:id/visibility", opts.Dashboard.SetMessageVisibility)
			panel.PATCH("/messages/:id/favorite", opts.Dashboard.SetMessageFavorite)
			panel.DELETE("/messages/:id", opts.Dashboard.DeleteMessage)

			panel.GET("/orders", opts.Dashboard.ListOrders)
			panel.POST("/orders/quote", opts.Dashboard.QuoteOrder)

			panel.GET("/preview/ws", opts.Dashboard.PreviewSocket)
		}
	}
	return engine
}

func ginMode(mode string) string {
	switch mode {
	case "debug":
		return gin.DebugMode
	case "test":
		return gin.TestMode
	}
	return gin.ReleaseMode
}
