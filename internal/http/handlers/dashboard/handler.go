package dashboard

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/lumie-registry/internal/http/handlers/shared"
	"github.com/lumie-registry/internal/layout"
	"github.com/lumie-registry/internal/relay"
	"github.com/lumie-registry/internal/service"
)

// Handler 面板接口处理器（需要登录）
type Handler struct {
	lists    *service.GiftListService
	layouts  *service.LayoutService
	gifts    *service.GiftService
	orders   *service.OrderService
	messages *service.MessageService
	users    *service.AuthService
	pages    *service.PageService
	hub      *relay.Hub
}

// New 创建面板接口处理器
func New(
	lists *service.GiftListService,
	layouts *service.LayoutService,
	gifts *service.GiftService,
	orders *service.OrderService,
	messages *service.MessageService,
	users *service.AuthService,
	pages *service.PageService,
	hub *relay.Hub,
) *Handler {
	return &Handler{
		lists:    lists,
		layouts:  layouts,
		gifts:    gifts,
		orders:   orders,
		messages: messages,
		users:    users,
		pages:    pages,
		hub:      hub,
	}
}

// invalidatePage 面板写操作成功后刷新公开页缓存
func (h *Handler) invalidatePage(slugs ...string) {
	for _, slug := range slugs {
		h.pages.InvalidatePage(slug)
	}
}

// publishLayout 布局落库成功后向预览页推送最新积木与主题
func (h *Handler) publishLayout(c *gin.Context, l layout.Layout) {
	userID, ok := shared.CurrentUserID(c)
	if !ok || h.hub == nil {
		return
	}
	if raw, err := json.Marshal(l.Blocks); err == nil {
		h.hub.PublishServer(userID, relay.Envelope{Kind: relay.KindSyncBlocks, Payload: raw})
	}
	if raw, err := json.Marshal(l.Theme); err == nil {
		h.hub.PublishServer(userID, relay.Envelope{Kind: relay.KindSyncTheme, Payload: raw})
	}
}
