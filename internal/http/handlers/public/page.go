package public

import (
	"github.com/gin-gonic/gin"

	"github.com/lumie-registry/internal/http/response"
	"github.com/lumie-registry/internal/layout"
)

// GetPage 渲染公开页面
// GET /api/lists/:slug
func (h *Handler) GetPage(c *gin.Context) {
	page, err := h.pages.RenderPublicPage(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, page)
}

// ListGifts 公开礼物列表（完整，不受预览上限约束）
// GET /api/lists/:slug/gifts
func (h *Handler) ListGifts(c *gin.Context) {
	list, err := h.lists.GetBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	gifts, err := h.gifts.ListActiveGifts(list.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]layout.GiftView, 0, len(gifts))
	for _, gift := range gifts {
		views = append(views, layout.GiftView{
			ID:                gift.ID,
			Name:              gift.Name,
			Description:       gift.Description,
			ImageURL:          gift.ImageURL,
			Price:             gift.Price.String(),
			AvailableQuantity: gift.AvailableQuantity,
		})
	}
	response.Success(c, gin.H{"gifts": views, "fee_mode": list.FeeMode})
}
