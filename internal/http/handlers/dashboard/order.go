package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/lumie-registry/internal/http/handlers/shared"
	"github.com/lumie-registry/internal/http/response"
)

type quoteRequest struct {
	GiftItemID uint `json:"gift_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

// ListOrders 分页查询清单订单
// GET /api/dashboard/orders?status=&page=&page_size=
func (h *Handler) ListOrders(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	page := shared.QueryInt(c, "page", 1)
	pageSize := shared.QueryInt(c, "page_size", 20)
	orders, total, err := h.orders.ListOrders(list.ID, c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{
		"orders":    orders,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// QuoteOrder 主人侧报价预览（与公开报价同一引擎）
// POST /api/dashboard/orders/quote
func (h *Handler) QuoteOrder(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.CodeBadRequest, "dados inválidos")
		return
	}
	quote, err := h.orders.QuoteGift(list, req.GiftItemID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, quote)
}
