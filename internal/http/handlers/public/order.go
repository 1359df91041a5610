package public

import (
	"github.com/gin-gonic/gin"

	"github.com/lumie-registry/internal/http/response"
	"github.com/lumie-registry/internal/service"
)

type placeOrderRequest struct {
	Slug             string `json:"slug" binding:"required"`
	GiftItemID       uint   `json:"gift_item_id" binding:"required"`
	Quantity         int    `json:"quantity" binding:"required"`
	GuestName        string `json:"guest_name" binding:"required"`
	GuestEmail       string `json:"guest_email"`
	MessageBody      string `json:"message_body"`
	MessageSignature string `json:"message_signature"`
	MessagePublic    bool   `json:"message_public"`
}

type quoteRequest struct {
	Slug       string `json:"slug" binding:"required"`
	GiftItemID uint   `json:"gift_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
}

// PlaceOrder 宾客下单
// POST /api/orders
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.CodeBadRequest, "dados inválidos")
		return
	}
	result, err := h.orders.PlaceOrder(c.Request.Context(), service.PlaceOrderInput{
		Slug:             req.Slug,
		GiftItemID:       req.GiftItemID,
		Quantity:         req.Quantity,
		GuestName:        req.GuestName,
		GuestEmail:       req.GuestEmail,
		MessageBody:      req.MessageBody,
		MessageSignature: req.MessageSignature,
		MessagePublic:    req.MessagePublic,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, result)
}

// QuoteOrder 下单前报价
// POST /api/orders/quote
func (h *Handler) QuoteOrder(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.CodeBadRequest, "dados inválidos")
		return
	}
	list, err := h.lists.GetBySlug(req.Slug)
	if err != nil {
		respondError(c, err)
		return
	}
	quote, err := h.orders.QuoteGift(list, req.GiftItemID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, quote)
}

// GetOrder 宾客按订单号查询
// GET /api/orders/:orderNo
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetByOrderNo(c.Param("orderNo"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, order)
}
