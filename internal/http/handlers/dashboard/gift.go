package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/lumie-registry/internal/http/handlers/shared"
	"github.com/lumie-registry/internal/http/response"
	"github.com/lumie-registry/internal/models"
	"github.com/lumie-registry/internal/service"
)

type giftRequest struct {
	Name          string       `json:"name" binding:"required"`
	Description   string       `json:"description"`
	ImageURL      string       `json:"image_url"`
	Price         models.Money `json:"price"`
	TotalQuantity int          `json:"total_quantity" binding:"required"`
	Active        *bool        `json:"active"`
	SortOrder     *int         `json:"sort_order"`
}

func (r giftRequest) toInput() service.GiftInput {
	return service.GiftInput{
		Name:          r.Name,
		Description:   r.Description,
		ImageURL:      r.ImageURL,
		Price:         r.Price,
		TotalQuantity: r.TotalQuantity,
		Active:        r.Active,
		SortOrder:     r.SortOrder,
	}
}

// ListGifts 清单下全部礼物
// GET /api/dashboard/gifts
func (h *Handler) ListGifts(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	gifts, err := h.gifts.ListGifts(list.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gifts)
}

// CreateGift 新建礼物
// POST /api/dashboard/gifts
func (h *Handler) CreateGift(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	var req giftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.CodeBadRequest, "dados inválidos")
		return
	}
	gift, err := h.gifts.CreateGift(list.ID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidatePage(list.Slug)
	response.Success(c, gift)
}

// UpdateGift 更新礼物
// PUT /api/dashboard/gifts/:id
func (h *Handler) UpdateGift(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	var req giftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.CodeBadRequest, "dados inválidos")
		return
	}
	gift, err := h.gifts.UpdateGift(list.ID, shared.ParamUint(c, "id"), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidatePage(list.Slug)
	response.Success(c, gift)
}

// DuplicateGift 复制礼物
// POST /api/dashboard/gifts/:id/duplicate
func (h *Handler) DuplicateGift(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	gift, err := h.gifts.DuplicateGift(list.ID, shared.ParamUint(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidatePage(list.Slug)
	response.Success(c, gift)
}

// DeleteGift 删除礼物
// DELETE /api/dashboard/gifts/:id
func (h *Handler) DeleteGift(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	if err := h.gifts.DeleteGift(list.ID, shared.ParamUint(c, "id")); err != nil {
		respondError(c, err)
		return
	}
	h.invalidatePage(list.Slug)
	response.SuccessMsg(c, "removed", nil)
}
