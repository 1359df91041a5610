package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/lumie-registry/internal/http/handlers/shared"
	"github.com/lumie-registry/internal/http/response"
)

type messageVisibilityRequest struct {
	IsPublic *bool `json:"is_public" binding:"required"`
}

type messageFavoriteRequest struct {
	IsFavorite *bool `json:"is_favorite" binding:"required"`
}

// ListMessages 清单下全部留言
// GET /api/dashboard/messages
func (h *Handler) ListMessages(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	messages, err := h.messages.ListMessages(list.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, messages)
}

// SetMessageVisibility 开关留言公开展示
// PATCH /api/dashboard/messages/:id/visibility
func (h *Handler) SetMessageVisibility(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	var req messageVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsPublic == nil {
		response.Fail(c, response.CodeBadRequest, "dados inválidos")
		return
	}
	message, err := h.messages.SetVisibility(list.ID, shared.ParamUint(c, "id"), *req.IsPublic)
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidatePage(list.Slug)
	response.Success(c, message)
}

// SetMessageFavorite 标记或取消收藏留言
// PATCH /api/dashboard/messages/:id/favorite
func (h *Handler) SetMessageFavorite(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	var req messageFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsFavorite == nil {
		response.Fail(c, response.CodeBadRequest, "dados inválidos")
		return
	}
	message, err := h.messages.SetFavorite(list.ID, shared.ParamUint(c, "id"), *req.IsFavorite)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, message)
}

// DeleteMessage 删除留言
// DELETE /api/dashboard/messages/:id
func (h *Handler) DeleteMessage(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	if err := h.messages.DeleteMessage(list.ID, shared.ParamUint(c, "id")); err != nil {
		respondError(c, err)
		return
	}
	h.invalidatePage(list.Slug)
	response.SuccessMsg(c, "removed", nil)
}
