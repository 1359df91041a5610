package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/lumie-registry/internal/http/response"
	"github.com/lumie-registry/internal/layout"
)

type saveLayoutRequest struct {
	Blocks      []layout.Block `json:"blocks" binding:"required"`
	Theme       layout.Theme   `json:"theme"`
	CustomStyle string         `json:"customStyle"`
}

type addBlockRequest struct {
	Type string `json:"type" binding:"required"`
}

type blockConfigRequest struct {
	Config map[string]interface{} `json:"config" binding:"required"`
}

type blockEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type reorderRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// GetLayout 读取布局（首次访问时创建默认布局）
// GET /api/dashboard/layout
func (h *Handler) GetLayout(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	l, err := h.layouts.GetLayout(list.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, l)
}

// SaveLayout 整份覆盖保存布局
// PUT /api/dashboard/layout
func (h *Handler) SaveLayout(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	var req saveLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.CodeBadRequest, "dados inválidos")
		return
	}
	l, err := h.layouts.SaveLayout(list.ID, layout.Layout{
		Blocks:      req.Blocks,
		Theme:       req.Theme,
		CustomStyle: req.CustomStyle,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidatePage(list.Slug)
	h.publishLayout(c, l)
	response.Success(c, l)
}

// AddBlock 追加积木
// POST /api/dashboard/layout/blocks
func (h *Handler) AddBlock(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	var req addBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.CodeBadRequest, "dados inválidos")
		return
	}
	l, block, err := h.layouts.AddBlock(list.ID, req.Type)
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidatePage(list.Slug)
	h.publishLayout(c, l)
	response.Success(c, gin.H{"block": block, "layout": l})
}

// RemoveBlock 删除积木
// DELETE /api/dashboard/layout/blocks/:blockId
func (h *Handler) RemoveBlock(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	l, err := h.layouts.RemoveBlock(list.ID, c.Param("blockId"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidatePage(list.Slug)
	h.publishLayout(c, l)
	response.Success(c, l)
}

// UpdateBlockConfig 合并更新积木配置
// PATCH /api/dashboard/layout/blocks/:blockId
func (h *Handler) UpdateBlockConfig(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	var req blockConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.CodeBadRequest, "dados inválidos")
		return
	}
	l, err := h.layouts.UpdateBlockConfig(list.ID, c.Param("blockId"), req.Config)
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidatePage(list.Slug)
	h.publishLayout(c, l)
	response.Success(c, l)
}

// SetBlockEnabled 开关积木可见性
// PATCH /api/dashboard/layout/blocks/:blockId/enabled
func (h *Handler) SetBlockEnabled(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	var req blockEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Enabled == nil {
		response.Fail(c, response.CodeBadRequest, "dados inválidos")
		return
	}
	l, err := h.layouts.SetBlockEnabled(list.ID, c.Param("blockId"), *req.Enabled)
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidatePage(list.Slug)
	h.publishLayout(c, l)
	response.Success(c, l)
}

// ReorderBlocks 重排积木
// PUT /api/dashboard/layout/blocks/order
func (h *Handler) ReorderBlocks(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.CodeBadRequest, "dados inválidos")
		return
	}
	l, err := h.layouts.ReorderBlocks(list.ID, req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidatePage(list.Slug)
	h.publishLayout(c, l)
	response.Success(c, l)
}

// UpdateTheme 合并更新主题
// PUT /api/dashboard/layout/theme
func (h *Handler) UpdateTheme(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	var req layout.Theme
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.CodeBadRequest, "dados inválidos")
		return
	}
	l, err := h.layouts.UpdateTheme(list.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidatePage(list.Slug)
	h.publishLayout(c, l)
	response.Success(c, l)
}
