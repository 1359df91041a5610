package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/lumie-registry/internal/http/handlers/shared"
	"github.com/lumie-registry/internal/http/response"
	"github.com/lumie-registry/internal/models"
)

// currentList 取登录用户的清单；未登录或清单缺失时已写好响应并返回 false
func (h *Handler) currentList(c *gin.Context) (*models.GiftList, bool) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		response.Fail(c, response.CodeUnauthorized, "login required")
		return nil, false
	}
	list, err := h.lists.GetByUserID(userID)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return list, true
}
