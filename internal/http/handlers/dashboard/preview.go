package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/lumie-registry/internal/http/handlers/shared"
	"github.com/lumie-registry/internal/http/response"
	"github.com/lumie-registry/internal/logger"
	"github.com/lumie-registry/internal/relay"
)

// PreviewSocket 编辑器与实时预览之间的 WebSocket 同步通道
// GET /api/dashboard/preview/ws
func (h *Handler) PreviewSocket(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		response.Fail(c, response.CodeUnauthorized, "login required")
		return
	}
	if err := relay.ServeWS(h.hub, userID, c.Writer, c.Request); err != nil {
		logger.Warnw("preview websocket upgrade failed", "user_id", userID, "error", err)
	}
}
