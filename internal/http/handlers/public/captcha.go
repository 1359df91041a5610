package public

import (
	"github.com/gin-gonic/gin"

	"github.com/lumie-registry/internal/http/response"
)

// GetCaptcha 获取图形验证码
// GET /api/captcha/image
func (h *Handler) GetCaptcha(c *gin.Context) {
	if !h.captcha.Enabled() {
		response.Success(c, gin.H{"enabled": false})
		return
	}
	id, image, err := h.captcha.Generate()
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"enabled": true, "captcha_id": id, "image": image})
}
