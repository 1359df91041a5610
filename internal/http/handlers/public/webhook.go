package public

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/lumie-registry/internal/http/response"
	"github.com/lumie-registry/internal/logger"
	"github.com/lumie-registry/internal/payment"
)

// PaymentWebhook 支付网关回调
// POST /api/webhooks/payment
func (h *Handler) PaymentWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		response.Fail(c, response.CodeBadRequest, "unreadable body")
		return
	}
	signature := c.GetHeader("X-Signature")
	if !payment.VerifySignature(h.paymentCfg.WebhookSecret, body, signature) {
		logger.Warnw("rejected webhook with bad signature", "ip", c.ClientIP())
		response.Fail(c, response.CodeUnauthorized, "invalid signature")
		return
	}

	var event payment.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		response.Fail(c, response.CodeBadRequest, "malformed event")
		return
	}
	order, err := h.orders.HandleWebhook(event)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"order_no": order.OrderNo, "status": order.Status})
}
