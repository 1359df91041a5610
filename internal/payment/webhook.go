package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/lumie-registry/internal/constants"
)

// WebhookEvent 网关回调事件
type WebhookEvent struct {
	OrderNo   string `json:"order_no"`
	Status    string `json:"status"`
	Reference string `json:"reference"`
}

// VerifySignature 校验回调签名（HMAC-SHA256，十六进制摘要）
func VerifySignature(secret string, body []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(strings.TrimSpace(signature)))
}

// MapGatewayStatus 将网关状态映射为订单状态，未知状态返回空串
func MapGatewayStatus(gatewayStatus string) string {
	switch strings.ToLower(strings.TrimSpace(gatewayStatus)) {
	case "paid", "captured", "approved":
		return constants.OrderStatusPaid
	case "authorized", "pre_authorized":
		return constants.OrderStatusAuthorized
	case "pending", "processing", "waiting_payment":
		return constants.OrderStatusPending
	case "refused", "failed", "chargedback":
		return constants.OrderStatusFailed
	case "canceled", "cancelled", "voided":
		return constants.OrderStatusCanceled
	case "refunded":
		return constants.OrderStatusRefunded
	}
	return ""
}
