package payment

import (
	"context"

	"github.com/lumie-registry/internal/models"
)

// Charge 发往网关的扣款请求
type Charge struct {
	OrderNo    string
	Amount     models.Money
	GuestName  string
	GuestEmail string
}

// AuthorizeResult 网关受理结果
type AuthorizeResult struct {
	// Reference 网关侧交易标识
	Reference string
	// Approved 是否同步获批；false 表示等待异步回调
	Approved bool
}

// Gateway 支付网关接口
type Gateway interface {
	Name() string
	Authorize(ctx context.Context, charge Charge) (*AuthorizeResult, error)
}
