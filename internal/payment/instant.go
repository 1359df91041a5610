package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// InstantGateway 即时获批网关，用于开发环境与不接真实网关的部署
type InstantGateway struct{}

// NewInstantGateway 创建即时获批网关
func NewInstantGateway() *InstantGateway {
	return &InstantGateway{}
}

// Name 网关名称
func (g *InstantGateway) Name() string {
	return "instant"
}

// Authorize 同步批准扣款
func (g *InstantGateway) Authorize(_ context.Context, charge Charge) (*AuthorizeResult, error) {
	if charge.Amount.IsNegative() || charge.Amount.IsZero() {
		return nil, fmt.Errorf("invalid charge amount %s for order %s", charge.Amount, charge.OrderNo)
	}
	return &AuthorizeResult{
		Reference: "instant_" + uuid.NewString(),
		Approved:  true,
	}, nil
}
