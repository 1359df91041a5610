package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lumie-registry/internal/constants"
	"github.com/lumie-registry/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// Quote 一次认购的金额拆解（所有金额两位小数定格）
type Quote struct {
	FeeMode         string       `json:"fee_mode"`
	FeePercent      models.Money `json:"fee_percent"`
	UnitPrice       models.Money `json:"unit_price"`
	Quantity        int          `json:"quantity"`
	BaseAmount      models.Money `json:"base_amount"`
	FeeAmount       models.Money `json:"fee_amount"`
	TotalAmount     models.Money `json:"total_amount"`
	RecipientAmount models.Money `json:"recipient_amount"`
}

// ComputeQuote 计算订单报价。
// 基准金额与手续费逐步四舍五入到两位小数：
//   - PASS_TO_GUEST：宾客支付 base+fee，收款人得 base；
//   - ABSORB：宾客支付 base，收款人得 base-fee。
func ComputeQuote(unitPrice models.Money, quantity int, feeMode string, feePercent models.Money) (Quote, error) {
	if quantity <= 0 {
		return Quote{}, ErrInvalidQuantity
	}
	if !unitPrice.IsPositive() {
		return Quote{}, ErrInvalidPrice
	}
	if feePercent.IsNegative() {
		return Quote{}, fmt.Errorf("%w: negative fee percent", ErrInvalidArgument)
	}

	base := unitPrice.MulMoney(models.NewMoney(decimal.NewFromInt(int64(quantity)))).Round2()
	fee := models.NewMoney(base.Decimal.Mul(feePercent.Decimal).Div(oneHundred)).Round2()

	quote := Quote{
		FeeMode:    feeMode,
		FeePercent: feePercent,
		UnitPrice:  unitPrice.Round2(),
		Quantity:   quantity,
		BaseAmount: base,
		FeeAmount:  fee,
	}
	switch feeMode {
	case constants.FeeModePassToGuest:
		quote.TotalAmount = base.AddMoney(fee).Round2()
		quote.RecipientAmount = base
	case constants.FeeModeAbsorb:
		quote.TotalAmount = base
		quote.RecipientAmount = base.SubMoney(fee).Round2()
	default:
		return Quote{}, fmt.Errorf("%w: %s", ErrInvalidFeeMode, feeMode)
	}
	return quote, nil
}
