package models

import (
	"time"

	"github.com/lumie-registry/internal/constants"
)

// Order 礼物认购订单（金额字段均为下单时定格的快照）
type Order struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	OrderNo          string     `gorm:"size:64;uniqueIndex;not null" json:"order_no"`
	GiftListID       uint       `gorm:"index;not null" json:"gift_list_id"`
	GiftItemID       uint       `gorm:"index;not null" json:"gift_item_id"`
	GiftName         string     `gorm:"size:200;not null" json:"gift_name"`
	GuestName        string     `gorm:"size:120;not null" json:"guest_name"`
	GuestEmail       string     `gorm:"size:255" json:"guest_email"`
	Quantity         int        `gorm:"not null;default:1" json:"quantity"`
	FeeMode          string     `gorm:"size:32;not null" json:"fee_mode"`
	FeePercent       Money      `gorm:"type:decimal(8,4);not null" json:"fee_percent"`
	UnitPrice        Money      `gorm:"type:decimal(14,2);not null" json:"unit_price"`
	BaseAmount       Money      `gorm:"type:decimal(14,2);not null" json:"base_amount"`
	FeeAmount        Money      `gorm:"type:decimal(14,2);not null" json:"fee_amount"`
	TotalAmount      Money      `gorm:"type:decimal(14,2);not null" json:"total_amount"`
	RecipientAmount  Money      `gorm:"type:decimal(14,2);not null" json:"recipient_amount"`
	Status           string     `gorm:"size:32;index;not null;default:PENDING" json:"status"`
	GatewayReference string     `gorm:"size:128" json:"gateway_reference"`
	PaidAt           *time.Time `json:"paid_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// IsConfirmed 是否已确认收款（占用库存）
func (o *Order) IsConfirmed() bool {
	return o.Status == constants.OrderStatusPaid || o.Status == constants.OrderStatusAuthorized
}

// IsFinal 是否处于终态
func (o *Order) IsFinal() bool {
	switch o.Status {
	case constants.OrderStatusCanceled, constants.OrderStatusFailed, constants.OrderStatusRefunded:
		return true
	}
	return false
}
