package models

import "time"

// GiftItem 礼物条目
type GiftItem struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	GiftListID        uint      `gorm:"index;not null" json:"gift_list_id"`
	Name              string    `gorm:"size:200;not null" json:"name"`
	Description       string    `gorm:"size:1000" json:"description"`
	ImageURL          string    `gorm:"size:500" json:"image_url"`
	Price             Money     `gorm:"type:decimal(14,2);not null" json:"price"`
	TotalQuantity     int       `gorm:"not null;default:1" json:"total_quantity"`
	AvailableQuantity int       `gorm:"not null;default:1" json:"available_quantity"`
	Active            bool      `gorm:"not null;default:true" json:"active"`
	SortOrder         int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName 指定表名
func (GiftItem) TableName() string {
	return "gift_items"
}

// InStock 是否仍可认购
func (g *GiftItem) InStock() bool {
	return g.Active && g.AvailableQuantity > 0
}
