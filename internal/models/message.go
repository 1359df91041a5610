package models

import "time"

// Message 宾客留言
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	GiftListID uint      `gorm:"index;not null" json:"gift_list_id"`
	OrderID    *uint     `gorm:"index" json:"order_id"`
	GuestName  string    `gorm:"size:120;not null" json:"guest_name"`
	Body       string    `gorm:"size:2000;not null" json:"body"`
	Signature  string    `gorm:"size:255" json:"signature"`
	IsPublic   bool      `gorm:"not null;default:true" json:"is_public"`
	IsFavorite bool      `gorm:"not null;default:false" json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Message) TableName() string {
	return "messages"
}
