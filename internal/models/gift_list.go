package models

import "time"

// GiftList 礼物清单（每位用户一份，对外以 slug 访问）
type GiftList struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	UserID              uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Slug                string     `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Title               string     `gorm:"size:200;not null" json:"title"`
	Description         string     `gorm:"size:1000" json:"description"`
	EventDate           *time.Time `json:"event_date"`
	EventLocation       string     `gorm:"size:255" json:"event_location"`
	FeeMode             string     `gorm:"size:32;not null;default:PASS_TO_GUEST" json:"fee_mode"`
	AllowPublicMessages bool       `gorm:"not null;default:true" json:"allow_public_messages"`
	Active              bool       `gorm:"not null;default:true" json:"active"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// TableName 指定表名
func (GiftList) TableName() string {
	return "gift_lists"
}
