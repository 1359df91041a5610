package models

import "time"

// PageLayout 页面布局（积木列表与主题均按 JSON 原文存储）
type PageLayout struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	GiftListID  uint      `gorm:"uniqueIndex;not null" json:"gift_list_id"`
	Blocks      JSONRaw   `gorm:"type:text" json:"blocks"`
	Theme       JSONRaw   `gorm:"type:text" json:"theme"`
	CustomStyle string    `gorm:"type:text" json:"custom_style"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName 指定表名
func (PageLayout) TableName() string {
	return "page_layouts"
}
