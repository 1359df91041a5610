package layout

import (
	"strings"
	"time"

	"github.com/lumie-registry/internal/constants"
)

// PageContext 渲染公开页面所需的动态数据
type PageContext struct {
	ListTitle           string
	EventDate           *time.Time
	EventLocation       string
	AllowPublicMessages bool
	Gifts               []GiftView
	Messages            []MessageView
}

// GiftView 公开页面上的礼物视图
type GiftView struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	ImageURL          string `json:"image_url"`
	Price             string `json:"price"`
	AvailableQuantity int    `json:"available_quantity"`
}

// MessageView 公开页面上的留言视图
type MessageView struct {
	GuestName string    `json:"guest_name"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// RenderedBlock 渲染结果中的单个积木
type RenderedBlock struct {
	ID    string      `json:"id"`
	Type  string      `json:"type"`
	Order int         `json:"order"`
	Props interface{} `json:"props"`
}

// HeroProps 首屏积木渲染数据
type HeroProps struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"image_url"`
}

// MessageProps 叙事积木渲染数据
type MessageProps struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// CountdownProps 倒计时积木渲染数据
type CountdownProps struct {
	Title      string     `json:"title"`
	TargetDate *time.Time `json:"target_date"`
}

// GiftsProps 礼物积木渲染数据
type GiftsProps struct {
	Title      string     `json:"title"`
	Gifts      []GiftView `json:"gifts"`
	TotalCount int        `json:"totalCount"`
}

// MessagesProps 留言积木渲染数据
type MessagesProps struct {
	Title    string        `json:"title"`
	Messages []MessageView `json:"messages"`
}

// GalleryProps 相册积木渲染数据
type GalleryProps struct {
	Title  string   `json:"title"`
	Images []string `json:"images"`
}

// EventInfoProps 活动信息积木渲染数据
type EventInfoProps struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Details  string `json:"details"`
}

// Render 渲染公开页面：跳过停用积木，按 order 升序输出，
// 并对礼物与留言应用公开展示上限。
func Render(l Layout, ctx PageContext) []RenderedBlock {
	rendered := make([]RenderedBlock, 0, len(l.Blocks))
	for _, block := range l.SortedBlocks() {
		if !block.Enabled {
			continue
		}
		props, ok := renderBlock(block, ctx)
		if !ok {
			continue
		}
		rendered = append(rendered, RenderedBlock{
			ID:    block.ID,
			Type:  block.Type,
			Order: block.Order,
			Props: props,
		})
	}
	return rendered
}

func renderBlock(block Block, ctx PageContext) (interface{}, bool) {
	switch block.Type {
	case BlockTypeHero:
		title := configString(block.Config, "title", "Meu Evento Especial")
		if strings.TrimSpace(title) == "" {
			title = ctx.ListTitle
		}
		return HeroProps{
			Title:    title,
			Subtitle: configString(block.Config, "subtitle", ""),
			ImageURL: configString(block.Config, "imageUrl", ""),
		}, true
	case BlockTypeMessage:
		return MessageProps{
			Title: configString(block.Config, "title", "Nossa História"),
			Body:  configString(block.Config, "body", ""),
		}, true
	case BlockTypeCountdown:
		target := parseConfigDate(block.Config, "targetDate")
		if target == nil {
			target = ctx.EventDate
		}
		if target == nil {
			return nil, false
		}
		return CountdownProps{
			Title:      configString(block.Config, "title", "Contagem Regressiva"),
			TargetDate: target,
		}, true
	case BlockTypeGifts:
		gifts := ctx.Gifts
		if len(gifts) > constants.PublicGiftPreviewLimit {
			gifts = gifts[:constants.PublicGiftPreviewLimit]
		}
		return GiftsProps{
			Title:      configString(block.Config, "title", "Escolha um Presente"),
			Gifts:      gifts,
			TotalCount: len(ctx.Gifts),
		}, true
	case BlockTypeMessages:
		if !ctx.AllowPublicMessages || !configBool(block.Config, "showPublicly", true) {
			return nil, false
		}
		messages := ctx.Messages
		if len(messages) > constants.PublicMessagePreviewLimit {
			messages = messages[:constants.PublicMessagePreviewLimit]
		}
		return MessagesProps{
			Title:    configString(block.Config, "title", "Recados Especiais"),
			Messages: messages,
		}, true
	case BlockTypeGallery:
		images := configStrings(block.Config, "images")
		if len(images) == 0 {
			return nil, false
		}
		return GalleryProps{
			Title:  configString(block.Config, "title", "Galeria de Fotos"),
			Images: images,
		}, true
	case BlockTypeEventInfo:
		date := configString(block.Config, "date", "")
		if date == "" && ctx.EventDate != nil {
			date = ctx.EventDate.Format("2006-01-02")
		}
		location := configString(block.Config, "location", "")
		if location == "" {
			location = ctx.EventLocation
		}
		return EventInfoProps{
			Title:    configString(block.Config, "title", "Informações do Evento"),
			Date:     date,
			Location: location,
			Details:  configString(block.Config, "details", ""),
		}, true
	}
	return nil, false
}

func configString(config map[string]interface{}, key, fallback string) string {
	if config == nil {
		return fallback
	}
	if value, ok := config[key].(string); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func configBool(config map[string]interface{}, key string, fallback bool) bool {
	if config == nil {
		return fallback
	}
	if value, ok := config[key].(bool); ok {
		return value
	}
	return fallback
}

func configStrings(config map[string]interface{}, key string) []string {
	if config == nil {
		return nil
	}
	raw, ok := config[key].([]interface{})
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			values = append(values, s)
		}
	}
	return values
}

func parseConfigDate(config map[string]interface{}, key string) *time.Time {
	raw := configString(config, key, "")
	if raw == "" {
		return nil
	}
	for _, format := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(format, raw); err == nil {
			return &t
		}
	}
	return nil
}
