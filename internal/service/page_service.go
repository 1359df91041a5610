package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lumie-registry/internal/cache"
	"github.com/lumie-registry/internal/constants"
	"github.com/lumie-registry/internal/layout"
	"github.com/lumie-registry/internal/logger"
	"github.com/lumie-registry/internal/models"
)

// 公开页面缓存时长，吸收下单导致的余量变动，面板编辑走主动失效
const pageCacheTTL = time.Minute

// PublicPage 公开页面渲染结果
type PublicPage struct {
	Slug        string                 `json:"slug"`
	Title       string                 `json:"title"`
	Theme       layout.Theme           `json:"theme"`
	CustomStyle string                 `json:"customStyle,omitempty"`
	Blocks      []layout.RenderedBlock `json:"blocks"`
}

// PageService 公开页面装配与渲染
type PageService struct {
	lists    *GiftListService
	layouts  *LayoutService
	gifts    *GiftService
	messages *MessageService
	cache    *cache.Cache
}

// NewPageService 创建页面服务，cache 可为 nil
func NewPageService(lists *GiftListService, layouts *LayoutService, gifts *GiftService, messages *MessageService, pageCache *cache.Cache) *PageService {
	return &PageService{lists: lists, layouts: layouts, gifts: gifts, messages: messages, cache: pageCache}
}

// RenderPublicPage 渲染某 slug 的公开页面，命中缓存时直接返回
func (s *PageService) RenderPublicPage(slug string) (*PublicPage, error) {
	if page := s.cachedPage(slug); page != nil {
		return page, nil
	}

	page, err := s.renderPage(slug)
	if err != nil {
		return nil, err
	}
	s.storePage(page)
	return page, nil
}

// InvalidatePage 主动失效某 slug 的页面缓存，面板写操作后调用
func (s *PageService) InvalidatePage(slug string) {
	if s.cache == nil || slug == "" {
		return
	}
	if err := s.cache.Del(context.Background(), s.cache.Key("page", slug)); err != nil {
		logger.Warnw("invalidate page cache failed", "slug", slug, "error", err)
	}
}

func (s *PageService) cachedPage(slug string) *PublicPage {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(context.Background(), s.cache.Key("page", slug))
	if err != nil {
		logger.Warnw("read page cache failed", "slug", slug, "error", err)
		return nil
	}
	if raw == "" {
		return nil
	}
	var page PublicPage
	if err := json.Unmarshal([]byte(raw), &page); err != nil {
		logger.Warnw("decode cached page failed", "slug", slug, "error", err)
		return nil
	}
	return &page
}

func (s *PageService) storePage(page *PublicPage) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(page)
	if err != nil {
		return
	}
	if err := s.cache.Set(context.Background(), s.cache.Key("page", page.Slug), string(raw), pageCacheTTL); err != nil {
		logger.Warnw("write page cache failed", "slug", page.Slug, "error", err)
	}
}

func (s *PageService) renderPage(slug string) (*PublicPage, error) {
	list, err := s.lists.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	l, err := s.layouts.GetLayout(list.ID)
	if err != nil {
		return nil, err
	}
	gifts, err := s.gifts.ListActiveGifts(list.ID)
	if err != nil {
		return nil, err
	}
	messages, err := s.messages.ListPublicMessages(list.ID, constants.PublicMessagePreviewLimit)
	if err != nil {
		return nil, err
	}

	ctx := layout.PageContext{
		ListTitle:           list.Title,
		EventDate:           list.EventDate,
		EventLocation:       list.EventLocation,
		AllowPublicMessages: list.AllowPublicMessages,
		Gifts:               giftViews(gifts),
		Messages:            messageViews(messages),
	}
	return &PublicPage{
		Slug:        list.Slug,
		Title:       list.Title,
		Theme:       l.Theme,
		CustomStyle: l.CustomStyle,
		Blocks:      layout.Render(l, ctx),
	}, nil
}

func giftViews(gifts []models.GiftItem) []layout.GiftView {
	views := make([]layout.GiftView, 0, len(gifts))
	for _, gift := range gifts {
		views = append(views, layout.GiftView{
			ID:                gift.ID,
			Name:              gift.Name,
			Description:       gift.Description,
			ImageURL:          gift.ImageURL,
			Price:             gift.Price.String(),
			AvailableQuantity: gift.AvailableQuantity,
		})
	}
	return views
}

func messageViews(messages []models.Message) []layout.MessageView {
	views := make([]layout.MessageView, 0, len(messages))
	for _, message := range messages {
		views = append(views, layout.MessageView{
			GuestName: message.GuestName,
			Body:      message.Body,
			CreatedAt: message.CreatedAt,
		})
	}
	return views
}
