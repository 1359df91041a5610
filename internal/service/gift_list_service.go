package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/lumie-registry/internal/constants"
	"github.com/lumie-registry/internal/models"
	"github.com/lumie-registry/internal/repository"
)

// ListSettingsInput 清单设置更新请求，零值字段表示不修改
type ListSettingsInput struct {
	Title               *string
	Description         *string
	EventDate           *time.Time
	ClearEventDate      bool
	EventLocation       *string
	FeeMode             *string
	AllowPublicMessages *bool
	Slug                *string
	Active              *bool
}

// GiftListService 礼物清单读取与设置
type GiftListService struct {
	lists *repository.GormGiftListRepository
}

// NewGiftListService 创建清单服务
func NewGiftListService(lists *repository.GormGiftListRepository) *GiftListService {
	return &GiftListService{lists: lists}
}

// GetBySlug 按 slug 查询启用中的清单
func (s *GiftListService) GetBySlug(slug string) (*models.GiftList, error) {
	list, err := s.lists.FindBySlug(strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}
	if !list.Active {
		return nil, ErrListNotFound
	}
	return list, nil
}

// GetByUserID 查询用户自己的清单
func (s *GiftListService) GetByUserID(userID uint) (*models.GiftList, error) {
	list, err := s.lists.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}
	return list, nil
}

// UpdateSettings 更新清单设置
func (s *GiftListService) UpdateSettings(userID uint, input ListSettingsInput) (*models.GiftList, error) {
	list, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title", ErrInvalidArgument)
		}
		list.Title = title
	}
	if input.Description != nil {
		list.Description = strings.TrimSpace(*input.Description)
	}
	if input.ClearEventDate {
		list.EventDate = nil
	} else if input.EventDate != nil {
		list.EventDate = input.EventDate
	}
	if input.EventLocation != nil {
		list.EventLocation = strings.TrimSpace(*input.EventLocation)
	}
	if input.FeeMode != nil {
		mode := strings.ToUpper(strings.TrimSpace(*input.FeeMode))
		if mode != constants.FeeModePassToGuest && mode != constants.FeeModeAbsorb {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFeeMode, *input.FeeMode)
		}
		list.FeeMode = mode
	}
	if input.AllowPublicMessages != nil {
		list.AllowPublicMessages = *input.AllowPublicMessages
	}
	if input.Active != nil {
		list.Active = *input.Active
	}
	if input.Slug != nil {
		slug := Slugify(*input.Slug)
		if slug == "" {
			return nil, fmt.Errorf("%w: slug", ErrInvalidArgument)
		}
		if slug != list.Slug {
			if existing, err := s.lists.FindBySlug(slug); err == nil && existing.ID != list.ID {
				return nil, ErrSlugTaken
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			list.Slug = slug
		}
	}

	if err := s.lists.Update(list); err != nil {
		return nil, err
	}
	return list, nil
}
