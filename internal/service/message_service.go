package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lumie-registry/internal/models"
	"github.com/lumie-registry/internal/repository"
)

// MessageService 留言查询与管理
type MessageService struct {
	messages *repository.GormMessageRepository
}

// NewMessageService 创建留言服务
func NewMessageService(messages *repository.GormMessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// ListMessages 清单下全部留言（面向主人）
func (s *MessageService) ListMessages(giftListID uint) ([]models.Message, error) {
	return s.messages.ListByGiftListID(giftListID)
}

// ListPublicMessages 清单下公开留言（面向公开页面）
func (s *MessageService) ListPublicMessages(giftListID uint, limit int) ([]models.Message, error) {
	return s.messages.ListPublicByGiftListID(giftListID, limit)
}

// SetVisibility 主人开关留言的公开展示
func (s *MessageService) SetVisibility(giftListID, messageID uint, isPublic bool) (*models.Message, error) {
	message, err := s.getInList(giftListID, messageID)
	if err != nil {
		return nil, err
	}
	message.IsPublic = isPublic
	if err := s.messages.Update(message); err != nil {
		return nil, err
	}
	return message, nil
}

// SetFavorite 主人标记或取消收藏留言
func (s *MessageService) SetFavorite(giftListID, messageID uint, isFavorite bool) (*models.Message, error) {
	message, err := s.getInList(giftListID, messageID)
	if err != nil {
		return nil, err
	}
	message.IsFavorite = isFavorite
	if err := s.messages.Update(message); err != nil {
		return nil, err
	}
	return message, nil
}

// DeleteMessage 主人删除留言
func (s *MessageService) DeleteMessage(giftListID, messageID uint) error {
	message, err := s.getInList(giftListID, messageID)
	if err != nil {
		return err
	}
	return s.messages.Delete(message.ID)
}

func (s *MessageService) getInList(giftListID, messageID uint) (*models.Message, error) {
	message, err := s.messages.FindByID(messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	if message.GiftListID != giftListID {
		return nil, ErrMessageNotFound
	}
	return message, nil
}
