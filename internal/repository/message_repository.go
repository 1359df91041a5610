package repository

import (
	"gorm.io/gorm"

	"github.com/lumie-registry/internal/models"
)

// MessageRepository 留言数据访问接口
type MessageRepository interface {
	Create(message *models.Message) error
	FindByID(id uint) (*models.Message, error)
	ListByGiftListID(giftListID uint) ([]models.Message, error)
	ListPublicByGiftListID(giftListID uint, limit int) ([]models.Message, error)
	Update(message *models.Message) error
	Delete(id uint) error
}

// GormMessageRepository MessageRepository 的 gorm 实现
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository 创建留言仓储
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// WithTx 返回绑定到事务的仓储
func (r *GormMessageRepository) WithTx(tx *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: tx}
}

// Create 创建留言
func (r *GormMessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// FindByID 按 ID 查询留言
func (r *GormMessageRepository) FindByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// ListByGiftListID 查询清单下全部留言，新的在前
func (r *GormMessageRepository) ListByGiftListID(giftListID uint) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Where("gift_list_id = ?", giftListID).Order("id desc").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// ListPublicByGiftListID 查询清单下公开留言，新的在前
func (r *GormMessageRepository) ListPublicByGiftListID(giftListID uint, limit int) ([]models.Message, error) {
	query := r.db.Where("gift_list_id = ? AND is_public = ?", giftListID, true).Order("id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var messages []models.Message
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// Update 更新留言
func (r *GormMessageRepository) Update(message *models.Message) error {
	return r.db.Save(message).Error
}

// Delete 删除留言
func (r *GormMessageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Message{}, id).Error
}
