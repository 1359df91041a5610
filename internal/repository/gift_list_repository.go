package repository

import (
	"gorm.io/gorm"

	"github.com/lumie-registry/internal/models"
)

// GiftListRepository 礼物清单数据访问接口
type GiftListRepository interface {
	Create(list *models.GiftList) error
	FindByID(id uint) (*models.GiftList, error)
	FindByUserID(userID uint) (*models.GiftList, error)
	FindBySlug(slug string) (*models.GiftList, error)
	Update(list *models.GiftList) error
}

// GormGiftListRepository GiftListRepository 的 gorm 实现
type GormGiftListRepository struct {
	db *gorm.DB
}

// NewGormGiftListRepository 创建礼物清单仓储
func NewGormGiftListRepository(db *gorm.DB) *GormGiftListRepository {
	return &GormGiftListRepository{db: db}
}

// WithTx 返回绑定到事务的仓储
func (r *GormGiftListRepository) WithTx(tx *gorm.DB) *GormGiftListRepository {
	return &GormGiftListRepository{db: tx}
}

// Create 创建清单
func (r *GormGiftListRepository) Create(list *models.GiftList) error {
	return r.db.Create(list).Error
}

// FindByID 按 ID 查询清单
func (r *GormGiftListRepository) FindByID(id uint) (*models.GiftList, error) {
	var list models.GiftList
	if err := r.db.First(&list, id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// FindByUserID 按所属用户查询清单
func (r *GormGiftListRepository) FindByUserID(userID uint) (*models.GiftList, error) {
	var list models.GiftList
	if err := r.db.Where("user_id = ?", userID).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// FindBySlug 按 slug 查询清单
func (r *GormGiftListRepository) FindBySlug(slug string) (*models.GiftList, error) {
	var list models.GiftList
	if err := r.db.Where("slug = ?", slug).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// Update 更新清单
func (r *GormGiftListRepository) Update(list *models.GiftList) error {
	return r.db.Save(list).Error
}
