package repository

import (
	"gorm.io/gorm"

	"github.com/lumie-registry/internal/models"
)

// PageLayoutRepository 页面布局数据访问接口
type PageLayoutRepository interface {
	Create(pageLayout *models.PageLayout) error
	FindByGiftListID(giftListID uint) (*models.PageLayout, error)
	Save(pageLayout *models.PageLayout) error
}

// GormPageLayoutRepository PageLayoutRepository 的 gorm 实现
type GormPageLayoutRepository struct {
	db *gorm.DB
}

// NewGormPageLayoutRepository 创建页面布局仓储
func NewGormPageLayoutRepository(db *gorm.DB) *GormPageLayoutRepository {
	return &GormPageLayoutRepository{db: db}
}

// WithTx 返回绑定到事务的仓储
func (r *GormPageLayoutRepository) WithTx(tx *gorm.DB) *GormPageLayoutRepository {
	return &GormPageLayoutRepository{db: tx}
}

// Create 创建布局
func (r *GormPageLayoutRepository) Create(pageLayout *models.PageLayout) error {
	return r.db.Create(pageLayout).Error
}

// FindByGiftListID 按清单查询布局
func (r *GormPageLayoutRepository) FindByGiftListID(giftListID uint) (*models.PageLayout, error) {
	var pageLayout models.PageLayout
	if err := r.db.Where("gift_list_id = ?", giftListID).First(&pageLayout).Error; err != nil {
		return nil, err
	}
	return &pageLayout, nil
}

// Save 整份覆盖保存布局（后写覆盖先写）
func (r *GormPageLayoutRepository) Save(pageLayout *models.PageLayout) error {
	return r.db.Save(pageLayout).Error
}
