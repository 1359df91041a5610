package repository

import (
	"gorm.io/gorm"

	"github.com/lumie-registry/internal/models"
)

// GiftItemRepository 礼物条目数据访问接口
type GiftItemRepository interface {
	Create(gift *models.GiftItem) error
	FindByID(id uint) (*models.GiftItem, error)
	ListByGiftListID(giftListID uint, onlyActive bool) ([]models.GiftItem, error)
	CountByGiftListID(giftListID uint) (int64, error)
	MaxSortOrderByGiftListID(giftListID uint) (int, error)
	Update(gift *models.GiftItem) error
	Delete(id uint) error
	DecrementAvailable(giftID uint, quantity int) (int64, error)
	IncrementAvailable(giftID uint, quantity int) (int64, error)
}

// GormGiftItemRepository GiftItemRepository 的 gorm 实现
type GormGiftItemRepository struct {
	db *gorm.DB
}

// NewGormGiftItemRepository 创建礼物条目仓储
func NewGormGiftItemRepository(db *gorm.DB) *GormGiftItemRepository {
	return &GormGiftItemRepository{db: db}
}

// WithTx 返回绑定到事务的仓储
func (r *GormGiftItemRepository) WithTx(tx *gorm.DB) *GormGiftItemRepository {
	return &GormGiftItemRepository{db: tx}
}

// Create 创建礼物
func (r *GormGiftItemRepository) Create(gift *models.GiftItem) error {
	return r.db.Create(gift).Error
}

// FindByID 按 ID 查询礼物
func (r *GormGiftItemRepository) FindByID(id uint) (*models.GiftItem, error) {
	var gift models.GiftItem
	if err := r.db.First(&gift, id).Error; err != nil {
		return nil, err
	}
	return &gift, nil
}

// ListByGiftListID 查询清单下的礼物，按 sort_order 与 ID 升序
func (r *GormGiftItemRepository) ListByGiftListID(giftListID uint, onlyActive bool) ([]models.GiftItem, error) {
	query := r.db.Where("gift_list_id = ?", giftListID)
	if onlyActive {
		query = query.Where("active = ?", true)
	}
	var gifts []models.GiftItem
	if err := query.Order("sort_order asc, id asc").Find(&gifts).Error; err != nil {
		return nil, err
	}
	return gifts, nil
}

// CountByGiftListID 统计清单下的礼物数量（含停用，容量上限按总数计）
func (r *GormGiftItemRepository) CountByGiftListID(giftListID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.GiftItem{}).Where("gift_list_id = ?", giftListID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MaxSortOrderByGiftListID 清单下现有礼物的最大排序值；无礼物时返回零。
// 删除不回填排序，追加位置以最大值为准而非数量。
func (r *GormGiftItemRepository) MaxSortOrderByGiftListID(giftListID uint) (int, error) {
	var max int
	err := r.db.Model(&models.GiftItem{}).
		Where("gift_list_id = ?", giftListID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

// Update 更新礼物
func (r *GormGiftItemRepository) Update(gift *models.GiftItem) error {
	return r.db.Save(gift).Error
}

// Delete 删除礼物
func (r *GormGiftItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.GiftItem{}, id).Error
}

// DecrementAvailable 条件扣减可认购数量，余量不足时不落任何修改。
// 返回受影响行数，调用方据此判断扣减是否成功。
func (r *GormGiftItemRepository) DecrementAvailable(giftID uint, quantity int) (int64, error) {
	result := r.db.Model(&models.GiftItem{}).
		Where("id = ? AND available_quantity >= ?", giftID, quantity).
		Update("available_quantity", gorm.Expr("available_quantity - ?", quantity))
	return result.RowsAffected, result.Error
}

// IncrementAvailable 回补可认购数量，上限为总量
func (r *GormGiftItemRepository) IncrementAvailable(giftID uint, quantity int) (int64, error) {
	result := r.db.Model(&models.GiftItem{}).
		Where("id = ? AND available_quantity + ? <= total_quantity", giftID, quantity).
		Update("available_quantity", gorm.Expr("available_quantity + ?", quantity))
	return result.RowsAffected, result.Error
}
