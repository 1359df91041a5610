package repository

import (
	"gorm.io/gorm"

	"github.com/lumie-registry/internal/constants"
	"github.com/lumie-registry/internal/models"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order) error
	FindByID(id uint) (*models.Order, error)
	FindByOrderNo(orderNo string) (*models.Order, error)
	ListByGiftListID(giftListID uint, status string, offset, limit int) ([]models.Order, int64, error)
	Update(order *models.Order) error
	ExistsConfirmedByGift(giftItemID uint) (bool, error)
}

// GormOrderRepository OrderRepository 的 gorm 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository 创建订单仓储
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 返回绑定到事务的仓储
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: tx}
}

// Create 创建订单
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// FindByID 按 ID 查询订单
func (r *GormOrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByOrderNo 按订单号查询订单
func (r *GormOrderRepository) FindByOrderNo(orderNo string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Where("order_no = ?", orderNo).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByGiftListID 分页查询清单下的订单，status 为空时不过滤
func (r *GormOrderRepository) ListByGiftListID(giftListID uint, status string, offset, limit int) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{}).Where("gift_list_id = ?", giftListID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	if err := query.Order("id desc").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// Update 更新订单
func (r *GormOrderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

// ExistsConfirmedByGift 礼物是否存在已确认收款的订单
func (r *GormOrderRepository) ExistsConfirmedByGift(giftItemID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("gift_item_id = ? AND status IN ?", giftItemID,
			[]string{constants.OrderStatusPaid, constants.OrderStatusAuthorized}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
