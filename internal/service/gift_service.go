package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/lumie-registry/internal/constants"
	"github.com/lumie-registry/internal/models"
	"github.com/lumie-registry/internal/repository"
)

// GiftInput 礼物创建与更新请求
type GiftInput struct {
	Name          string
	Description   string
	ImageURL      string
	Price         models.Money
	TotalQuantity int
	Active        *bool
	SortOrder     *int
}

// GiftService 礼物条目管理
type GiftService struct {
	gifts  *repository.GormGiftItemRepository
	orders *repository.GormOrderRepository
}

// NewGiftService 创建礼物服务
func NewGiftService(gifts *repository.GormGiftItemRepository, orders *repository.GormOrderRepository) *GiftService {
	return &GiftService{gifts: gifts, orders: orders}
}

// ListGifts 清单下全部礼物（面向主人，含停用）
func (s *GiftService) ListGifts(giftListID uint) ([]models.GiftItem, error) {
	return s.gifts.ListByGiftListID(giftListID, false)
}

// ListActiveGifts 清单下可展示的礼物（面向公开页面）
func (s *GiftService) ListActiveGifts(giftListID uint) ([]models.GiftItem, error) {
	return s.gifts.ListByGiftListID(giftListID, true)
}

// GetGift 取清单下的某个礼物，不属于该清单按不存在处理
func (s *GiftService) GetGift(giftListID, giftID uint) (*models.GiftItem, error) {
	gift, err := s.gifts.FindByID(giftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGiftNotFound
		}
		return nil, err
	}
	if gift.GiftListID != giftListID {
		return nil, ErrGiftNotFound
	}
	return gift, nil
}

// CreateGift 创建礼物。清单礼物总数受上限约束；初始可认购量等于总量。
func (s *GiftService) CreateGift(giftListID uint, input GiftInput) (*models.GiftItem, error) {
	if err := validateGiftInput(input); err != nil {
		return nil, err
	}
	count, err := s.gifts.CountByGiftListID(giftListID)
	if err != nil {
		return nil, err
	}
	if count >= constants.MaxGiftsPerList {
		return nil, ErrGiftCapacityReached
	}
	maxOrder, err := s.gifts.MaxSortOrderByGiftListID(giftListID)
	if err != nil {
		return nil, err
	}

	gift := &models.GiftItem{
		GiftListID:        giftListID,
		Name:              strings.TrimSpace(input.Name),
		Description:       strings.TrimSpace(input.Description),
		ImageURL:          strings.TrimSpace(input.ImageURL),
		Price:             input.Price.Round2(),
		TotalQuantity:     input.TotalQuantity,
		AvailableQuantity: input.TotalQuantity,
		Active:            true,
		SortOrder:         maxOrder + 1,
	}
	if input.Active != nil {
		gift.Active = *input.Active
	}
	if input.SortOrder != nil {
		gift.SortOrder = *input.SortOrder
	}
	if err := s.gifts.Create(gift); err != nil {
		return nil, err
	}
	return gift, nil
}

// UpdateGift 更新礼物。总量变化按差值同步到可认购量，下限为零。
func (s *GiftService) UpdateGift(giftListID, giftID uint, input GiftInput) (*models.GiftItem, error) {
	if err := validateGiftInput(input); err != nil {
		return nil, err
	}
	gift, err := s.GetGift(giftListID, giftID)
	if err != nil {
		return nil, err
	}

	delta := input.TotalQuantity - gift.TotalQuantity
	gift.Name = strings.TrimSpace(input.Name)
	gift.Description = strings.TrimSpace(input.Description)
	gift.ImageURL = strings.TrimSpace(input.ImageURL)
	gift.Price = input.Price.Round2()
	gift.TotalQuantity = input.TotalQuantity
	gift.AvailableQuantity += delta
	if gift.AvailableQuantity < 0 {
		gift.AvailableQuantity = 0
	}
	if gift.AvailableQuantity > gift.TotalQuantity {
		gift.AvailableQuantity = gift.TotalQuantity
	}
	if input.Active != nil {
		gift.Active = *input.Active
	}
	if input.SortOrder != nil {
		gift.SortOrder = *input.SortOrder
	}
	if err := s.gifts.Update(gift); err != nil {
		return nil, err
	}
	return gift, nil
}

// DuplicateGift 复制礼物：名称加后缀，可认购量重置为总量
func (s *GiftService) DuplicateGift(giftListID, giftID uint) (*models.GiftItem, error) {
	source, err := s.GetGift(giftListID, giftID)
	if err != nil {
		return nil, err
	}
	count, err := s.gifts.CountByGiftListID(giftListID)
	if err != nil {
		return nil, err
	}
	if count >= constants.MaxGiftsPerList {
		return nil, ErrGiftCapacityReached
	}
	maxOrder, err := s.gifts.MaxSortOrderByGiftListID(giftListID)
	if err != nil {
		return nil, err
	}

	copy := &models.GiftItem{
		GiftListID:        giftListID,
		Name:              source.Name + constants.DuplicateNameSuffix,
		Description:       source.Description,
		ImageURL:          source.ImageURL,
		Price:             source.Price,
		TotalQuantity:     source.TotalQuantity,
		AvailableQuantity: source.TotalQuantity,
		Active:            source.Active,
		SortOrder:         maxOrder + 1,
	}
	if err := s.gifts.Create(copy); err != nil {
		return nil, err
	}
	return copy, nil
}

// DeleteGift 删除礼物；已有确认收款订单的礼物不允许删除
func (s *GiftService) DeleteGift(giftListID, giftID uint) error {
	gift, err := s.GetGift(giftListID, giftID)
	if err != nil {
		return err
	}
	confirmed, err := s.orders.ExistsConfirmedByGift(gift.ID)
	if err != nil {
		return err
	}
	if confirmed {
		return ErrGiftHasPaidOrders
	}
	return s.gifts.Delete(gift.ID)
}

func validateGiftInput(input GiftInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name", ErrInvalidArgument)
	}
	if !input.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if input.TotalQuantity < 1 {
		return fmt.Errorf("%w: total quantity", ErrInvalidQuantity)
	}
	return nil
}
