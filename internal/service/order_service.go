package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lumie-registry/internal/config"
	"github.com/lumie-registry/internal/constants"
	"github.com/lumie-registry/internal/logger"
	"github.com/lumie-registry/internal/models"
	"github.com/lumie-registry/internal/payment"
	"github.com/lumie-registry/internal/queue"
	"github.com/lumie-registry/internal/repository"
)

// PlaceOrderInput 下单请求
type PlaceOrderInput struct {
	Slug        string
	GiftItemID  uint
	Quantity    int
	GuestName   string
	GuestEmail  string
	MessageBody string
	// MessageSignature 留言落款，可为空
	MessageSignature string
	// MessagePublic 留言是否公开展示，清单关闭公开留言时强制私密
	MessagePublic bool
}

// PlaceOrderResult 下单结果
type PlaceOrderResult struct {
	Order   *models.Order   `json:"order"`
	Message *models.Message `json:"message,omitempty"`
}

// OrderService 订单创建、状态流转与查询
type OrderService struct {
	db          *gorm.DB
	orders      *repository.GormOrderRepository
	gifts       *repository.GormGiftItemRepository
	lists       *repository.GormGiftListRepository
	messages    *repository.GormMessageRepository
	gateway     payment.Gateway
	queueClient *queue.Client
	orderCfg    config.OrderConfig
	feePercent  models.Money
}

// NewOrderService 创建订单服务
func NewOrderService(
	db *gorm.DB,
	orders *repository.GormOrderRepository,
	gifts *repository.GormGiftItemRepository,
	lists *repository.GormGiftListRepository,
	messages *repository.GormMessageRepository,
	gateway payment.Gateway,
	queueClient *queue.Client,
	orderCfg config.OrderConfig,
) (*OrderService, error) {
	raw := strings.TrimSpace(orderCfg.FeePercent)
	if raw == "" {
		raw = constants.DefaultFeePercent
	}
	feePercent, err := models.NewMoneyFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid fee percent config: %w", err)
	}
	return &OrderService{
		db:          db,
		orders:      orders,
		gifts:       gifts,
		lists:       lists,
		messages:    messages,
		gateway:     gateway,
		queueClient: queueClient,
		orderCfg:    orderCfg,
		feePercent:  feePercent,
	}, nil
}

// FeePercent 当前生效的平台费率
func (s *OrderService) FeePercent() models.Money {
	return s.feePercent
}

// QuoteGift 为某礼物与数量生成报价（不落库）
func (s *OrderService) QuoteGift(list *models.GiftList, giftID uint, quantity int) (Quote, error) {
	gift, err := s.findGiftInList(list.ID, giftID)
	if err != nil {
		return Quote{}, err
	}
	return ComputeQuote(gift.Price, quantity, list.FeeMode, s.feePercent)
}

// PlaceOrder 创建订单并发起扣款。
// 金额在下单时定格；库存在支付确认时以条件更新扣减，
// 同一事务内订单落库与扣库存要么都成功要么都回滚。
func (s *OrderService) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderResult, error) {
	if strings.TrimSpace(input.GuestName) == "" {
		return nil, fmt.Errorf("%w: guest name", ErrInvalidArgument)
	}
	list, err := s.findActiveList(input.Slug)
	if err != nil {
		return nil, err
	}
	gift, err := s.findGiftInList(list.ID, input.GiftItemID)
	if err != nil {
		return nil, err
	}
	if !gift.Active {
		return nil, ErrGiftInactive
	}
	quote, err := ComputeQuote(gift.Price, input.Quantity, list.FeeMode, s.feePercent)
	if err != nil {
		return nil, err
	}
	if gift.AvailableQuantity < input.Quantity {
		return nil, ErrInsufficientStock
	}

	order := &models.Order{
		OrderNo:         newOrderNo(),
		GiftListID:      list.ID,
		GiftItemID:      gift.ID,
		GiftName:        gift.Name,
		GuestName:       strings.TrimSpace(input.GuestName),
		GuestEmail:      strings.ToLower(strings.TrimSpace(input.GuestEmail)),
		Quantity:        input.Quantity,
		FeeMode:         quote.FeeMode,
		FeePercent:      quote.FeePercent,
		UnitPrice:       quote.UnitPrice,
		BaseAmount:      quote.BaseAmount,
		FeeAmount:       quote.FeeAmount,
		TotalAmount:     quote.TotalAmount,
		RecipientAmount: quote.RecipientAmount,
		Status:          constants.OrderStatusPending,
	}

	var message *models.Message
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orders.WithTx(tx).Create(order); err != nil {
			return err
		}
		// 清单关闭留言时整条留言丢弃，不落库
		if body := strings.TrimSpace(input.MessageBody); body != "" && list.AllowPublicMessages {
			message = &models.Message{
				GiftListID: list.ID,
				OrderID:    &order.ID,
				GuestName:  order.GuestName,
				Body:       body,
				Signature:  strings.TrimSpace(input.MessageSignature),
				IsPublic:   input.MessagePublic,
			}
			if err := s.messages.WithTx(tx).Create(message); err != nil {
				return err
			}
		}

		result, err := s.gateway.Authorize(ctx, payment.Charge{
			OrderNo:    order.OrderNo,
			Amount:     order.TotalAmount,
			GuestName:  order.GuestName,
			GuestEmail: order.GuestEmail,
		})
		if err != nil {
			return fmt.Errorf("payment authorize failed: %w", err)
		}
		order.GatewayReference = result.Reference
		if result.Approved {
			rows, err := s.gifts.WithTx(tx).DecrementAvailable(gift.ID, order.Quantity)
			if err != nil {
				return err
			}
			if rows == 0 {
				return ErrInsufficientStock
			}
			now := time.Now()
			order.Status = constants.OrderStatusPaid
			order.PaidAt = &now
		}
		return s.orders.WithTx(tx).Update(order)
	})
	if err != nil {
		return nil, err
	}

	if order.Status == constants.OrderStatusPending && s.queueClient != nil {
		expire := time.Duration(s.orderCfg.PaymentExpireMinutes) * time.Minute
		if expire <= 0 {
			expire = 30 * time.Minute
		}
		if err := s.queueClient.EnqueueOrderTimeoutCancel(order.OrderNo, expire); err != nil {
			logger.Warnw("enqueue order timeout cancel failed", "order_no", order.OrderNo, "error", err)
		}
	}
	logger.Infow("order placed", "order_no", order.OrderNo, "status", order.Status, "total", order.TotalAmount.String())
	return &PlaceOrderResult{Order: order, Message: message}, nil
}

// HandleWebhook 处理网关回调：按状态机流转订单，确认收款时扣减库存，
// 已确认订单被取消或退款时回补库存。重复投递同一状态是幂等的。
func (s *OrderService) HandleWebhook(event payment.WebhookEvent) (*models.Order, error) {
	next := payment.MapGatewayStatus(event.Status)
	if next == "" {
		return nil, fmt.Errorf("%w: gateway status %q", ErrInvalidArgument, event.Status)
	}

	var updated *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orders := s.orders.WithTx(tx)
		order, err := orders.FindByOrderNo(event.OrderNo)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.Status == next {
			updated = order
			return nil
		}
		if !transitionAllowed(order.Status, next) {
			return fmt.Errorf("%w: %s -> %s", ErrOrderTransition, order.Status, next)
		}

		wasConfirmed := order.IsConfirmed()
		gifts := s.gifts.WithTx(tx)
		switch next {
		case constants.OrderStatusPaid, constants.OrderStatusAuthorized:
			if !wasConfirmed {
				rows, err := gifts.DecrementAvailable(order.GiftItemID, order.Quantity)
				if err != nil {
					return err
				}
				if rows == 0 {
					order.Status = constants.OrderStatusFailed
					updated = order
					return orders.Update(order)
				}
			}
			if next == constants.OrderStatusPaid && order.PaidAt == nil {
				now := time.Now()
				order.PaidAt = &now
			}
		case constants.OrderStatusCanceled, constants.OrderStatusRefunded:
			if wasConfirmed {
				if _, err := gifts.IncrementAvailable(order.GiftItemID, order.Quantity); err != nil {
					return err
				}
			}
		}
		order.Status = next
		if event.Reference != "" {
			order.GatewayReference = event.Reference
		}
		updated = order
		return orders.Update(order)
	})
	if err != nil {
		return nil, err
	}
	logger.Infow("order webhook applied", "order_no", updated.OrderNo, "status", updated.Status)
	return updated, nil
}

// CancelExpiredOrder 取消仍未支付的超时订单，返回是否发生取消
func (s *OrderService) CancelExpiredOrder(orderNo string) (bool, error) {
	canceled := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orders := s.orders.WithTx(tx)
		order, err := orders.FindByOrderNo(orderNo)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if order.Status != constants.OrderStatusPending {
			return nil
		}
		order.Status = constants.OrderStatusCanceled
		canceled = true
		return orders.Update(order)
	})
	return canceled, err
}

// GetByOrderNo 按订单号查询
func (s *OrderService) GetByOrderNo(orderNo string) (*models.Order, error) {
	order, err := s.orders.FindByOrderNo(orderNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// ListOrders 分页查询清单下的订单
func (s *OrderService) ListOrders(giftListID uint, status string, page, pageSize int) ([]models.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.orders.ListByGiftListID(giftListID, status, (page-1)*pageSize, pageSize)
}

func (s *OrderService) findActiveList(slug string) (*models.GiftList, error) {
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

func (s *OrderService) findGiftInList(giftListID, giftID uint) (*models.GiftItem, error) {
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

// transitionAllowed 订单状态机白名单
func transitionAllowed(from, to string) bool {
	switch from {
	case constants.OrderStatusPending:
		switch to {
		case constants.OrderStatusPaid, constants.OrderStatusAuthorized,
			constants.OrderStatusCanceled, constants.OrderStatusFailed:
			return true
		}
	case constants.OrderStatusAuthorized:
		switch to {
		case constants.OrderStatusPaid, constants.OrderStatusCanceled, constants.OrderStatusRefunded:
			return true
		}
	case constants.OrderStatusPaid:
		return to == constants.OrderStatusRefunded
	}
	return false
}

func newOrderNo() string {
	return fmt.Sprintf("LM%s%s",
		time.Now().Format("20060102150405"),
		strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8]))
}
