package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lumie-registry/internal/config"
	"github.com/lumie-registry/internal/constants"
	"github.com/lumie-registry/internal/payment"
)

// deferredGateway 受理但不即时批准，模拟等待回调的真实网关
type deferredGateway struct{}

func (g *deferredGateway) Name() string { return "deferred" }

func (g *deferredGateway) Authorize(_ context.Context, charge payment.Charge) (*payment.AuthorizeResult, error) {
	return &payment.AuthorizeResult{Reference: "ref_" + charge.OrderNo, Approved: false}, nil
}

func newOrderService(t *testing.T, f *fixture, gateway payment.Gateway) *OrderService {
	t.Helper()
	svc, err := NewOrderService(f.db, f.orders, f.gifts, f.lists, f.messages, gateway, nil,
		config.OrderConfig{PaymentExpireMinutes: 30, FeePercent: "7.99"})
	if err != nil {
		t.Fatalf("NewOrderService failed: %v", err)
	}
	return svc
}

func TestPlaceOrderInstantApprovalDecrementsStock(t *testing.T) {
	f := newFixture(t)
	gift := f.createGift(t, "Jantar Romântico", "100.00", 2)
	svc := newOrderService(t, f, payment.NewInstantGateway())

	result, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		Slug:       f.list.Slug,
		GiftItemID: gift.ID,
		Quantity:   1,
		GuestName:  "Convidado",
	})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	order := result.Order
	if order.Status != constants.OrderStatusPaid {
		t.Fatalf("expected PAID with instant gateway, got %s", order.Status)
	}
	if order.PaidAt == nil {
		t.Fatalf("expected paid_at set")
	}
	if order.TotalAmount.String() != "107.99" {
		t.Fatalf("expected total 107.99, got %s", order.TotalAmount)
	}
	if order.RecipientAmount.String() != "100.00" {
		t.Fatalf("expected recipient 100.00, got %s", order.RecipientAmount)
	}

	reloaded, err := f.gifts.FindByID(gift.ID)
	if err != nil {
		t.Fatalf("reload gift failed: %v", err)
	}
	if reloaded.AvailableQuantity != 1 {
		t.Fatalf("expected available 1 after sale, got %d", reloaded.AvailableQuantity)
	}
}

func TestPlaceOrderAbsorbModeSnapshot(t *testing.T) {
	f := newFixture(t)
	f.list.FeeMode = constants.FeeModeAbsorb
	if err := f.lists.Update(f.list); err != nil {
		t.Fatalf("update list fee mode failed: %v", err)
	}
	gift := f.createGift(t, "Lua de Mel", "100.00", 1)
	svc := newOrderService(t, f, payment.NewInstantGateway())

	result, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		Slug: f.list.Slug, GiftItemID: gift.ID, Quantity: 1, GuestName: "Convidado",
	})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if result.Order.TotalAmount.String() != "100.00" {
		t.Fatalf("expected guest to pay 100.00, got %s", result.Order.TotalAmount)
	}
	if result.Order.RecipientAmount.String() != "92.01" {
		t.Fatalf("expected recipient 92.01, got %s", result.Order.RecipientAmount)
	}
	if result.Order.FeeMode != constants.FeeModeAbsorb {
		t.Fatalf("expected fee mode snapshot on order, got %s", result.Order.FeeMode)
	}
}

func TestPlaceOrderRejectsOversell(t *testing.T) {
	f := newFixture(t)
	gift := f.createGift(t, "Bicicleta", "900.00", 1)
	svc := newOrderService(t, f, payment.NewInstantGateway())

	if _, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		Slug: f.list.Slug, GiftItemID: gift.ID, Quantity: 2, GuestName: "Convidado",
	}); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestPlaceOrderNeverOversells(t *testing.T) {
	f := newFixture(t)
	gift := f.createGift(t, "Air Fryer", "450.00", 3)
	svc := newOrderService(t, f, payment.NewInstantGateway())

	succeeded := 0
	for i := 0; i < 8; i++ {
		_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
			Slug: f.list.Slug, GiftItemID: gift.ID, Quantity: 1, GuestName: "Convidado",
		})
		if err == nil {
			succeeded++
		} else if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 3 {
		t.Fatalf("expected exactly 3 successful orders for 3 units, got %d", succeeded)
	}
	reloaded, err := f.gifts.FindByID(gift.ID)
	if err != nil {
		t.Fatalf("reload gift failed: %v", err)
	}
	if reloaded.AvailableQuantity != 0 {
		t.Fatalf("expected availability exhausted, got %d", reloaded.AvailableQuantity)
	}
}

func TestPlaceOrderInactiveGiftRejected(t *testing.T) {
	f := newFixture(t)
	gift := f.createGift(t, "Abajur", "80.00", 1)
	gift.Active = false
	if err := f.gifts.Update(gift); err != nil {
		t.Fatalf("deactivate gift failed: %v", err)
	}
	svc := newOrderService(t, f, payment.NewInstantGateway())

	if _, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		Slug: f.list.Slug, GiftItemID: gift.ID, Quantity: 1, GuestName: "Convidado",
	}); !errors.Is(err, ErrGiftInactive) {
		t.Fatalf("expected ErrGiftInactive, got %v", err)
	}
}

func TestPlaceOrderStoresGuestMessage(t *testing.T) {
	f := newFixture(t)
	gift := f.createGift(t, "Jogo de Copos", "120.00", 1)
	svc := newOrderService(t, f, payment.NewInstantGateway())

	result, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		Slug:             f.list.Slug,
		GiftItemID:       gift.ID,
		Quantity:         1,
		GuestName:        "Convidada",
		MessageBody:      "Felicidades aos noivos!",
		MessageSignature: "Com carinho, Convidada",
		MessagePublic:    true,
	})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if result.Message == nil {
		t.Fatalf("expected message created alongside order")
	}
	if !result.Message.IsPublic {
		t.Fatalf("expected public message when the list allows it")
	}
	if result.Message.OrderID == nil || *result.Message.OrderID != result.Order.ID {
		t.Fatalf("expected message linked to order")
	}
	if result.Message.Signature != "Com carinho, Convidada" {
		t.Fatalf("expected signature stored, got %q", result.Message.Signature)
	}
}

func TestPlaceOrderSkipsMessageWhenListDisallows(t *testing.T) {
	f := newFixture(t)
	f.list.AllowPublicMessages = false
	if err := f.lists.Update(f.list); err != nil {
		t.Fatalf("update list failed: %v", err)
	}
	gift := f.createGift(t, "Vinho", "90.00", 1)
	svc := newOrderService(t, f, payment.NewInstantGateway())

	result, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		Slug: f.list.Slug, GiftItemID: gift.ID, Quantity: 1,
		GuestName: "Convidado", MessageBody: "Parabéns", MessagePublic: true,
	})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if result.Message != nil {
		t.Fatalf("expected no message row when list disallows messages")
	}
	stored, err := f.messages.ListByGiftListID(f.list.ID)
	if err != nil {
		t.Fatalf("list messages failed: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected no message persisted, got %d", len(stored))
	}
}

func TestDeferredGatewayLeavesOrderPending(t *testing.T) {
	f := newFixture(t)
	gift := f.createGift(t, "Mala de Viagem", "600.00", 2)
	svc := newOrderService(t, f, &deferredGateway{})

	result, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		Slug: f.list.Slug, GiftItemID: gift.ID, Quantity: 1, GuestName: "Convidado",
	})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if result.Order.Status != constants.OrderStatusPending {
		t.Fatalf("expected PENDING with deferred gateway, got %s", result.Order.Status)
	}

	reloaded, err := f.gifts.FindByID(gift.ID)
	if err != nil {
		t.Fatalf("reload gift failed: %v", err)
	}
	if reloaded.AvailableQuantity != 2 {
		t.Fatalf("expected stock untouched while pending, got %d", reloaded.AvailableQuantity)
	}
}

func TestWebhookConfirmsPendingOrder(t *testing.T) {
	f := newFixture(t)
	gift := f.createGift(t, "Mala de Viagem", "600.00", 1)
	svc := newOrderService(t, f, &deferredGateway{})

	result, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		Slug: f.list.Slug, GiftItemID: gift.ID, Quantity: 1, GuestName: "Convidado",
	})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}

	updated, err := svc.HandleWebhook(payment.WebhookEvent{OrderNo: result.Order.OrderNo, Status: "paid"})
	if err != nil {
		t.Fatalf("HandleWebhook failed: %v", err)
	}
	if updated.Status != constants.OrderStatusPaid {
		t.Fatalf("expected PAID after webhook, got %s", updated.Status)
	}
	reloaded, _ := f.gifts.FindByID(gift.ID)
	if reloaded.AvailableQuantity != 0 {
		t.Fatalf("expected stock decremented on confirmation, got %d", reloaded.AvailableQuantity)
	}

	// 重复投递同一状态应幂等
	again, err := svc.HandleWebhook(payment.WebhookEvent{OrderNo: result.Order.OrderNo, Status: "paid"})
	if err != nil {
		t.Fatalf("repeated webhook failed: %v", err)
	}
	if again.Status != constants.OrderStatusPaid {
		t.Fatalf("expected idempotent webhook, got %s", again.Status)
	}
	reloaded, _ = f.gifts.FindByID(gift.ID)
	if reloaded.AvailableQuantity != 0 {
		t.Fatalf("expected no double decrement, got %d", reloaded.AvailableQuantity)
	}
}

func TestWebhookFailsOrderWhenStockGone(t *testing.T) {
	f := newFixture(t)
	gift := f.createGift(t, "Churrasqueira", "300.00", 1)
	svc := newOrderService(t, f, &deferredGateway{})

	first, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		Slug: f.list.Slug, GiftItemID: gift.ID, Quantity: 1, GuestName: "A",
	})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	second, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		Slug: f.list.Slug, GiftItemID: gift.ID, Quantity: 1, GuestName: "B",
	})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}

	if _, err := svc.HandleWebhook(payment.WebhookEvent{OrderNo: first.Order.OrderNo, Status: "paid"}); err != nil {
		t.Fatalf("first webhook failed: %v", err)
	}
	updated, err := svc.HandleWebhook(payment.WebhookEvent{OrderNo: second.Order.OrderNo, Status: "paid"})
	if err != nil {
		t.Fatalf("second webhook failed: %v", err)
	}
	if updated.Status != constants.OrderStatusFailed {
		t.Fatalf("expected FAILED when stock is gone, got %s", updated.Status)
	}
}

func TestWebhookRefundRestoresStock(t *testing.T) {
	f := newFixture(t)
	gift := f.createGift(t, "Tapete", "200.00", 1)
	svc := newOrderService(t, f, payment.NewInstantGateway())

	result, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		Slug: f.list.Slug, GiftItemID: gift.ID, Quantity: 1, GuestName: "Convidado",
	})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}

	updated, err := svc.HandleWebhook(payment.WebhookEvent{OrderNo: result.Order.OrderNo, Status: "refunded"})
	if err != nil {
		t.Fatalf("refund webhook failed: %v", err)
	}
	if updated.Status != constants.OrderStatusRefunded {
		t.Fatalf("expected REFUNDED, got %s", updated.Status)
	}
	reloaded, _ := f.gifts.FindByID(gift.ID)
	if reloaded.AvailableQuantity != 1 {
		t.Fatalf("expected stock restored after refund, got %d", reloaded.AvailableQuantity)
	}
}

func TestWebhookRejectsIllegalTransition(t *testing.T) {
	f := newFixture(t)
	gift := f.createGift(t, "Tapete", "200.00", 1)
	svc := newOrderService(t, f, payment.NewInstantGateway())

	result, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		Slug: f.list.Slug, GiftItemID: gift.ID, Quantity: 1, GuestName: "Convidado",
	})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if _, err := svc.HandleWebhook(payment.WebhookEvent{OrderNo: result.Order.OrderNo, Status: "pending"}); !errors.Is(err, ErrOrderTransition) {
		t.Fatalf("expected ErrOrderTransition for PAID -> PENDING, got %v", err)
	}
	if _, err := svc.HandleWebhook(payment.WebhookEvent{OrderNo: result.Order.OrderNo, Status: "shipped"}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for unknown gateway status, got %v", err)
	}
}

func TestCancelExpiredOrderOnlyTouchesPending(t *testing.T) {
	f := newFixture(t)
	gift := f.createGift(t, "Forno", "700.00", 1)
	svc := newOrderService(t, f, &deferredGateway{})

	result, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		Slug: f.list.Slug, GiftItemID: gift.ID, Quantity: 1, GuestName: "Convidado",
	})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}

	canceled, err := svc.CancelExpiredOrder(result.Order.OrderNo)
	if err != nil {
		t.Fatalf("CancelExpiredOrder failed: %v", err)
	}
	if !canceled {
		t.Fatalf("expected pending order to be canceled")
	}

	canceled, err = svc.CancelExpiredOrder(result.Order.OrderNo)
	if err != nil {
		t.Fatalf("CancelExpiredOrder failed: %v", err)
	}
	if canceled {
		t.Fatalf("expected second cancel to be a no-op")
	}

	canceled, err = svc.CancelExpiredOrder("LMUNKNOWN")
	if err != nil || canceled {
		t.Fatalf("expected unknown order to be ignored, got canceled=%v err=%v", canceled, err)
	}
}

func TestQuoteGiftMatchesPlacedOrder(t *testing.T) {
	f := newFixture(t)
	gift := f.createGift(t, "Jantar", "100.00", 5)
	svc := newOrderService(t, f, payment.NewInstantGateway())

	quote, err := svc.QuoteGift(f.list, gift.ID, 2)
	if err != nil {
		t.Fatalf("QuoteGift failed: %v", err)
	}
	result, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		Slug: f.list.Slug, GiftItemID: gift.ID, Quantity: 2, GuestName: "Convidado",
	})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if quote.TotalAmount.String() != result.Order.TotalAmount.String() {
		t.Fatalf("expected quote and order totals to match: %s vs %s", quote.TotalAmount, result.Order.TotalAmount)
	}
	if quote.RecipientAmount.String() != result.Order.RecipientAmount.String() {
		t.Fatalf("expected quote and order recipient amounts to match")
	}
}
