package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/lumie-registry/internal/models"
)

func TestInstantGatewayApproves(t *testing.T) {
	gateway := NewInstantGateway()
	result, err := gateway.Authorize(context.Background(), Charge{
		OrderNo:   "LM20260901120000ABCDEF12",
		Amount:    models.MustMoney("107.99"),
		GuestName: "Carla",
	})
	if err != nil {
		t.Fatalf("authorize failed: %v", err)
	}
	if !result.Approved {
		t.Fatalf("expected instant gateway to approve")
	}
	if !strings.HasPrefix(result.Reference, "instant_") {
		t.Fatalf("unexpected reference %q", result.Reference)
	}
}

func TestInstantGatewayRejectsNonPositiveAmount(t *testing.T) {
	gateway := NewInstantGateway()
	for _, amount := range []string{"0.00", "-10.00"} {
		if _, err := gateway.Authorize(context.Background(), Charge{
			OrderNo: "LM20260901120000ABCDEF12",
			Amount:  models.MustMoney(amount),
		}); err == nil {
			t.Fatalf("expected rejection for amount %s", amount)
		}
	}
}
