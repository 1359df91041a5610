package service

import (
	"errors"
	"testing"

	"github.com/lumie-registry/internal/constants"
	"github.com/lumie-registry/internal/models"
)

func TestComputeQuotePassToGuest(t *testing.T) {
	quote, err := ComputeQuote(models.MustMoney("100.00"), 1, constants.FeeModePassToGuest, models.MustMoney("7.99"))
	if err != nil {
		t.Fatalf("ComputeQuote failed: %v", err)
	}
	if quote.BaseAmount.String() != "100.00" {
		t.Fatalf("expected base 100.00, got %s", quote.BaseAmount)
	}
	if quote.FeeAmount.String() != "7.99" {
		t.Fatalf("expected fee 7.99, got %s", quote.FeeAmount)
	}
	if quote.TotalAmount.String() != "107.99" {
		t.Fatalf("expected total 107.99, got %s", quote.TotalAmount)
	}
	if quote.RecipientAmount.String() != "100.00" {
		t.Fatalf("expected recipient 100.00, got %s", quote.RecipientAmount)
	}
}

func TestComputeQuoteAbsorb(t *testing.T) {
	quote, err := ComputeQuote(models.MustMoney("100.00"), 1, constants.FeeModeAbsorb, models.MustMoney("7.99"))
	if err != nil {
		t.Fatalf("ComputeQuote failed: %v", err)
	}
	if quote.TotalAmount.String() != "100.00" {
		t.Fatalf("expected total 100.00, got %s", quote.TotalAmount)
	}
	if quote.RecipientAmount.String() != "92.01" {
		t.Fatalf("expected recipient 92.01, got %s", quote.RecipientAmount)
	}
}

func TestComputeQuoteRoundsEachStep(t *testing.T) {
	// 33.33 * 3 = 99.99; 99.99 * 7.99% = 7.989201 -> 7.99
	quote, err := ComputeQuote(models.MustMoney("33.33"), 3, constants.FeeModePassToGuest, models.MustMoney("7.99"))
	if err != nil {
		t.Fatalf("ComputeQuote failed: %v", err)
	}
	if quote.BaseAmount.String() != "99.99" {
		t.Fatalf("expected base 99.99, got %s", quote.BaseAmount)
	}
	if quote.FeeAmount.String() != "7.99" {
		t.Fatalf("expected fee rounded to 7.99, got %s", quote.FeeAmount)
	}
	if quote.TotalAmount.String() != "107.98" {
		t.Fatalf("expected total 107.98, got %s", quote.TotalAmount)
	}
}

func TestComputeQuoteDeterministic(t *testing.T) {
	first, err := ComputeQuote(models.MustMoney("49.90"), 2, constants.FeeModeAbsorb, models.MustMoney("7.99"))
	if err != nil {
		t.Fatalf("ComputeQuote failed: %v", err)
	}
	second, err := ComputeQuote(models.MustMoney("49.90"), 2, constants.FeeModeAbsorb, models.MustMoney("7.99"))
	if err != nil {
		t.Fatalf("ComputeQuote failed: %v", err)
	}
	if first.TotalAmount.String() != second.TotalAmount.String() ||
		first.RecipientAmount.String() != second.RecipientAmount.String() {
		t.Fatalf("expected identical quotes for identical input")
	}
}

func TestComputeQuoteModeSymmetry(t *testing.T) {
	// 两种模式下 base 与 fee 相同，只是由谁承担不同
	pass, err := ComputeQuote(models.MustMoney("250.00"), 1, constants.FeeModePassToGuest, models.MustMoney("7.99"))
	if err != nil {
		t.Fatalf("ComputeQuote failed: %v", err)
	}
	absorb, err := ComputeQuote(models.MustMoney("250.00"), 1, constants.FeeModeAbsorb, models.MustMoney("7.99"))
	if err != nil {
		t.Fatalf("ComputeQuote failed: %v", err)
	}
	if pass.FeeAmount.String() != absorb.FeeAmount.String() {
		t.Fatalf("expected identical fee across modes, got %s vs %s", pass.FeeAmount, absorb.FeeAmount)
	}
	if pass.TotalAmount.SubMoney(pass.RecipientAmount).String() != pass.FeeAmount.String() {
		t.Fatalf("expected guest to carry the fee in pass mode")
	}
	if absorb.BaseAmount.SubMoney(absorb.RecipientAmount).String() != absorb.FeeAmount.String() {
		t.Fatalf("expected recipient to carry the fee in absorb mode")
	}
}

func TestComputeQuoteRejectsBadInput(t *testing.T) {
	if _, err := ComputeQuote(models.MustMoney("10.00"), 0, constants.FeeModePassToGuest, models.MustMoney("7.99")); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := ComputeQuote(models.MustMoney("10.00"), -2, constants.FeeModePassToGuest, models.MustMoney("7.99")); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity for negative quantity, got %v", err)
	}
	if _, err := ComputeQuote(models.MustMoney("-1.00"), 1, constants.FeeModePassToGuest, models.MustMoney("7.99")); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
	if _, err := ComputeQuote(models.ZeroMoney(), 1, constants.FeeModePassToGuest, models.MustMoney("7.99")); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice for zero price, got %v", err)
	}
	if _, err := ComputeQuote(models.MustMoney("10.00"), 1, "SPLIT", models.MustMoney("7.99")); !errors.Is(err, ErrInvalidFeeMode) {
		t.Fatalf("expected ErrInvalidFeeMode, got %v", err)
	}
}

func TestComputeQuoteZeroFeePercent(t *testing.T) {
	quote, err := ComputeQuote(models.MustMoney("80.00"), 1, constants.FeeModeAbsorb, models.ZeroMoney())
	if err != nil {
		t.Fatalf("ComputeQuote failed: %v", err)
	}
	if quote.FeeAmount.String() != "0.00" {
		t.Fatalf("expected zero fee, got %s", quote.FeeAmount)
	}
	if quote.RecipientAmount.String() != "80.00" {
		t.Fatalf("expected full amount to recipient, got %s", quote.RecipientAmount)
	}
}
