package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "topsecret"
	body := []byte(`{"order_no":"LM1","status":"paid"}`)

	if !VerifySignature(secret, body, sign(secret, body)) {
		t.Fatalf("expected valid signature to pass")
	}
	if VerifySignature(secret, body, sign("other", body)) {
		t.Fatalf("expected signature from wrong secret to fail")
	}
	if VerifySignature(secret, []byte(`tampered`), sign(secret, body)) {
		t.Fatalf("expected tampered body to fail")
	}
	if VerifySignature(secret, body, "") {
		t.Fatalf("expected empty signature to fail")
	}
	if VerifySignature("", body, sign("", body)) {
		t.Fatalf("expected empty secret to reject everything")
	}
}

func TestMapGatewayStatus(t *testing.T) {
	cases := map[string]string{
		"paid":            "PAID",
		"captured":        "PAID",
		"Authorized":      "AUTHORIZED",
		"waiting_payment": "PENDING",
		"refused":         "FAILED",
		"chargedback":     "FAILED",
		"canceled":        "CANCELED",
		"voided":          "CANCELED",
		"refunded":        "REFUNDED",
		"shipped":         "",
		"":                "",
	}
	for input, want := range cases {
		if got := MapGatewayStatus(input); got != want {
			t.Fatalf("MapGatewayStatus(%q) = %q, want %q", input, got, want)
		}
	}
}
