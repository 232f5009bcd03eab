package request

import "testing"

func TestQuoteRequest_ResolveWindowCount(t *testing.T) {
	if got := (QuoteRequest{WindowCount: 3, Count: 5}).ResolveWindowCount(); got != 3 {
		t.Fatalf("expected window_count to win, got %d", got)
	}
	if got := (QuoteRequest{Count: 2}).ResolveWindowCount(); got != 2 {
		t.Fatalf("expected count alias, got %d", got)
	}
	if got := (QuoteRequest{}).ResolveWindowCount(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestQuoteStatusRequest_ResolveStatus(t *testing.T) {
	if got := (QuoteStatusRequest{Status: "  Paid "}).ResolveStatus(); got != "paid" {
		t.Fatalf("expected paid, got %q", got)
	}
}

func TestLoginRequest_ResolveEmail(t *testing.T) {
	if got := (LoginRequest{Email: " Amina@Example.COM "}).ResolveEmail(); got != "amina@example.com" {
		t.Fatalf("unexpected email %q", got)
	}
}

func TestPaymentRequest_ResolveQuoteID(t *testing.T) {
	if got := (PaymentRequest{QuoteID: " q-1 "}).ResolveQuoteID(); got != "q-1" {
		t.Fatalf("expected q-1, got %q", got)
	}
}
