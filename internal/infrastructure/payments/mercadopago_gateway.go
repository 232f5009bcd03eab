package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"meshguard_api/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const (
	StatusApproved       = "approved"
	mockConfirmationSize = 10
)

type Config struct {
	AccessToken string
	// Mock simulates an instant approval without calling the provider.
	Mock bool
	// TestPayerEmail is used when a sandbox request has no payer email.
	TestPayerEmail string
}

type MercadoPagoGateway struct {
	client         payment.Client
	mockMode       bool
	testPayerEmail string
	sandbox        bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg Config) (*MercadoPagoGateway, error) {
	if cfg.Mock {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	token := strings.TrimSpace(cfg.AccessToken)
	if token == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(token)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized sandbox=%t", strings.HasPrefix(token, "TEST-"))

	return &MercadoPagoGateway{
		client:         payment.NewClient(sdkCfg),
		testPayerEmail: strings.TrimSpace(cfg.TestPayerEmail),
		sandbox:        strings.HasPrefix(token, "TEST-"),
	}, nil
}

// NewMockGateway is the simulated M-Pesa push used by default.
func NewMockGateway() *MercadoPagoGateway {
	return &MercadoPagoGateway{mockMode: true}
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start payload_len=%d", len(requestPayload))

	var reqMap map[string]any
	if err := json.Unmarshal(requestPayload, &reqMap); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}
	g.ensurePayerDefaults(reqMap)
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return "", "", nil, err
	}

	var req payment.Request
	if err := json.Unmarshal(enriched, &req); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// mockCreate echoes the request and approves it with an M-Pesa style receipt code.
func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	log.Printf("[payment][gateway] mock create start payload_len=%d", len(requestPayload))

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	id := mockReceiptCode()
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = StatusApproved
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return "", "", nil, err
	}

	log.Printf("[payment][gateway] mock create success provider_payment_id=%s provider_status=approved", id)
	return id, StatusApproved, b, nil
}

func mockReceiptCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:mockConfirmationSize]
}

// ensurePayerDefaults fills payer.email in sandbox, where Mercado Pago rejects
// requests without one.
func (g *MercadoPagoGateway) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if email, _ := payer["email"].(string); strings.TrimSpace(email) != "" {
		return
	}
	switch {
	case g.testPayerEmail != "":
		payer["email"] = g.testPayerEmail
	case g.sandbox:
		payer["email"] = "test_user_ke@testuser.com"
	}
}
