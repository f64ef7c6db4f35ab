package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"assistec/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrChargeGatewayNotConfigured = errors.New("charge gateway not configured")

// mpMethodIDs maps our normalized methods to Mercado Pago payment method ids.
var mpMethodIDs = map[string]string{
	"boleto": "bolbradesco",
	"pix":    "pix",
}

// MercadoPagoChargeGateway registers boleto/pix charges for generated
// receivables. Settlement treats every failure here as non-fatal.

type MercadoPagoChargeGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IChargeGateway = (*MercadoPagoChargeGateway)(nil)

func NewMercadoPagoChargeGateway(accessToken string) (*MercadoPagoChargeGateway, error) {
	if isChargeGatewayMockEnabled() {
		log.Printf("[charge][gateway] mock mode enabled")
		return &MercadoPagoChargeGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[charge][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[charge][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[charge][gateway] Mercado Pago client initialized")

	return &MercadoPagoChargeGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoChargeGateway) RegisterCharge(ctx context.Context, receivableID string, amount decimal.Decimal, method string, dueDate string) (string, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[charge][gateway] mock register receivable_id=%s amount=%s provider_charge_id=%s", receivableID, amount.StringFixed(2), id)
		return id, nil
	}

	if g == nil || g.client == nil {
		return "", ErrChargeGatewayNotConfigured
	}

	methodID, ok := mpMethodIDs[strings.ToLower(method)]
	if !ok {
		return "", fmt.Errorf("unsupported charge method %q", method)
	}

	txAmount, _ := amount.Round(2).Float64()
	req := payment.Request{
		TransactionAmount: txAmount,
		PaymentMethodID:   methodID,
		ExternalReference: receivableID,
		Description:       fmt.Sprintf("Receivable %s due %s", receivableID, dueDate),
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[charge][gateway] sdk create failed receivable_id=%s err=%v", receivableID, err)
		return "", err
	}
	log.Printf("[charge][gateway] charge registered receivable_id=%s provider_charge_id=%d provider_status=%s", receivableID, resp.ID, resp.Status)
	return fmt.Sprintf("%d", resp.ID), nil
}

func isChargeGatewayMockEnabled() bool {
	for _, key := range []string{"CHARGE_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
