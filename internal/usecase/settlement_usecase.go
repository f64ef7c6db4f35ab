package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"assistec/internal/domain/entities"
	"assistec/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrSaleNotFound        = errors.New("sale not found")
	ErrInvalidSaleID       = errors.New("invalid sale id")
	ErrSaleAlreadyExists   = errors.New("sale already exists for this quote")
	ErrSaleAlreadySettled  = errors.New("sale already settled")
	ErrQuoteNotApproved    = errors.New("quote not approved")
	ErrInvalidDiscount     = errors.New("invalid discount")
	ErrInstallmentMismatch = errors.New("installment total mismatch exceeds tolerance")
)

// installmentTolerance is the maximum accepted drift between the planned
// installment sum and the sale net amount.
var installmentTolerance = decimal.RequireFromString("0.10")

// ISettlementUseCase converts approved quotes into sales and settles sales
// into receivables.

type ISettlementUseCase interface {
	ConfirmSale(ctx context.Context, quoteID string, discount decimal.Decimal, nature entities.OperationNature, actor string) (entities.Sale, error)
	Settle(ctx context.Context, saleID, actor string) (entities.Sale, []entities.Receivable, error)
	GetSale(ctx context.Context, id string) (entities.Sale, error)
	ListReceivables(ctx context.Context, saleID string) ([]entities.Receivable, error)
}

type SettlementUseCase struct {
	sales       interfaces.ISaleRepository
	receivables interfaces.IReceivableRepository
	quotes      IQuoteUseCase
	clients     interfaces.IClientDirectory
	resolver    *LedgerResolver
	gateway     interfaces.IChargeGateway
	clock       interfaces.Clock
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(
	sales interfaces.ISaleRepository,
	receivables interfaces.IReceivableRepository,
	quotes IQuoteUseCase,
	clients interfaces.IClientDirectory,
	resolver *LedgerResolver,
	gateway interfaces.IChargeGateway,
	clock interfaces.Clock,
) *SettlementUseCase {
	return &SettlementUseCase{
		sales:       sales,
		receivables: receivables,
		quotes:      quotes,
		clients:     clients,
		resolver:    resolver,
		gateway:     gateway,
		clock:       clock,
	}
}

// ConfirmSale snapshots an approved quote into a pending-settlement sale.
// One sale per quote.
func (u *SettlementUseCase) ConfirmSale(ctx context.Context, quoteID string, discount decimal.Decimal, nature entities.OperationNature, actor string) (entities.Sale, error) {
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Sale{}, err
	}
	if q.Status != entities.QuoteStatusApproved {
		return entities.Sale{}, ErrQuoteNotApproved
	}

	discount = discount.Round(2)
	if discount.IsNegative() || discount.GreaterThan(q.Total) {
		return entities.Sale{}, ErrInvalidDiscount
	}

	if existing, err := u.sales.GetByQuoteID(ctx, q.ID); err != nil {
		return entities.Sale{}, err
	} else if existing.ID != "" {
		return entities.Sale{}, ErrSaleAlreadyExists
	}

	if nature != entities.NatureGoodsSale {
		nature = entities.NatureService
	}

	now := u.clock.Now()
	s := entities.Sale{
		ID:          uuid.NewString(),
		QuoteID:     q.ID,
		ClientID:    q.ClientID,
		GrossAmount: q.Total,
		Discount:    discount,
		NetAmount:   q.Total.Sub(discount),
		Terms:       q.Terms,
		Nature:      nature,
		Status:      entities.SaleStatusPendingSettlement,
		CreatedAt:   now,
	}
	log.Printf("[settlement][usecase] sale confirmed quote_id=%s sale_id=%s net=%s actor=%s", q.ID, s.ID, s.NetAmount.StringFixed(2), actor)
	return u.sales.Create(ctx, s)
}

// Settle generates one open receivable per planned installment and marks the
// sale settled. Receivable ids are deterministic (saleID:sequence) and writes
// are upserts, so a crashed settlement can be re-run to completion; the sale
// status only flips after every receivable landed.
func (u *SettlementUseCase) Settle(ctx context.Context, saleID, actor string) (entities.Sale, []entities.Receivable, error) {
	s, err := u.GetSale(ctx, saleID)
	if err != nil {
		return entities.Sale{}, nil, err
	}
	if s.Status == entities.SaleStatusSettled {
		return entities.Sale{}, nil, ErrSaleAlreadySettled
	}

	now := u.clock.Now()
	installments, err := PlanInstallments(s.NetAmount, s.Terms, now)
	if err != nil {
		return entities.Sale{}, nil, err
	}
	sum := decimal.Zero
	for _, inst := range installments {
		sum = sum.Add(inst.Amount)
	}
	if sum.Sub(s.NetAmount).Abs().GreaterThan(installmentTolerance) {
		return entities.Sale{}, nil, ErrInstallmentMismatch
	}

	// Ledger resolution is non-fatal; sentinel fallbacks keep settlement going.
	costRef := DefaultCostCenterRef
	client, err := u.clients.GetClient(ctx, s.ClientID)
	if err != nil || client.ID == "" {
		log.Printf("[settlement][usecase] client lookup failed sale_id=%s client_id=%s err=%v; using default cost center", s.ID, s.ClientID, err)
	} else {
		costRef = u.resolver.ResolveCostCenter(ctx, client)
	}
	chartRef := u.resolver.ResolveChartAccount(ctx, s.Nature)

	out := make([]entities.Receivable, 0, len(installments))
	for _, inst := range installments {
		r := entities.Receivable{
			ID:             entities.ReceivableID(s.ID, inst.Sequence),
			SaleID:         s.ID,
			Sequence:       inst.Sequence,
			DueDate:        inst.DueDate,
			OriginalAmount: inst.Amount,
			FinalAmount:    inst.Amount,
			PaidAmount:     decimal.Zero,
			Status:         entities.ReceivableStatusOpen,
			CostCenter:     costRef,
			ChartAccount:   chartRef,
			Method:         inst.Method,
			CreatedAt:      now,
		}
		saved, err := u.receivables.Upsert(ctx, r)
		if err != nil {
			log.Printf("[settlement][usecase] receivable upsert failed sale_id=%s seq=%d err=%v", s.ID, inst.Sequence, err)
			return entities.Sale{}, nil, err
		}
		u.registerCharge(ctx, saved)
		out = append(out, saved)
	}

	s.Status = entities.SaleStatusSettled
	s.SettledBy = strings.TrimSpace(actor)
	s.SettledAt = &now
	settled, err := u.sales.Save(ctx, s)
	if err != nil {
		return entities.Sale{}, nil, err
	}
	log.Printf("[settlement][usecase] sale settled sale_id=%s receivables=%d actor=%s", s.ID, len(out), actor)
	return settled, out, nil
}

// registerCharge pushes boleto/pix receivables to the external charge
// provider when one is configured. Failures are logged, never propagated.
func (u *SettlementUseCase) registerCharge(ctx context.Context, r entities.Receivable) {
	if u.gateway == nil {
		return
	}
	if r.Method != entities.PaymentMethodBoleto && r.Method != entities.PaymentMethodPix {
		return
	}
	chargeID, err := u.gateway.RegisterCharge(ctx, r.ID, r.FinalAmount, string(r.Method), r.DueDate.Format(time.DateOnly))
	if err != nil {
		log.Printf("[settlement][usecase] charge registration failed receivable_id=%s err=%v", r.ID, err)
		return
	}
	log.Printf("[settlement][usecase] charge registered receivable_id=%s provider_charge_id=%s", r.ID, chargeID)
}

func (u *SettlementUseCase) GetSale(ctx context.Context, id string) (entities.Sale, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}
	s, err := u.sales.GetByID(ctx, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if s.ID == "" {
		return entities.Sale{}, ErrSaleNotFound
	}
	return s, nil
}

func (u *SettlementUseCase) ListReceivables(ctx context.Context, saleID string) ([]entities.Receivable, error) {
	saleID = strings.TrimSpace(saleID)
	if saleID == "" {
		return nil, ErrInvalidSaleID
	}
	return u.receivables.ListBySaleID(ctx, saleID)
}
