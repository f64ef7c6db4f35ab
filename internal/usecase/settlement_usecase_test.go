package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"assistec/internal/domain/entities"
	"assistec/internal/usecase/interfaces"
	mock_interfaces "assistec/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// quoteStub satisfies IQuoteUseCase; settlement only reads quotes.
type quoteStub struct {
	quote entities.Quote
	err   error
}

func (s *quoteStub) Create(context.Context, CreateQuoteInput) (entities.Quote, error) {
	return entities.Quote{}, nil
}

func (s *quoteStub) GetByID(context.Context, string) (entities.Quote, error) {
	return s.quote, s.err
}

func (s *quoteStub) AddItem(context.Context, string, entities.QuoteItem, string) (entities.Quote, error) {
	return entities.Quote{}, nil
}

func (s *quoteStub) RemoveItem(context.Context, string, int, string) (entities.Quote, error) {
	return entities.Quote{}, nil
}

func (s *quoteStub) Send(context.Context, string, string) (entities.Quote, error) {
	return entities.Quote{}, nil
}

func (s *quoteStub) Approve(context.Context, string, string) (entities.Quote, error) {
	return entities.Quote{}, nil
}

func (s *quoteStub) Reject(context.Context, string, string, string) (entities.Quote, error) {
	return entities.Quote{}, nil
}

func (s *quoteStub) ExpireOverdue(context.Context) (int, error) { return 0, nil }

var _ IQuoteUseCase = (*quoteStub)(nil)

func approvedQuote(total string) entities.Quote {
	return entities.Quote{
		ID:       "q-1",
		ClientID: "c-1",
		Status:   entities.QuoteStatusApproved,
		Total:    d(total),
		Terms: entities.PaymentTerms{
			Kind:        entities.TermsInstallment,
			Installment: &entities.InstallmentTerms{Count: 3, DueDay: 10, Method: "boleto"},
		},
	}
}

func TestSettlementUseCase_ConfirmSale(t *testing.T) {
	now := time.Date(2026, time.August, 5, 10, 0, 0, 0, time.UTC)

	t.Run("quote not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := &quoteStub{quote: entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}}
		uc := NewSettlementUseCase(nil, nil, quotes, nil, nil, nil, fixedClockAt(ctrl, now))

		_, err := uc.ConfirmSale(context.Background(), "q-1", decimal.Zero, entities.NatureService, "maria")
		if !errors.Is(err, ErrQuoteNotApproved) {
			t.Fatalf("expected ErrQuoteNotApproved, got %v", err)
		}
	})

	t.Run("discount above total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := &quoteStub{quote: approvedQuote("900")}
		uc := NewSettlementUseCase(nil, nil, quotes, nil, nil, nil, fixedClockAt(ctrl, now))

		_, err := uc.ConfirmSale(context.Background(), "q-1", d("1000"), entities.NatureService, "maria")
		if !errors.Is(err, ErrInvalidDiscount) {
			t.Fatalf("expected ErrInvalidDiscount, got %v", err)
		}
	})

	t.Run("one sale per quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		quotes := &quoteStub{quote: approvedQuote("900")}
		uc := NewSettlementUseCase(sales, nil, quotes, nil, nil, nil, fixedClockAt(ctrl, now))

		sales.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Sale{ID: "existing"}, nil)

		_, err := uc.ConfirmSale(context.Background(), "q-1", decimal.Zero, entities.NatureService, "maria")
		if !errors.Is(err, ErrSaleAlreadyExists) {
			t.Fatalf("expected ErrSaleAlreadyExists, got %v", err)
		}
	})

	t.Run("confirm snapshots amounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		quotes := &quoteStub{quote: approvedQuote("900")}
		uc := NewSettlementUseCase(sales, nil, quotes, nil, nil, nil, fixedClockAt(ctrl, now))

		sales.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.Sale{}, nil)
		sales.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Sale{})).DoAndReturn(
			func(_ context.Context, s entities.Sale) (entities.Sale, error) {
				if !s.GrossAmount.Equal(d("900")) || !s.Discount.Equal(d("50")) || !s.NetAmount.Equal(d("850")) {
					t.Fatalf("unexpected amounts: %+v", s)
				}
				if s.Status != entities.SaleStatusPendingSettlement {
					t.Fatalf("expected pending_settlement, got %s", s.Status)
				}
				return s, nil
			},
		)

		sale, err := uc.ConfirmSale(context.Background(), "q-1", d("50"), entities.NatureGoodsSale, "maria")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sale.Nature != entities.NatureGoodsSale {
			t.Fatalf("expected goods_sale, got %s", sale.Nature)
		}
	})
}

func pendingSale(net string) entities.Sale {
	return entities.Sale{
		ID:        "s-1",
		QuoteID:   "q-1",
		ClientID:  "c-1",
		NetAmount: d(net),
		Terms: entities.PaymentTerms{
			Kind:        entities.TermsInstallment,
			Installment: &entities.InstallmentTerms{Count: 3, DueDay: 10, Method: "boleto"},
		},
		Nature: entities.NatureService,
		Status: entities.SaleStatusPendingSettlement,
	}
}

func TestSettlementUseCase_Settle(t *testing.T) {
	now := time.Date(2026, time.August, 5, 10, 0, 0, 0, time.UTC)

	newResolver := func(ctrl *gomock.Controller, ledger *mock_interfaces.MockILedgerRepository) *LedgerResolver {
		return NewLedgerResolver(ledger, fixedClockAt(ctrl, now))
	}

	t.Run("already settled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSettlementUseCase(sales, nil, nil, nil, nil, nil, fixedClockAt(ctrl, now))

		settled := pendingSale("900")
		settled.Status = entities.SaleStatusSettled
		sales.EXPECT().GetByID(gomock.Any(), "s-1").Return(settled, nil)

		_, _, err := uc.Settle(context.Background(), "s-1", "maria")
		if !errors.Is(err, ErrSaleAlreadySettled) {
			t.Fatalf("expected ErrSaleAlreadySettled, got %v", err)
		}
	})

	t.Run("settle generates deterministic receivables", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		receivables := mock_interfaces.NewMockIReceivableRepository(ctrl)
		clients := mock_interfaces.NewMockIClientDirectory(ctrl)
		ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
		gateway := mock_interfaces.NewMockIChargeGateway(ctrl)
		uc := NewSettlementUseCase(sales, receivables, nil, clients, newResolver(ctrl, ledger), gateway, fixedClockAt(ctrl, now))

		sales.EXPECT().GetByID(gomock.Any(), "s-1").Return(pendingSale("900"), nil)
		clients.EXPECT().GetClient(gomock.Any(), "c-1").Return(interfaces.ClientInfo{ID: "c-1", Name: "Acme"}, nil)
		ledger.EXPECT().GetCostCenterByCode(gomock.Any(), "CC-ACME").Return(entities.CostCenter{
			ID: "cc-1", Code: "CC-ACME", Name: "Acme", GroupCode: "CC-CLIENTS",
		}, nil)
		ledger.EXPECT().GetChartAccountByCode(gomock.Any(), "3.1.2").Return(entities.ChartAccount{
			ID: "ca-1", Code: "3.1.2", Name: "Service revenue",
		}, nil)

		var upserted []entities.Receivable
		receivables.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.Receivable{})).DoAndReturn(
			func(_ context.Context, r entities.Receivable) (entities.Receivable, error) {
				upserted = append(upserted, r)
				return r, nil
			},
		).Times(3)
		gateway.EXPECT().RegisterCharge(gomock.Any(), gomock.Any(), gomock.Any(), "boleto", gomock.Any()).Return("mp-1", nil).Times(3)
		sales.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Sale{})).DoAndReturn(
			func(_ context.Context, s entities.Sale) (entities.Sale, error) {
				if s.Status != entities.SaleStatusSettled || s.SettledBy != "maria" {
					t.Fatalf("unexpected settled sale: %+v", s)
				}
				return s, nil
			},
		)

		_, out, err := uc.Settle(context.Background(), "s-1", "maria")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 3 {
			t.Fatalf("expected 3 receivables, got %d", len(out))
		}
		for i, r := range out {
			wantID := entities.ReceivableID("s-1", i+1)
			if r.ID != wantID {
				t.Fatalf("receivable %d: expected id %s, got %s", i, wantID, r.ID)
			}
			if !r.OriginalAmount.Equal(d("300")) || !r.FinalAmount.Equal(d("300")) {
				t.Fatalf("receivable %d: unexpected amounts %+v", i, r)
			}
			if r.Status != entities.ReceivableStatusOpen {
				t.Fatalf("receivable %d: expected open, got %s", i, r.Status)
			}
			if r.CostCenter.Code != "CC-ACME" || r.ChartAccount.Code != "3.1.2" {
				t.Fatalf("receivable %d: unexpected ledger refs %+v", i, r)
			}
		}
		if len(upserted) != 3 {
			t.Fatalf("expected 3 upserts, got %d", len(upserted))
		}
	})

	t.Run("ledger failure falls back to default cost center", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		receivables := mock_interfaces.NewMockIReceivableRepository(ctrl)
		clients := mock_interfaces.NewMockIClientDirectory(ctrl)
		ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
		uc := NewSettlementUseCase(sales, receivables, nil, clients, newResolver(ctrl, ledger), nil, fixedClockAt(ctrl, now))

		sales.EXPECT().GetByID(gomock.Any(), "s-1").Return(pendingSale("900"), nil)
		clients.EXPECT().GetClient(gomock.Any(), "c-1").Return(interfaces.ClientInfo{ID: "c-1", Name: "Acme"}, nil)
		ledger.EXPECT().GetCostCenterByCode(gomock.Any(), "CC-ACME").Return(entities.CostCenter{}, errors.New("dynamo down"))
		ledger.EXPECT().GetChartAccountByCode(gomock.Any(), "3.1.2").Return(entities.ChartAccount{}, errors.New("dynamo down"))

		receivables.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Receivable) (entities.Receivable, error) {
				if r.CostCenter != DefaultCostCenterRef {
					t.Fatalf("expected default cost center, got %+v", r.CostCenter)
				}
				if r.ChartAccount != (entities.LedgerRef{}) {
					t.Fatalf("expected empty chart ref, got %+v", r.ChartAccount)
				}
				return r, nil
			},
		).Times(3)
		sales.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Sale) (entities.Sale, error) { return s, nil },
		)

		if _, _, err := uc.Settle(context.Background(), "s-1", "maria"); err != nil {
			t.Fatalf("settlement must not fail on ledger errors: %v", err)
		}
	})

	t.Run("charge failure does not block settlement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		receivables := mock_interfaces.NewMockIReceivableRepository(ctrl)
		clients := mock_interfaces.NewMockIClientDirectory(ctrl)
		ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
		gateway := mock_interfaces.NewMockIChargeGateway(ctrl)
		uc := NewSettlementUseCase(sales, receivables, nil, clients, newResolver(ctrl, ledger), gateway, fixedClockAt(ctrl, now))

		sales.EXPECT().GetByID(gomock.Any(), "s-1").Return(pendingSale("900"), nil)
		clients.EXPECT().GetClient(gomock.Any(), "c-1").Return(interfaces.ClientInfo{ID: "c-1", Name: "Acme"}, nil)
		ledger.EXPECT().GetCostCenterByCode(gomock.Any(), gomock.Any()).Return(entities.CostCenter{
			ID: "cc-1", Code: "CC-ACME", Name: "Acme", GroupCode: "CC-CLIENTS",
		}, nil)
		ledger.EXPECT().GetChartAccountByCode(gomock.Any(), gomock.Any()).Return(entities.ChartAccount{ID: "ca-1", Code: "3.1.2"}, nil)
		receivables.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Receivable) (entities.Receivable, error) { return r, nil },
		).Times(3)
		gateway.EXPECT().RegisterCharge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("provider down")).Times(3)
		sales.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Sale) (entities.Sale, error) { return s, nil },
		)

		if _, _, err := uc.Settle(context.Background(), "s-1", "maria"); err != nil {
			t.Fatalf("settlement must not fail on charge errors: %v", err)
		}
	})

	t.Run("upsert failure stops before sale flips", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		receivables := mock_interfaces.NewMockIReceivableRepository(ctrl)
		clients := mock_interfaces.NewMockIClientDirectory(ctrl)
		ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
		uc := NewSettlementUseCase(sales, receivables, nil, clients, newResolver(ctrl, ledger), nil, fixedClockAt(ctrl, now))

		sales.EXPECT().GetByID(gomock.Any(), "s-1").Return(pendingSale("900"), nil)
		clients.EXPECT().GetClient(gomock.Any(), "c-1").Return(interfaces.ClientInfo{ID: "c-1", Name: "Acme"}, nil)
		ledger.EXPECT().GetCostCenterByCode(gomock.Any(), gomock.Any()).Return(entities.CostCenter{
			ID: "cc-1", Code: "CC-ACME", Name: "Acme", GroupCode: "CC-CLIENTS",
		}, nil)
		ledger.EXPECT().GetChartAccountByCode(gomock.Any(), gomock.Any()).Return(entities.ChartAccount{ID: "ca-1", Code: "3.1.2"}, nil)
		receivables.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.Receivable{}, errors.New("dynamo down"))
		// No sales.Save expectation: the sale must stay pending.

		if _, _, err := uc.Settle(context.Background(), "s-1", "maria"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestReceivableID(t *testing.T) {
	if got := entities.ReceivableID("s-1", 0); got != "s-1:0" {
		t.Fatalf("expected s-1:0, got %s", got)
	}
	if got := entities.ReceivableID("s-1", 3); got != "s-1:3" {
		t.Fatalf("expected s-1:3, got %s", got)
	}
}
