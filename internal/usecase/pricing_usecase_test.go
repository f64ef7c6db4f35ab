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

func marginInputs(indirect, margin, tax, freight string) entities.PricingInputs {
	return entities.PricingInputs{
		IndirectPct: d(indirect),
		Method:      entities.PricingMethodMargin,
		MethodPct:   d(margin),
		TaxPct:      d(tax),
		Freight:     d(freight),
	}
}

func TestDerivePrice(t *testing.T) {
	cases := []struct {
		name       string
		cost       decimal.Decimal
		in         entities.PricingInputs
		wantBase   string
		wantFinal  string
		wantProfit string
		wantMargin string
	}{
		{
			name:       "margin with indirect tax and freight",
			cost:       d("80"),
			in:         marginInputs("10", "20", "5", "10"),
			wantBase:   "110",
			wantFinal:  "125.50",
			wantProfit: "35.50",
			wantMargin: "28.29",
		},
		{
			name:       "markup",
			cost:       d("100"),
			in:         entities.PricingInputs{Method: entities.PricingMethodMarkup, MethodPct: d("50")},
			wantBase:   "150",
			wantFinal:  "150",
			wantProfit: "50",
			wantMargin: "33.33",
		},
		{
			name:       "zero cost yields zero effective margin",
			cost:       decimal.Zero,
			in:         marginInputs("0", "20", "0", "0"),
			wantBase:   "0",
			wantFinal:  "0",
			wantProfit: "0",
			wantMargin: "0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DerivePrice(tc.cost, tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.BasePrice.Equal(d(tc.wantBase)) {
				t.Fatalf("base: expected %s, got %s", tc.wantBase, got.BasePrice)
			}
			if !got.FinalPrice.Equal(d(tc.wantFinal)) {
				t.Fatalf("final: expected %s, got %s", tc.wantFinal, got.FinalPrice)
			}
			if !got.Profit.Equal(d(tc.wantProfit)) {
				t.Fatalf("profit: expected %s, got %s", tc.wantProfit, got.Profit)
			}
			if !got.EffectiveMargin.Equal(d(tc.wantMargin)) {
				t.Fatalf("margin: expected %s, got %s", tc.wantMargin, got.EffectiveMargin)
			}
		})
	}

	t.Run("margin at 100 rejected", func(t *testing.T) {
		_, err := DerivePrice(d("80"), marginInputs("0", "100", "0", "0"))
		if !errors.Is(err, ErrInvalidMargin) {
			t.Fatalf("expected ErrInvalidMargin, got %v", err)
		}
	})

	t.Run("margin above 100 rejected", func(t *testing.T) {
		_, err := DerivePrice(d("80"), marginInputs("0", "120", "0", "0"))
		if !errors.Is(err, ErrInvalidMargin) {
			t.Fatalf("expected ErrInvalidMargin, got %v", err)
		}
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		_, err := DerivePrice(d("80"), entities.PricingInputs{Method: "cost_plus"})
		if !errors.Is(err, ErrInvalidPricingMethod) {
			t.Fatalf("expected ErrInvalidPricingMethod, got %v", err)
		}
	})
}

func fixedClockAt(ctrl *gomock.Controller, at time.Time) *mock_interfaces.MockClock {
	clock := mock_interfaces.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(at).AnyTimes()
	return clock
}

func TestPricingUseCase_UpdateInputs(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)

	t.Run("invalid product id", func(t *testing.T) {
		uc := NewPricingUseCase(nil, nil, nil, nil)
		_, err := uc.UpdateInputs(context.Background(), "  ", marginInputs("0", "20", "0", "0"), "")
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("price increase appends history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRepository(ctrl)
		uc := NewPricingUseCase(repo, nil, nil, fixedClockAt(ctrl, now))

		prev := entities.PricingRecord{
			ProductID:  "prod-1",
			Cost:       d("80"),
			Inputs:     marginInputs("10", "10", "5", "10"),
			FinalPrice: d("112.75"),
		}
		repo.EXPECT().GetRecord(gomock.Any(), "prod-1").Return(prev, nil)
		repo.EXPECT().ListRecentHistory(gomock.Any(), "prod-1", historyDedupWindow).Return(nil, nil)
		repo.EXPECT().AppendHistory(gomock.Any(), gomock.AssignableToTypeOf(entities.PricingHistoryEntry{})).DoAndReturn(
			func(_ context.Context, e entities.PricingHistoryEntry) (entities.PricingHistoryEntry, error) {
				if e.ID == "" || e.ProductID != "prod-1" {
					t.Fatalf("unexpected history entry: %+v", e)
				}
				if !e.NewTotal.Equal(d("125.50")) || !e.PreviousTotal.Equal(d("112.75")) {
					t.Fatalf("unexpected totals: %+v", e)
				}
				if !e.IncreaseAbs.Equal(d("12.75")) {
					t.Fatalf("unexpected increase: %s", e.IncreaseAbs)
				}
				if e.Trigger != entities.TriggerManualEdit || e.Reason != "price review" {
					t.Fatalf("unexpected trigger/reason: %+v", e)
				}
				return e, nil
			},
		)
		repo.EXPECT().SaveRecord(gomock.Any(), gomock.AssignableToTypeOf(entities.PricingRecord{})).DoAndReturn(
			func(_ context.Context, r entities.PricingRecord) (entities.PricingRecord, error) {
				if !r.FinalPrice.Equal(d("125.50")) || !r.BasePrice.Equal(d("110")) {
					t.Fatalf("unexpected derived record: %+v", r)
				}
				if !r.UpdatedAt.Equal(now) {
					t.Fatalf("expected updated_at %s, got %s", now, r.UpdatedAt)
				}
				return r, nil
			},
		)

		_, err := uc.UpdateInputs(context.Background(), "prod-1", marginInputs("10", "20", "5", "10"), "price review")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate increase is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRepository(ctrl)
		uc := NewPricingUseCase(repo, nil, nil, fixedClockAt(ctrl, now))

		prev := entities.PricingRecord{
			ProductID:  "prod-1",
			Cost:       d("80"),
			Inputs:     marginInputs("10", "10", "5", "10"),
			FinalPrice: d("112.75"),
		}
		repo.EXPECT().GetRecord(gomock.Any(), "prod-1").Return(prev, nil)
		repo.EXPECT().ListRecentHistory(gomock.Any(), "prod-1", historyDedupWindow).Return([]entities.PricingHistoryEntry{
			{NewCost: d("80"), NewTotal: d("125.49")},
		}, nil)
		// No AppendHistory expectation: the candidate matches a recent entry.
		repo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.PricingRecord) (entities.PricingRecord, error) { return r, nil },
		)

		_, err := uc.UpdateInputs(context.Background(), "prod-1", marginInputs("10", "20", "5", "10"), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("price decrease writes no history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRepository(ctrl)
		uc := NewPricingUseCase(repo, nil, nil, fixedClockAt(ctrl, now))

		prev := entities.PricingRecord{
			ProductID:  "prod-1",
			Cost:       d("80"),
			Inputs:     marginInputs("10", "20", "5", "10"),
			FinalPrice: d("125.50"),
		}
		repo.EXPECT().GetRecord(gomock.Any(), "prod-1").Return(prev, nil)
		repo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.PricingRecord) (entities.PricingRecord, error) { return r, nil },
		)

		_, err := uc.UpdateInputs(context.Background(), "prod-1", marginInputs("10", "10", "5", "10"), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown product seeds from stock feed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRepository(ctrl)
		stock := mock_interfaces.NewMockIStockFeed(ctrl)
		uc := NewPricingUseCase(repo, nil, stock, fixedClockAt(ctrl, now))

		repo.EXPECT().GetRecord(gomock.Any(), "prod-9").Return(entities.PricingRecord{}, nil)
		stock.EXPECT().ListRemittances(gomock.Any(), "prod-9").Return(remittances("60", "2", "80", "3"), nil)
		repo.EXPECT().ListRecentHistory(gomock.Any(), "prod-9", historyDedupWindow).Return(nil, nil)
		repo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.PricingHistoryEntry) (entities.PricingHistoryEntry, error) { return e, nil },
		)
		repo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.PricingRecord) (entities.PricingRecord, error) {
				// Cost is the highest remittance unit price, quantity the sum.
				if !r.Cost.Equal(d("80")) || !r.QuantityInStock.Equal(d("5")) {
					t.Fatalf("unexpected seeded basis: %+v", r)
				}
				return r, nil
			},
		)

		_, err := uc.UpdateInputs(context.Background(), "prod-9", marginInputs("10", "20", "5", "10"), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

// remittances builds remittance lines from (unit price, quantity) pairs.
func remittances(pairs ...string) []interfaces.RemittanceLine {
	out := make([]interfaces.RemittanceLine, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, interfaces.RemittanceLine{UnitPrice: d(pairs[i]), Quantity: d(pairs[i+1])})
	}
	return out
}

func TestPricingUseCase_RecomputeAll(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)

	t.Run("guarded against overlap", func(t *testing.T) {
		uc := NewPricingUseCase(nil, nil, nil, nil)
		uc.recompMu.Lock()
		defer uc.recompMu.Unlock()

		_, err := uc.RecomputeAll(context.Background())
		if !errors.Is(err, ErrRecomputeInProgress) {
			t.Fatalf("expected ErrRecomputeInProgress, got %v", err)
		}
	})

	t.Run("refreshes cost basis and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRepository(ctrl)
		catalog := mock_interfaces.NewMockIProductCatalog(ctrl)
		stock := mock_interfaces.NewMockIStockFeed(ctrl)
		uc := NewPricingUseCase(repo, catalog, stock, fixedClockAt(ctrl, now))

		prev := entities.PricingRecord{
			ProductID:  "prod-1",
			Cost:       d("70"),
			Inputs:     marginInputs("10", "20", "5", "10"),
			FinalPrice: d("111.06"),
		}
		repo.EXPECT().ListRecords(gomock.Any()).Return([]entities.PricingRecord{prev}, nil)
		catalog.EXPECT().ListProductIDs(gomock.Any()).Return([]string{"prod-1"}, nil)
		stock.EXPECT().ListRemittances(gomock.Any(), "prod-1").Return(remittances("80", "5"), nil)
		repo.EXPECT().ListRecentHistory(gomock.Any(), "prod-1", historyDedupWindow).Return(nil, nil)
		repo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.PricingHistoryEntry) (entities.PricingHistoryEntry, error) {
				if e.Trigger != entities.TriggerCostUpdate {
					t.Fatalf("expected cost_update trigger, got %s", e.Trigger)
				}
				return e, nil
			},
		)
		repo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.PricingRecord) (entities.PricingRecord, error) {
				if !r.Cost.Equal(d("80")) || !r.FinalPrice.Equal(d("125.50")) {
					t.Fatalf("unexpected recomputed record: %+v", r)
				}
				return r, nil
			},
		)

		updated, err := uc.RecomputeAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated != 1 {
			t.Fatalf("expected 1 updated record, got %d", updated)
		}
	})

	t.Run("derive failure skips record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRepository(ctrl)
		catalog := mock_interfaces.NewMockIProductCatalog(ctrl)
		stock := mock_interfaces.NewMockIStockFeed(ctrl)
		uc := NewPricingUseCase(repo, catalog, stock, fixedClockAt(ctrl, now))

		bad := entities.PricingRecord{
			ProductID: "prod-2",
			Inputs:    marginInputs("0", "100", "0", "0"),
		}
		repo.EXPECT().ListRecords(gomock.Any()).Return([]entities.PricingRecord{bad}, nil)
		catalog.EXPECT().ListProductIDs(gomock.Any()).Return(nil, nil)
		stock.EXPECT().ListRemittances(gomock.Any(), "prod-2").Return(remittances("10", "1"), nil)

		updated, err := uc.RecomputeAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated != 0 {
			t.Fatalf("expected 0 updated records, got %d", updated)
		}
	})

	t.Run("seeds catalog products without a record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRepository(ctrl)
		catalog := mock_interfaces.NewMockIProductCatalog(ctrl)
		stock := mock_interfaces.NewMockIStockFeed(ctrl)
		uc := NewPricingUseCase(repo, catalog, stock, fixedClockAt(ctrl, now))

		repo.EXPECT().ListRecords(gomock.Any()).Return(nil, nil)
		catalog.EXPECT().ListProductIDs(gomock.Any()).Return([]string{"prod-3"}, nil)
		stock.EXPECT().ListRemittances(gomock.Any(), "prod-3").Return(remittances("40", "2"), nil)
		repo.EXPECT().ListRecentHistory(gomock.Any(), "prod-3", historyDedupWindow).Return(nil, nil)
		repo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.PricingHistoryEntry) (entities.PricingHistoryEntry, error) { return e, nil },
		)
		repo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.PricingRecord) (entities.PricingRecord, error) {
				// Default inputs: margin 0%, so the final price equals cost.
				if !r.Cost.Equal(d("40")) || !r.FinalPrice.Equal(d("40")) {
					t.Fatalf("unexpected seeded record: %+v", r)
				}
				if r.Inputs.Method != entities.PricingMethodMargin {
					t.Fatalf("expected margin method, got %s", r.Inputs.Method)
				}
				return r, nil
			},
		)

		updated, err := uc.RecomputeAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated != 1 {
			t.Fatalf("expected 1 updated record, got %d", updated)
		}
	})

	t.Run("catalog listing failure only skips seeding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRepository(ctrl)
		catalog := mock_interfaces.NewMockIProductCatalog(ctrl)
		stock := mock_interfaces.NewMockIStockFeed(ctrl)
		uc := NewPricingUseCase(repo, catalog, stock, fixedClockAt(ctrl, now))

		prev := entities.PricingRecord{
			ProductID:  "prod-1",
			Cost:       d("80"),
			Inputs:     marginInputs("10", "20", "5", "10"),
			FinalPrice: d("125.50"),
		}
		repo.EXPECT().ListRecords(gomock.Any()).Return([]entities.PricingRecord{prev}, nil)
		catalog.EXPECT().ListProductIDs(gomock.Any()).Return(nil, errors.New("dynamo down"))
		stock.EXPECT().ListRemittances(gomock.Any(), "prod-1").Return(remittances("80", "5"), nil)
		repo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.PricingRecord) (entities.PricingRecord, error) { return r, nil },
		)

		updated, err := uc.RecomputeAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated != 1 {
			t.Fatalf("expected 1 updated record, got %d", updated)
		}
	})
}

func TestPricingUseCase_GetRecord(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRepository(ctrl)
		uc := NewPricingUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetRecord(gomock.Any(), "prod-x").Return(entities.PricingRecord{}, nil)

		_, err := uc.GetRecord(context.Background(), "prod-x")
		if !errors.Is(err, ErrPricingNotFound) {
			t.Fatalf("expected ErrPricingNotFound, got %v", err)
		}
	})
}

func TestPricingUseCase_ListHistory(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRepository(ctrl)
		uc := NewPricingUseCase(repo, nil, nil, nil)

		repo.EXPECT().ListRecentHistory(gomock.Any(), "prod-1", 50).Return(nil, nil)

		if _, err := uc.ListHistory(context.Background(), "prod-1", 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
