package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"assistec/internal/domain/entities"
	"assistec/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPricingNotFound      = errors.New("pricing record not found")
	ErrInvalidProductID     = errors.New("invalid product id")
	ErrInvalidMargin        = errors.New("margin percentage must be below 100")
	ErrInvalidPricingMethod = errors.New("invalid pricing method")
	ErrRecomputeInProgress  = errors.New("pricing recompute already running")
)

// historyDedupWindow and historyDedupEpsilon bound the duplicate scan: a new
// entry is skipped when one of the last N entries carries the same new cost
// and a total within epsilon.
const historyDedupWindow = 5

var (
	historyDedupEpsilon = decimal.RequireFromString("0.01")
	oneHundred          = decimal.NewFromInt(100)
)

// defaultPricingInputs price a product straight from cost until someone edits
// the parameters: margin method at 0%, no indirects, tax or freight.
var defaultPricingInputs = entities.PricingInputs{Method: entities.PricingMethodMargin}

// DerivedPrice is the output of one deterministic derivation pass.
type DerivedPrice struct {
	BasePrice       decimal.Decimal
	FinalPrice      decimal.Decimal
	Profit          decimal.Decimal
	EffectiveMargin decimal.Decimal
}

// DerivePrice computes every derived output from cost and the editable
// inputs. All currency outputs are rounded to 2 decimals.
func DerivePrice(cost decimal.Decimal, in entities.PricingInputs) (DerivedPrice, error) {
	costWithIndirect := cost.Mul(oneHundred.Add(in.IndirectPct)).Div(oneHundred)

	var base decimal.Decimal
	switch in.Method {
	case entities.PricingMethodMargin:
		if in.MethodPct.GreaterThanOrEqual(oneHundred) {
			return DerivedPrice{}, ErrInvalidMargin
		}
		base = costWithIndirect.Div(decimal.NewFromInt(1).Sub(in.MethodPct.Div(oneHundred)))
	case entities.PricingMethodMarkup:
		base = costWithIndirect.Mul(oneHundred.Add(in.MethodPct)).Div(oneHundred)
	default:
		return DerivedPrice{}, ErrInvalidPricingMethod
	}
	base = base.Round(2)

	final := base.Mul(oneHundred.Add(in.TaxPct)).Div(oneHundred).Add(in.Freight).Round(2)
	profit := final.Sub(cost).Sub(in.Freight).Round(2)

	margin := decimal.Zero
	if cost.IsPositive() && final.IsPositive() {
		margin = profit.Div(final).Mul(oneHundred).Round(2)
	}
	return DerivedPrice{BasePrice: base, FinalPrice: final, Profit: profit, EffectiveMargin: margin}, nil
}

// IPricingUseCase exposes pricing derivation, cost refresh and the
// deduplicated increase history.

type IPricingUseCase interface {
	GetRecord(ctx context.Context, productID string) (entities.PricingRecord, error)
	UpdateInputs(ctx context.Context, productID string, in entities.PricingInputs, reason string) (entities.PricingRecord, error)
	RecomputeAll(ctx context.Context) (int, error)
	ListHistory(ctx context.Context, productID string, limit int) ([]entities.PricingHistoryEntry, error)
}

type PricingUseCase struct {
	repo     interfaces.IPricingRepository
	catalog  interfaces.IProductCatalog
	stock    interfaces.IStockFeed
	clock    interfaces.Clock
	recompMu sync.Mutex
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(repo interfaces.IPricingRepository, catalog interfaces.IProductCatalog, stock interfaces.IStockFeed, clock interfaces.Clock) *PricingUseCase {
	return &PricingUseCase{repo: repo, catalog: catalog, stock: stock, clock: clock}
}

func (u *PricingUseCase) GetRecord(ctx context.Context, productID string) (entities.PricingRecord, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.PricingRecord{}, ErrInvalidProductID
	}
	r, err := u.repo.GetRecord(ctx, productID)
	if err != nil {
		return entities.PricingRecord{}, err
	}
	if r.ProductID == "" {
		return entities.PricingRecord{}, ErrPricingNotFound
	}
	return r, nil
}

// UpdateInputs applies a manual edit of the five editable parameters,
// recomputes the record as a whole and appends history when the total rose.
func (u *PricingUseCase) UpdateInputs(ctx context.Context, productID string, in entities.PricingInputs, reason string) (entities.PricingRecord, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.PricingRecord{}, ErrInvalidProductID
	}

	prev, err := u.repo.GetRecord(ctx, productID)
	if err != nil {
		return entities.PricingRecord{}, err
	}
	if prev.ProductID == "" {
		seeded, err := u.seedRecord(ctx, productID)
		if err != nil {
			return entities.PricingRecord{}, err
		}
		prev = seeded
	}

	next := prev
	next.Inputs = in
	derived, err := DerivePrice(next.Cost, in)
	if err != nil {
		return entities.PricingRecord{}, err
	}
	applyDerived(&next, derived)
	next.UpdatedAt = u.clock.Now()

	if err := u.recordIfIncreased(ctx, prev, next, reason, entities.TriggerManualEdit); err != nil {
		return entities.PricingRecord{}, err
	}
	return u.repo.SaveRecord(ctx, next)
}

// RecomputeAll refreshes every record's cost basis from the stock feed and
// recomputes its prices. Catalog products without a pricing record yet enter
// the pass with default inputs. Overlapping invocations are rejected; the
// guard is a try-lock rather than a shared mutable flag.
func (u *PricingUseCase) RecomputeAll(ctx context.Context) (int, error) {
	if !u.recompMu.TryLock() {
		log.Printf("[pricing][usecase] recompute skipped; previous pass still running")
		return 0, ErrRecomputeInProgress
	}
	defer u.recompMu.Unlock()

	records, err := u.repo.ListRecords(ctx)
	if err != nil {
		return 0, err
	}
	records = append(records, u.unpricedProducts(ctx, records)...)

	updated := 0
	for _, prev := range records {
		next := prev
		cost, qty, err := u.costBasis(ctx, prev.ProductID)
		if err != nil {
			log.Printf("[pricing][usecase] cost basis failed product_id=%s err=%v", prev.ProductID, err)
			continue
		}
		next.Cost = cost
		next.QuantityInStock = qty

		derived, err := DerivePrice(next.Cost, next.Inputs)
		if err != nil {
			log.Printf("[pricing][usecase] derive failed product_id=%s err=%v", prev.ProductID, err)
			continue
		}
		applyDerived(&next, derived)
		next.UpdatedAt = u.clock.Now()

		if err := u.recordIfIncreased(ctx, prev, next, "cost refresh", entities.TriggerCostUpdate); err != nil {
			log.Printf("[pricing][usecase] history append failed product_id=%s err=%v", prev.ProductID, err)
			continue
		}
		if _, err := u.repo.SaveRecord(ctx, next); err != nil {
			log.Printf("[pricing][usecase] save failed product_id=%s err=%v", prev.ProductID, err)
			continue
		}
		updated++
	}
	log.Printf("[pricing][usecase] recompute finished records=%d updated=%d", len(records), updated)
	return updated, nil
}

func (u *PricingUseCase) ListHistory(ctx context.Context, productID string, limit int) ([]entities.PricingHistoryEntry, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, ErrInvalidProductID
	}
	if limit <= 0 {
		limit = 50
	}
	return u.repo.ListRecentHistory(ctx, productID, limit)
}

// unpricedProducts lists catalog products with no pricing record yet and
// shapes stub records for them; the recompute loop fills in cost and derived
// prices. A catalog failure only skips the seeding, never the pass.
func (u *PricingUseCase) unpricedProducts(ctx context.Context, records []entities.PricingRecord) []entities.PricingRecord {
	known := make(map[string]bool, len(records))
	for _, r := range records {
		known[r.ProductID] = true
	}

	ids, err := u.catalog.ListProductIDs(ctx)
	if err != nil {
		log.Printf("[pricing][usecase] product listing failed err=%v", err)
		return nil
	}

	var out []entities.PricingRecord
	for _, id := range ids {
		if known[id] {
			continue
		}
		out = append(out, entities.PricingRecord{ProductID: id, Inputs: defaultPricingInputs})
	}
	if len(out) > 0 {
		log.Printf("[pricing][usecase] seeding unpriced products count=%d", len(out))
	}
	return out
}

// costBasis derives cost and stock quantity from remittances: cost is the
// highest unit price seen, quantity the sum. Without remittances the catalog
// sale price seeds the cost.
func (u *PricingUseCase) costBasis(ctx context.Context, productID string) (decimal.Decimal, decimal.Decimal, error) {
	lines, err := u.stock.ListRemittances(ctx, productID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if len(lines) == 0 {
		p, err := u.catalog.GetProduct(ctx, productID)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		return p.SalePrice, decimal.Zero, nil
	}
	cost, qty := decimal.Zero, decimal.Zero
	for _, l := range lines {
		if l.UnitPrice.GreaterThan(cost) {
			cost = l.UnitPrice
		}
		qty = qty.Add(l.Quantity)
	}
	return cost, qty, nil
}

func (u *PricingUseCase) seedRecord(ctx context.Context, productID string) (entities.PricingRecord, error) {
	cost, qty, err := u.costBasis(ctx, productID)
	if err != nil {
		return entities.PricingRecord{}, err
	}
	return entities.PricingRecord{
		ProductID:       productID,
		Cost:            cost,
		QuantityInStock: qty,
	}, nil
}

func applyDerived(r *entities.PricingRecord, d DerivedPrice) {
	r.BasePrice = d.BasePrice
	r.FinalPrice = d.FinalPrice
	r.Profit = d.Profit
	r.EffectiveMargin = d.EffectiveMargin
}

// recordIfIncreased appends one history entry when the total strictly rose.
// Re-runs of a recompute pass must not spam history: a recent entry with the
// same new cost and a total within epsilon counts as a duplicate and is
// silently skipped.
func (u *PricingUseCase) recordIfIncreased(ctx context.Context, prev, next entities.PricingRecord, reason string, trigger entities.PriceChangeTrigger) error {
	if !next.FinalPrice.GreaterThan(prev.FinalPrice) {
		return nil
	}

	recent, err := u.repo.ListRecentHistory(ctx, next.ProductID, historyDedupWindow)
	if err != nil {
		return err
	}
	for _, h := range recent {
		if h.NewCost.Equal(next.Cost) && h.NewTotal.Sub(next.FinalPrice).Abs().LessThanOrEqual(historyDedupEpsilon) {
			log.Printf("[pricing][usecase] duplicate history candidate skipped product_id=%s total=%s", next.ProductID, next.FinalPrice.StringFixed(2))
			return nil
		}
	}

	increase := next.FinalPrice.Sub(prev.FinalPrice)
	pct := decimal.Zero
	if prev.FinalPrice.IsPositive() {
		pct = increase.Div(prev.FinalPrice).Mul(oneHundred).Round(2)
	}
	_, err = u.repo.AppendHistory(ctx, entities.PricingHistoryEntry{
		ID:            uuid.NewString(),
		ProductID:     next.ProductID,
		PreviousCost:  prev.Cost,
		NewCost:       next.Cost,
		PreviousTotal: prev.FinalPrice,
		NewTotal:      next.FinalPrice,
		IncreaseAbs:   increase,
		IncreasePct:   pct,
		Inputs:        next.Inputs,
		Reason:        reason,
		Trigger:       trigger,
		CreatedAt:     u.clock.Now(),
	})
	return err
}
