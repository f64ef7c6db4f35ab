package interfaces

import (
	"context"
	"time"

	"assistec/internal/domain/entities"
)

// ITicketRepository abstracts DynamoDB persistence for ServiceTicket.
//
// The core must be able to:
//   - create a ticket with a generated monthly sequence number
//   - save status/pending/history mutations made by the state machine
//   - list active (non-archived) tickets for the workbench views

type ITicketRepository interface {
	Create(ctx context.Context, t entities.ServiceTicket) (entities.ServiceTicket, error)
	GetByID(ctx context.Context, id string) (entities.ServiceTicket, error)
	Save(ctx context.Context, t entities.ServiceTicket) (entities.ServiceTicket, error)
	List(ctx context.Context, includeArchived bool) ([]entities.ServiceTicket, error)
}

// IQuoteRepository abstracts DynamoDB persistence for Quote.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Save(ctx context.Context, q entities.Quote) (entities.Quote, error)
	ListByStatus(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error)
}

// ISaleRepository abstracts DynamoDB persistence for Sale.

type ISaleRepository interface {
	Create(ctx context.Context, s entities.Sale) (entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Sale, error)
	Save(ctx context.Context, s entities.Sale) (entities.Sale, error)
}

// IReceivableRepository abstracts DynamoDB persistence for Receivable.
// Upsert overwrites by id so a resumed settlement converges instead of
// duplicating rows.

type IReceivableRepository interface {
	Upsert(ctx context.Context, r entities.Receivable) (entities.Receivable, error)
	ListBySaleID(ctx context.Context, saleID string) ([]entities.Receivable, error)
}

// ILedgerRepository abstracts cost-center and chart-of-accounts lookups.
// Cost centers and their parent group are keyed by code; chart accounts by
// code with a name-prefix fallback search.

type ILedgerRepository interface {
	GetCostCenterByCode(ctx context.Context, code string) (entities.CostCenter, error)
	PutCostCenter(ctx context.Context, c entities.CostCenter) (entities.CostCenter, error)
	GetCostCenterGroupByCode(ctx context.Context, code string) (entities.CostCenterGroup, error)
	PutCostCenterGroup(ctx context.Context, g entities.CostCenterGroup) (entities.CostCenterGroup, error)
	GetChartAccountByCode(ctx context.Context, code string) (entities.ChartAccount, error)
	FindChartAccountByNamePrefix(ctx context.Context, prefix string) (entities.ChartAccount, error)
}

// IPricingRepository abstracts pricing records and their append-only history.
// ListRecentHistory returns entries newest-first, capped at limit.

type IPricingRepository interface {
	GetRecord(ctx context.Context, productID string) (entities.PricingRecord, error)
	SaveRecord(ctx context.Context, r entities.PricingRecord) (entities.PricingRecord, error)
	ListRecords(ctx context.Context) ([]entities.PricingRecord, error)
	AppendHistory(ctx context.Context, e entities.PricingHistoryEntry) (entities.PricingHistoryEntry, error)
	ListRecentHistory(ctx context.Context, productID string, limit int) ([]entities.PricingHistoryEntry, error)
}

// ISequenceRepository hands out monotonic sequence values per counter key
// (e.g. "OS-2608"). Next must be atomic under concurrent callers.

type ISequenceRepository interface {
	Next(ctx context.Context, key string) (int64, error)
}

// Clock lets use cases take time as a dependency so date-sensitive logic
// (expiration sweeps, due-day rolling) is testable.
type Clock interface {
	Now() time.Time
}
