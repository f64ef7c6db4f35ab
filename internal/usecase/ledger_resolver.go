package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"assistec/internal/domain/entities"
	"assistec/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	costCenterPrefix    = "CC-"
	costCenterGroupCode = "CC-CLIENTS"
	costCenterGroupName = "Clients"
	costCenterMaxLen    = 24

	chartCodeGoodsSale = "3.1.1"
	chartNameGoodsSale = "Sale of goods"
	chartCodeService   = "3.1.2"
	chartNameService   = "Service revenue"
)

// costCenterOrigins is the fixed set of flows allowed to post against an
// auto-provisioned client cost center.
var costCenterOrigins = []string{"receivable", "payable", "manual"}

// DefaultCostCenterRef is the sentinel used when resolution fails; settlement
// must never be blocked by ledger bootstrap problems.
var DefaultCostCenterRef = entities.LedgerRef{Code: "CC-DEFAULT", Name: "Default cost center"}

// LedgerResolver idempotently resolves accounting buckets for settlement.

type LedgerResolver struct {
	repo  interfaces.ILedgerRepository
	clock interfaces.Clock
}

func NewLedgerResolver(repo interfaces.ILedgerRepository, clock interfaces.Clock) *LedgerResolver {
	return &LedgerResolver{repo: repo, clock: clock}
}

// CostCenterCode derives the deterministic code for a client display name:
// diacritics stripped, uppercased, spaces to hyphens, other non-alphanumerics
// dropped, truncated, prefixed.
func CostCenterCode(clientName string) string {
	s := strings.ToUpper(stripDiacritics(strings.TrimSpace(clientName)))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	code := b.String()
	for strings.Contains(code, "--") {
		code = strings.ReplaceAll(code, "--", "-")
	}
	code = strings.Trim(code, "-")
	if len(code) > costCenterMaxLen {
		code = code[:costCenterMaxLen]
	}
	return costCenterPrefix + code
}

// diacriticFold covers the latin accented range that occurs in client names.
var diacriticFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c', 'ñ': 'n', 'ý': 'y',
	'Á': 'A', 'À': 'A', 'Â': 'A', 'Ã': 'A', 'Ä': 'A', 'Å': 'A',
	'É': 'E', 'È': 'E', 'Ê': 'E', 'Ë': 'E',
	'Í': 'I', 'Ì': 'I', 'Î': 'I', 'Ï': 'I',
	'Ó': 'O', 'Ò': 'O', 'Ô': 'O', 'Õ': 'O', 'Ö': 'O',
	'Ú': 'U', 'Ù': 'U', 'Û': 'U', 'Ü': 'U',
	'Ç': 'C', 'Ñ': 'N', 'Ý': 'Y',
}

func stripDiacritics(s string) string {
	return strings.Map(func(r rune) rune {
		if f, ok := diacriticFold[r]; ok {
			return f
		}
		return r
	}, s)
}

// ResolveCostCenter gets, creates or repairs the client's cost center. Never
// returns an error to the caller: failures are logged and the sentinel
// reference comes back instead.
func (r *LedgerResolver) ResolveCostCenter(ctx context.Context, client interfaces.ClientInfo) entities.LedgerRef {
	code := CostCenterCode(client.Name)
	now := r.clock.Now()

	existing, err := r.repo.GetCostCenterByCode(ctx, code)
	if err != nil {
		log.Printf("[ledger][usecase] cost center lookup failed code=%s err=%v", code, err)
		return DefaultCostCenterRef
	}

	if existing.ID != "" {
		// Self-healing: name and group linkage follow current client data.
		if existing.Name != client.Name || existing.GroupCode != costCenterGroupCode {
			r.ensureGroup(ctx, now)
			existing.Name = client.Name
			existing.GroupCode = costCenterGroupCode
			existing.UpdatedAt = now
			if repaired, err := r.repo.PutCostCenter(ctx, existing); err != nil {
				log.Printf("[ledger][usecase] cost center repair failed code=%s err=%v", code, err)
			} else {
				existing = repaired
			}
		}
		return existing.Ref()
	}

	r.ensureGroup(ctx, now)
	created, err := r.repo.PutCostCenter(ctx, entities.CostCenter{
		ID:             uuid.NewString(),
		Code:           code,
		Name:           client.Name,
		GroupCode:      costCenterGroupCode,
		AcceptsRevenue: true,
		AcceptsExpense: true,
		Origins:        costCenterOrigins,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		log.Printf("[ledger][usecase] cost center create failed code=%s err=%v", code, err)
		return DefaultCostCenterRef
	}
	return created.Ref()
}

// ensureGroup gets-or-creates the fixed parent group record before a cost
// center is created or repaired under it. Failures are logged only; a missing
// group record never blocks cost-center resolution.
func (r *LedgerResolver) ensureGroup(ctx context.Context, now time.Time) {
	g, err := r.repo.GetCostCenterGroupByCode(ctx, costCenterGroupCode)
	if err != nil {
		log.Printf("[ledger][usecase] cost center group lookup failed code=%s err=%v", costCenterGroupCode, err)
		return
	}
	if g.ID != "" {
		return
	}
	if _, err := r.repo.PutCostCenterGroup(ctx, entities.CostCenterGroup{
		ID:        uuid.NewString(),
		Code:      costCenterGroupCode,
		Name:      costCenterGroupName,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		log.Printf("[ledger][usecase] cost center group create failed code=%s err=%v", costCenterGroupCode, err)
	}
}

// ResolveChartAccount looks up the fixed chart-of-accounts entry for the
// operation nature. Falls back to a name-prefix search, then to an empty
// reference. Never creates entries and never fails the caller.
func (r *LedgerResolver) ResolveChartAccount(ctx context.Context, nature entities.OperationNature) entities.LedgerRef {
	code, name := chartCodeService, chartNameService
	if nature == entities.NatureGoodsSale {
		code, name = chartCodeGoodsSale, chartNameGoodsSale
	}

	acc, err := r.repo.GetChartAccountByCode(ctx, code)
	if err != nil {
		log.Printf("[ledger][usecase] chart account lookup failed code=%s err=%v", code, err)
		return entities.LedgerRef{}
	}
	if acc.ID != "" {
		return acc.Ref()
	}

	acc, err = r.repo.FindChartAccountByNamePrefix(ctx, name)
	if err != nil {
		log.Printf("[ledger][usecase] chart account prefix search failed name=%s err=%v", name, err)
		return entities.LedgerRef{}
	}
	if acc.ID == "" {
		log.Printf("[ledger][usecase] chart account missing code=%s name=%s; using empty reference", code, name)
		return entities.LedgerRef{}
	}
	return acc.Ref()
}
