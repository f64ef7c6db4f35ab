package usecase

import (
	"errors"
	"time"

	"assistec/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeTotal      = errors.New("negative total")
	ErrInvalidDueDay      = errors.New("invalid due day")
	ErrDownPaymentTooHigh = errors.New("down payment exceeds total")
)

// PlanInstallments expands a net total and payment terms into the ordered
// installment list. Invariant: the amounts sum exactly to the total after
// 2-decimal rounding; the last regular installment absorbs the remainder.
//
// now is the planning reference date; only its calendar date matters.
func PlanInstallments(total decimal.Decimal, terms entities.PaymentTerms, now time.Time) ([]entities.Installment, error) {
	if total.IsNegative() {
		return nil, ErrNegativeTotal
	}
	if !terms.Valid() {
		return nil, ErrInvalidTerms
	}
	total = total.Round(2)

	if terms.Kind == entities.TermsLumpSum {
		due := dateOnly(now)
		if terms.LumpSum.DueDate != nil {
			due = dateOnly(*terms.LumpSum.DueDate)
		}
		return []entities.Installment{{
			Sequence: 1,
			DueDate:  due,
			Amount:   total,
			Method:   entities.DefaultPlannedMethod(terms.LumpSum.Method),
			Status:   entities.InstallmentStatusPending,
		}}, nil
	}

	plan := terms.Installment
	if plan.DueDay < 1 || plan.DueDay > 31 {
		return nil, ErrInvalidDueDay
	}

	down := plan.DownPayment.Round(2)
	hasDown := down.IsPositive()
	if down.GreaterThan(total) {
		return nil, ErrDownPaymentTooHigh
	}

	var out []entities.Installment

	anchorDay := plan.DueDay
	if hasDown && plan.DownPaymentDueDay > 0 {
		anchorDay = plan.DownPaymentDueDay
	}
	anchor := nextDueDayOccurrence(now, anchorDay)

	if hasDown {
		out = append(out, entities.Installment{
			Sequence: 0,
			DueDate:  anchor,
			Amount:   down,
			Method:   entities.NormalizePaymentMethod(plan.DownPaymentMethod),
			Status:   entities.InstallmentStatusPending,
		})
	}

	remaining := total.Sub(down)
	count := int64(plan.Count)
	per := remaining.Div(decimal.NewFromInt(count)).Round(2)
	// Installment methods keep the generic normalization: unmatched raw
	// strings post as "other". The boleto fallback is lump-sum only.
	method := entities.NormalizePaymentMethod(plan.Method)

	for i := 1; i <= plan.Count; i++ {
		amount := per
		if i == plan.Count {
			// Exactness: remainder lands on the last regular installment.
			amount = remaining.Sub(per.Mul(decimal.NewFromInt(count - 1)))
		}
		monthsAhead := i - 1
		if hasDown {
			monthsAhead = i
		}
		out = append(out, entities.Installment{
			Sequence: i,
			DueDate:  addMonthsPinned(anchor, monthsAhead, plan.DueDay),
			Amount:   amount,
			Method:   method,
			Status:   entities.InstallmentStatusPending,
		})
	}
	return out, nil
}

// nextDueDayOccurrence picks day-of-month `day` in the current month, rolling
// to the next month when that day has already passed. The day is clamped to
// the target month's length.
func nextDueDayOccurrence(now time.Time, day int) time.Time {
	y, m, d := now.UTC().Date()
	if d > day {
		m++
		if m > time.December {
			m = time.January
			y++
		}
	}
	return pinDay(y, m, day)
}

// addMonthsPinned moves `months` whole months past anchor and pins the
// configured day-of-month, clamped to the month's last day (day 31 in a
// 30-day month becomes day 30).
func addMonthsPinned(anchor time.Time, months, day int) time.Time {
	y, m, _ := anchor.UTC().Date()
	total := int(m) - 1 + months
	y += total / 12
	m = time.Month(total%12 + 1)
	return pinDay(y, m, day)
}

func pinDay(y int, m time.Month, day int) time.Time {
	last := time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		day = last
	}
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
