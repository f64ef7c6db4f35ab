package usecase

import (
	"errors"
	"testing"
	"time"

	"assistec/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func installmentTerms(plan entities.InstallmentTerms) entities.PaymentTerms {
	return entities.PaymentTerms{Kind: entities.TermsInstallment, Installment: &plan}
}

func TestPlanInstallments_EvenSplit(t *testing.T) {
	now := time.Date(2026, time.August, 5, 14, 30, 0, 0, time.UTC)

	out, err := PlanInstallments(d("900"), installmentTerms(entities.InstallmentTerms{
		Count:  3,
		DueDay: 10,
		Method: "boleto",
	}), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 installments, got %d", len(out))
	}

	wantDates := []time.Time{
		time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.October, 10, 0, 0, 0, 0, time.UTC),
	}
	for i, inst := range out {
		if inst.Sequence != i+1 {
			t.Fatalf("installment %d: expected sequence %d, got %d", i, i+1, inst.Sequence)
		}
		if !inst.Amount.Equal(d("300")) {
			t.Fatalf("installment %d: expected 300, got %s", i, inst.Amount)
		}
		if !inst.DueDate.Equal(wantDates[i]) {
			t.Fatalf("installment %d: expected due %s, got %s", i, wantDates[i], inst.DueDate)
		}
		if inst.Method != entities.PaymentMethodBoleto {
			t.Fatalf("installment %d: expected boleto, got %s", i, inst.Method)
		}
		if inst.Status != entities.InstallmentStatusPending {
			t.Fatalf("installment %d: expected pending, got %s", i, inst.Status)
		}
	}
}

func TestPlanInstallments_RemainderOnLast(t *testing.T) {
	now := time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)

	out, err := PlanInstallments(d("100"), installmentTerms(entities.InstallmentTerms{
		Count:  3,
		DueDay: 10,
	}), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"33.33", "33.33", "33.34"}
	sum := decimal.Zero
	for i, inst := range out {
		if !inst.Amount.Equal(d(want[i])) {
			t.Fatalf("installment %d: expected %s, got %s", i, want[i], inst.Amount)
		}
		sum = sum.Add(inst.Amount)
	}
	if !sum.Equal(d("100")) {
		t.Fatalf("expected amounts to sum to 100, got %s", sum)
	}
}

func TestPlanInstallments_DueDayAlreadyPassedRolls(t *testing.T) {
	// Planning on the 15th with due day 10 starts next month.
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	out, err := PlanInstallments(d("200"), installmentTerms(entities.InstallmentTerms{
		Count:  2,
		DueDay: 10,
	}), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC); !out[0].DueDate.Equal(want) {
		t.Fatalf("expected first due %s, got %s", want, out[0].DueDate)
	}
	if want := time.Date(2026, time.October, 10, 0, 0, 0, 0, time.UTC); !out[1].DueDate.Equal(want) {
		t.Fatalf("expected second due %s, got %s", want, out[1].DueDate)
	}
}

func TestPlanInstallments_DueDayOnPlanningDateStaysInMonth(t *testing.T) {
	now := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)

	out, err := PlanInstallments(d("50"), installmentTerms(entities.InstallmentTerms{
		Count:  1,
		DueDay: 10,
	}), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC); !out[0].DueDate.Equal(want) {
		t.Fatalf("expected due %s, got %s", want, out[0].DueDate)
	}
}

func TestPlanInstallments_DayClampedToMonthEnd(t *testing.T) {
	// Day 31 lands on the last day of shorter months.
	now := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	out, err := PlanInstallments(d("300"), installmentTerms(entities.InstallmentTerms{
		Count:  3,
		DueDay: 31,
	}), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDates := []time.Time{
		time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
	}
	for i, inst := range out {
		if !inst.DueDate.Equal(wantDates[i]) {
			t.Fatalf("installment %d: expected due %s, got %s", i, wantDates[i], inst.DueDate)
		}
	}
}

func TestPlanInstallments_DownPayment(t *testing.T) {
	now := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	out, err := PlanInstallments(d("1000"), installmentTerms(entities.InstallmentTerms{
		DownPayment:       d("400"),
		DownPaymentMethod: "pix",
		DownPaymentDueDay: 5,
		Count:             2,
		Method:            "boleto",
		DueDay:            10,
	}), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 installments, got %d", len(out))
	}

	down := out[0]
	if down.Sequence != 0 || !down.Amount.Equal(d("400")) || down.Method != entities.PaymentMethodPix {
		t.Fatalf("unexpected down payment: %+v", down)
	}
	if want := time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC); !down.DueDate.Equal(want) {
		t.Fatalf("expected down payment due %s, got %s", want, down.DueDate)
	}

	// Regular installments start one month after the anchor.
	if want := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC); !out[1].DueDate.Equal(want) {
		t.Fatalf("expected first regular due %s, got %s", want, out[1].DueDate)
	}
	if want := time.Date(2026, time.October, 10, 0, 0, 0, 0, time.UTC); !out[2].DueDate.Equal(want) {
		t.Fatalf("expected second regular due %s, got %s", want, out[2].DueDate)
	}
	if !out[1].Amount.Equal(d("300")) || !out[2].Amount.Equal(d("300")) {
		t.Fatalf("expected 300/300 regular amounts, got %s/%s", out[1].Amount, out[2].Amount)
	}
}

func TestPlanInstallments_UnmatchedMethodPostsAsOther(t *testing.T) {
	now := time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)

	out, err := PlanInstallments(d("100"), installmentTerms(entities.InstallmentTerms{
		DownPayment:       d("40"),
		DownPaymentMethod: "cheque",
		Count:             2,
		Method:            "cheque",
		DueDay:            10,
	}), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, inst := range out {
		if inst.Method != entities.PaymentMethodOther {
			t.Fatalf("installment %d: expected other, got %s", i, inst.Method)
		}
	}
}

func TestPlanInstallments_LumpSum(t *testing.T) {
	now := time.Date(2026, time.August, 5, 9, 0, 0, 0, time.UTC)
	due := time.Date(2026, time.September, 1, 17, 45, 0, 0, time.UTC)

	out, err := PlanInstallments(d("150.50"), entities.PaymentTerms{
		Kind:    entities.TermsLumpSum,
		LumpSum: &entities.LumpSumTerms{DueDate: &due, Method: "cash"},
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected single installment, got %d", len(out))
	}
	if out[0].Sequence != 1 || !out[0].Amount.Equal(d("150.50")) || out[0].Method != entities.PaymentMethodCash {
		t.Fatalf("unexpected installment: %+v", out[0])
	}
	if want := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC); !out[0].DueDate.Equal(want) {
		t.Fatalf("expected date-only due %s, got %s", want, out[0].DueDate)
	}
}

func TestPlanInstallments_LumpSumWithoutDueDateUsesToday(t *testing.T) {
	now := time.Date(2026, time.August, 5, 23, 59, 0, 0, time.UTC)

	out, err := PlanInstallments(d("80"), entities.PaymentTerms{
		Kind:    entities.TermsLumpSum,
		LumpSum: &entities.LumpSumTerms{},
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC); !out[0].DueDate.Equal(want) {
		t.Fatalf("expected due %s, got %s", want, out[0].DueDate)
	}
	if out[0].Method != entities.PaymentMethodBoleto {
		t.Fatalf("expected boleto fallback, got %s", out[0].Method)
	}
}

func TestPlanInstallments_Errors(t *testing.T) {
	now := time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		total decimal.Decimal
		terms entities.PaymentTerms
		want  error
	}{
		{
			name:  "negative total",
			total: d("-1"),
			terms: entities.PaymentTerms{Kind: entities.TermsLumpSum, LumpSum: &entities.LumpSumTerms{}},
			want:  ErrNegativeTotal,
		},
		{
			name:  "invalid terms union",
			total: d("10"),
			terms: entities.PaymentTerms{Kind: entities.TermsInstallment},
			want:  ErrInvalidTerms,
		},
		{
			name:  "due day zero",
			total: d("10"),
			terms: installmentTerms(entities.InstallmentTerms{Count: 2, DueDay: 0}),
			want:  ErrInvalidDueDay,
		},
		{
			name:  "due day too large",
			total: d("10"),
			terms: installmentTerms(entities.InstallmentTerms{Count: 2, DueDay: 32}),
			want:  ErrInvalidDueDay,
		},
		{
			name:  "down payment above total",
			total: d("100"),
			terms: installmentTerms(entities.InstallmentTerms{DownPayment: d("150"), Count: 2, DueDay: 10}),
			want:  ErrDownPaymentTooHigh,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := PlanInstallments(tc.total, tc.terms, now)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPlanInstallments_ZeroTotal(t *testing.T) {
	now := time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)

	out, err := PlanInstallments(decimal.Zero, installmentTerms(entities.InstallmentTerms{Count: 2, DueDay: 10}), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sum := decimal.Zero
	for _, inst := range out {
		sum = sum.Add(inst.Amount)
	}
	if !sum.IsZero() {
		t.Fatalf("expected zero sum, got %s", sum)
	}
}
