package entities

import "testing"

func TestNormalizePaymentMethod(t *testing.T) {
	cases := []struct {
		raw  string
		want PaymentMethod
	}{
		{"pix", PaymentMethodPix},
		{"PIX instantaneo", PaymentMethodPix},
		{"transfer", PaymentMethodTransfer},
		{"TED", PaymentMethodTransfer},
		{"doc", PaymentMethodTransfer},
		{"bank deposit", PaymentMethodTransfer},
		{"credit card", PaymentMethodCreditCard},
		{"cartao de credito", PaymentMethodCreditCard},
		{"credit", PaymentMethodCreditCard},
		{"cash", PaymentMethodCash},
		{"dinheiro", PaymentMethodCash},
		{"em especie", PaymentMethodCash},
		{"boleto bancario", PaymentMethodBoleto},
		{"bank slip", PaymentMethodBoleto},
		{"  Boleto  ", PaymentMethodBoleto},
		{"", PaymentMethodOther},
		{"   ", PaymentMethodOther},
		{"barter", PaymentMethodOther},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			if got := NormalizePaymentMethod(tc.raw); got != tc.want {
				t.Fatalf("NormalizePaymentMethod(%q): expected %s, got %s", tc.raw, tc.want, got)
			}
		})
	}
}

func TestDefaultPlannedMethod(t *testing.T) {
	if got := DefaultPlannedMethod("something unknown"); got != PaymentMethodBoleto {
		t.Fatalf("expected boleto fallback, got %s", got)
	}
	if got := DefaultPlannedMethod(""); got != PaymentMethodBoleto {
		t.Fatalf("expected boleto fallback for empty input, got %s", got)
	}
	if got := DefaultPlannedMethod("pix"); got != PaymentMethodPix {
		t.Fatalf("expected pix, got %s", got)
	}
}

func TestPaymentTermsValid(t *testing.T) {
	cases := []struct {
		name  string
		terms PaymentTerms
		want  bool
	}{
		{
			name:  "lump sum",
			terms: PaymentTerms{Kind: TermsLumpSum, LumpSum: &LumpSumTerms{}},
			want:  true,
		},
		{
			name:  "installment",
			terms: PaymentTerms{Kind: TermsInstallment, Installment: &InstallmentTerms{Count: 3, DueDay: 10}},
			want:  true,
		},
		{
			name:  "lump sum kind without payload",
			terms: PaymentTerms{Kind: TermsLumpSum},
			want:  false,
		},
		{
			name:  "installment kind without payload",
			terms: PaymentTerms{Kind: TermsInstallment},
			want:  false,
		},
		{
			name: "both payloads set",
			terms: PaymentTerms{
				Kind:        TermsLumpSum,
				LumpSum:     &LumpSumTerms{},
				Installment: &InstallmentTerms{Count: 1, DueDay: 10},
			},
			want: false,
		},
		{
			name:  "installment count zero",
			terms: PaymentTerms{Kind: TermsInstallment, Installment: &InstallmentTerms{DueDay: 10}},
			want:  false,
		},
		{
			name:  "unknown kind",
			terms: PaymentTerms{Kind: "weekly"},
			want:  false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.terms.Valid(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
