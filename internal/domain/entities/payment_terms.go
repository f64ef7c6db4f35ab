package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the closed set of settlement methods a receivable may carry.

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodTransfer   PaymentMethod = "transfer"
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodBoleto     PaymentMethod = "boleto"
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodOther      PaymentMethod = "other"
)

// methodKeywords maps free-text fragments to normalized methods. Order matters:
// the first fragment contained in the input wins.
var methodKeywords = []struct {
	fragment string
	method   PaymentMethod
}{
	{"pix", PaymentMethodPix},
	{"transfer", PaymentMethodTransfer},
	{"ted", PaymentMethodTransfer},
	{"doc", PaymentMethodTransfer},
	{"deposit", PaymentMethodTransfer},
	{"card", PaymentMethodCreditCard},
	{"cartao", PaymentMethodCreditCard},
	{"credit", PaymentMethodCreditCard},
	{"cash", PaymentMethodCash},
	{"dinheiro", PaymentMethodCash},
	{"especie", PaymentMethodCash},
	{"boleto", PaymentMethodBoleto},
	{"bank slip", PaymentMethodBoleto},
}

// NormalizePaymentMethod maps a raw payment-method string to the closed enum.
// Unmatched non-empty input maps to "other"; empty input maps to "other" too.
func NormalizePaymentMethod(raw string) PaymentMethod {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return PaymentMethodOther
	}
	for _, kw := range methodKeywords {
		if strings.Contains(s, kw.fragment) {
			return kw.method
		}
	}
	return PaymentMethodOther
}

// DefaultPlannedMethod is the fallback used by the installment planner when a
// lump-sum method string matches nothing: unmatched plans default to boleto.
func DefaultPlannedMethod(raw string) PaymentMethod {
	m := NormalizePaymentMethod(raw)
	if m == PaymentMethodOther {
		return PaymentMethodBoleto
	}
	return m
}

// PaymentTermsKind tags the PaymentTerms union.
type PaymentTermsKind string

const (
	TermsLumpSum     PaymentTermsKind = "lump_sum"
	TermsInstallment PaymentTermsKind = "installment"
)

// LumpSumTerms describes a single payment.
type LumpSumTerms struct {
	DueDate *time.Time `json:"due_date,omitempty"`
	Method  string     `json:"method,omitempty"`
}

// InstallmentTerms describes a down payment (optional) followed by N equal
// installments pinned to a day of month.
type InstallmentTerms struct {
	DownPayment       decimal.Decimal `json:"down_payment"`
	DownPaymentMethod string          `json:"down_payment_method,omitempty"`
	DownPaymentDueDay int             `json:"down_payment_due_day,omitempty"`
	Count             int             `json:"count"`
	Method            string          `json:"method,omitempty"`
	DueDay            int             `json:"due_day"`
}

// PaymentTerms is a tagged union: exactly one of LumpSum/Installment is set,
// selected by Kind. Modelled this way so "both present" and "neither present"
// are unrepresentable states in valid documents.
type PaymentTerms struct {
	Kind        PaymentTermsKind  `json:"kind"`
	LumpSum     *LumpSumTerms     `json:"lump_sum,omitempty"`
	Installment *InstallmentTerms `json:"installment,omitempty"`
}

// Valid checks the union invariant.
func (t PaymentTerms) Valid() bool {
	switch t.Kind {
	case TermsLumpSum:
		return t.LumpSum != nil && t.Installment == nil
	case TermsInstallment:
		return t.Installment != nil && t.LumpSum == nil && t.Installment.Count > 0
	}
	return false
}

// InstallmentStatus is always pending at plan time; collection flows own the rest.
type InstallmentStatus string

const InstallmentStatusPending InstallmentStatus = "pending"

// Installment is one planned payment. Sequence 0 is the down payment; regular
// installments are 1..N. DueDate is a calendar date (midnight UTC, no time
// component carries meaning).
type Installment struct {
	Sequence int               `json:"sequence"`
	DueDate  time.Time         `json:"due_date"`
	Amount   decimal.Decimal   `json:"amount"`
	Method   PaymentMethod     `json:"method"`
	Status   InstallmentStatus `json:"status"`
}
