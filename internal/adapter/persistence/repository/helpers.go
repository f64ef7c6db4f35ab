package repository

import (
	"os"
	"time"

	"assistec/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Money and timestamps are stored as strings so Dynamo items stay lossless
// and greppable.

func decToString(d decimal.Decimal) string { return d.String() }

func decFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func timeToString(t time.Time) string { return t.UTC().Format(time.RFC3339Nano) }

func timeFromString(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func optTimeToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return timeToString(*t)
}

func optTimeFromString(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := timeFromString(s)
	return &t
}

type historyItem struct {
	At     string `dynamodbav:"at"`
	Actor  string `dynamodbav:"actor"`
	Action string `dynamodbav:"action"`
	Detail string `dynamodbav:"detail,omitempty"`
}

func toHistoryItems(hs []entities.HistoryEntry) []historyItem {
	out := make([]historyItem, 0, len(hs))
	for _, h := range hs {
		out = append(out, historyItem{At: timeToString(h.At), Actor: h.Actor, Action: h.Action, Detail: h.Detail})
	}
	return out
}

func fromHistoryItems(its []historyItem) []entities.HistoryEntry {
	out := make([]entities.HistoryEntry, 0, len(its))
	for _, it := range its {
		out = append(out, entities.HistoryEntry{At: timeFromString(it.At), Actor: it.Actor, Action: it.Action, Detail: it.Detail})
	}
	return out
}

type termsItem struct {
	Kind        string                `dynamodbav:"kind"`
	LumpSum     *lumpSumItem          `dynamodbav:"lump_sum,omitempty"`
	Installment *installmentTermsItem `dynamodbav:"installment,omitempty"`
}

type lumpSumItem struct {
	DueDate string `dynamodbav:"due_date,omitempty"`
	Method  string `dynamodbav:"method,omitempty"`
}

type installmentTermsItem struct {
	DownPayment       string `dynamodbav:"down_payment"`
	DownPaymentMethod string `dynamodbav:"down_payment_method,omitempty"`
	DownPaymentDueDay int    `dynamodbav:"down_payment_due_day,omitempty"`
	Count             int    `dynamodbav:"count"`
	Method            string `dynamodbav:"method,omitempty"`
	DueDay            int    `dynamodbav:"due_day"`
}

func toTermsItem(t entities.PaymentTerms) termsItem {
	it := termsItem{Kind: string(t.Kind)}
	if t.LumpSum != nil {
		it.LumpSum = &lumpSumItem{DueDate: optTimeToString(t.LumpSum.DueDate), Method: t.LumpSum.Method}
	}
	if t.Installment != nil {
		it.Installment = &installmentTermsItem{
			DownPayment:       decToString(t.Installment.DownPayment),
			DownPaymentMethod: t.Installment.DownPaymentMethod,
			DownPaymentDueDay: t.Installment.DownPaymentDueDay,
			Count:             t.Installment.Count,
			Method:            t.Installment.Method,
			DueDay:            t.Installment.DueDay,
		}
	}
	return it
}

func fromTermsItem(it termsItem) entities.PaymentTerms {
	t := entities.PaymentTerms{Kind: entities.PaymentTermsKind(it.Kind)}
	if it.LumpSum != nil {
		t.LumpSum = &entities.LumpSumTerms{DueDate: optTimeFromString(it.LumpSum.DueDate), Method: it.LumpSum.Method}
	}
	if it.Installment != nil {
		t.Installment = &entities.InstallmentTerms{
			DownPayment:       decFromString(it.Installment.DownPayment),
			DownPaymentMethod: it.Installment.DownPaymentMethod,
			DownPaymentDueDay: it.Installment.DownPaymentDueDay,
			Count:             it.Installment.Count,
			Method:            it.Installment.Method,
			DueDay:            it.Installment.DueDay,
		}
	}
	return t
}

type ledgerRefItem struct {
	ID   string `dynamodbav:"id,omitempty"`
	Name string `dynamodbav:"name,omitempty"`
	Code string `dynamodbav:"code,omitempty"`
}

func toLedgerRefItem(r entities.LedgerRef) ledgerRefItem {
	return ledgerRefItem{ID: r.ID, Name: r.Name, Code: r.Code}
}

func fromLedgerRefItem(it ledgerRefItem) entities.LedgerRef {
	return entities.LedgerRef{ID: it.ID, Name: it.Name, Code: it.Code}
}
