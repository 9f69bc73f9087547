package conform_test

import (
	"testing"

	"bitbucket.org/mmdatafocus/commerce_dwh/conform"
	"bitbucket.org/mmdatafocus/commerce_dwh/models"
	"github.com/shopspring/decimal"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestConformPayments(t *testing.T) {
	raws := []models.RawPayment{
		{OrderId: "o1", PaymentSequential: "1", PaymentType: "CREDIT_CARD", PaymentInstallments: "3", PaymentValue: "100.00"},
		{OrderId: "o1", PaymentSequential: "2", PaymentType: "not_defined", PaymentInstallments: "", PaymentValue: ""},
		{OrderId: "", PaymentSequential: "1", PaymentType: "boleto", PaymentValue: "10.00"},
	}
	payments, report := conform.ConformPayments(raws)

	if len(payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(payments))
	}
	if payments[0].PaymentType != models.PaymentTypeCreditCard {
		t.Errorf("payment type = %q, want credit_card", payments[0].PaymentType)
	}
	// Legacy remap plus business defaults for missing numerics.
	if payments[1].PaymentType != models.PaymentTypeUnknown {
		t.Errorf("not_defined should remap to unknown, got %q", payments[1].PaymentType)
	}
	if payments[1].PaymentInstallments != 0 || !payments[1].PaymentValue.Equal(decimal.Zero) {
		t.Errorf("missing numerics should default to 0: %+v", payments[1])
	}
	if report.Rejected != 1 {
		t.Errorf("rejected = %d, want 1", report.Rejected)
	}
}
