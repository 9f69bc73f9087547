package conform

import (
	"sort"

	"bitbucket.org/mmdatafocus/commerce_dwh/models"
	"github.com/shopspring/decimal"
)

// ConformPayments cleans the raw payment extract. The payment type is
// lowercased with the legacy "not_defined" value remapped to "unknown".
// Business defaults: a missing sequence number means the single payment of
// the order (1), missing installments mean 0, a missing value means 0.
func ConformPayments(raws []models.RawPayment) ([]models.Payment, StageReport) {
	report := newReport("conform_order_payments", len(raws))

	out := make([]models.Payment, 0, len(raws))
	for _, raw := range raws {
		orderId := CleanString(raw.OrderId)
		if orderId == "" {
			report.Rejected++
			continue
		}
		sequential, ok := parseInt(raw.PaymentSequential)
		if !ok || sequential <= 0 {
			sequential = 1
		}
		value, ok := parseDecimal(raw.PaymentValue)
		if !ok {
			value = decimal.Zero
		}
		out = append(out, models.Payment{
			OrderId:             orderId,
			PaymentSequential:   sequential,
			PaymentType:         models.NormalizePaymentType(raw.PaymentType),
			PaymentInstallments: intOrZero(raw.PaymentInstallments),
			PaymentValue:        value,
		})
	}
	report.close()

	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderId != out[j].OrderId {
			return out[i].OrderId < out[j].OrderId
		}
		return out[i].PaymentSequential < out[j].PaymentSequential
	})
	return out, report
}
