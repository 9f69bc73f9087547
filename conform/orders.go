package conform

import (
	"sort"
	"time"

	"bitbucket.org/mmdatafocus/commerce_dwh/models"
)

// ConformOrders cleans the raw order extract. A row survives only when:
//
//   - order_id is non-empty (and not a duplicate),
//   - the purchase timestamp parses (everything downstream keys on it),
//   - customer_id resolves in the conformed customer set; customers lost to
//     the unique-person dedupe take their orders with them,
//   - the lifecycle timestamps that are present are monotonically
//     non-decreasing: purchase <= approval <= carrier handoff <= delivery.
//
// The timestamp rule is deliberately strict: one out-of-order stage drops the
// whole order, it is never repaired. Orders with merely missing stages pass.
func ConformOrders(raws []models.RawOrder, customers []models.Customer) ([]models.Order, StageReport) {
	report := newReport("conform_orders", len(raws))

	knownCustomers := make(map[string]struct{}, len(customers))
	for _, c := range customers {
		knownCustomers[c.CustomerId] = struct{}{}
	}

	seen := make(map[string]struct{}, len(raws))
	out := make([]models.Order, 0, len(raws))
	for _, raw := range raws {
		orderId := CleanString(raw.OrderId)
		customerId := CleanString(raw.CustomerId)
		if orderId == "" {
			report.Rejected++
			continue
		}
		if _, dup := seen[orderId]; dup {
			report.Rejected++
			continue
		}
		if _, ok := knownCustomers[customerId]; !ok {
			report.Rejected++
			continue
		}
		purchase := parseTimestamp(raw.PurchaseTimestamp)
		if purchase == nil {
			report.Rejected++
			continue
		}

		o := models.Order{
			OrderId:               orderId,
			CustomerId:            customerId,
			Status:                models.NormalizeOrderStatus(raw.Status),
			PurchaseTimestamp:     *purchase,
			ApprovedAt:            parseTimestamp(raw.ApprovedAt),
			DeliveredCarrierDate:  parseTimestamp(raw.DeliveredCarrierDate),
			DeliveredCustomerDate: parseTimestamp(raw.DeliveredCustomerDate),
			EstimatedDeliveryDate: parseTimestamp(raw.EstimatedDeliveryDate),
		}
		if !timestampsMonotonic(o) {
			report.Rejected++
			continue
		}
		seen[orderId] = struct{}{}
		out = append(out, o)
	}
	report.close()

	sort.Slice(out, func(i, j int) bool { return out[i].OrderId < out[j].OrderId })
	return out, report
}

// timestampsMonotonic checks purchase <= approval <= carrier <= delivery over
// the stages that are present. Each present stage is compared against the
// latest earlier present stage, so a missing middle stage does not break the
// chain. The estimated delivery date is a promise, not a lifecycle event, and
// is not part of the chain.
func timestampsMonotonic(o models.Order) bool {
	last := o.PurchaseTimestamp
	for _, ts := range []*time.Time{o.ApprovedAt, o.DeliveredCarrierDate, o.DeliveredCustomerDate} {
		if ts == nil {
			continue
		}
		if ts.Before(last) {
			return false
		}
		last = *ts
	}
	return true
}
