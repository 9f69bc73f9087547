package conform

import (
	"bitbucket.org/mmdatafocus/commerce_dwh/models"
)

// Reference resolution: inner-join-style filters between conformed entities.
// A row whose referenced natural key has no match in the target set is
// dropped, never repaired. Only membership is checked here; unresolved
// dimension references inside surviving rows are the fact assembler's problem
// (sentinel keys).

func keySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

func orderIdSet(orders []models.Order) map[string]struct{} {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.OrderId)
	}
	return keySet(ids)
}

// ResolveOrderItems keeps line items whose order, product AND seller all
// exist in the conformed sets.
func ResolveOrderItems(items []models.OrderItem, orders []models.Order, products []models.Product, sellers []models.Seller) ([]models.OrderItem, StageReport) {
	report := newReport("resolve_order_items", len(items))

	knownOrders := orderIdSet(orders)
	knownProducts := make(map[string]struct{}, len(products))
	for _, p := range products {
		knownProducts[p.ProductId] = struct{}{}
	}
	knownSellers := make(map[string]struct{}, len(sellers))
	for _, s := range sellers {
		knownSellers[s.SellerId] = struct{}{}
	}

	out := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if _, ok := knownOrders[item.OrderId]; !ok {
			report.Rejected++
			continue
		}
		if _, ok := knownProducts[item.ProductId]; !ok {
			report.Rejected++
			continue
		}
		if _, ok := knownSellers[item.SellerId]; !ok {
			report.Rejected++
			continue
		}
		out = append(out, item)
	}
	report.close()
	return out, report
}

// ResolvePayments keeps payments whose order exists in the conformed set.
func ResolvePayments(payments []models.Payment, orders []models.Order) ([]models.Payment, StageReport) {
	report := newReport("resolve_order_payments", len(payments))

	knownOrders := orderIdSet(orders)
	out := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		if _, ok := knownOrders[p.OrderId]; !ok {
			report.Rejected++
			continue
		}
		out = append(out, p)
	}
	report.close()
	return out, report
}

// ResolveReviews keeps reviews whose order exists in the conformed set.
func ResolveReviews(reviews []models.Review, orders []models.Order) ([]models.Review, StageReport) {
	report := newReport("resolve_order_reviews", len(reviews))

	knownOrders := orderIdSet(orders)
	out := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		if _, ok := knownOrders[r.OrderId]; !ok {
			report.Rejected++
			continue
		}
		out = append(out, r)
	}
	report.close()
	return out, report
}
