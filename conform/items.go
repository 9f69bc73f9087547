package conform

import (
	"sort"

	"bitbucket.org/mmdatafocus/commerce_dwh/models"
)

// ConformOrderItems cleans the raw line-item extract. (order_id,
// order_item_id) is the natural key; the item sequence must parse as a
// positive integer. Price and freight stay null when missing or unparseable;
// the fact assembler null-coalesces them to zero, conformance does not.
func ConformOrderItems(raws []models.RawOrderItem) ([]models.OrderItem, StageReport) {
	report := newReport("conform_order_items", len(raws))

	type itemKey struct {
		orderId string
		itemId  int
	}
	seen := make(map[itemKey]struct{}, len(raws))
	out := make([]models.OrderItem, 0, len(raws))
	for _, raw := range raws {
		orderId := CleanString(raw.OrderId)
		itemId, ok := parseInt(raw.OrderItemId)
		if orderId == "" || !ok || itemId <= 0 {
			report.Rejected++
			continue
		}
		key := itemKey{orderId: orderId, itemId: itemId}
		if _, dup := seen[key]; dup {
			report.Rejected++
			continue
		}

		item := models.OrderItem{
			OrderId:           orderId,
			OrderItemId:       itemId,
			ProductId:         CleanString(raw.ProductId),
			SellerId:          CleanString(raw.SellerId),
			ShippingLimitDate: parseTimestamp(raw.ShippingLimitDate),
		}
		if price, ok := parseDecimal(raw.Price); ok {
			item.Price = &price
		}
		if freight, ok := parseDecimal(raw.FreightValue); ok {
			item.FreightValue = &freight
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	report.close()

	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderId != out[j].OrderId {
			return out[i].OrderId < out[j].OrderId
		}
		return out[i].OrderItemId < out[j].OrderItemId
	})
	return out, report
}
