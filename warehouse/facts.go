package warehouse

import (
	"sort"
	"time"

	"bitbucket.org/mmdatafocus/commerce_dwh/models"
	"github.com/shopspring/decimal"
)

// FactInput bundles everything the fact assembler consumes: the full
// conformed order set, the reference-resolved detail sets, the dimension key
// tables, and the "current time" used by the late-delivery flag. Now is a
// parameter, not a call to time.Now, so a run's output is a pure function of
// its input.
type FactInput struct {
	Orders   []models.Order
	Items    []models.OrderItem
	Payments []models.Payment
	Reviews  []models.Review

	CustomerKeys *KeyTable
	ProductKeys  *KeyTable
	SellerKeys   *KeyTable

	Now time.Time
}

// paymentSummary is aggregated exactly once per order and repeated on every
// line-item row of that order.
type paymentSummary struct {
	count        int
	totalValue   decimal.Decimal
	installments int
	primaryType  models.PaymentType
	creditCard   bool
	boleto       bool
}

type reviewSummary struct {
	count      int
	meanScore  float64
	category   models.ReviewCategory
	hasComment bool
}

// AssembleFacts produces the fact table at (order, line item) grain.
//
// Every conformed order appears at least once: orders with no surviving line
// items get exactly one row with order_item_id 0 and sentinel product/seller
// keys. Fact surrogate keys are assigned 1..n over ascending
// (order_id, order_item_id), so identical input yields identical keys.
func AssembleFacts(in FactInput) []models.FactOrderItem {
	itemsByOrder := make(map[string][]models.OrderItem, len(in.Orders))
	for _, item := range in.Items {
		itemsByOrder[item.OrderId] = append(itemsByOrder[item.OrderId], item)
	}
	payments := summarizePayments(in.Payments)
	reviews := summarizeReviews(in.Reviews)

	orders := make([]models.Order, len(in.Orders))
	copy(orders, in.Orders)
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderId < orders[j].OrderId })

	facts := make([]models.FactOrderItem, 0, len(in.Items)+len(orders))
	nextKey := 1
	for _, order := range orders {
		base := baseRow(order, payments[order.OrderId], reviews[order.OrderId], in)

		items := itemsByOrder[order.OrderId]
		if len(items) == 0 {
			row := base
			row.FactKey = nextKey
			nextKey++
			row.OrderItemId = 0
			row.ProductKey = UnknownKey
			row.SellerKey = UnknownKey
			row.IsOrderWithoutItems = true
			facts = append(facts, row)
			continue
		}

		sort.Slice(items, func(i, j int) bool { return items[i].OrderItemId < items[j].OrderItemId })
		for _, item := range items {
			row := base
			row.FactKey = nextKey
			nextKey++
			row.OrderItemId = item.OrderItemId
			row.ProductKey = in.ProductKeys.Lookup(item.ProductId)
			row.SellerKey = in.SellerKeys.Lookup(item.SellerId)
			row.ItemPriceClean = cleanMoney(item.Price)
			row.ItemFreightClean = cleanMoney(item.FreightValue)
			row.TotalItemValue = row.ItemPriceClean.Add(row.ItemFreightClean)
			facts = append(facts, row)
		}
	}
	return facts
}

// baseRow carries everything that is identical across the line-item rows of
// one order.
func baseRow(order models.Order, pay paymentSummary, rev reviewSummary, in FactInput) models.FactOrderItem {
	row := models.FactOrderItem{
		OrderId:     order.OrderId,
		CustomerKey: in.CustomerKeys.Lookup(order.CustomerId),
		DateKey:     DateKey(order.PurchaseTimestamp),
		OrderStatus: order.Status,

		ItemPriceClean:   decimal.Zero,
		ItemFreightClean: decimal.Zero,
		TotalItemValue:   decimal.Zero,

		PaymentCount:       pay.count,
		TotalPaymentValue:  pay.totalValue,
		TotalInstallments:  pay.installments,
		PrimaryPaymentType: pay.primaryType,
		UsedCreditCard:     pay.creditCard,
		UsedBoleto:         pay.boleto,

		ReviewCount:      rev.count,
		AvgReviewScore:   rev.meanScore,
		ReviewCategory:   rev.category,
		HasReviewComment: rev.hasComment,

		IsOrderWithoutPayment: pay.count == 0,
		IsOrderWithoutReview:  rev.count == 0,

		DaysToApproval:         daysSince(order.PurchaseTimestamp, order.ApprovedAt),
		DaysToCarrier:          daysSince(order.PurchaseTimestamp, order.DeliveredCarrierDate),
		DaysToDelivery:         daysSince(order.PurchaseTimestamp, order.DeliveredCustomerDate),
		DeliveryVsEstimateDays: daysBetweenPtr(order.EstimatedDeliveryDate, order.DeliveredCustomerDate),

		IsDelivered:          order.Status == models.OrderStatusDelivered,
		IsCanceled:           order.Status == models.OrderStatusCanceled,
		IsShippedOrDelivered: order.Status == models.OrderStatusShipped || order.Status == models.OrderStatusDelivered,
	}
	if pay.count == 0 {
		row.TotalPaymentValue = decimal.Zero
		row.PrimaryPaymentType = models.PaymentTypeUnknown
	}
	if rev.count == 0 {
		row.ReviewCategory = models.ReviewCategoryNone
	}
	row.IsLateDelivery = isLateDelivery(order, in.Now)
	return row
}

func summarizePayments(payments []models.Payment) map[string]paymentSummary {
	grouped := make(map[string][]models.Payment)
	for _, p := range payments {
		grouped[p.OrderId] = append(grouped[p.OrderId], p)
	}

	out := make(map[string]paymentSummary, len(grouped))
	for orderId, group := range grouped {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].PaymentSequential < group[j].PaymentSequential
		})
		summary := paymentSummary{
			count:       len(group),
			totalValue:  decimal.Zero,
			primaryType: group[0].PaymentType,
		}
		for _, p := range group {
			summary.totalValue = summary.totalValue.Add(p.PaymentValue)
			summary.installments += p.PaymentInstallments
			if p.PaymentType == models.PaymentTypeCreditCard {
				summary.creditCard = true
			}
			if p.PaymentType == models.PaymentTypeBoleto {
				summary.boleto = true
			}
		}
		out[orderId] = summary
	}
	return out
}

// summarizeReviews aggregates once per order. The representative category is
// taken from the LATEST review by creation date. Ties break by review_id and
// reviews with no parseable creation date sort earliest.
func summarizeReviews(reviews []models.Review) map[string]reviewSummary {
	grouped := make(map[string][]models.Review)
	for _, r := range reviews {
		grouped[r.OrderId] = append(grouped[r.OrderId], r)
	}

	out := make(map[string]reviewSummary, len(grouped))
	for orderId, group := range grouped {
		summary := reviewSummary{count: len(group)}
		var scoreSum int
		latest := group[0]
		for _, r := range group {
			scoreSum += r.ReviewScore
			if r.HasComment {
				summary.hasComment = true
			}
			if reviewAfter(r, latest) {
				latest = r
			}
		}
		summary.meanScore = float64(scoreSum) / float64(len(group))
		summary.category = latest.ReviewCategory
		out[orderId] = summary
	}
	return out
}

func reviewAfter(a, b models.Review) bool {
	switch {
	case a.CreationDate == nil && b.CreationDate == nil:
		return a.ReviewId > b.ReviewId
	case a.CreationDate == nil:
		return false
	case b.CreationDate == nil:
		return true
	case a.CreationDate.Equal(*b.CreationDate):
		return a.ReviewId > b.ReviewId
	default:
		return a.CreationDate.After(*b.CreationDate)
	}
}

func cleanMoney(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// civilDays counts whole calendar days between two timestamps, ignoring the
// time-of-day parts (DATEDIFF semantics).
func civilDays(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

func daysSince(from time.Time, to *time.Time) *int {
	if to == nil {
		return nil
	}
	d := civilDays(from, *to)
	return &d
}

func daysBetweenPtr(from, to *time.Time) *int {
	if from == nil || to == nil {
		return nil
	}
	d := civilDays(*from, *to)
	return &d
}

// isLateDelivery: delivered after the estimate, or not delivered at all while
// the estimate has already passed.
func isLateDelivery(order models.Order, now time.Time) bool {
	if order.EstimatedDeliveryDate == nil {
		return false
	}
	if order.DeliveredCustomerDate != nil {
		return civilDays(*order.EstimatedDeliveryDate, *order.DeliveredCustomerDate) > 0
	}
	return civilDays(*order.EstimatedDeliveryDate, now) > 0
}
