package models

import "strings"

type OrderStatus string

const (
	OrderStatusCreated     OrderStatus = "created"
	OrderStatusApproved    OrderStatus = "approved"
	OrderStatusInvoiced    OrderStatus = "invoiced"
	OrderStatusProcessing  OrderStatus = "processing"
	OrderStatusShipped     OrderStatus = "shipped"
	OrderStatusDelivered   OrderStatus = "delivered"
	OrderStatusCanceled    OrderStatus = "canceled"
	OrderStatusUnavailable OrderStatus = "unavailable"
	OrderStatusUnknown     OrderStatus = "unknown"
)

// NormalizeOrderStatus lowercases the raw status. Unrecognized values are kept
// as-is (lowercased) rather than rejected; the fact flags only match the fixed
// literals they care about.
func NormalizeOrderStatus(raw string) OrderStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return OrderStatusUnknown
	}
	return OrderStatus(s)
}

type PaymentType string

const (
	PaymentTypeCreditCard PaymentType = "credit_card"
	PaymentTypeBoleto     PaymentType = "boleto"
	PaymentTypeVoucher    PaymentType = "voucher"
	PaymentTypeDebitCard  PaymentType = "debit_card"
	PaymentTypeUnknown    PaymentType = "unknown"
)

// NormalizePaymentType lowercases the raw payment type and remaps the legacy
// source value "not_defined" to "unknown".
func NormalizePaymentType(raw string) PaymentType {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "", "not_defined":
		return PaymentTypeUnknown
	}
	return PaymentType(s)
}

type ReviewCategory string

const (
	ReviewCategoryExcellent ReviewCategory = "Excellent"
	ReviewCategoryGood      ReviewCategory = "Good"
	ReviewCategoryAverage   ReviewCategory = "Average"
	ReviewCategoryPoor      ReviewCategory = "Poor"
	ReviewCategoryVeryPoor  ReviewCategory = "Very Poor"
	ReviewCategoryNone      ReviewCategory = "No Review"
)

// ReviewCategoryForScore maps a review score to its textual category.
// ok is false for scores outside [1,5]; those rows are rejected upstream.
func ReviewCategoryForScore(score int) (ReviewCategory, bool) {
	switch score {
	case 5:
		return ReviewCategoryExcellent, true
	case 4:
		return ReviewCategoryGood, true
	case 3:
		return ReviewCategoryAverage, true
	case 2:
		return ReviewCategoryPoor, true
	case 1:
		return ReviewCategoryVeryPoor, true
	}
	return "", false
}
