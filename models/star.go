package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Star schema. Surrogate keys are assigned by the warehouse package in a
// stable order (ascending natural key), so repeated runs over identical
// conformed input produce byte-identical tables. Every dimension except
// dim_dates carries exactly one sentinel row with key -1 and natural key
// "UNKNOWN"; facts point at it whenever a reference cannot be resolved.

type DimCustomer struct {
	CustomerKey      int      `gorm:"primaryKey;autoIncrement:false" json:"customer_key"`
	CustomerId       string   `gorm:"size:64;index" json:"customer_id"`
	CustomerUniqueId string   `gorm:"size:64" json:"customer_unique_id"`
	ZipPrefix        string   `gorm:"size:16" json:"zip_prefix"`
	City             string   `gorm:"size:100" json:"city"`
	State            string   `gorm:"size:16" json:"state"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
}

func (DimCustomer) TableName() string { return "dim_customers" }

type DimProduct struct {
	ProductKey        int    `gorm:"primaryKey;autoIncrement:false" json:"product_key"`
	ProductId         string `gorm:"size:64;index" json:"product_id"`
	Category          string `gorm:"size:100" json:"category"`
	CategoryEnglish   string `gorm:"size:100" json:"category_english"`
	NameLength        int    `json:"name_length"`
	DescriptionLength int    `json:"description_length"`
	PhotosQty         int    `json:"photos_qty"`
	WeightG           int    `json:"weight_g"`
	LengthCm          int    `json:"length_cm"`
	HeightCm          int    `json:"height_cm"`
	WidthCm           int    `json:"width_cm"`
	VolumeCm3         int    `json:"volume_cm3"`
}

func (DimProduct) TableName() string { return "dim_products" }

type DimSeller struct {
	SellerKey int    `gorm:"primaryKey;autoIncrement:false" json:"seller_key"`
	SellerId  string `gorm:"size:64;index" json:"seller_id"`
	ZipPrefix string `gorm:"size:16" json:"zip_prefix"`
	City      string `gorm:"size:100" json:"city"`
	State     string `gorm:"size:16" json:"state"`
}

func (DimSeller) TableName() string { return "dim_sellers" }

// DimDate has no sentinel row; its key is the date itself encoded as
// year*10000 + month*100 + day.
type DimDate struct {
	DateKey       int       `gorm:"primaryKey;autoIncrement:false" json:"date_key"`
	Date          time.Time `json:"date"`
	Year          int       `json:"year"`
	Quarter       int       `json:"quarter"`
	Month         int       `json:"month"`
	MonthName     string    `gorm:"size:16" json:"month_name"`
	Day           int       `json:"day"`
	WeekdayNumber int       `json:"weekday_number"`
	WeekdayName   string    `gorm:"size:16" json:"weekday_name"`
	IsWeekend     bool      `json:"is_weekend"`
	IsHoliday     bool      `json:"is_holiday"`
}

func (DimDate) TableName() string { return "dim_dates" }

// FactOrderItem: one row per (order, line item). Orders with no line items
// get exactly one row with order_item_id = 0 and sentinel product/seller keys,
// so no order is ever lost.
//
// Payment and review measures are aggregated once per order and repeated on
// every line-item row of that order. Summing total_payment_value across rows
// of a multi-item order double-counts; consumers must aggregate per order_id.
type FactOrderItem struct {
	FactKey     int    `gorm:"primaryKey;autoIncrement:false" json:"fact_key"`
	OrderId     string `gorm:"size:64;index" json:"order_id"`
	OrderItemId int    `json:"order_item_id"`

	CustomerKey int `gorm:"index" json:"customer_key"`
	ProductKey  int `gorm:"index" json:"product_key"`
	SellerKey   int `gorm:"index" json:"seller_key"`
	DateKey     int `gorm:"index" json:"date_key"`

	OrderStatus OrderStatus `gorm:"size:32" json:"order_status"`

	ItemPriceClean   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"item_price_clean"`
	ItemFreightClean decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"item_freight_clean"`
	TotalItemValue   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_item_value"`

	PaymentCount       int             `json:"payment_count"`
	TotalPaymentValue  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_payment_value"`
	TotalInstallments  int             `json:"total_installments"`
	PrimaryPaymentType PaymentType     `gorm:"size:32" json:"primary_payment_type"`
	UsedCreditCard     bool            `json:"used_credit_card"`
	UsedBoleto         bool            `json:"used_boleto"`

	ReviewCount      int            `json:"review_count"`
	AvgReviewScore   float64        `json:"avg_review_score"`
	ReviewCategory   ReviewCategory `gorm:"size:32" json:"review_category"`
	HasReviewComment bool           `json:"has_review_comment"`

	IsOrderWithoutItems   bool `json:"is_order_without_items"`
	IsOrderWithoutPayment bool `json:"is_order_without_payment"`
	IsOrderWithoutReview  bool `json:"is_order_without_review"`

	DaysToApproval         *int `json:"days_to_approval"`
	DaysToCarrier          *int `json:"days_to_carrier"`
	DaysToDelivery         *int `json:"days_to_delivery"`
	DeliveryVsEstimateDays *int `json:"delivery_vs_estimate_days"`
	IsLateDelivery         bool `json:"is_late_delivery"`

	IsDelivered          bool `json:"is_delivered"`
	IsCanceled           bool `json:"is_canceled"`
	IsShippedOrDelivered bool `json:"is_shipped_or_delivered"`
}

func (FactOrderItem) TableName() string { return "fact_order_items" }
