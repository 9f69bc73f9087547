package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conformed records: cleansed, validated and deduplicated source entities.
// These tables are fully rebuilt on every run (truncate + reload); nothing is
// upserted and no row is mutated after it is written.

type Customer struct {
	ID               int    `gorm:"primary_key" json:"id"`
	CustomerId       string `gorm:"size:64;uniqueIndex" json:"customer_id"`
	CustomerUniqueId string `gorm:"size:64;index" json:"customer_unique_id"`
	ZipPrefix        string `gorm:"size:16;index" json:"zip_prefix"`
	City             string `gorm:"size:100" json:"city"`
	State            string `gorm:"size:16" json:"state"`
}

func (Customer) TableName() string { return "conformed_customers" }

// Geolocation is one row per ZIP prefix: coordinates are averaged across all
// plausible raw rows sharing the prefix.
type Geolocation struct {
	ID        int     `gorm:"primary_key" json:"id"`
	ZipPrefix string  `gorm:"size:16;uniqueIndex" json:"zip_prefix"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `gorm:"size:100" json:"city"`
	State     string  `gorm:"size:16" json:"state"`
}

func (Geolocation) TableName() string { return "conformed_geolocation" }

type Seller struct {
	ID        int    `gorm:"primary_key" json:"id"`
	SellerId  string `gorm:"size:64;uniqueIndex" json:"seller_id"`
	ZipPrefix string `gorm:"size:16" json:"zip_prefix"`
	City      string `gorm:"size:100" json:"city"`
	State     string `gorm:"size:16" json:"state"`
}

func (Seller) TableName() string { return "conformed_sellers" }

type Product struct {
	ID                int    `gorm:"primary_key" json:"id"`
	ProductId         string `gorm:"size:64;uniqueIndex" json:"product_id"`
	CategoryName      string `gorm:"size:100" json:"category_name"`
	NameLength        int    `json:"name_length"`
	DescriptionLength int    `json:"description_length"`
	PhotosQty         int    `json:"photos_qty"`
	WeightG           int    `json:"weight_g"`
	LengthCm          int    `json:"length_cm"`
	HeightCm          int    `json:"height_cm"`
	WidthCm           int    `json:"width_cm"`
}

func (Product) TableName() string { return "conformed_products" }

type CategoryTranslation struct {
	ID                  int    `gorm:"primary_key" json:"id"`
	CategoryName        string `gorm:"size:100;uniqueIndex" json:"category_name"`
	CategoryNameEnglish string `gorm:"size:100" json:"category_name_english"`
}

func (CategoryTranslation) TableName() string { return "conformed_category_translation" }

type Order struct {
	ID                    int         `gorm:"primary_key" json:"id"`
	OrderId               string      `gorm:"size:64;uniqueIndex" json:"order_id"`
	CustomerId            string      `gorm:"size:64;index" json:"customer_id"`
	Status                OrderStatus `gorm:"size:32" json:"status"`
	PurchaseTimestamp     time.Time   `json:"purchase_timestamp"`
	ApprovedAt            *time.Time  `json:"approved_at"`
	DeliveredCarrierDate  *time.Time  `json:"delivered_carrier_date"`
	DeliveredCustomerDate *time.Time  `json:"delivered_customer_date"`
	EstimatedDeliveryDate *time.Time  `json:"estimated_delivery_date"`
}

func (Order) TableName() string { return "conformed_orders" }

type OrderItem struct {
	ID                int              `gorm:"primary_key" json:"id"`
	OrderId           string           `gorm:"size:64;index" json:"order_id"`
	OrderItemId       int              `json:"order_item_id"`
	ProductId         string           `gorm:"size:64;index" json:"product_id"`
	SellerId          string           `gorm:"size:64;index" json:"seller_id"`
	ShippingLimitDate *time.Time       `json:"shipping_limit_date"`
	Price             *decimal.Decimal `gorm:"type:decimal(20,4)" json:"price"`
	FreightValue      *decimal.Decimal `gorm:"type:decimal(20,4)" json:"freight_value"`
}

func (OrderItem) TableName() string { return "conformed_order_items" }

type Payment struct {
	ID                  int             `gorm:"primary_key" json:"id"`
	OrderId             string          `gorm:"size:64;index" json:"order_id"`
	PaymentSequential   int             `json:"payment_sequential"`
	PaymentType         PaymentType     `gorm:"size:32" json:"payment_type"`
	PaymentInstallments int             `json:"payment_installments"`
	PaymentValue        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"payment_value"`
}

func (Payment) TableName() string { return "conformed_order_payments" }

type Review struct {
	ID             int            `gorm:"primary_key" json:"id"`
	ReviewId       string         `gorm:"size:64;index" json:"review_id"`
	OrderId        string         `gorm:"size:64;index" json:"order_id"`
	ReviewScore    int            `json:"review_score"`
	ReviewCategory ReviewCategory `gorm:"size:32" json:"review_category"`
	CommentTitle   string         `gorm:"type:text" json:"comment_title"`
	CommentMessage string         `gorm:"type:text" json:"comment_message"`
	HasComment     bool           `json:"has_comment"`
	// The raw timestamps are kept even when unparseable; the validity flags
	// feed data-quality reporting, they never reject the row.
	CreationDate           *time.Time `json:"creation_date"`
	AnswerTimestamp        *time.Time `json:"answer_timestamp"`
	IsCreationDateValid    bool       `json:"is_creation_date_valid"`
	IsAnswerTimestampValid bool       `json:"is_answer_timestamp_valid"`
}

func (Review) TableName() string { return "conformed_order_reviews" }
