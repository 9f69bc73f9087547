package models

// Raw staging records. The ingestion layer bulk-loads the CSV extracts into
// these tables verbatim; every column is a string and "" means null. All
// cleansing happens in the conform package, so a re-run can always start from
// exactly what the source system delivered.

type RawCustomer struct {
	ID               int    `gorm:"primary_key" json:"id"`
	CustomerId       string `gorm:"size:64;index" json:"customer_id"`
	CustomerUniqueId string `gorm:"size:64" json:"customer_unique_id"`
	ZipPrefix        string `gorm:"size:16" json:"customer_zip_code_prefix"`
	City             string `gorm:"size:100" json:"customer_city"`
	State            string `gorm:"size:16" json:"customer_state"`
}

func (RawCustomer) TableName() string { return "staging_customers" }

type RawGeolocation struct {
	ID        int    `gorm:"primary_key" json:"id"`
	ZipPrefix string `gorm:"size:16;index" json:"geolocation_zip_code_prefix"`
	Latitude  string `gorm:"size:32" json:"geolocation_lat"`
	Longitude string `gorm:"size:32" json:"geolocation_lng"`
	City      string `gorm:"size:100" json:"geolocation_city"`
	State     string `gorm:"size:16" json:"geolocation_state"`
}

func (RawGeolocation) TableName() string { return "staging_geolocation" }

type RawSeller struct {
	ID        int    `gorm:"primary_key" json:"id"`
	SellerId  string `gorm:"size:64;index" json:"seller_id"`
	ZipPrefix string `gorm:"size:16" json:"seller_zip_code_prefix"`
	City      string `gorm:"size:100" json:"seller_city"`
	State     string `gorm:"size:16" json:"seller_state"`
}

func (RawSeller) TableName() string { return "staging_sellers" }

type RawProduct struct {
	ID                int    `gorm:"primary_key" json:"id"`
	ProductId         string `gorm:"size:64;index" json:"product_id"`
	CategoryName      string `gorm:"size:100" json:"product_category_name"`
	NameLength        string `gorm:"size:16" json:"product_name_lenght"`
	DescriptionLength string `gorm:"size:16" json:"product_description_lenght"`
	PhotosQty         string `gorm:"size:16" json:"product_photos_qty"`
	WeightG           string `gorm:"size:16" json:"product_weight_g"`
	LengthCm          string `gorm:"size:16" json:"product_length_cm"`
	HeightCm          string `gorm:"size:16" json:"product_height_cm"`
	WidthCm           string `gorm:"size:16" json:"product_width_cm"`
}

func (RawProduct) TableName() string { return "staging_products" }

type RawCategoryTranslation struct {
	ID                  int    `gorm:"primary_key" json:"id"`
	CategoryName        string `gorm:"size:100" json:"product_category_name"`
	CategoryNameEnglish string `gorm:"size:100" json:"product_category_name_english"`
}

func (RawCategoryTranslation) TableName() string { return "staging_category_translation" }

type RawOrder struct {
	ID                    int    `gorm:"primary_key" json:"id"`
	OrderId               string `gorm:"size:64;index" json:"order_id"`
	CustomerId            string `gorm:"size:64;index" json:"customer_id"`
	Status                string `gorm:"size:32" json:"order_status"`
	PurchaseTimestamp     string `gorm:"size:32" json:"order_purchase_timestamp"`
	ApprovedAt            string `gorm:"size:32" json:"order_approved_at"`
	DeliveredCarrierDate  string `gorm:"size:32" json:"order_delivered_carrier_date"`
	DeliveredCustomerDate string `gorm:"size:32" json:"order_delivered_customer_date"`
	EstimatedDeliveryDate string `gorm:"size:32" json:"order_estimated_delivery_date"`
}

func (RawOrder) TableName() string { return "staging_orders" }

type RawOrderItem struct {
	ID                int    `gorm:"primary_key" json:"id"`
	OrderId           string `gorm:"size:64;index" json:"order_id"`
	OrderItemId       string `gorm:"size:16" json:"order_item_id"`
	ProductId         string `gorm:"size:64" json:"product_id"`
	SellerId          string `gorm:"size:64" json:"seller_id"`
	ShippingLimitDate string `gorm:"size:32" json:"shipping_limit_date"`
	Price             string `gorm:"size:32" json:"price"`
	FreightValue      string `gorm:"size:32" json:"freight_value"`
}

func (RawOrderItem) TableName() string { return "staging_order_items" }

type RawPayment struct {
	ID                  int    `gorm:"primary_key" json:"id"`
	OrderId             string `gorm:"size:64;index" json:"order_id"`
	PaymentSequential   string `gorm:"size:16" json:"payment_sequential"`
	PaymentType         string `gorm:"size:32" json:"payment_type"`
	PaymentInstallments string `gorm:"size:16" json:"payment_installments"`
	PaymentValue        string `gorm:"size:32" json:"payment_value"`
}

func (RawPayment) TableName() string { return "staging_order_payments" }

type RawReview struct {
	ID              int    `gorm:"primary_key" json:"id"`
	ReviewId        string `gorm:"size:64;index" json:"review_id"`
	OrderId         string `gorm:"size:64;index" json:"order_id"`
	ReviewScore     string `gorm:"size:16" json:"review_score"`
	CommentTitle    string `gorm:"type:text" json:"review_comment_title"`
	CommentMessage  string `gorm:"type:text" json:"review_comment_message"`
	CreationDate    string `gorm:"size:32" json:"review_creation_date"`
	AnswerTimestamp string `gorm:"size:32" json:"review_answer_timestamp"`
}

func (RawReview) TableName() string { return "staging_order_reviews" }
