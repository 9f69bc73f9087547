package models

import (
	"log"

	"bitbucket.org/mmdatafocus/commerce_dwh/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&RawCustomer{}, &RawGeolocation{}, &RawSeller{}, &RawProduct{}, &RawCategoryTranslation{},
		&RawOrder{}, &RawOrderItem{}, &RawPayment{}, &RawReview{},
		&Customer{}, &Geolocation{}, &Seller{}, &Product{}, &CategoryTranslation{},
		&Order{}, &OrderItem{}, &Payment{}, &Review{},
		&DimCustomer{}, &DimProduct{}, &DimSeller{}, &DimDate{},
		&FactOrderItem{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
