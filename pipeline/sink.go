package pipeline

import (
	"context"

	"bitbucket.org/mmdatafocus/commerce_dwh/models"
	"gorm.io/gorm"
)

const loadBatchSize = 500

// GormSink persists one build with truncate-and-reload semantics inside a
// single transaction: readers see either the previous warehouse or the new
// one, never a partially overwritten table.
type GormSink struct {
	DB *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{DB: db}
}

func reload[T any](tx *gorm.DB, table string, rows []T) error {
	if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(rows, loadBatchSize).Error
}

func (s *GormSink) Load(ctx context.Context, build *BuildResult) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := reload(tx, models.FactOrderItem{}.TableName(), build.Facts); err != nil {
			return err
		}
		if err := reload(tx, models.DimCustomer{}.TableName(), build.DimCustomers); err != nil {
			return err
		}
		if err := reload(tx, models.DimProduct{}.TableName(), build.DimProducts); err != nil {
			return err
		}
		if err := reload(tx, models.DimSeller{}.TableName(), build.DimSellers); err != nil {
			return err
		}
		if err := reload(tx, models.DimDate{}.TableName(), build.DimDates); err != nil {
			return err
		}

		if err := reload(tx, models.Customer{}.TableName(), build.Customers); err != nil {
			return err
		}
		if err := reload(tx, models.Geolocation{}.TableName(), build.Geolocation); err != nil {
			return err
		}
		if err := reload(tx, models.Seller{}.TableName(), build.Sellers); err != nil {
			return err
		}
		if err := reload(tx, models.Product{}.TableName(), build.Products); err != nil {
			return err
		}
		if err := reload(tx, models.CategoryTranslation{}.TableName(), build.Translations); err != nil {
			return err
		}
		if err := reload(tx, models.Order{}.TableName(), build.Orders); err != nil {
			return err
		}
		if err := reload(tx, models.OrderItem{}.TableName(), build.OrderItems); err != nil {
			return err
		}
		if err := reload(tx, models.Payment{}.TableName(), build.Payments); err != nil {
			return err
		}
		return reload(tx, models.Review{}.TableName(), build.Reviews)
	})
}
