package pipeline

import (
	"context"

	"bitbucket.org/mmdatafocus/commerce_dwh/models"
	"gorm.io/gorm"
)

// GormSource reads the raw staging tables the ingestion layer bulk-loaded.
// Rows come back ordered by staging row id so two reads of the same tables
// see the same sequence.
type GormSource struct {
	DB *gorm.DB
}

func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{DB: db}
}

func findAll[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	var rows []T
	if err := db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormSource) RawCustomers(ctx context.Context) ([]models.RawCustomer, error) {
	return findAll[models.RawCustomer](ctx, s.DB)
}

func (s *GormSource) RawGeolocation(ctx context.Context) ([]models.RawGeolocation, error) {
	return findAll[models.RawGeolocation](ctx, s.DB)
}

func (s *GormSource) RawSellers(ctx context.Context) ([]models.RawSeller, error) {
	return findAll[models.RawSeller](ctx, s.DB)
}

func (s *GormSource) RawProducts(ctx context.Context) ([]models.RawProduct, error) {
	return findAll[models.RawProduct](ctx, s.DB)
}

func (s *GormSource) RawCategoryTranslations(ctx context.Context) ([]models.RawCategoryTranslation, error) {
	return findAll[models.RawCategoryTranslation](ctx, s.DB)
}

func (s *GormSource) RawOrders(ctx context.Context) ([]models.RawOrder, error) {
	return findAll[models.RawOrder](ctx, s.DB)
}

func (s *GormSource) RawOrderItems(ctx context.Context) ([]models.RawOrderItem, error) {
	return findAll[models.RawOrderItem](ctx, s.DB)
}

func (s *GormSource) RawPayments(ctx context.Context) ([]models.RawPayment, error) {
	return findAll[models.RawPayment](ctx, s.DB)
}

func (s *GormSource) RawReviews(ctx context.Context) ([]models.RawReview, error) {
	return findAll[models.RawReview](ctx, s.DB)
}
