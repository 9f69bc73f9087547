package conform_test

import (
	"testing"
	"time"

	"bitbucket.org/mmdatafocus/commerce_dwh/conform"
	"bitbucket.org/mmdatafocus/commerce_dwh/models"
)

func resolveFixture() ([]models.Order, []models.Product, []models.Seller) {
	orders := []models.Order{
		{OrderId: "o1", CustomerId: "c1", PurchaseTimestamp: time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	products := []models.Product{{ProductId: "p1"}}
	sellers := []models.Seller{{SellerId: "s1"}}
	return orders, products, sellers
}

func TestResolveOrderItems_DropsOrphans(t *testing.T) {
	orders, products, sellers := resolveFixture()
	items := []models.OrderItem{
		{OrderId: "o1", OrderItemId: 1, ProductId: "p1", SellerId: "s1"},
		{OrderId: "ghost", OrderItemId: 1, ProductId: "p1", SellerId: "s1"},
		{OrderId: "o1", OrderItemId: 2, ProductId: "ghost", SellerId: "s1"},
		{OrderId: "o1", OrderItemId: 3, ProductId: "p1", SellerId: "ghost"},
	}

	kept, report := conform.ResolveOrderItems(items, orders, products, sellers)

	if len(kept) != 1 || kept[0].OrderItemId != 1 {
		t.Fatalf("expected only the fully resolved item, got %+v", kept)
	}
	if report.Input != 4 || report.Accepted != 1 || report.Rejected != 3 {
		t.Errorf("report = %+v, want 4/1/3", report)
	}
}

func TestResolvePaymentsAndReviews_DropOrphans(t *testing.T) {
	orders, _, _ := resolveFixture()

	payments := []models.Payment{
		{OrderId: "o1", PaymentSequential: 1},
		{OrderId: "ghost", PaymentSequential: 1},
	}
	keptPayments, payReport := conform.ResolvePayments(payments, orders)
	if len(keptPayments) != 1 || payReport.Rejected != 1 {
		t.Errorf("payments: kept=%d rejected=%d, want 1/1", len(keptPayments), payReport.Rejected)
	}

	reviews := []models.Review{
		{ReviewId: "r1", OrderId: "o1", ReviewScore: 5},
		{ReviewId: "r2", OrderId: "ghost", ReviewScore: 5},
	}
	keptReviews, revReport := conform.ResolveReviews(reviews, orders)
	if len(keptReviews) != 1 || revReport.Rejected != 1 {
		t.Errorf("reviews: kept=%d rejected=%d, want 1/1", len(keptReviews), revReport.Rejected)
	}
}
