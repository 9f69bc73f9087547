package conform_test

import (
	"testing"

	"bitbucket.org/mmdatafocus/commerce_dwh/conform"
	"bitbucket.org/mmdatafocus/commerce_dwh/models"
)

func TestConformProducts(t *testing.T) {
	raws := []models.RawProduct{
		{ProductId: "p1", CategoryName: "Moveis_Decoracao", PhotosQty: "3", LengthCm: "30", HeightCm: "10", WidthCm: "20"},
		{ProductId: "p2", CategoryName: "", PhotosQty: ""},
		{ProductId: "p2", CategoryName: "dup"},
		{ProductId: ""},
	}
	products, report := conform.ConformProducts(raws)

	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].CategoryName != "moveis_decoracao" {
		t.Errorf("category = %q, want lowercase code", products[0].CategoryName)
	}
	// Blank category defaults instead of rejecting; missing photos coalesce to 0.
	if products[1].CategoryName != conform.UnknownCategory {
		t.Errorf("blank category = %q, want %q", products[1].CategoryName, conform.UnknownCategory)
	}
	if products[1].PhotosQty != 0 {
		t.Errorf("photos_qty = %d, want 0", products[1].PhotosQty)
	}
	if report.Rejected != 2 {
		t.Errorf("rejected = %d, want 2", report.Rejected)
	}
}

func TestConformCategoryTranslations(t *testing.T) {
	raws := []models.RawCategoryTranslation{
		{CategoryName: "Moveis_Decoracao", CategoryNameEnglish: "furniture_decor"},
		{CategoryName: "moveis_decoracao", CategoryNameEnglish: "furniture_decor_dup"},
		{CategoryName: "", CategoryNameEnglish: "orphan"},
	}
	translations, report := conform.ConformCategoryTranslations(raws)

	if len(translations) != 1 {
		t.Fatalf("expected 1 translation, got %d", len(translations))
	}
	if translations[0].CategoryName != "moveis_decoracao" || translations[0].CategoryNameEnglish != "furniture_decor" {
		t.Errorf("unexpected translation row: %+v", translations[0])
	}
	if report.Rejected != 2 {
		t.Errorf("rejected = %d, want 2", report.Rejected)
	}
}
