package warehouse_test

import (
	"testing"

	"bitbucket.org/mmdatafocus/commerce_dwh/models"
	"bitbucket.org/mmdatafocus/commerce_dwh/warehouse"
)

func TestBuildCustomerDimension(t *testing.T) {
	customers := []models.Customer{
		{CustomerId: "c2", CustomerUniqueId: "u2", ZipPrefix: "20040", City: "Rio De Janeiro", State: "RJ"},
		{CustomerId: "c1", CustomerUniqueId: "u1", ZipPrefix: "01310", City: "Sao Paulo", State: "SP"},
		{CustomerId: "c3", CustomerUniqueId: "u3", ZipPrefix: "99999", City: "Nowhere", State: "XX"},
	}
	geo := []models.Geolocation{
		{ZipPrefix: "01310", Latitude: -23.56, Longitude: -46.65},
		{ZipPrefix: "20040", Latitude: -22.90, Longitude: -43.18},
	}

	rows, keys := warehouse.BuildCustomerDimension(customers, geo)

	if len(rows) != 4 {
		t.Fatalf("expected 3 members + sentinel, got %d rows", len(rows))
	}
	// Keys follow ascending natural key, starting at 1.
	if keys.Lookup("c1") != 1 || keys.Lookup("c2") != 2 || keys.Lookup("c3") != 3 {
		t.Errorf("keys = %d/%d/%d, want 1/2/3", keys.Lookup("c1"), keys.Lookup("c2"), keys.Lookup("c3"))
	}
	if keys.Lookup("ghost") != warehouse.UnknownKey || keys.Lookup("") != warehouse.UnknownKey {
		t.Error("unresolved lookups must return the sentinel key")
	}

	assertSingleSentinel(t, func() (count int, positives map[int]bool) {
		positives = map[int]bool{}
		for _, row := range rows {
			if row.CustomerKey == warehouse.UnknownKey {
				count++
				if row.CustomerId != warehouse.UnknownNaturalKey {
					t.Errorf("sentinel natural key = %q", row.CustomerId)
				}
				if row.Latitude != nil || row.Longitude != nil {
					t.Error("sentinel row should have null coordinates")
				}
				continue
			}
			positives[row.CustomerKey] = true
		}
		return count, positives
	})

	// Geolocation left join: c1 enriched, c3 keeps nulls and is not rejected.
	if rows[0].Latitude == nil || *rows[0].Latitude != -23.56 {
		t.Errorf("c1 latitude = %v, want -23.56", rows[0].Latitude)
	}
	if rows[2].Latitude != nil {
		t.Errorf("c3 (no matching zip) should keep null coordinates, got %v", *rows[2].Latitude)
	}
}

func TestBuildProductDimension(t *testing.T) {
	products := []models.Product{
		{ProductId: "p1", CategoryName: "moveis_decoracao", LengthCm: 30, HeightCm: 10, WidthCm: 20},
		{ProductId: "p2", CategoryName: "categoria_sem_traducao"},
	}
	translations := []models.CategoryTranslation{
		{CategoryName: "MOVEIS_DECORACAO", CategoryNameEnglish: "furniture_decor"},
	}

	rows, _ := warehouse.BuildProductDimension(products, translations)

	if len(rows) != 3 {
		t.Fatalf("expected 2 members + sentinel, got %d", len(rows))
	}
	if rows[0].VolumeCm3 != 6000 {
		t.Errorf("volume = %d, want 30*10*20 = 6000", rows[0].VolumeCm3)
	}
	// Translation join is case-insensitive; unmatched falls back to Unknown.
	if rows[0].CategoryEnglish != "furniture_decor" {
		t.Errorf("category_english = %q, want furniture_decor", rows[0].CategoryEnglish)
	}
	if rows[1].CategoryEnglish != "Unknown" {
		t.Errorf("untranslated category_english = %q, want Unknown", rows[1].CategoryEnglish)
	}
}

func TestBuildSellerDimension_Sentinel(t *testing.T) {
	rows, keys := warehouse.BuildSellerDimension([]models.Seller{
		{SellerId: "s9", City: "Curitiba", State: "PR"},
		{SellerId: "s1", City: "Campinas", State: "SP"},
	})

	if len(rows) != 3 {
		t.Fatalf("expected 2 members + sentinel, got %d", len(rows))
	}
	if keys.Lookup("s1") != 1 || keys.Lookup("s9") != 2 {
		t.Errorf("seller keys not assigned by ascending natural key")
	}
	last := rows[len(rows)-1]
	if last.SellerKey != warehouse.UnknownKey || last.SellerId != warehouse.UnknownNaturalKey {
		t.Errorf("sentinel row wrong: %+v", last)
	}
}

// assertSingleSentinel checks the shared dimension rule: exactly one sentinel
// row, all other keys unique positive integers.
func assertSingleSentinel(t *testing.T, scan func() (int, map[int]bool)) {
	t.Helper()
	count, positives := scan()
	if count != 1 {
		t.Errorf("expected exactly one sentinel row, got %d", count)
	}
	for key := range positives {
		if key <= 0 {
			t.Errorf("non-sentinel key %d is not a positive integer", key)
		}
	}
}
