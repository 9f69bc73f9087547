package conform_test

import (
	"math"
	"testing"

	"bitbucket.org/mmdatafocus/commerce_dwh/conform"
	"bitbucket.org/mmdatafocus/commerce_dwh/models"
)

func TestConformGeolocation_AveragesCoordinatesPerZip(t *testing.T) {
	raws := []models.RawGeolocation{
		{ZipPrefix: "01310", Latitude: "1.0", Longitude: "-46.0", City: "sao paulo", State: "sp"},
		{ZipPrefix: "01310", Latitude: "1.2", Longitude: "-46.2", City: "sao paulo", State: "sp"},
	}

	geo, report := conform.ConformGeolocation(raws, nil)

	if len(geo) != 1 {
		t.Fatalf("expected 1 aggregated row, got %d", len(geo))
	}
	if math.Abs(geo[0].Latitude-1.1) > 1e-9 {
		t.Errorf("lat = %v, want 1.1", geo[0].Latitude)
	}
	if math.Abs(geo[0].Longitude-(-46.1)) > 1e-9 {
		t.Errorf("lng = %v, want -46.1", geo[0].Longitude)
	}
	if report.Accepted != 2 || report.Rejected != 0 {
		t.Errorf("report = %+v, want accepted=2 rejected=0", report)
	}
}

func TestConformGeolocation_FiltersImplausibleRows(t *testing.T) {
	raws := []models.RawGeolocation{
		{ZipPrefix: "01310", Latitude: "1.0", Longitude: "-46.0"},
		// Outside the country's bounding box.
		{ZipPrefix: "01310", Latitude: "48.85", Longitude: "2.35"},
		// Malformed ZIP prefixes.
		{ZipPrefix: "1310", Latitude: "1.0", Longitude: "-46.0"},
		{ZipPrefix: "01310a", Latitude: "1.0", Longitude: "-46.0"},
		// Unparseable coordinate.
		{ZipPrefix: "01310", Latitude: "abc", Longitude: "-46.0"},
	}

	geo, report := conform.ConformGeolocation(raws, nil)

	if len(geo) != 1 {
		t.Fatalf("expected 1 row, got %d", len(geo))
	}
	if geo[0].Latitude != 1.0 {
		t.Errorf("lat = %v, want 1.0 (only the plausible row counts)", geo[0].Latitude)
	}
	if report.Rejected != 4 {
		t.Errorf("rejected = %d, want 4", report.Rejected)
	}
}

func TestConformGeolocation_PrefersCustomerCityLabel(t *testing.T) {
	raws := []models.RawGeolocation{
		{ZipPrefix: "01310", Latitude: "1.0", Longitude: "-46.0", City: "sao paulo zona sul", State: "sp"},
	}
	customers := []models.Customer{
		{CustomerId: "c1", CustomerUniqueId: "u1", ZipPrefix: "01310", City: "Sao Paulo", State: "SP"},
	}

	geo, _ := conform.ConformGeolocation(raws, customers)

	if len(geo) != 1 {
		t.Fatalf("expected 1 row, got %d", len(geo))
	}
	if geo[0].City != "Sao Paulo" {
		t.Errorf("city = %q, want the customer-source label", geo[0].City)
	}
}

func TestConformGeolocation_FallsBackToOwnCity(t *testing.T) {
	raws := []models.RawGeolocation{
		{ZipPrefix: "99999", Latitude: "-1.0", Longitude: "-46.0", City: "itupeva", State: "sp"},
	}

	geo, _ := conform.ConformGeolocation(raws, nil)

	if len(geo) != 1 || geo[0].City != "Itupeva" {
		t.Fatalf("expected fallback city Itupeva, got %+v", geo)
	}
}
