package warehouse

import (
	"sort"
	"strings"

	"bitbucket.org/mmdatafocus/commerce_dwh/conform"
	"bitbucket.org/mmdatafocus/commerce_dwh/models"
)

// Dimension builders. Each one assigns surrogate keys over the ascending
// natural key, appends the single sentinel row (key -1, "UNKNOWN" strings,
// zero/null numerics) and returns the KeyTable the fact assembler resolves
// against. Dimensions are derived views: rebuilt whole every run, never
// mutated in place.

// BuildCustomerDimension left-joins geolocation by ZIP prefix. Customers with
// no matching ZIP keep null coordinates; they are not rejected.
func BuildCustomerDimension(customers []models.Customer, geo []models.Geolocation) ([]models.DimCustomer, *KeyTable) {
	geoByZip := make(map[string]models.Geolocation, len(geo))
	for _, g := range geo {
		geoByZip[g.ZipPrefix] = g
	}

	naturalKeys := make([]string, 0, len(customers))
	for _, c := range customers {
		naturalKeys = append(naturalKeys, c.CustomerId)
	}
	keys := NewKeyTable(naturalKeys)

	rows := make([]models.DimCustomer, 0, len(customers)+1)
	for _, c := range customers {
		row := models.DimCustomer{
			CustomerKey:      keys.Lookup(c.CustomerId),
			CustomerId:       c.CustomerId,
			CustomerUniqueId: c.CustomerUniqueId,
			ZipPrefix:        c.ZipPrefix,
			City:             c.City,
			State:            c.State,
		}
		if g, ok := geoByZip[c.ZipPrefix]; ok {
			lat, lng := g.Latitude, g.Longitude
			row.Latitude = &lat
			row.Longitude = &lng
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CustomerKey < rows[j].CustomerKey })

	rows = append(rows, models.DimCustomer{
		CustomerKey:      UnknownKey,
		CustomerId:       UnknownNaturalKey,
		CustomerUniqueId: UnknownNaturalKey,
		ZipPrefix:        UnknownNaturalKey,
		City:             UnknownNaturalKey,
		State:            UnknownNaturalKey,
	})
	return rows, keys
}

// BuildProductDimension left-joins the category translation table
// (case-insensitive on the category name) and computes the derived shipping
// volume. Untranslated categories fall back to conform.UnknownCategory.
func BuildProductDimension(products []models.Product, translations []models.CategoryTranslation) ([]models.DimProduct, *KeyTable) {
	english := make(map[string]string, len(translations))
	for _, t := range translations {
		english[strings.ToLower(t.CategoryName)] = t.CategoryNameEnglish
	}

	naturalKeys := make([]string, 0, len(products))
	for _, p := range products {
		naturalKeys = append(naturalKeys, p.ProductId)
	}
	keys := NewKeyTable(naturalKeys)

	rows := make([]models.DimProduct, 0, len(products)+1)
	for _, p := range products {
		row := models.DimProduct{
			ProductKey:        keys.Lookup(p.ProductId),
			ProductId:         p.ProductId,
			Category:          p.CategoryName,
			CategoryEnglish:   conform.UnknownCategory,
			NameLength:        p.NameLength,
			DescriptionLength: p.DescriptionLength,
			PhotosQty:         p.PhotosQty,
			WeightG:           p.WeightG,
			LengthCm:          p.LengthCm,
			HeightCm:          p.HeightCm,
			WidthCm:           p.WidthCm,
			VolumeCm3:         p.LengthCm * p.HeightCm * p.WidthCm,
		}
		if e, ok := english[strings.ToLower(p.CategoryName)]; ok {
			row.CategoryEnglish = e
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ProductKey < rows[j].ProductKey })

	rows = append(rows, models.DimProduct{
		ProductKey:      UnknownKey,
		ProductId:       UnknownNaturalKey,
		Category:        UnknownNaturalKey,
		CategoryEnglish: UnknownNaturalKey,
	})
	return rows, keys
}

func BuildSellerDimension(sellers []models.Seller) ([]models.DimSeller, *KeyTable) {
	naturalKeys := make([]string, 0, len(sellers))
	for _, s := range sellers {
		naturalKeys = append(naturalKeys, s.SellerId)
	}
	keys := NewKeyTable(naturalKeys)

	rows := make([]models.DimSeller, 0, len(sellers)+1)
	for _, s := range sellers {
		rows = append(rows, models.DimSeller{
			SellerKey: keys.Lookup(s.SellerId),
			SellerId:  s.SellerId,
			ZipPrefix: s.ZipPrefix,
			City:      s.City,
			State:     s.State,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].SellerKey < rows[j].SellerKey })

	rows = append(rows, models.DimSeller{
		SellerKey: UnknownKey,
		SellerId:  UnknownNaturalKey,
		ZipPrefix: UnknownNaturalKey,
		City:      UnknownNaturalKey,
		State:     UnknownNaturalKey,
	})
	return rows, keys
}
