package conform

import (
	"sort"

	"bitbucket.org/mmdatafocus/commerce_dwh/models"
)

// UnknownCategory is the literal used when a product has no category. The
// real category codes are lowercase, so the capital U cannot collide with one.
const UnknownCategory = "Unknown"

// ConformProducts cleans the raw product extract. A blank category defaults
// to UnknownCategory instead of rejecting the row; optional numeric fields
// null-coalesce to zero (a product with no photos has photos_qty 0, not null).
func ConformProducts(raws []models.RawProduct) ([]models.Product, StageReport) {
	report := newReport("conform_products", len(raws))

	seen := make(map[string]struct{}, len(raws))
	out := make([]models.Product, 0, len(raws))
	for _, raw := range raws {
		p := models.Product{
			ProductId:         CleanString(raw.ProductId),
			CategoryName:      LowerCode(raw.CategoryName),
			NameLength:        intOrZero(raw.NameLength),
			DescriptionLength: intOrZero(raw.DescriptionLength),
			PhotosQty:         intOrZero(raw.PhotosQty),
			WeightG:           intOrZero(raw.WeightG),
			LengthCm:          intOrZero(raw.LengthCm),
			HeightCm:          intOrZero(raw.HeightCm),
			WidthCm:           intOrZero(raw.WidthCm),
		}
		if p.ProductId == "" {
			report.Rejected++
			continue
		}
		if _, dup := seen[p.ProductId]; dup {
			report.Rejected++
			continue
		}
		if p.CategoryName == "" {
			p.CategoryName = UnknownCategory
		}
		seen[p.ProductId] = struct{}{}
		out = append(out, p)
	}
	report.close()

	sort.Slice(out, func(i, j int) bool { return out[i].ProductId < out[j].ProductId })
	return out, report
}

// ConformCategoryTranslations cleans the category translation table. The
// source-language name is the join key and follows the lowercase category
// convention; the English label keeps its own casing.
func ConformCategoryTranslations(raws []models.RawCategoryTranslation) ([]models.CategoryTranslation, StageReport) {
	report := newReport("conform_category_translation", len(raws))

	seen := make(map[string]struct{}, len(raws))
	out := make([]models.CategoryTranslation, 0, len(raws))
	for _, raw := range raws {
		t := models.CategoryTranslation{
			CategoryName:        LowerCode(raw.CategoryName),
			CategoryNameEnglish: CleanString(raw.CategoryNameEnglish),
		}
		if t.CategoryName == "" || t.CategoryNameEnglish == "" {
			report.Rejected++
			continue
		}
		if _, dup := seen[t.CategoryName]; dup {
			report.Rejected++
			continue
		}
		seen[t.CategoryName] = struct{}{}
		out = append(out, t)
	}
	report.close()

	sort.Slice(out, func(i, j int) bool { return out[i].CategoryName < out[j].CategoryName })
	return out, report
}
