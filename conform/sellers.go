package conform

import (
	"sort"

	"bitbucket.org/mmdatafocus/commerce_dwh/models"
)

// ConformSellers cleans the raw seller extract. seller_id is the natural key;
// duplicate ids keep their first-seen row (the extract should not contain
// duplicates, but a re-delivered file must not fan out the dimension).
func ConformSellers(raws []models.RawSeller) ([]models.Seller, StageReport) {
	report := newReport("conform_sellers", len(raws))

	seen := make(map[string]struct{}, len(raws))
	out := make([]models.Seller, 0, len(raws))
	for _, raw := range raws {
		s := models.Seller{
			SellerId:  CleanString(raw.SellerId),
			ZipPrefix: CleanString(raw.ZipPrefix),
			City:      ProperCase(raw.City),
			State:     UpperCode(raw.State),
		}
		if s.SellerId == "" {
			report.Rejected++
			continue
		}
		if _, dup := seen[s.SellerId]; dup {
			report.Rejected++
			continue
		}
		seen[s.SellerId] = struct{}{}
		out = append(out, s)
	}
	report.close()

	sort.Slice(out, func(i, j int) bool { return out[i].SellerId < out[j].SellerId })
	return out, report
}
