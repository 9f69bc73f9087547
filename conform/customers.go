package conform

import (
	"sort"

	"bitbucket.org/mmdatafocus/commerce_dwh/models"
)

// ConformCustomers cleans the raw customer extract and deduplicates it to one
// row per person.
//
// customer_id is per-order while customer_unique_id identifies the repeat
// customer, so the conformed set keeps exactly one geographic snapshot per
// unique id. Tie-break is deterministic: the lexicographically smallest
// customer_id wins.
func ConformCustomers(raws []models.RawCustomer) ([]models.Customer, StageReport) {
	report := newReport("conform_customers", len(raws))

	best := make(map[string]models.Customer, len(raws))
	for _, raw := range raws {
		c := models.Customer{
			CustomerId:       CleanString(raw.CustomerId),
			CustomerUniqueId: CleanString(raw.CustomerUniqueId),
			ZipPrefix:        CleanString(raw.ZipPrefix),
			City:             ProperCase(raw.City),
			State:            UpperCode(raw.State),
		}
		if c.CustomerId == "" || c.CustomerUniqueId == "" {
			report.Rejected++
			continue
		}
		prev, seen := best[c.CustomerUniqueId]
		if seen {
			// Duplicate person: keep the smaller customer_id, count the loser
			// as rejected so Input == Accepted + Rejected still holds.
			report.Rejected++
			if c.CustomerId >= prev.CustomerId {
				continue
			}
		}
		best[c.CustomerUniqueId] = c
	}
	report.close()

	out := make([]models.Customer, 0, len(best))
	for _, c := range best {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerId < out[j].CustomerId })
	return out, report
}
