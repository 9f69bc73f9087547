package conform

import (
	"sort"

	"bitbucket.org/mmdatafocus/commerce_dwh/models"
)

// The raw geolocation extract is noisy: many rows per ZIP prefix with
// materially different coordinates, some far outside the country. Rows must
// sit inside Brazil's bounding box (extreme points of the territory) to count.
const (
	minLatitude  = -33.75116944
	maxLatitude  = 5.27438888
	minLongitude = -73.98283055
	maxLongitude = -34.79314722
)

type geoAccumulator struct {
	latSum float64
	lngSum float64
	count  int
	city   string
	state  string
}

// ConformGeolocation aggregates the raw extract to one row per ZIP prefix,
// averaging coordinates across all plausible rows. City labels from the
// customer source are preferred over the geolocation source's own city field
// (the customer extract is the better-curated label); the fallback is the
// lexicographically smallest cleaned city among the ZIP's own rows, which
// keeps re-runs deterministic.
func ConformGeolocation(raws []models.RawGeolocation, customers []models.Customer) ([]models.Geolocation, StageReport) {
	report := newReport("conform_geolocation", len(raws))

	// Deterministic customer label per zip: smallest customer_id wins.
	// The conformed customer set is sorted by customer_id already.
	customerCity := make(map[string]models.Customer)
	for _, c := range customers {
		if c.ZipPrefix == "" || c.City == "" {
			continue
		}
		if _, ok := customerCity[c.ZipPrefix]; !ok {
			customerCity[c.ZipPrefix] = c
		}
	}

	acc := make(map[string]*geoAccumulator)
	for _, raw := range raws {
		zip := CleanString(raw.ZipPrefix)
		if !isZipPrefix(zip) {
			report.Rejected++
			continue
		}
		lat, latOk := parseFloat(raw.Latitude)
		lng, lngOk := parseFloat(raw.Longitude)
		if !latOk || !lngOk {
			report.Rejected++
			continue
		}
		if lat < minLatitude || lat > maxLatitude || lng < minLongitude || lng > maxLongitude {
			report.Rejected++
			continue
		}

		a, ok := acc[zip]
		if !ok {
			a = &geoAccumulator{}
			acc[zip] = a
		}
		a.latSum += lat
		a.lngSum += lng
		a.count++
		if city := ProperCase(raw.City); city != "" && (a.city == "" || city < a.city) {
			a.city = city
		}
		if state := UpperCode(raw.State); state != "" && (a.state == "" || state < a.state) {
			a.state = state
		}
	}
	report.close()

	out := make([]models.Geolocation, 0, len(acc))
	for zip, a := range acc {
		g := models.Geolocation{
			ZipPrefix: zip,
			Latitude:  a.latSum / float64(a.count),
			Longitude: a.lngSum / float64(a.count),
			City:      a.city,
			State:     a.state,
		}
		if c, ok := customerCity[zip]; ok {
			g.City = c.City
			if c.State != "" {
				g.State = c.State
			}
		}
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ZipPrefix < out[j].ZipPrefix })
	return out, report
}
