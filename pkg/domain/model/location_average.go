package model

// LocationAverage is the per-location mean assessment score reported by the
// Portal locations payload. The canonical Member record has no field for a
// location-level aggregate, so these are cached separately with a long TTL
// and read by the rendering layer to build the performance meter.
type LocationAverage struct {
	Country  string
	Location string
	Average  float64
}

// Key returns the cache key for this entry. Region is deliberately absent:
// the display layer looks averages up by (country, location) only.
func (a LocationAverage) Key() string {
	return a.Country + "/" + a.Location
}
