package model

// FetchResult is the outcome of one complete upstream fetch: every record
// the source reported, already normalized. Averages is populated only by
// sources that expose a location-level aggregate (the Portal).
// Skipped counts raw records dropped for missing required fields.
type FetchResult struct {
	Members  []*Member
	Averages []LocationAverage
	Skipped  int
}
