package portal

import "encoding/json"

// envelope is the Portal response wrapper. success is 0 or 1; a zero means
// the upstream application failed even though HTTP succeeded.
type envelope struct {
	Success      int             `json:"success"`
	Data         json.RawMessage `json:"data"`
	ErrorMessage string          `json:"error_message"`
}

// Country is one entry of the /countries listing
type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Region is one entry of a /countries/{id}/regions listing
type Region struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Location is one entry of a /regions/{id}/locations listing. Average is
// the location-level mean assessment score, absent when no member there has
// been assessed yet.
type Location struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Average *float64 `json:"average"`
}

// Member is one entry of a /locations/{id}/members listing. The Portal is
// the legacy API generation: flat strings, no tier fields, lat/lng as text.
type Member struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Status      string `json:"status"`
	LogoURL     string `json:"logofilename"`
	Website     string `json:"website"`
	Email       string `json:"email"`
	Telephone   string `json:"telephone"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	Address3    string `json:"address3"`
	RegionName  string `json:"region_name"`
	CountryName string `json:"country_name"`
	Lat         string `json:"lat"`
	Lng         string `json:"lng"`
}
