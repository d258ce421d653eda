package hub

// Operation mirrors one record of the Hub /operations response
type Operation struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	Industry               string   `json:"industry"`
	MembershipType         string   `json:"membership_type"`
	MembershipStatus       string   `json:"membership_status"`
	MembershipLevel        string   `json:"membership_level"`
	LatestScore            *float64 `json:"latest_score"`
	ExternalEcoRecognition bool     `json:"external_eco_recognition"`
	Address                string   `json:"address"`
	Location               NamedRef `json:"location"`
	Region                 NamedRef `json:"region"`
	Country                NamedRef `json:"country"`
	Lat                    float64  `json:"lat"`
	Lng                    float64  `json:"lng"`
	Website                string   `json:"website"`
	Email                  string   `json:"email"`
	LogoURL                string   `json:"logo_url"`
}

// NamedRef is a nested reference object carrying only a display name
type NamedRef struct {
	Name string `json:"name"`
}
