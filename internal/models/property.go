package models

// PropertyInput is the validated, immutable property record an analysis
// request is built from. Field names follow the wire format of the API.
type PropertyInput struct {
	Address            string  `json:"address"`
	Bedrooms           int     `json:"bedrooms"`
	Bathrooms          float64 `json:"bathrooms"`
	Sqft               int     `json:"sqft"`
	AgeYears           int     `json:"age_years"`
	LocationType       string  `json:"location_type"`
	Condition          string  `json:"condition"`
	NeighborhoodRating string  `json:"neighborhood_rating"`
}

// AnalysisRequest is the body of POST /api/analyze.
type AnalysisRequest struct {
	Property PropertyInput `json:"property" binding:"required"`
}

// SampleProperty returns the hardcoded property used by /sample-analyze
// and the sample CLI.
func SampleProperty() PropertyInput {
	return PropertyInput{
		Address:            "123 Oak Street, Downtown District",
		Bedrooms:           3,
		Bathrooms:          2.5,
		Sqft:               2500,
		AgeYears:           8,
		LocationType:       "urban",
		Condition:          "good",
		NeighborhoodRating: "good",
	}
}
