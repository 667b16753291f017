package validation

import (
	"fmt"
	"strings"

	"real-estate-intelligence/internal/models"
	"real-estate-intelligence/internal/valuation"
)

// ValidateProperty checks a property record against range and enumeration
// constraints. It returns every issue found, not just the first, so callers
// can report the full list to the user.
func ValidateProperty(p models.PropertyInput) (bool, []string) {
	var issues []string

	if len(strings.TrimSpace(p.Address)) < 5 {
		issues = append(issues, "Address must be at least 5 characters long")
	}

	if p.Bedrooms < valuation.MinBedrooms || p.Bedrooms > valuation.MaxBedrooms {
		issues = append(issues, fmt.Sprintf("Bedrooms must be between %d and %d",
			valuation.MinBedrooms, valuation.MaxBedrooms))
	}

	if p.Bathrooms < valuation.MinBathrooms || p.Bathrooms > valuation.MaxBathrooms {
		issues = append(issues, fmt.Sprintf("Bathrooms must be between %g and %g",
			valuation.MinBathrooms, float64(valuation.MaxBathrooms)))
	}

	if p.Sqft < valuation.MinSqft || p.Sqft > valuation.MaxSqft {
		issues = append(issues, fmt.Sprintf("Square footage must be between %d and %d",
			valuation.MinSqft, valuation.MaxSqft))
	}

	if p.AgeYears < valuation.MinAge || p.AgeYears > valuation.MaxAge {
		issues = append(issues, fmt.Sprintf("Property age must be between %d and %d years",
			valuation.MinAge, valuation.MaxAge))
	}

	if !contains(valuation.ValidLocationTypes, strings.ToLower(p.LocationType)) {
		issues = append(issues, "Invalid location type. Must be one of: "+
			strings.Join(valuation.ValidLocationTypes, ", "))
	}

	if !contains(valuation.ValidConditions, strings.ToLower(p.Condition)) {
		issues = append(issues, "Invalid condition. Must be one of: "+
			strings.Join(valuation.ValidConditions, ", "))
	}

	if !contains(valuation.ValidNeighborhoodRatings, strings.ToLower(p.NeighborhoodRating)) {
		issues = append(issues, "Invalid rating. Must be one of: "+
			strings.Join(valuation.ValidNeighborhoodRatings, ", "))
	}

	return len(issues) == 0, issues
}

// NormalizeProperty lowercases the enum fields and trims the address so the
// engine only ever sees canonical keys.
func NormalizeProperty(p models.PropertyInput) models.PropertyInput {
	p.Address = strings.TrimSpace(p.Address)
	p.LocationType = strings.ToLower(p.LocationType)
	p.Condition = strings.ToLower(p.Condition)
	p.NeighborhoodRating = strings.ToLower(p.NeighborhoodRating)
	return p
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
