package models

// CityCandidate is one destination returned by the city lookup.
type CityCandidate struct {
	DestinationID string `json:"destinationId"`
	Name          string `json:"name"`
}

// SearchResult is a single hotel candidate as returned by the search
// provider. It carries only the raw fields the formatter consumes and is
// immutable once received.
type SearchResult struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	StreetAddress string  `json:"streetAddress"`
	StarRating    float64 `json:"starRating"`
	// CurrentPrice is the provider's display price string, e.g. "$1,024".
	CurrentPrice string `json:"currentPrice"`
	// LandmarkDistance is the provider's distance string, e.g. "1.3 miles".
	LandmarkDistance string `json:"landmarkDistance"`
}

// SearchParams is the parameter bag for a property listing call.
type SearchParams struct {
	DestinationID string
	CheckIn       string
	CheckOut      string
	Currency      string
	Locale        string
	PriceMin      int
	PriceMax      int
}
