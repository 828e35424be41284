package conversation

import (
	"context"
	"strconv"
	"strings"

	"stayfinder/models"
)

// The provider exposes no distance filter, so best-deal results are
// filtered client-side across a bounded number of pages. The bounds are
// deliberate product constants, not tunables: 3 fetched pages of 25 trade
// completeness for bounded latency and API cost, and the +5 margin absorbs
// hotels later dropped by formatting failures.
const (
	bestDealPageSize = 25
	maxDealPages     = 3
	resultMargin     = 5
)

// refineBestDeals pages through distance-sorted results, keeping hotels
// whose landmark distance lies inclusively within the session's window.
// It stops as soon as hotelCount+margin matches are collected; if the page
// budget runs out first, the outcome is ErrNoDeals.
func (e *DefaultEngine) refineBestDeals(ctx context.Context, sess *models.Session, params models.SearchParams) ([]models.SearchResult, error) {
	target := sess.HotelCount + resultMargin

	var matched []models.SearchResult
	for page := 1; page <= maxDealPages; page++ {
		pageResults, err := e.Search.ListBestDeal(ctx, params, page)
		if err != nil {
			return nil, err
		}
		for _, hotel := range pageResults {
			distance, ok := landmarkDistanceValue(hotel.LandmarkDistance)
			if !ok {
				continue
			}
			if distance >= sess.DistanceMin && distance <= sess.DistanceMax {
				matched = append(matched, hotel)
			}
		}
		if len(matched) >= target {
			return matched, nil
		}
	}
	return nil, ErrNoDeals
}

// landmarkDistanceValue extracts a comparable number from the provider's
// free-form distance string by stripping every non-digit character. A
// string yielding no digits is a non-match, never an error.
func landmarkDistanceValue(raw string) (float64, bool) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	value, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return float64(value), true
}
