package search

import (
	"context"
	"errors"
	"fmt"

	"stayfinder/models"
)

// Sort orders accepted by the property listing endpoint.
const (
	SortPriceAsc  = "PRICE"
	SortPriceDesc = "-PRICE"
	SortDistance  = "DISTANCE_FROM_LANDMARK"
)

// Locales the provider understands. The secondary locale is chosen when the
// query text contains characters outside printable ASCII.
const (
	LocalePrimary   = "en_US"
	LocaleSecondary = "ru_RU"
)

// Client issues calls against the hotel search provider. Every failure,
// including non-2xx responses, is reported as a *RequestError so callers can
// decide whether to re-prompt or abort the flow.
type Client interface {
	// SearchCity looks up destination candidates for a free-text query and
	// returns the locale the lookup was performed with.
	SearchCity(ctx context.Context, query, currency string) ([]models.CityCandidate, string, error)
	// ListProperties returns the first page of hotels for the given
	// parameters, sorted by price ascending or descending.
	ListProperties(ctx context.Context, params models.SearchParams, sortOrder string) ([]models.SearchResult, error)
	// ListBestDeal returns one page of hotels sorted by landmark distance,
	// bounded by the price range in params.
	ListBestDeal(ctx context.Context, params models.SearchParams, page int) ([]models.SearchResult, error)
	// GetPhotos returns photo URLs for a hotel.
	GetPhotos(ctx context.Context, hotelID int64) ([]string, error)
}

// RequestError classifies a failed provider call. StatusCode is zero for
// transport-level failures (timeout, connection refused).
type RequestError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("search %s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("search %s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// IsRequestError reports whether err was a classified provider failure.
func IsRequestError(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}
