package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"stayfinder/models"
	"stayfinder/utils"
)

const (
	pathCitySearch   = "/locations/v2/search"
	pathPropertyList = "/properties/list"
	pathHotelPhotos  = "/properties/get-hotel-photos"

	pageSize = "25"
)

// HotelsClient talks to the hotels4 RapidAPI provider.
type HotelsClient struct {
	client *resty.Client
}

// NewHotelsClient creates a provider client with the fixed per-call timeout.
func NewHotelsClient(host, apiKey string, timeout time.Duration) *HotelsClient {
	client := resty.New()
	client.SetBaseURL("https://" + host)
	client.SetTimeout(timeout)
	client.SetHeader("X-RapidAPI-Host", host)
	client.SetHeader("X-RapidAPI-Key", apiKey)

	return &HotelsClient{client: client}
}

type citySearchResponse struct {
	Suggestions []struct {
		Group    string `json:"group"`
		Entities []struct {
			DestinationID string `json:"destinationId"`
			Name          string `json:"name"`
		} `json:"entities"`
	} `json:"suggestions"`
}

type propertyListResponse struct {
	Data struct {
		Body struct {
			SearchResults struct {
				Results []propertyResult `json:"results"`
			} `json:"searchResults"`
		} `json:"body"`
	} `json:"data"`
}

type propertyResult struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address struct {
		StreetAddress string `json:"streetAddress"`
	} `json:"address"`
	StarRating float64 `json:"starRating"`
	RatePlan   *struct {
		Price struct {
			Current string `json:"current"`
		} `json:"price"`
	} `json:"ratePlan"`
	Landmarks []struct {
		Distance string `json:"distance"`
	} `json:"landmarks"`
}

type hotelPhotosResponse struct {
	HotelImages []struct {
		BaseURL string `json:"baseUrl"`
	} `json:"hotelImages"`
}

// SearchCity looks up destinations for the query. The locale is en_US unless
// the query carries a rune outside printable ASCII, in which case the
// secondary locale is used; the chosen locale is returned to the caller so
// the rest of the flow can stick with it.
func (c *HotelsClient) SearchCity(ctx context.Context, query, currency string) ([]models.CityCandidate, string, error) {
	locale := DetectLocale(query)

	body, err := c.get(ctx, "city search", pathCitySearch, map[string]string{
		"query":    query,
		"locale":   locale,
		"currency": currency,
	})
	if err != nil {
		return nil, locale, err
	}

	var payload citySearchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, locale, &RequestError{Op: "city search", Err: fmt.Errorf("decode response: %w", err)}
	}

	var candidates []models.CityCandidate
	for _, group := range payload.Suggestions {
		if group.Group != "CITY_GROUP" {
			continue
		}
		for _, entity := range group.Entities {
			if entity.DestinationID == "" || entity.Name == "" {
				continue
			}
			candidates = append(candidates, models.CityCandidate{
				DestinationID: entity.DestinationID,
				Name:          entity.Name,
			})
		}
	}
	return candidates, locale, nil
}

// ListProperties fetches the first result page sorted by price.
func (c *HotelsClient) ListProperties(ctx context.Context, params models.SearchParams, sortOrder string) ([]models.SearchResult, error) {
	body, err := c.get(ctx, "property list", pathPropertyList, map[string]string{
		"destinationId": params.DestinationID,
		"pageNumber":    "1",
		"pageSize":      pageSize,
		"checkIn":       params.CheckIn,
		"checkOut":      params.CheckOut,
		"adults1":       "1",
		"sortOrder":     sortOrder,
		"locale":        params.Locale,
		"currency":      params.Currency,
	})
	if err != nil {
		return nil, err
	}
	return decodeProperties("property list", body)
}

// ListBestDeal fetches one page sorted by distance from landmark, bounded by
// the price window.
func (c *HotelsClient) ListBestDeal(ctx context.Context, params models.SearchParams, page int) ([]models.SearchResult, error) {
	body, err := c.get(ctx, "best deal list", pathPropertyList, map[string]string{
		"destinationId": params.DestinationID,
		"pageNumber":    strconv.Itoa(page),
		"pageSize":      pageSize,
		"checkIn":       params.CheckIn,
		"checkOut":      params.CheckOut,
		"adults1":       "1",
		"priceMin":      strconv.Itoa(params.PriceMin),
		"priceMax":      strconv.Itoa(params.PriceMax),
		"sortOrder":     SortDistance,
		"locale":        params.Locale,
		"currency":      params.Currency,
	})
	if err != nil {
		return nil, err
	}
	return decodeProperties("best deal list", body)
}

// GetPhotos fetches photo URLs for the hotel. The provider templates a
// {size} placeholder into each URL; "y" selects the large rendition.
func (c *HotelsClient) GetPhotos(ctx context.Context, hotelID int64) ([]string, error) {
	body, err := c.get(ctx, "hotel photos", pathHotelPhotos, map[string]string{
		"id": strconv.FormatInt(hotelID, 10),
	})
	if err != nil {
		return nil, err
	}

	var payload hotelPhotosResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &RequestError{Op: "hotel photos", Err: fmt.Errorf("decode response: %w", err)}
	}

	urls := make([]string, 0, len(payload.HotelImages))
	for _, img := range payload.HotelImages {
		if img.BaseURL == "" {
			continue
		}
		urls = append(urls, strings.ReplaceAll(img.BaseURL, "{size}", "y"))
	}
	return urls, nil
}

func (c *HotelsClient) get(ctx context.Context, op, path string, query map[string]string) ([]byte, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		utils.GetLogger().Warn("provider request failed", zap.String("op", op), zap.Error(err))
		return nil, &RequestError{Op: op, Err: err}
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		utils.GetLogger().Warn("provider returned non-2xx",
			zap.String("op", op), zap.Int("status", resp.StatusCode()))
		return nil, &RequestError{Op: op, StatusCode: resp.StatusCode()}
	}
	return resp.Body(), nil
}

func decodeProperties(op string, body []byte) ([]models.SearchResult, error) {
	var payload propertyListResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &RequestError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	results := make([]models.SearchResult, 0, len(payload.Data.Body.SearchResults.Results))
	for _, p := range payload.Data.Body.SearchResults.Results {
		r := models.SearchResult{
			ID:            p.ID,
			Name:          p.Name,
			StreetAddress: p.Address.StreetAddress,
			StarRating:    p.StarRating,
		}
		if p.RatePlan != nil {
			r.CurrentPrice = p.RatePlan.Price.Current
		}
		if len(p.Landmarks) > 0 {
			r.LandmarkDistance = p.Landmarks[0].Distance
		}
		results = append(results, r)
	}
	return results, nil
}

// DetectLocale picks the provider locale for a query: the secondary locale
// when any rune falls outside printable ASCII, the primary one otherwise.
func DetectLocale(query string) string {
	for _, r := range query {
		if r < 0x20 || r > 0x7e {
			return LocaleSecondary
		}
	}
	return LocalePrimary
}
