package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayfinder/models"
)

func searchParamsFixture() models.SearchParams {
	return models.SearchParams{
		DestinationID: "1506246",
		CheckIn:       "2026-09-10",
		CheckOut:      "2026-09-12",
		Currency:      "USD",
		Locale:        LocalePrimary,
	}
}

// newTestClient points a HotelsClient at the test server instead of the
// real provider host.
func newTestClient(srv *httptest.Server) *HotelsClient {
	c := NewHotelsClient("hotels4.p.rapidapi.com", "test-key", 2*time.Second)
	c.client.SetBaseURL(srv.URL)
	return c
}

func TestSearchCityDecodesCityGroup(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, pathCitySearch, r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"suggestions":[
			{"group":"CITY_GROUP","entities":[
				{"destinationId":"1506246","name":"Paris, France"},
				{"destinationId":"","name":"broken"},
				{"destinationId":"759818","name":"Paris, Texas"}
			]},
			{"group":"LANDMARK_GROUP","entities":[
				{"destinationId":"999","name":"Eiffel Tower"}
			]}
		]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv)
	candidates, locale, err := client.SearchCity(context.Background(), "Paris", "USD")
	require.NoError(t, err)

	assert.Equal(t, LocalePrimary, locale)
	assert.Equal(t, LocalePrimary, gotQuery.Get("locale"))
	assert.Equal(t, "USD", gotQuery.Get("currency"))
	require.Len(t, candidates, 2)
	assert.Equal(t, "1506246", candidates[0].DestinationID)
	assert.Equal(t, "Paris, Texas", candidates[1].Name)
}

func TestSearchCityUsesSecondaryLocale(t *testing.T) {
	var gotLocale string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLocale = r.URL.Query().Get("locale")
		w.Write([]byte(`{"suggestions":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv)
	candidates, locale, err := client.SearchCity(context.Background(), "Москва", "RUB")
	require.NoError(t, err)

	assert.Equal(t, LocaleSecondary, locale)
	assert.Equal(t, LocaleSecondary, gotLocale)
	assert.Empty(t, candidates)
}

func TestSearchCityNon2xxIsRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(srv)
	_, _, err := client.SearchCity(context.Background(), "Paris", "USD")
	require.Error(t, err)
	require.True(t, IsRequestError(err))

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusTooManyRequests, reqErr.StatusCode)
}

func TestListPropertiesDecodesResults(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, pathPropertyList, r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":{"body":{"searchResults":{"results":[
			{"id":101,"name":"Grand Plaza","address":{"streetAddress":"1 Main St"},
			 "starRating":4.5,"ratePlan":{"price":{"current":"$120"}},
			 "landmarks":[{"distance":"0.3 miles"},{"distance":"2 miles"}]},
			{"id":102,"name":"No Rate Inn","address":{"streetAddress":"2 Side St"},
			 "starRating":3,"landmarks":[]}
		]}}}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv)
	results, err := client.ListProperties(context.Background(), searchParamsFixture(), SortPriceAsc)
	require.NoError(t, err)

	assert.Equal(t, SortPriceAsc, gotQuery.Get("sortOrder"))
	assert.Equal(t, "1", gotQuery.Get("pageNumber"))
	assert.Equal(t, "25", gotQuery.Get("pageSize"))
	assert.Equal(t, "1", gotQuery.Get("adults1"))

	require.Len(t, results, 2)
	assert.Equal(t, int64(101), results[0].ID)
	assert.Equal(t, "$120", results[0].CurrentPrice)
	// Only the first landmark counts.
	assert.Equal(t, "0.3 miles", results[0].LandmarkDistance)
	// A missing rate plan decodes to an empty price, not an error.
	assert.Empty(t, results[1].CurrentPrice)
	assert.Empty(t, results[1].LandmarkDistance)
}

func TestListBestDealSendsPriceWindowAndPage(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":{"body":{"searchResults":{"results":[]}}}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv)
	params := searchParamsFixture()
	params.PriceMin = 50
	params.PriceMax = 200
	_, err := client.ListBestDeal(context.Background(), params, 2)
	require.NoError(t, err)

	assert.Equal(t, SortDistance, gotQuery.Get("sortOrder"))
	assert.Equal(t, "2", gotQuery.Get("pageNumber"))
	assert.Equal(t, "50", gotQuery.Get("priceMin"))
	assert.Equal(t, "200", gotQuery.Get("priceMax"))
}

func TestGetPhotosExpandsSizePlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, pathHotelPhotos, r.URL.Path)
		assert.Equal(t, "101", r.URL.Query().Get("id"))
		w.Write([]byte(`{"hotelImages":[
			{"baseUrl":"https://img.example/101/1_{size}.jpg"},
			{"baseUrl":""},
			{"baseUrl":"https://img.example/101/2_{size}.jpg"}
		]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv)
	urls, err := client.GetPhotos(context.Background(), 101)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://img.example/101/1_y.jpg",
		"https://img.example/101/2_y.jpg",
	}, urls)
}

func TestTransportFailureIsRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	client := newTestClient(srv)
	_, err := client.GetPhotos(context.Background(), 101)
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Zero(t, reqErr.StatusCode)
}

func TestDetectLocale(t *testing.T) {
	assert.Equal(t, LocalePrimary, DetectLocale("Paris"))
	assert.Equal(t, LocalePrimary, DetectLocale("New York"))
	assert.Equal(t, LocaleSecondary, DetectLocale("Москва"))
	assert.Equal(t, LocaleSecondary, DetectLocale("São Paulo"))
}
