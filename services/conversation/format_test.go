package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayfinder/models"
	"stayfinder/services/search"
)

func cardSession() *models.Session {
	sess := models.NewSession("chat-1")
	sess.Currency = "USD"
	sess.Locale = search.LocalePrimary
	sess.Nights = 2
	return sess
}

func TestFormatHotelCard(t *testing.T) {
	hotel := models.SearchResult{
		ID:               101,
		Name:             "Grand Plaza",
		StreetAddress:    "1 Main St",
		StarRating:       4.5,
		CurrentPrice:     "$1,120",
		LandmarkDistance: "0.3 miles",
	}

	card, ok := formatHotelCard(hotel, cardSession())
	require.True(t, ok)
	assert.Contains(t, card, "Grand Plaza")
	assert.Contains(t, card, "1 Main St")
	assert.Contains(t, card, "0.3 miles")
	assert.Contains(t, card, "1120 $ per night")
	assert.Contains(t, card, "2240 $ for 2 night(s)")
	assert.Contains(t, card, "https://www.hotels.com/ho101")
}

func TestFormatHotelCardSecondaryLocale(t *testing.T) {
	sess := cardSession()
	sess.Locale = search.LocaleSecondary
	sess.Currency = "RUB"

	card, ok := formatHotelCard(models.SearchResult{
		ID:               7,
		Name:             "Отель Москва",
		StreetAddress:    "Охотный Ряд 2",
		StarRating:       4,
		CurrentPrice:     "9,800 RUB",
		LandmarkDistance: "1 km",
	}, sess)
	require.True(t, ok)
	assert.Contains(t, card, "от центра")
	assert.Contains(t, card, "9800 RUB за ночь")
}

func TestFormatHotelCardMissingFields(t *testing.T) {
	base := models.SearchResult{
		ID:               101,
		Name:             "Grand Plaza",
		StreetAddress:    "1 Main St",
		CurrentPrice:     "$120",
		LandmarkDistance: "0.3 miles",
	}
	sess := cardSession()

	noPrice := base
	noPrice.CurrentPrice = ""
	_, ok := formatHotelCard(noPrice, sess)
	assert.False(t, ok)

	noAddress := base
	noAddress.StreetAddress = ""
	_, ok = formatHotelCard(noAddress, sess)
	assert.False(t, ok)

	badPrice := base
	badPrice.CurrentPrice = "call for rates"
	_, ok = formatHotelCard(badPrice, sess)
	assert.False(t, ok)
}

func TestParseNightlyPrice(t *testing.T) {
	tests := []struct {
		display string
		want    int
		ok      bool
	}{
		{"$120", 120, true},
		{"$1,024", 1024, true},
		{"9,800 RUB", 9800, true},
		{"€87.50", 87, true},
		{"free", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, ok := parseNightlyPrice(tc.display)
		assert.Equal(t, tc.ok, ok, "display %q", tc.display)
		if tc.ok {
			assert.Equal(t, tc.want, got, "display %q", tc.display)
		}
	}
}

func TestFormatHistoryCardFollowsCityScript(t *testing.T) {
	en := formatHistoryCard(models.HistoryEntry{
		Command: models.CommandLowPrice,
		City:    "Paris, France",
		CheckIn: "2026-09-10", CheckOut: "2026-09-12",
	})
	assert.Contains(t, en, "Command: /lowprice")
	assert.Contains(t, en, "City: Paris, France")

	ru := formatHistoryCard(models.HistoryEntry{
		Command: models.CommandBestDeal,
		City:    "Москва",
		CheckIn: "2026-09-10", CheckOut: "2026-09-12",
	})
	assert.Contains(t, ru, "Команда: /bestdeal")
}
