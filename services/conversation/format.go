package conversation

import (
	"fmt"
	"strconv"
	"strings"

	"stayfinder/models"
	"stayfinder/services/search"
)

const hotelLinkTemplate = "https://www.hotels.com/ho%d"

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"RUB": "RUB",
}

const hotelCardEN = "🏨 %s\n📍 %s\n📏 %s from the center\n⭐ %v\n💰 %d %s per night, %d %s for %d night(s)\n%s"

const hotelCardRU = "🏨 %s\n📍 %s\n📏 %s от центра\n⭐ %v\n💰 %d %s за ночь, %d %s за %d ноч.\n%s"

// formatHotelCard renders one result into the locale's display template.
// Hotels missing an expected field are reported as not formattable and the
// caller skips them without aborting the result set.
func formatHotelCard(hotel models.SearchResult, sess *models.Session) (string, bool) {
	if hotel.Name == "" || hotel.StreetAddress == "" || hotel.LandmarkDistance == "" || hotel.CurrentPrice == "" {
		return "", false
	}
	nightly, ok := parseNightlyPrice(hotel.CurrentPrice)
	if !ok {
		return "", false
	}

	symbol, ok := currencySymbols[sess.Currency]
	if !ok {
		symbol = sess.Currency
	}
	nights := sess.Nights
	if nights < 1 {
		nights = 1
	}
	total := nightly * nights

	template := hotelCardEN
	if sess.Locale == search.LocaleSecondary {
		template = hotelCardRU
	}
	return fmt.Sprintf(template,
		hotel.Name, hotel.StreetAddress, hotel.LandmarkDistance, hotel.StarRating,
		nightly, symbol, total, symbol, nights,
		fmt.Sprintf(hotelLinkTemplate, hotel.ID),
	), true
}

// parseNightlyPrice reduces the provider's display price ("$1,024",
// "9,800 RUB") to a whole number. Fractional parts are dropped.
func parseNightlyPrice(display string) (int, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, strings.ReplaceAll(display, ",", ""))
	cleaned = strings.TrimSuffix(cleaned, ".")
	if cleaned == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return int(value), true
}

const historyCardEN = "🗓 %s\nCommand: /%s\nCity: %s\nDates: %s — %s"

const historyCardRU = "🗓 %s\nКоманда: /%s\nГород: %s\nДаты: %s — %s"

// formatHistoryCard renders one history entry. The template language
// follows the script of the recorded city name, mirroring how the original
// search chose its locale.
func formatHistoryCard(entry models.HistoryEntry) string {
	template := historyCardEN
	if search.DetectLocale(entry.City) == search.LocaleSecondary {
		template = historyCardRU
	}
	return fmt.Sprintf(template,
		entry.RecordedAt.Format("2006-01-02 15:04:05"),
		entry.Command, entry.City, entry.CheckIn, entry.CheckOut,
	)
}
