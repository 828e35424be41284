package conversation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Step validators. All of them are pure: they inspect one piece of input
// and either return the derived value or a rejection.

var (
	pricePattern = regexp.MustCompile(`^[0-9]+$`)
	// Integers or decimals; comma is accepted as the decimal separator.
	// The whole input must match, so "12.5 km" is rejected.
	distancePattern = regexp.MustCompile(`^[0-9]+([.,][0-9]+)?$`)
)

var (
	errBadPrice    = errors.New("price must be a non-negative whole number")
	errBadDistance = errors.New("distance must be an integer or decimal number")
	errBadDate     = errors.New("date must be in YYYY-MM-DD format")
)

const flowDateLayout = "2006-01-02"

// ParseHotelPrice validates a per-night price: a non-negative integer string.
func ParseHotelPrice(text string) (int, error) {
	text = strings.TrimSpace(text)
	if !pricePattern.MatchString(text) {
		return 0, errBadPrice
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, errBadPrice
	}
	return value, nil
}

// ParseDistanceInput validates a distance: an integer or decimal number with
// dot or comma as separator, nothing else in the input.
func ParseDistanceInput(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if !distancePattern.MatchString(text) {
		return 0, errBadDistance
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
	if err != nil {
		return 0, errBadDistance
	}
	return value, nil
}

// ParseFlowDate validates a calendar date in the fixed flow format.
func ParseFlowDate(text string) (time.Time, error) {
	date, err := time.Parse(flowDateLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, errBadDate
	}
	return date, nil
}

// NightsBetween returns the day count between two calendar dates.
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}
