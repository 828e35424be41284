package conversation

// User-facing prompt texts. Result cards are the only localized output;
// see format.go.
const (
	textHelp = "I can search hotels for you.\n" +
		"/lowprice — cheapest hotels in a city\n" +
		"/highprice — most expensive hotels in a city\n" +
		"/bestdeal — hotels filtered by price and distance from the center\n" +
		"/history — your search history"

	textAskCity        = "Which city should I search in?"
	textCityNotFound   = "I could not find that city, please try another name."
	textCityConfirm    = "Please pick the exact match:"
	textAskCurrency    = "Which currency should I use?"
	textAskPriceMin    = "Enter the minimum price per night (whole number)."
	textAskPriceMax    = "Enter the maximum price per night (whole number)."
	textBadPrice       = "That doesn't look like a price. Enter a non-negative whole number."
	textPriceOrder     = "The minimum price must be lower than the maximum."
	textAskDistMin     = "Enter the minimum distance from the center."
	textAskDistMax     = "Enter the maximum distance from the center."
	textBadDistance    = "That doesn't look like a distance. Enter a number like 2 or 2.5."
	textDistanceOrder  = "The minimum distance must be lower than the maximum."
	textAskHotelCount  = "How many hotels should I show (1-10)?"
	textAskCheckIn     = "Enter the check-in date (YYYY-MM-DD)."
	textAskCheckOut    = "Enter the check-out date (YYYY-MM-DD)."
	textBadDate        = "That doesn't look like a date. Use the YYYY-MM-DD format."
	textDateOrder      = "The check-out date must be after the check-in date."
	textAskPhotos      = "Should I include photos?"
	textAskPhotoCount  = "How many photos per hotel (1-10)?"
	textLoading        = "Searching, give me a moment..."
	textDone           = "That's everything I found. Send /help for the command list."
	textNotFound       = "No hotels matched your distance range. Try widening it."
	textUnavailable    = "The search service is unavailable right now, please try again later."
	textInternalError  = "Something went wrong on my side. The search was cancelled, please start over."
	textUseButtons     = "Please use one of the offered options."
	textUnknownInput   = "I didn't catch that. Send /help for the command list."
	textHistoryMenu    = "Search history: what would you like to do?"
	textHistoryScope   = "Which part of the history?"
	textHistoryEmpty   = "Your history is empty."
	textHistoryCleared = "Your history has been cleared."
	textHistoryNoHotel = "No hotels were shown for this search."
	textHistoryDone    = "That's the end of your history."
)
