package models

import "time"

// FlowState identifies which input the conversation is currently waiting for.
type FlowState string

const (
	StateIdle             FlowState = "idle"
	StateAwaitCity        FlowState = "await_city"
	StateAwaitCitySelect  FlowState = "await_city_select"
	StateAwaitCurrency    FlowState = "await_currency"
	StateAwaitPriceMin    FlowState = "await_price_min"
	StateAwaitPriceMax    FlowState = "await_price_max"
	StateAwaitDistanceMin FlowState = "await_distance_min"
	StateAwaitDistanceMax FlowState = "await_distance_max"
	StateAwaitHotelCount  FlowState = "await_hotel_count"
	StateAwaitCheckIn     FlowState = "await_check_in"
	StateAwaitCheckOut    FlowState = "await_check_out"
	StateAwaitPhotoChoice FlowState = "await_photo_choice"
	StateAwaitPhotoCount  FlowState = "await_photo_count"

	StateAwaitHistoryAction FlowState = "await_history_action"
	StateAwaitHistoryScope  FlowState = "await_history_scope"
)

// Command is one of the search commands a conversation can run.
type Command string

const (
	CommandLowPrice  Command = "lowprice"
	CommandHighPrice Command = "highprice"
	CommandBestDeal  Command = "bestdeal"
	CommandHistory   Command = "history"
	// CommandHelp covers /start and /help; it resets the flow but starts
	// none of its own.
	CommandHelp Command = "help"
)

// Session accumulates the parameters of one search flow for a single
// conversation. It is owned by the conversation engine and cached in the
// session store keyed by ChatID, so two conversations never share state.
type Session struct {
	ChatID      string    `json:"chatId"`
	State       FlowState `json:"state"`
	Command     Command   `json:"command,omitempty"`
	City        string    `json:"city,omitempty"`
	CityID      string    `json:"cityId,omitempty"`
	Currency    string    `json:"currency,omitempty"`
	Locale      string    `json:"locale,omitempty"`
	CheckIn     string    `json:"checkIn,omitempty"`
	CheckOut    string    `json:"checkOut,omitempty"`
	Nights      int       `json:"nights,omitempty"`
	HotelCount  int       `json:"hotelCount,omitempty"`
	WithPhotos  bool      `json:"withPhotos,omitempty"`
	PhotoCount  int       `json:"photoCount,omitempty"`
	PriceMin    int       `json:"priceMin,omitempty"`
	PriceMax    int       `json:"priceMax,omitempty"`
	DistanceMin float64   `json:"distanceMin,omitempty"`
	DistanceMax float64   `json:"distanceMax,omitempty"`
	StartedAt   time.Time `json:"startedAt,omitempty"`

	// CityChoices keeps the candidates offered to the user so the
	// selected option id can be resolved back to a destination.
	CityChoices []CityCandidate `json:"cityChoices,omitempty"`
}

// NewSession returns an idle session for the given conversation.
func NewSession(chatID string) *Session {
	return &Session{ChatID: chatID, State: StateIdle}
}

// Reset discards everything collected during the current flow and returns
// the session to idle. The conversation id is the only field that survives.
func (s *Session) Reset() {
	chatID := s.ChatID
	*s = Session{ChatID: chatID, State: StateIdle}
}
