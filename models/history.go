package models

import "time"

// HistoryEntry is the durable record of one completed search flow.
// Entries are append-only; Seq orders entries within a conversation and the
// highest Seq is the most recently recorded one.
type HistoryEntry struct {
	ID          string    `bson:"id" json:"id"`
	ChatID      string    `bson:"chatId" json:"chatId"`
	Seq         int64     `bson:"seq" json:"seq"`
	RecordedAt  time.Time `bson:"recordedAt" json:"recordedAt"`
	Command     Command   `bson:"command" json:"command"`
	City        string    `bson:"city" json:"city"`
	Currency    string    `bson:"currency" json:"currency"`
	CheckIn     string    `bson:"checkIn" json:"checkIn"`
	CheckOut    string    `bson:"checkOut" json:"checkOut"`
	PriceMin    int       `bson:"priceMin,omitempty" json:"priceMin,omitempty"`
	PriceMax    int       `bson:"priceMax,omitempty" json:"priceMax,omitempty"`
	DistanceMin float64   `bson:"distanceMin,omitempty" json:"distanceMin,omitempty"`
	DistanceMax float64   `bson:"distanceMax,omitempty" json:"distanceMax,omitempty"`
}

// ShownHotel is one hotel that was displayed to the user for a given
// history entry. Rows are removed together with their parent entry.
type ShownHotel struct {
	ID        string   `bson:"id" json:"id"`
	ChatID    string   `bson:"chatId" json:"chatId"`
	EntryID   string   `bson:"entryId" json:"entryId"`
	Text      string   `bson:"text" json:"text"`
	PhotoURLs []string `bson:"photoUrls,omitempty" json:"photoUrls,omitempty"`
}
