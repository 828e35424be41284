package historyRepo

import (
	"context"
	"time"

	"stayfinder/database"
	"stayfinder/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// HistoryRepository is the durable log of completed search flows and the
// hotels shown for each of them. Entries are append-only; the only delete
// paths are a per-conversation Clear and the retention prune.
type HistoryRepository interface {
	// RecordCommand appends one entry and returns its id.
	RecordCommand(ctx context.Context, entry models.HistoryEntry) (string, error)
	// RecordShownHotel attaches a hotel to the most recently recorded
	// entry of the conversation.
	RecordShownHotel(ctx context.Context, chatID, text string, photoURLs []string) error
	// ListAll returns every entry of the conversation, oldest first.
	ListAll(ctx context.Context, chatID string) ([]models.HistoryEntry, error)
	// ListRecent returns the n most recent entries, oldest first within
	// that subset.
	ListRecent(ctx context.Context, chatID string, n int) ([]models.HistoryEntry, error)
	// HotelsByEntry returns the hotels shown for an entry, in the order
	// they were recorded.
	HotelsByEntry(ctx context.Context, entryID string) ([]models.ShownHotel, error)
	// Clear removes all entries and shown hotels of one conversation.
	Clear(ctx context.Context, chatID string) error
	// PruneBefore removes entries recorded before the cutoff, together
	// with their shown hotels. Returns the number of entries removed.
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type mongoHistoryRepo struct {
	entries *mongo.Collection
	hotels  *mongo.Collection
}

// NewMongoHistoryRepo returns a new HistoryRepository instance using MongoDB.
func NewMongoHistoryRepo() HistoryRepository {
	db := database.Database()
	return &mongoHistoryRepo{
		entries: db.Collection("history_entries"),
		hotels:  db.Collection("shown_hotels"),
	}
}
