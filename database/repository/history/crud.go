package historyRepo

import (
	"context"
	"errors"
	"time"

	"stayfinder/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNoEntry is returned when a shown hotel is recorded for a conversation
// that has no history entry yet.
var ErrNoEntry = errors.New("no history entry for conversation")

// RecordCommand appends a new history entry and returns its ID.
func (r *mongoHistoryRepo) RecordCommand(ctx context.Context, entry models.HistoryEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}
	if entry.Seq == 0 {
		entry.Seq = time.Now().UnixNano()
	}

	if _, err := r.entries.InsertOne(ctx, entry); err != nil {
		return "", err
	}
	return entry.ID, nil
}

// RecordShownHotel inserts a shown-hotel row linked to the latest entry of
// the conversation (highest seq).
func (r *mongoHistoryRepo) RecordShownHotel(ctx context.Context, chatID, text string, photoURLs []string) error {
	var latest models.HistoryEntry
	opts := options.FindOne().SetSort(bson.D{{Key: "seq", Value: -1}})
	err := r.entries.FindOne(ctx, bson.M{"chatId": chatID}, opts).Decode(&latest)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNoEntry
		}
		return err
	}

	hotel := models.ShownHotel{
		ID:        uuid.New().String(),
		ChatID:    chatID,
		EntryID:   latest.ID,
		Text:      text,
		PhotoURLs: photoURLs,
	}
	_, err = r.hotels.InsertOne(ctx, hotel)
	return err
}

// ListAll fetches every entry for the conversation in chronological order.
func (r *mongoHistoryRepo) ListAll(ctx context.Context, chatID string) ([]models.HistoryEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cursor, err := r.entries.Find(ctx, bson.M{"chatId": chatID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.HistoryEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListRecent fetches the n most recent entries, returned oldest first.
func (r *mongoHistoryRepo) ListRecent(ctx context.Context, chatID string, n int) ([]models.HistoryEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: -1}}).SetLimit(int64(n))
	cursor, err := r.entries.Find(ctx, bson.M{"chatId": chatID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.HistoryEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	// Flip back to chronological order.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// HotelsByEntry fetches the hotels shown for one entry, in insertion order.
func (r *mongoHistoryRepo) HotelsByEntry(ctx context.Context, entryID string) ([]models.ShownHotel, error) {
	cursor, err := r.hotels.Find(ctx, bson.M{"entryId": entryID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var hotels []models.ShownHotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

// Clear removes all history for the conversation. Shown hotels are removed
// with their entries; mongo has no cascading deletes so both collections
// are swept here.
func (r *mongoHistoryRepo) Clear(ctx context.Context, chatID string) error {
	if _, err := r.entries.DeleteMany(ctx, bson.M{"chatId": chatID}); err != nil {
		return err
	}
	_, err := r.hotels.DeleteMany(ctx, bson.M{"chatId": chatID})
	return err
}

// PruneBefore removes entries older than the cutoff across all conversations.
func (r *mongoHistoryRepo) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	filter := bson.M{"recordedAt": bson.M{"$lt": cutoff}}
	cursor, err := r.entries.Find(ctx, filter)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var stale []models.HistoryEntry
	if err := cursor.All(ctx, &stale); err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(stale))
	for _, e := range stale {
		ids = append(ids, e.ID)
	}
	if _, err := r.hotels.DeleteMany(ctx, bson.M{"entryId": bson.M{"$in": ids}}); err != nil {
		return 0, err
	}
	res, err := r.entries.DeleteMany(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
