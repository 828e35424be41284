package historyRepo

import (
	"context"
	"sync"
	"time"

	"stayfinder/models"

	"github.com/google/uuid"
)

// memoryHistoryRepo keeps history in process memory. It backs tests and
// runs without a MongoDB instance.
type memoryHistoryRepo struct {
	mu      sync.Mutex
	entries []models.HistoryEntry
	hotels  []models.ShownHotel
	seq     int64
}

// NewMemoryHistoryRepo returns an in-memory HistoryRepository.
func NewMemoryHistoryRepo() HistoryRepository {
	return &memoryHistoryRepo{}
}

func (r *memoryHistoryRepo) RecordCommand(_ context.Context, entry models.HistoryEntry) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}
	r.seq++
	entry.Seq = r.seq
	r.entries = append(r.entries, entry)
	return entry.ID, nil
}

func (r *memoryHistoryRepo) RecordShownHotel(_ context.Context, chatID, text string, photoURLs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var latest *models.HistoryEntry
	for i := range r.entries {
		e := &r.entries[i]
		if e.ChatID != chatID {
			continue
		}
		if latest == nil || e.Seq > latest.Seq {
			latest = e
		}
	}
	if latest == nil {
		return ErrNoEntry
	}

	r.hotels = append(r.hotels, models.ShownHotel{
		ID:        uuid.New().String(),
		ChatID:    chatID,
		EntryID:   latest.ID,
		Text:      text,
		PhotoURLs: photoURLs,
	})
	return nil
}

func (r *memoryHistoryRepo) ListAll(_ context.Context, chatID string) ([]models.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.HistoryEntry
	for _, e := range r.entries {
		if e.ChatID == chatID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memoryHistoryRepo) ListRecent(ctx context.Context, chatID string, n int) ([]models.HistoryEntry, error) {
	all, err := r.ListAll(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return all, nil
}

func (r *memoryHistoryRepo) HotelsByEntry(_ context.Context, entryID string) ([]models.ShownHotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.ShownHotel
	for _, h := range r.hotels {
		if h.EntryID == entryID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *memoryHistoryRepo) Clear(_ context.Context, chatID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.entries[:0]
	for _, e := range r.entries {
		if e.ChatID != chatID {
			entries = append(entries, e)
		}
	}
	r.entries = entries

	hotels := r.hotels[:0]
	for _, h := range r.hotels {
		if h.ChatID != chatID {
			hotels = append(hotels, h)
		}
	}
	r.hotels = hotels
	return nil
}

func (r *memoryHistoryRepo) PruneBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stale := make(map[string]bool)
	entries := r.entries[:0]
	for _, e := range r.entries {
		if e.RecordedAt.Before(cutoff) {
			stale[e.ID] = true
			continue
		}
		entries = append(entries, e)
	}
	r.entries = entries

	hotels := r.hotels[:0]
	for _, h := range r.hotels {
		if !stale[h.EntryID] {
			hotels = append(hotels, h)
		}
	}
	r.hotels = hotels
	return int64(len(stale)), nil
}
