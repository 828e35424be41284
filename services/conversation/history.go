package conversation

import (
	"context"

	"stayfinder/models"
)

// How many entries the "recent" history scope shows.
const recentHistoryCount = 5

func historyActionOptions() []Option {
	return []Option{
		{ID: "view", Label: "View"},
		{ID: "clear", Label: "Clear"},
	}
}

func historyScopeOptions() []Option {
	return []Option{
		{ID: "all", Label: "All searches"},
		{ID: "recent", Label: "Last five"},
	}
}

func (e *DefaultEngine) stepHistoryAction(ctx context.Context, sess *models.Session, optionID string) error {
	switch optionID {
	case "view":
		return e.advance(ctx, sess, models.StateAwaitHistoryScope, textHistoryScope, historyScopeOptions())
	case "clear":
		if err := e.History.Clear(ctx, sess.ChatID); err != nil {
			return err
		}
		return e.abortToIdle(ctx, sess, textHistoryCleared)
	default:
		return e.Prompter.SendText(ctx, sess.ChatID, textUseButtons)
	}
}

func (e *DefaultEngine) stepHistoryScope(ctx context.Context, sess *models.Session, optionID string) error {
	var entries []models.HistoryEntry
	var err error
	switch optionID {
	case "all":
		entries, err = e.History.ListAll(ctx, sess.ChatID)
	case "recent":
		entries, err = e.History.ListRecent(ctx, sess.ChatID, recentHistoryCount)
	default:
		return e.Prompter.SendText(ctx, sess.ChatID, textUseButtons)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		return e.abortToIdle(ctx, sess, textHistoryEmpty)
	}

	for _, entry := range entries {
		if err := e.Prompter.SendText(ctx, sess.ChatID, formatHistoryCard(entry)); err != nil {
			return err
		}
		hotels, err := e.History.HotelsByEntry(ctx, entry.ID)
		if err != nil {
			return err
		}
		if len(hotels) == 0 {
			if err := e.Prompter.SendText(ctx, sess.ChatID, textHistoryNoHotel); err != nil {
				return err
			}
			continue
		}
		for _, hotel := range hotels {
			if err := e.Prompter.SendHotel(ctx, sess.ChatID, hotel.Text, hotel.PhotoURLs); err != nil {
				return err
			}
		}
	}
	return e.abortToIdle(ctx, sess, textHistoryDone)
}
