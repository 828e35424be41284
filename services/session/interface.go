package session

import (
	"context"

	"stayfinder/models"
)

// Store holds one mutable session per active conversation. Every read and
// write is keyed by the conversation id so concurrent conversations never
// observe each other's in-flight state.
type Store interface {
	// Get returns the session for the conversation, or a fresh idle
	// session when none is cached.
	Get(ctx context.Context, chatID string) (*models.Session, error)
	// Save persists the session under its conversation id.
	Save(ctx context.Context, sess *models.Session) error
	// Delete drops the cached session. Deleting an absent session is not
	// an error.
	Delete(ctx context.Context, chatID string) error
}
