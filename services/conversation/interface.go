package conversation

import (
	"context"

	historyRepo "stayfinder/database/repository/history"
	"stayfinder/services/search"
	"stayfinder/services/session"
)

// Option is one entry of a bounded enumerated choice shown to the user.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Prompter is the presentation boundary. The engine only needs to show
// text, show a bounded choice, and show a hotel card; rendering and
// delivery are the adapter's business.
type Prompter interface {
	SendText(ctx context.Context, chatID, text string) error
	PromptChoice(ctx context.Context, chatID, text string, options []Option) error
	SendHotel(ctx context.Context, chatID, text string, photoURLs []string) error
}

// Engine drives the step-wise search conversation for any number of
// concurrent conversations.
type Engine interface {
	// HandleMessage routes free-text input to the current step of the
	// conversation's session.
	HandleMessage(ctx context.Context, chatID, text string) error
	// HandleOption routes a selected choice to the current step.
	HandleOption(ctx context.Context, chatID, optionID string) error
}

// DefaultEngine implements Engine.
type DefaultEngine struct {
	Sessions session.Store
	Search   search.Client
	History  historyRepo.HistoryRepository
	Prompter Prompter
}

// NewDefaultEngine wires the engine with its collaborators.
func NewDefaultEngine(sessions session.Store, searchClient search.Client, history historyRepo.HistoryRepository, prompter Prompter) *DefaultEngine {
	return &DefaultEngine{
		Sessions: sessions,
		Search:   searchClient,
		History:  history,
		Prompter: prompter,
	}
}
