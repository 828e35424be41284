package handlers

import (
	"context"
	"sync"

	"stayfinder/services/conversation"
)

// Reply is one outbound bot message produced while handling an input.
type Reply struct {
	Kind      string                `json:"kind"` // text, choice or hotel
	Text      string                `json:"text"`
	Options   []conversation.Option `json:"options,omitempty"`
	PhotoURLs []string              `json:"photoUrls,omitempty"`
}

// ReplyCollector implements conversation.Prompter for the HTTP transport:
// prompts issued while one input is being processed are buffered per
// conversation and returned in the HTTP response.
type ReplyCollector struct {
	mu      sync.Mutex
	pending map[string][]Reply
}

// NewReplyCollector returns an empty collector.
func NewReplyCollector() *ReplyCollector {
	return &ReplyCollector{pending: make(map[string][]Reply)}
}

func (rc *ReplyCollector) SendText(_ context.Context, chatID, text string) error {
	rc.append(chatID, Reply{Kind: "text", Text: text})
	return nil
}

func (rc *ReplyCollector) PromptChoice(_ context.Context, chatID, text string, options []conversation.Option) error {
	rc.append(chatID, Reply{Kind: "choice", Text: text, Options: options})
	return nil
}

func (rc *ReplyCollector) SendHotel(_ context.Context, chatID, text string, photoURLs []string) error {
	rc.append(chatID, Reply{Kind: "hotel", Text: text, PhotoURLs: photoURLs})
	return nil
}

func (rc *ReplyCollector) append(chatID string, reply Reply) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.pending[chatID] = append(rc.pending[chatID], reply)
}

// Drain returns and clears the buffered replies for a conversation.
func (rc *ReplyCollector) Drain(chatID string) []Reply {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	replies := rc.pending[chatID]
	delete(rc.pending, chatID)
	return replies
}
