package conversation

import (
	"context"

	historyRepo "stayfinder/database/repository/history"
	"stayfinder/models"
)

// stubClient scripts the provider for engine tests. Unset fields mean the
// call is unexpected and returns empty results.
type stubClient struct {
	cityCandidates []models.CityCandidate
	cityLocale     string
	cityErr        error

	listResults []models.SearchResult
	listErr     error
	listSort    string

	dealPages   map[int][]models.SearchResult
	dealErr     error
	dealCalls   []int
	photoURLs   []string
	photoErr    error
	photoCalls  []int64
	listCalls   int
	searchCalls int
}

func (c *stubClient) SearchCity(_ context.Context, _, _ string) ([]models.CityCandidate, string, error) {
	c.searchCalls++
	locale := c.cityLocale
	if locale == "" {
		locale = "en_US"
	}
	return c.cityCandidates, locale, c.cityErr
}

func (c *stubClient) ListProperties(_ context.Context, _ models.SearchParams, sortOrder string) ([]models.SearchResult, error) {
	c.listCalls++
	c.listSort = sortOrder
	return c.listResults, c.listErr
}

func (c *stubClient) ListBestDeal(_ context.Context, _ models.SearchParams, page int) ([]models.SearchResult, error) {
	c.dealCalls = append(c.dealCalls, page)
	if c.dealErr != nil {
		return nil, c.dealErr
	}
	return c.dealPages[page], nil
}

func (c *stubClient) GetPhotos(_ context.Context, hotelID int64) ([]string, error) {
	c.photoCalls = append(c.photoCalls, hotelID)
	return c.photoURLs, c.photoErr
}

// panickyClient blows up on the city lookup to exercise the panic
// boundary.
type panickyClient struct {
	stubClient
}

func (c *panickyClient) SearchCity(context.Context, string, string) ([]models.CityCandidate, string, error) {
	panic("provider client lost its marbles")
}

// failingHistory wraps a working repository and fails selected calls.
type failingHistory struct {
	historyRepo.HistoryRepository
	clearErr error
	listErr  error
}

func (h *failingHistory) Clear(ctx context.Context, chatID string) error {
	if h.clearErr != nil {
		return h.clearErr
	}
	return h.HistoryRepository.Clear(ctx, chatID)
}

func (h *failingHistory) ListAll(ctx context.Context, chatID string) ([]models.HistoryEntry, error) {
	if h.listErr != nil {
		return nil, h.listErr
	}
	return h.HistoryRepository.ListAll(ctx, chatID)
}

// promptEvent is one call observed by the recording prompter.
type promptEvent struct {
	kind    string
	text    string
	options []Option
	photos  []string
}

type recordingPrompter struct {
	events []promptEvent
}

func (p *recordingPrompter) SendText(_ context.Context, _ string, text string) error {
	p.events = append(p.events, promptEvent{kind: "text", text: text})
	return nil
}

func (p *recordingPrompter) PromptChoice(_ context.Context, _ string, text string, options []Option) error {
	p.events = append(p.events, promptEvent{kind: "choice", text: text, options: options})
	return nil
}

func (p *recordingPrompter) SendHotel(_ context.Context, _ string, text string, photoURLs []string) error {
	p.events = append(p.events, promptEvent{kind: "hotel", text: text, photos: photoURLs})
	return nil
}

func (p *recordingPrompter) lastText() string {
	if len(p.events) == 0 {
		return ""
	}
	return p.events[len(p.events)-1].text
}

func (p *recordingPrompter) hotelCards() []promptEvent {
	var out []promptEvent
	for _, ev := range p.events {
		if ev.kind == "hotel" {
			out = append(out, ev)
		}
	}
	return out
}

func (p *recordingPrompter) reset() {
	p.events = nil
}
