package conversation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"stayfinder/models"
	"stayfinder/services/search"
	"stayfinder/utils"
)

var currencyOptions = []Option{
	{ID: "RUB", Label: "RUB"},
	{ID: "USD", Label: "USD"},
	{ID: "EUR", Label: "EUR"},
}

func countOptions() []Option {
	options := make([]Option, 0, 10)
	for i := 1; i <= 10; i++ {
		id := strconv.Itoa(i)
		options = append(options, Option{ID: id, Label: id})
	}
	return options
}

var photoOptions = []Option{
	{ID: "yes", Label: "Yes"},
	{ID: "no", Label: "No"},
}

// advance persists the session and issues the next prompt in one place so
// no transition can skip the save.
func (e *DefaultEngine) advance(ctx context.Context, sess *models.Session, state models.FlowState, prompt string, options []Option) error {
	sess.State = state
	if err := e.Sessions.Save(ctx, sess); err != nil {
		return err
	}
	if options != nil {
		return e.Prompter.PromptChoice(ctx, sess.ChatID, prompt, options)
	}
	return e.Prompter.SendText(ctx, sess.ChatID, prompt)
}

// reject re-issues the current step's prompt with a rejection notice and
// leaves the state untouched.
func (e *DefaultEngine) reject(ctx context.Context, chatID, notice, prompt string) error {
	if err := e.Prompter.SendText(ctx, chatID, notice); err != nil {
		return err
	}
	return e.Prompter.SendText(ctx, chatID, prompt)
}

func (e *DefaultEngine) stepCity(ctx context.Context, sess *models.Session, text string) error {
	if text == "" {
		return e.reject(ctx, sess.ChatID, textCityNotFound, textAskCity)
	}

	candidates, locale, err := e.Search.SearchCity(ctx, text, sess.Currency)
	if err != nil {
		return e.abortToIdle(ctx, sess, textUnavailable)
	}
	if len(candidates) == 0 {
		return e.reject(ctx, sess.ChatID, textCityNotFound, textAskCity)
	}

	sess.Locale = locale
	sess.CityChoices = candidates
	options := make([]Option, 0, len(candidates))
	for _, c := range candidates {
		options = append(options, Option{ID: c.DestinationID, Label: c.Name})
	}
	return e.advance(ctx, sess, models.StateAwaitCitySelect, textCityConfirm, options)
}

func (e *DefaultEngine) stepCitySelect(ctx context.Context, sess *models.Session, optionID string) error {
	var chosen *models.CityCandidate
	for i := range sess.CityChoices {
		if sess.CityChoices[i].DestinationID == optionID {
			chosen = &sess.CityChoices[i]
			break
		}
	}
	if chosen == nil {
		return e.Prompter.SendText(ctx, sess.ChatID, textUseButtons)
	}

	sess.City = chosen.Name
	sess.CityID = chosen.DestinationID
	sess.CityChoices = nil
	return e.advance(ctx, sess, models.StateAwaitCurrency, textAskCurrency, currencyOptions)
}

func (e *DefaultEngine) stepCurrency(ctx context.Context, sess *models.Session, optionID string) error {
	valid := false
	for _, opt := range currencyOptions {
		if opt.ID == optionID {
			valid = true
			break
		}
	}
	if !valid {
		return e.Prompter.SendText(ctx, sess.ChatID, textUseButtons)
	}

	sess.Currency = optionID
	if sess.Command == models.CommandBestDeal {
		return e.advance(ctx, sess, models.StateAwaitPriceMin, textAskPriceMin, nil)
	}
	return e.advance(ctx, sess, models.StateAwaitHotelCount, textAskHotelCount, countOptions())
}

func (e *DefaultEngine) stepPriceMin(ctx context.Context, sess *models.Session, text string) error {
	value, err := ParseHotelPrice(text)
	if err != nil {
		return e.reject(ctx, sess.ChatID, textBadPrice, textAskPriceMin)
	}
	sess.PriceMin = value
	return e.advance(ctx, sess, models.StateAwaitPriceMax, textAskPriceMax, nil)
}

func (e *DefaultEngine) stepPriceMax(ctx context.Context, sess *models.Session, text string) error {
	value, err := ParseHotelPrice(text)
	if err != nil {
		return e.reject(ctx, sess.ChatID, textBadPrice, textAskPriceMax)
	}
	// Only the maximum is re-asked on a bad pair; the minimum stays.
	if sess.PriceMin >= value {
		return e.reject(ctx, sess.ChatID, textPriceOrder, textAskPriceMax)
	}
	sess.PriceMax = value
	return e.advance(ctx, sess, models.StateAwaitDistanceMin, textAskDistMin, nil)
}

func (e *DefaultEngine) stepDistanceMin(ctx context.Context, sess *models.Session, text string) error {
	value, err := ParseDistanceInput(text)
	if err != nil {
		return e.reject(ctx, sess.ChatID, textBadDistance, textAskDistMin)
	}
	sess.DistanceMin = value
	return e.advance(ctx, sess, models.StateAwaitDistanceMax, textAskDistMax, nil)
}

func (e *DefaultEngine) stepDistanceMax(ctx context.Context, sess *models.Session, text string) error {
	value, err := ParseDistanceInput(text)
	if err != nil {
		return e.reject(ctx, sess.ChatID, textBadDistance, textAskDistMax)
	}
	if sess.DistanceMin >= value {
		return e.reject(ctx, sess.ChatID, textDistanceOrder, textAskDistMax)
	}
	sess.DistanceMax = value
	return e.advance(ctx, sess, models.StateAwaitHotelCount, textAskHotelCount, countOptions())
}

func (e *DefaultEngine) stepHotelCount(ctx context.Context, sess *models.Session, optionID string) error {
	count, ok := parseCountOption(optionID)
	if !ok {
		return e.Prompter.SendText(ctx, sess.ChatID, textUseButtons)
	}
	sess.HotelCount = count
	return e.advance(ctx, sess, models.StateAwaitCheckIn, textAskCheckIn, nil)
}

func (e *DefaultEngine) stepCheckIn(ctx context.Context, sess *models.Session, text string) error {
	date, err := ParseFlowDate(text)
	if err != nil {
		return e.reject(ctx, sess.ChatID, textBadDate, textAskCheckIn)
	}
	sess.CheckIn = date.Format(flowDateLayout)
	return e.advance(ctx, sess, models.StateAwaitCheckOut, textAskCheckOut, nil)
}

func (e *DefaultEngine) stepCheckOut(ctx context.Context, sess *models.Session, text string) error {
	date, err := ParseFlowDate(text)
	if err != nil {
		return e.reject(ctx, sess.ChatID, textBadDate, textAskCheckOut)
	}
	checkIn, err := ParseFlowDate(sess.CheckIn)
	if err != nil {
		// Should be unreachable: check-in was validated on entry.
		return e.abortToIdle(ctx, sess, textInternalError)
	}
	if !date.After(checkIn) {
		return e.reject(ctx, sess.ChatID, textDateOrder, textAskCheckOut)
	}
	sess.CheckOut = date.Format(flowDateLayout)
	sess.Nights = NightsBetween(checkIn, date)
	return e.advance(ctx, sess, models.StateAwaitPhotoChoice, textAskPhotos, photoOptions)
}

func (e *DefaultEngine) stepPhotoChoice(ctx context.Context, sess *models.Session, optionID string) error {
	switch optionID {
	case "yes":
		sess.WithPhotos = true
		return e.advance(ctx, sess, models.StateAwaitPhotoCount, textAskPhotoCount, countOptions())
	case "no":
		sess.WithPhotos = false
		sess.PhotoCount = 0
		return e.complete(ctx, sess)
	default:
		return e.Prompter.SendText(ctx, sess.ChatID, textUseButtons)
	}
}

func (e *DefaultEngine) stepPhotoCount(ctx context.Context, sess *models.Session, optionID string) error {
	count, ok := parseCountOption(optionID)
	if !ok {
		return e.Prompter.SendText(ctx, sess.ChatID, textUseButtons)
	}
	sess.PhotoCount = count
	return e.complete(ctx, sess)
}

func parseCountOption(optionID string) (int, bool) {
	count, err := strconv.Atoi(optionID)
	if err != nil || count < 1 || count > 10 {
		return 0, false
	}
	return count, true
}

// complete runs the search, records the flow, shows the hotels, and resets
// the session to idle.
func (e *DefaultEngine) complete(ctx context.Context, sess *models.Session) error {
	sess.StartedAt = time.Now()
	if err := e.Prompter.SendText(ctx, sess.ChatID, textLoading); err != nil {
		return err
	}

	params := models.SearchParams{
		DestinationID: sess.CityID,
		CheckIn:       sess.CheckIn,
		CheckOut:      sess.CheckOut,
		Currency:      sess.Currency,
		Locale:        sess.Locale,
		PriceMin:      sess.PriceMin,
		PriceMax:      sess.PriceMax,
	}

	var results []models.SearchResult
	var err error
	switch sess.Command {
	case models.CommandLowPrice:
		results, err = e.Search.ListProperties(ctx, params, search.SortPriceAsc)
	case models.CommandHighPrice:
		results, err = e.Search.ListProperties(ctx, params, search.SortPriceDesc)
	case models.CommandBestDeal:
		results, err = e.refineBestDeals(ctx, sess, params)
	default:
		return e.abortToIdle(ctx, sess, textInternalError)
	}

	if err != nil && !errors.Is(err, ErrNoDeals) {
		if search.IsRequestError(err) {
			return e.abortToIdle(ctx, sess, textUnavailable)
		}
		return fmt.Errorf("run search: %w", err)
	}

	// One entry per completed flow, written whether or not any hotel
	// ultimately survives the filters.
	if _, recErr := e.History.RecordCommand(ctx, historyEntryFromSession(sess)); recErr != nil {
		utils.GetLogger().Error("record history entry failed",
			zap.String("chatId", sess.ChatID), zap.Error(recErr))
	}

	if errors.Is(err, ErrNoDeals) {
		return e.abortToIdle(ctx, sess, textNotFound)
	}

	e.showHotels(ctx, sess, results)
	return e.abortToIdle(ctx, sess, textDone)
}

// showHotels renders up to the requested number of hotels, skipping the
// ones that cannot be formatted. Each shown hotel is recorded to history.
func (e *DefaultEngine) showHotels(ctx context.Context, sess *models.Session, results []models.SearchResult) {
	logger := utils.GetLogger()

	shown := 0
	for _, hotel := range results {
		if shown == sess.HotelCount {
			break
		}
		card, ok := formatHotelCard(hotel, sess)
		if !ok {
			continue
		}

		var photos []string
		if sess.PhotoCount > 0 {
			urls, photoErr := e.Search.GetPhotos(ctx, hotel.ID)
			if photoErr != nil {
				logger.Warn("photo fetch failed, showing hotel without photos",
					zap.Int64("hotelId", hotel.ID), zap.Error(photoErr))
			} else {
				if len(urls) > sess.PhotoCount {
					urls = urls[:sess.PhotoCount]
				}
				photos = urls
			}
		}

		if recErr := e.History.RecordShownHotel(ctx, sess.ChatID, card, photos); recErr != nil {
			logger.Error("record shown hotel failed",
				zap.String("chatId", sess.ChatID), zap.Error(recErr))
		}
		if sendErr := e.Prompter.SendHotel(ctx, sess.ChatID, card, photos); sendErr != nil {
			logger.Error("send hotel failed",
				zap.String("chatId", sess.ChatID), zap.Error(sendErr))
			continue
		}
		shown++
	}
}

func historyEntryFromSession(sess *models.Session) models.HistoryEntry {
	return models.HistoryEntry{
		ChatID:      sess.ChatID,
		RecordedAt:  sess.StartedAt,
		Command:     sess.Command,
		City:        sess.City,
		Currency:    sess.Currency,
		CheckIn:     sess.CheckIn,
		CheckOut:    sess.CheckOut,
		PriceMin:    sess.PriceMin,
		PriceMax:    sess.PriceMax,
		DistanceMin: sess.DistanceMin,
		DistanceMax: sess.DistanceMax,
	}
}
