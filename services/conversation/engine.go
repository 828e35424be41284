package conversation

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"stayfinder/models"
	"stayfinder/utils"
)

// HandleMessage routes free-text input. A recognized command always wins
// over the current step: it discards the in-flight flow and restarts.
func (e *DefaultEngine) HandleMessage(ctx context.Context, chatID, text string) (err error) {
	defer e.guardStep(ctx, chatID, &err)

	sess, err := e.Sessions.Get(ctx, chatID)
	if err != nil {
		return err
	}

	text = strings.TrimSpace(text)
	if cmd, ok := parseCommand(text); ok {
		return e.startCommand(ctx, sess, cmd)
	}

	switch sess.State {
	case models.StateAwaitCity:
		return e.stepCity(ctx, sess, text)
	case models.StateAwaitPriceMin:
		return e.stepPriceMin(ctx, sess, text)
	case models.StateAwaitPriceMax:
		return e.stepPriceMax(ctx, sess, text)
	case models.StateAwaitDistanceMin:
		return e.stepDistanceMin(ctx, sess, text)
	case models.StateAwaitDistanceMax:
		return e.stepDistanceMax(ctx, sess, text)
	case models.StateAwaitCheckIn:
		return e.stepCheckIn(ctx, sess, text)
	case models.StateAwaitCheckOut:
		return e.stepCheckOut(ctx, sess, text)
	case models.StateAwaitCitySelect, models.StateAwaitCurrency,
		models.StateAwaitHotelCount, models.StateAwaitPhotoChoice,
		models.StateAwaitPhotoCount, models.StateAwaitHistoryAction,
		models.StateAwaitHistoryScope:
		return e.Prompter.SendText(ctx, chatID, textUseButtons)
	default:
		return e.Prompter.SendText(ctx, chatID, textUnknownInput)
	}
}

// HandleOption routes a selected choice to the current step. Selections
// that don't belong to the step's enumerated set re-issue the prompt.
func (e *DefaultEngine) HandleOption(ctx context.Context, chatID, optionID string) (err error) {
	defer e.guardStep(ctx, chatID, &err)

	sess, err := e.Sessions.Get(ctx, chatID)
	if err != nil {
		return err
	}

	switch sess.State {
	case models.StateAwaitCitySelect:
		return e.stepCitySelect(ctx, sess, optionID)
	case models.StateAwaitCurrency:
		return e.stepCurrency(ctx, sess, optionID)
	case models.StateAwaitHotelCount:
		return e.stepHotelCount(ctx, sess, optionID)
	case models.StateAwaitPhotoChoice:
		return e.stepPhotoChoice(ctx, sess, optionID)
	case models.StateAwaitPhotoCount:
		return e.stepPhotoCount(ctx, sess, optionID)
	case models.StateAwaitHistoryAction:
		return e.stepHistoryAction(ctx, sess, optionID)
	case models.StateAwaitHistoryScope:
		return e.stepHistoryScope(ctx, sess, optionID)
	default:
		return e.Prompter.SendText(ctx, chatID, textUnknownInput)
	}
}

// parseCommand recognizes the global command interrupts.
func parseCommand(text string) (models.Command, bool) {
	switch strings.ToLower(text) {
	case "/lowprice":
		return models.CommandLowPrice, true
	case "/highprice":
		return models.CommandHighPrice, true
	case "/bestdeal":
		return models.CommandBestDeal, true
	case "/history":
		return models.CommandHistory, true
	case "/start", "/help":
		return models.CommandHelp, true
	}
	return "", false
}

// startCommand aborts whatever was in flight and begins a fresh flow.
func (e *DefaultEngine) startCommand(ctx context.Context, sess *models.Session, cmd models.Command) error {
	sess.Reset()

	switch cmd {
	case models.CommandLowPrice, models.CommandHighPrice, models.CommandBestDeal:
		sess.Command = cmd
		sess.State = models.StateAwaitCity
		if err := e.Sessions.Save(ctx, sess); err != nil {
			return err
		}
		return e.Prompter.SendText(ctx, sess.ChatID, textAskCity)
	case models.CommandHistory:
		sess.State = models.StateAwaitHistoryAction
		if err := e.Sessions.Save(ctx, sess); err != nil {
			return err
		}
		return e.Prompter.PromptChoice(ctx, sess.ChatID, textHistoryMenu, historyActionOptions())
	case models.CommandHelp:
		if err := e.Sessions.Save(ctx, sess); err != nil {
			return err
		}
		return e.Prompter.SendText(ctx, sess.ChatID, textHelp)
	default:
		return e.abortToIdle(ctx, sess, textUnknownInput)
	}
}

// abortToIdle discards the flow after a failure and notifies the user.
func (e *DefaultEngine) abortToIdle(ctx context.Context, sess *models.Session, notice string) error {
	sess.Reset()
	if err := e.Sessions.Save(ctx, sess); err != nil {
		return err
	}
	return e.Prompter.SendText(ctx, sess.ChatID, notice)
}

// guardStep is the outermost step boundary. An unexpected failure inside a
// step, whether a panic or a returned error, is logged, the conversation
// returns to idle with a generic notice, and no retry happens without
// fresh user input. Expected outcomes (rejections, no-deals, transport
// aborts) never reach this point; the steps turn them into prompts.
func (e *DefaultEngine) guardStep(ctx context.Context, chatID string, err *error) {
	r := recover()
	if r == nil && *err == nil {
		return
	}

	if r != nil {
		utils.GetLogger().Error("conversation step panicked",
			zap.String("chatId", chatID), zap.Any("panic", r))
	} else {
		utils.GetLogger().Error("conversation step failed",
			zap.String("chatId", chatID), zap.Error(*err))
	}
	_ = e.Sessions.Delete(ctx, chatID)
	_ = e.Prompter.SendText(ctx, chatID, textInternalError)
	*err = nil
}
