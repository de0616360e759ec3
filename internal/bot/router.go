package bot

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"fit-coach/internal/models"
	"fit-coach/internal/validation"
)

func (t *TelegramBot) handleMyPlan(ctx context.Context, chatID, userID int64) {
	plan, err := t.backend.GetUserPlan(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			t.reply(chatID, msgPlanMissing)
			return
		}
		t.logger.Errorw("failed to fetch plan", "user_id", userID, "error", err)
		t.reply(chatID, msgInternalError)
		return
	}
	t.reply(chatID, plan)
}

func (t *TelegramBot) startPlanRequest(ctx context.Context, chatID, userID int64) {
	t.setPhase(ctx, userID, PhasePlanRequest)
	t.reply(chatID, msgAskPlanWish)
}

// handlePlanRequest runs generation under the busy gate: the phase is
// PhaseGenerating for the whole call and returns to PhaseMain afterwards,
// success or not.
func (t *TelegramBot) handlePlanRequest(ctx context.Context, chatID, userID int64, wishes string) {
	if strings.EqualFold(strings.TrimSpace(wishes), "нет") {
		wishes = ""
	}

	t.setPhase(ctx, userID, PhaseGenerating)
	defer t.setPhase(ctx, userID, PhaseMain)

	t.reply(chatID, msgGenerating)
	t.sendTyping(chatID)

	if err := t.backend.GeneratePlan(ctx, userID, wishes); err != nil {
		t.logger.Errorw("plan generation failed", "user_id", userID, "error", err)
		if errors.Is(err, models.ErrGenerationFailed) {
			t.reply(chatID, msgGenFailed)
		} else {
			t.reply(chatID, msgInternalError)
		}
		return
	}

	plan, err := t.backend.GetUserPlan(ctx, userID)
	if err != nil {
		t.logger.Errorw("failed to fetch generated plan", "user_id", userID, "error", err)
		t.reply(chatID, msgInternalError)
		return
	}
	t.reply(chatID, plan)
}

// handleChatRequest sends free text to the AI coach under the busy gate.
func (t *TelegramBot) handleChatRequest(ctx context.Context, chatID, userID int64, text string) {
	t.setPhase(ctx, userID, PhaseGenerating)
	defer t.setPhase(ctx, userID, PhaseMain)

	t.sendTyping(chatID)

	answer, err := t.backend.Chat(ctx, userID, text)
	if err != nil {
		t.logger.Errorw("chat request failed", "user_id", userID, "error", err)
		if errors.Is(err, models.ErrGenerationFailed) {
			t.reply(chatID, msgGenFailed)
		} else {
			t.reply(chatID, msgInternalError)
		}
		return
	}
	t.reply(chatID, answer)
}

func (t *TelegramBot) handleProfile(ctx context.Context, chatID, userID int64) {
	user, err := t.backend.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			t.reply(chatID, msgProfileFirst)
			return
		}
		t.logger.Errorw("failed to fetch profile", "user_id", userID, "error", err)
		t.reply(chatID, msgInternalError)
		return
	}

	msg := tgbotapi.NewMessage(chatID, renderProfile(user))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = profileEditKeyboard()
	t.send(msg)
}

// handleCallback routes inline keyboard presses. The only callbacks the
// bot issues are profile edit buttons with "edit:<field>" data.
func (t *TelegramBot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	userID := cq.From.ID
	var chatID int64
	if cq.Message != nil {
		chatID = cq.Message.Chat.ID
	}

	// acknowledge so the client stops the spinner
	if _, err := t.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		t.logger.Debugw("failed to answer callback", "error", err)
	}

	name, ok := strings.CutPrefix(cq.Data, "edit:")
	if !ok {
		t.logger.Warnw("unexpected callback data", "data", cq.Data, "user_id", userID)
		return
	}
	field, ok := validation.ParseField(name)
	if !ok {
		t.logger.Warnw("unknown edit field", "field", name, "user_id", userID)
		return
	}

	state, err := t.states.Get(ctx, userID)
	if err != nil {
		t.logger.Errorw("failed to load dialogue state", "user_id", userID, "error", err)
		t.reply(chatID, msgInternalError)
		return
	}
	if state.Phase != PhaseMain {
		if state.Phase == PhaseGenerating {
			t.reply(chatID, msgPleaseWait)
		}
		return
	}

	state.Phase = PhaseEditing
	state.EditField = string(field)
	t.saveState(ctx, userID, state)

	switch field {
	case validation.FieldGender:
		msg := tgbotapi.NewMessage(chatID, msgAskGender)
		msg.ReplyMarkup = genderKeyboard()
		t.send(msg)
	case validation.FieldActivityLevel:
		t.askActivityLevel(ctx, chatID)
	default:
		t.reply(chatID, "Введи новое значение поля «"+field.DisplayName()+"»:")
	}
}

// handleEditValue applies one field edit. Validation failures keep the
// editing phase so the user retries without pressing the button again.
func (t *TelegramBot) handleEditValue(ctx context.Context, chatID, userID int64, input string, state State) {
	field, ok := validation.ParseField(state.EditField)
	if !ok {
		t.logger.Warnw("editing phase with unknown field", "field", state.EditField, "user_id", userID)
		t.setPhase(ctx, userID, PhaseMain)
		t.reply(chatID, msgInternalError)
		return
	}

	var levels []models.ActivityLevel
	if field == validation.FieldActivityLevel {
		var err error
		levels, err = t.backend.GetActivityLevels(ctx)
		if err != nil {
			t.logger.Errorw("failed to fetch activity levels", "user_id", userID, "error", err)
			t.reply(chatID, msgInternalError)
			return
		}
	}

	patch, err := validation.ValidateField(field, input, levels)
	if err != nil {
		t.reply(chatID, err.Error())
		return
	}

	if err := t.backend.UpdateUser(ctx, userID, &patch); err != nil {
		t.logger.Errorw("failed to update profile field", "user_id", userID, "field", field, "error", err)
		if errors.Is(err, models.ErrNotFound) {
			t.setPhase(ctx, userID, PhaseNone)
			t.reply(chatID, msgUseStart)
			return
		}
		t.reply(chatID, msgInternalError)
		return
	}

	t.setPhase(ctx, userID, PhaseMain)
	msg := tgbotapi.NewMessage(chatID, msgEditSaved)
	msg.ReplyMarkup = removeKeyboard()
	t.send(msg)
	t.handleProfile(ctx, chatID, userID)
}
